package models

import "time"

// StatusChange enables or disables an employee or a category.
type StatusChange struct {
	ID         int64
	Status     int
	UpdateTime time.Time
	UpdateUser int64
}
