package models

import "time"

// Category types.
const (
	CategoryTypeDish    = 1
	CategoryTypeSetmeal = 2
)

// Category groups dishes or set meals. Name is unique.
type Category struct {
	ID         int64     `json:"id"`
	Type       int       `json:"type"`
	Name       string    `json:"name"`
	Sort       int       `json:"sort"`
	Status     int       `json:"status"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
	CreateUser int64     `json:"createUser"`
	UpdateUser int64     `json:"updateUser"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "category"
}

// CategoryDTO carries the editable category fields for create and update.
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Type int    `json:"type" validate:"required,oneof=1 2"`
	Name string `json:"name" validate:"required,max=32"`
	Sort int    `json:"sort" validate:"gte=0"`
}

// CategoryPageQueryDTO holds paging and filtering parameters for the
// category list. A nil Type means "any type".
type CategoryPageQueryDTO struct {
	Name     string `json:"name"`
	Type     *int   `json:"type" validate:"omitempty,oneof=1 2"`
	Page     int    `json:"page" validate:"gte=1"`
	PageSize int    `json:"pageSize" validate:"gte=1,lte=500"`
}
