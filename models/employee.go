package models

import "time"

// Account statuses shared by employees and categories.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

// Employee is a back-office account. Username is unique.
type Employee struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Password   string    `json:"password"`
	Phone      string    `json:"phone"`
	Sex        string    `json:"sex"`
	IDNumber   string    `json:"idNumber"`
	Status     int       `json:"status"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
	CreateUser int64     `json:"createUser"`
	UpdateUser int64     `json:"updateUser"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employee"
}

// IsDisabled reports whether the account is locked.
func (e Employee) IsDisabled() bool {
	return e.Status == StatusDisabled
}

// EmployeeLoginDTO is the login request body.
type EmployeeLoginDTO struct {
	Username string `json:"username" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=64"`
}

// EmployeeLoginVO is returned after a successful login. Token must be sent
// back in the token header on every protected request.
type EmployeeLoginVO struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// EmployeeDTO carries the editable employee fields for create and update.
// ID is ignored on create.
type EmployeeDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username" validate:"required,max=32"`
	Name     string `json:"name" validate:"required,max=32"`
	Phone    string `json:"phone" validate:"omitempty,numeric,len=11"`
	Sex      string `json:"sex" validate:"omitempty,oneof=0 1"`
	IDNumber string `json:"idNumber" validate:"omitempty,len=18"`
}

// EmployeePageQueryDTO holds paging and filtering parameters for the
// employee list.
type EmployeePageQueryDTO struct {
	Name     string `json:"name"`
	Page     int    `json:"page" validate:"gte=1"`
	PageSize int    `json:"pageSize" validate:"gte=1,lte=500"`
}
