package store

import (
	"context"

	"github.com/MKhiriev/sky-take-out/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EmployeeRepository persists back-office accounts in the "employee" table.
type EmployeeRepository interface {
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	FindByUsername(ctx context.Context, username string) (models.Employee, error)
	FindByID(ctx context.Context, id int64) (models.Employee, error)
	Page(ctx context.Context, query models.EmployeePageQueryDTO) (models.PageResult[models.Employee], error)
	Update(ctx context.Context, employee models.Employee) error
	UpdateStatus(ctx context.Context, change models.StatusChange) error
}

// CategoryRepository persists dish and set meal categories in the "category" table.
type CategoryRepository interface {
	Create(ctx context.Context, category models.Category) (models.Category, error)
	Page(ctx context.Context, query models.CategoryPageQueryDTO) (models.PageResult[models.Category], error)
	Update(ctx context.Context, category models.Category) error
	UpdateStatus(ctx context.Context, change models.StatusChange) error
	DeleteByID(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
