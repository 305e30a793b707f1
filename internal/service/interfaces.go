package service

import (
	"context"

	"github.com/MKhiriev/sky-take-out/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EmployeeService manages back-office accounts.
type EmployeeService interface {
	Login(ctx context.Context, login models.EmployeeLoginDTO) (models.Employee, error)
	Save(ctx context.Context, employee models.EmployeeDTO) error
	Page(ctx context.Context, query models.EmployeePageQueryDTO) (models.PageResult[models.Employee], error)
	StartOrStop(ctx context.Context, status int, id int64) error
	GetByID(ctx context.Context, id int64) (models.Employee, error)
	Update(ctx context.Context, employee models.EmployeeDTO) error
}

// CategoryService manages dish and set meal categories.
type CategoryService interface {
	Add(ctx context.Context, category models.CategoryDTO) error
	Page(ctx context.Context, query models.CategoryPageQueryDTO) (models.PageResult[models.Category], error)
	StartOrStop(ctx context.Context, status int, id int64) error
	DeleteByID(ctx context.Context, id int64) error
	Update(ctx context.Context, category models.CategoryDTO) error
}

// AuthService issues and checks admin tokens.
type AuthService interface {
	CreateToken(ctx context.Context, employee models.Employee) (string, error)
	ParseToken(ctx context.Context, tokenString string) (int64, error)
}

// PasswordDigester is a one-way password function.
type PasswordDigester interface {
	Digest(password string) (string, error)
	Matches(digest, password string) bool
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
