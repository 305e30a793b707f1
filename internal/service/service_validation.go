package service

import (
	"context"

	"github.com/MKhiriev/sky-take-out/internal/failure"
	"github.com/MKhiriev/sky-take-out/internal/validators"
	"github.com/MKhiriev/sky-take-out/models"
)

// EmployeeServiceWrapper decorates an EmployeeService, e.g. with validation.
type EmployeeServiceWrapper interface {
	Wrap(EmployeeService) EmployeeService
}

// CategoryServiceWrapper decorates a CategoryService, e.g. with validation.
type CategoryServiceWrapper interface {
	Wrap(CategoryService) CategoryService
}

// EmployeeValidationService rejects malformed DTOs before they reach the
// wrapped EmployeeService. Violations become business failures whose
// message names the offending field.
type EmployeeValidationService struct {
	inner     EmployeeService
	validator validators.Validator
}

func NewEmployeeValidationService(validator validators.Validator) EmployeeServiceWrapper {
	return &EmployeeValidationService{validator: validator}
}

func (v *EmployeeValidationService) Wrap(inner EmployeeService) EmployeeService {
	v.inner = inner
	return v
}

func (v *EmployeeValidationService) Login(ctx context.Context, login models.EmployeeLoginDTO) (models.Employee, error) {
	if err := v.validator.Validate(ctx, login); err != nil {
		return models.Employee{}, invalid(err)
	}
	return v.inner.Login(ctx, login)
}

func (v *EmployeeValidationService) Save(ctx context.Context, employee models.EmployeeDTO) error {
	if err := v.validator.Validate(ctx, employee); err != nil {
		return invalid(err)
	}
	return v.inner.Save(ctx, employee)
}

func (v *EmployeeValidationService) Page(ctx context.Context, query models.EmployeePageQueryDTO) (models.PageResult[models.Employee], error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.PageResult[models.Employee]{}, invalid(err)
	}
	return v.inner.Page(ctx, query)
}

func (v *EmployeeValidationService) StartOrStop(ctx context.Context, status int, id int64) error {
	return v.inner.StartOrStop(ctx, status, id)
}

func (v *EmployeeValidationService) GetByID(ctx context.Context, id int64) (models.Employee, error) {
	return v.inner.GetByID(ctx, id)
}

// Update checks only the fields a client actually sent; empty fields are
// left untouched by the update.
func (v *EmployeeValidationService) Update(ctx context.Context, employee models.EmployeeDTO) error {
	fields := []string{"Phone", "Sex", "IDNumber"}
	if employee.Username != "" {
		fields = append(fields, "Username")
	}
	if employee.Name != "" {
		fields = append(fields, "Name")
	}

	if err := v.validator.Validate(ctx, employee, fields...); err != nil {
		return invalid(err)
	}
	return v.inner.Update(ctx, employee)
}

// CategoryValidationService is the CategoryService counterpart of
// EmployeeValidationService.
type CategoryValidationService struct {
	inner     CategoryService
	validator validators.Validator
}

func NewCategoryValidationService(validator validators.Validator) CategoryServiceWrapper {
	return &CategoryValidationService{validator: validator}
}

func (v *CategoryValidationService) Wrap(inner CategoryService) CategoryService {
	v.inner = inner
	return v
}

func (v *CategoryValidationService) Add(ctx context.Context, category models.CategoryDTO) error {
	if err := v.validator.Validate(ctx, category); err != nil {
		return invalid(err)
	}
	return v.inner.Add(ctx, category)
}

func (v *CategoryValidationService) Page(ctx context.Context, query models.CategoryPageQueryDTO) (models.PageResult[models.Category], error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.PageResult[models.Category]{}, invalid(err)
	}
	return v.inner.Page(ctx, query)
}

func (v *CategoryValidationService) StartOrStop(ctx context.Context, status int, id int64) error {
	return v.inner.StartOrStop(ctx, status, id)
}

func (v *CategoryValidationService) DeleteByID(ctx context.Context, id int64) error {
	return v.inner.DeleteByID(ctx, id)
}

func (v *CategoryValidationService) Update(ctx context.Context, category models.CategoryDTO) error {
	fields := []string{"Sort"}
	if category.Type != 0 {
		fields = append(fields, "Type")
	}
	if category.Name != "" {
		fields = append(fields, "Name")
	}

	if err := v.validator.Validate(ctx, category, fields...); err != nil {
		return invalid(err)
	}
	return v.inner.Update(ctx, category)
}

func invalid(err error) error {
	return failure.WrapBusiness(validators.Message(err), err)
}
