package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/sky-take-out/models"
)

// DTOValidator checks request DTOs against their `validate` struct tags.
// Field names in errors are the JSON names the client sent.
type DTOValidator struct {
	validate *validator.Validate
}

func NewDTOValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &DTOValidator{validate: validate}
}

// Validate validates obj. When fields are given only those struct fields
// (Go names, e.g. "Username") are checked.
func (v *DTOValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.EmployeeLoginDTO, *models.EmployeeLoginDTO,
		models.EmployeeDTO, *models.EmployeeDTO,
		models.EmployeePageQueryDTO, *models.EmployeePageQueryDTO,
		models.CategoryDTO, *models.CategoryDTO,
		models.CategoryPageQueryDTO, *models.CategoryPageQueryDTO:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return describe(err)
}

// describe turns the first validation failure into an [ErrInvalidField]
// error whose text names the field and the violated rule.
func describe(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		return fmt.Errorf("%w: %s must satisfy %s", ErrInvalidField, fe.Field(), rule)
	}

	return err
}

// Message returns the client-facing part of a validation error, e.g.
// "username must satisfy required".
func Message(err error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, ErrInvalidField.Error()+": "); ok {
		return rest
	}
	return msg
}
