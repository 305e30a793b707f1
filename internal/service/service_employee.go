package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sky-take-out/internal/failure"
	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/internal/store"
	"github.com/MKhiriev/sky-take-out/internal/utils"
	"github.com/MKhiriev/sky-take-out/models"
)

// maskedPassword replaces the digest in every employee returned to clients.
const maskedPassword = "****"

// employeeService is the concrete implementation of EmployeeService.
type employeeService struct {
	employeeRepository store.EmployeeRepository
	digester           PasswordDigester

	// defaultPassword is assigned to every new account.
	defaultPassword string

	now    func() time.Time
	logger *logger.Logger
}

// NewEmployeeService constructs an EmployeeService on top of the given
// repository. New accounts get defaultPassword, digested with digester.
func NewEmployeeService(employeeRepository store.EmployeeRepository, digester PasswordDigester, defaultPassword string, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		digester:           digester,
		defaultPassword:    defaultPassword,
		now:                time.Now,
		logger:             logger,
	}
}

// Login authenticates an employee by username and password.
//
// Checks run in a fixed order and the first failing one decides the result:
//   - no such username → [failure.ErrAccountNotFound];
//   - digest mismatch → [failure.ErrPasswordError];
//   - account disabled → [failure.ErrAccountLocked].
func (e *employeeService) Login(ctx context.Context, login models.EmployeeLoginDTO) (models.Employee, error) {
	log := logger.FromContext(ctx)

	employee, err := e.employeeRepository.FindByUsername(ctx, login.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoEmployeeWasFound) {
			log.Info().Str("username", login.Username).Msg("login attempt for unknown account")
			return models.Employee{}, failure.ErrAccountNotFound
		}
		log.Err(err).Str("func", "*employeeService.Login").Msg("employee search by username failed")
		return models.Employee{}, fmt.Errorf("employee search by username failed: %w", err)
	}

	if !e.digester.Matches(employee.Password, login.Password) {
		log.Info().Int64("id", employee.ID).Msg("wrong password")
		return models.Employee{}, failure.ErrPasswordError
	}

	if employee.IsDisabled() {
		log.Info().Int64("id", employee.ID).Msg("login attempt for locked account")
		return models.Employee{}, failure.ErrAccountLocked
	}

	return employee, nil
}

// Save creates an enabled employee with the default password. The current
// employee is recorded as creator.
func (e *employeeService) Save(ctx context.Context, dto models.EmployeeDTO) error {
	currentID, ok := utils.CurrentEmployeeID(ctx)
	if !ok {
		return failure.ErrUnauthorized
	}

	password, err := e.digester.Digest(e.defaultPassword)
	if err != nil {
		return fmt.Errorf("error digesting default password: %w", err)
	}

	now := e.now()
	employee := models.Employee{
		Name:       dto.Name,
		Username:   dto.Username,
		Password:   password,
		Phone:      dto.Phone,
		Sex:        dto.Sex,
		IDNumber:   dto.IDNumber,
		Status:     models.StatusEnabled,
		CreateTime: now,
		UpdateTime: now,
		CreateUser: currentID,
		UpdateUser: currentID,
	}

	created, err := e.employeeRepository.Create(ctx, employee)
	if err != nil {
		return fmt.Errorf("employee creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("id", created.ID).
		Int64("create_user", currentID).
		Msg("employee created")
	return nil
}

// Page lists employees whose name contains query.Name, newest first.
// Password digests are masked.
func (e *employeeService) Page(ctx context.Context, query models.EmployeePageQueryDTO) (models.PageResult[models.Employee], error) {
	page, err := e.employeeRepository.Page(ctx, query)
	if err != nil {
		return models.PageResult[models.Employee]{}, fmt.Errorf("employee page query failed: %w", err)
	}

	for i := range page.Records {
		page.Records[i].Password = maskedPassword
	}

	return page, nil
}

// StartOrStop enables (1) or disables (0) an account.
func (e *employeeService) StartOrStop(ctx context.Context, status int, id int64) error {
	if status != models.StatusEnabled && status != models.StatusDisabled {
		return failure.NewBusiness(MsgInvalidStatus)
	}

	currentID, ok := utils.CurrentEmployeeID(ctx)
	if !ok {
		return failure.ErrUnauthorized
	}

	err := e.employeeRepository.UpdateStatus(ctx, models.StatusChange{
		ID:         id,
		Status:     status,
		UpdateTime: e.now(),
		UpdateUser: currentID,
	})
	return e.accountError(err)
}

// GetByID returns one employee with the password digest masked.
func (e *employeeService) GetByID(ctx context.Context, id int64) (models.Employee, error) {
	employee, err := e.employeeRepository.FindByID(ctx, id)
	if err != nil {
		return models.Employee{}, e.accountError(err)
	}

	employee.Password = maskedPassword
	return employee, nil
}

// Update writes the editable fields of an existing employee.
func (e *employeeService) Update(ctx context.Context, dto models.EmployeeDTO) error {
	if dto.ID <= 0 {
		return failure.NewBusiness(MsgInvalidID)
	}

	currentID, ok := utils.CurrentEmployeeID(ctx)
	if !ok {
		return failure.ErrUnauthorized
	}

	err := e.employeeRepository.Update(ctx, models.Employee{
		ID:         dto.ID,
		Name:       dto.Name,
		Username:   dto.Username,
		Phone:      dto.Phone,
		Sex:        dto.Sex,
		IDNumber:   dto.IDNumber,
		UpdateTime: e.now(),
		UpdateUser: currentID,
	})
	return e.accountError(err)
}

// accountError maps a missing row to [failure.ErrAccountNotFound] and wraps
// everything else.
func (e *employeeService) accountError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoEmployeeWasFound):
		return failure.ErrAccountNotFound
	default:
		return fmt.Errorf("employee operation failed: %w", err)
	}
}
