package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/sky-take-out/internal/failure"
	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/models"
)

// employeeRepository is the PostgreSQL-backed implementation of
// [EmployeeRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type employeeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new employee and returns it with the generated ID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [failure.UniqueViolation] carrying
//     the server detail, e.g. "Key (username)=(zhangsan) already exists.".
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *employeeRepository) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEmployeeQuery(employee)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Create").Msg("failed to build query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&employee.ID); err != nil {
		log.Err(err).Str("func", "*employeeRepository.Create").
			Str("username", employee.Username).
			Bool("retryable", r.db.retryable(err)).
			Msg("error inserting employee")
		return models.Employee{}, r.statementError(err)
	}

	return employee, nil
}

// FindByUsername returns the employee with the given username or
// [ErrNoEmployeeWasFound].
func (r *employeeRepository) FindByUsername(ctx context.Context, username string) (models.Employee, error) {
	return r.findOne(ctx, sq.Eq{"username": username})
}

// FindByID returns the employee with the given ID or [ErrNoEmployeeWasFound].
func (r *employeeRepository) FindByID(ctx context.Context, id int64) (models.Employee, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *employeeRepository) findOne(ctx context.Context, where sq.Eq) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeeQuery(where)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.findOne").Msg("failed to build query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrNoEmployeeWasFound
		}
		log.Err(err).Str("func", "*employeeRepository.findOne").
			Bool("retryable", r.db.retryable(err)).
			Msg("error selecting employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return employee, nil
}

// Page returns one page of employees filtered by name together with the
// total number of matching rows.
func (r *employeeRepository) Page(ctx context.Context, query models.EmployeePageQueryDTO) (models.PageResult[models.Employee], error) {
	log := logger.FromContext(ctx)
	page := models.PageResult[models.Employee]{Records: []models.Employee{}}

	countQuery, countArgs, err := buildCountEmployeesQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Page").Msg("failed to build count query")
		return page, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&page.Total); err != nil {
		log.Err(err).Str("func", "*employeeRepository.Page").Msg("error counting employees")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if page.Total == 0 {
		return page, nil
	}

	pageQuery, pageArgs, err := buildPageEmployeesQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Page").Msg("failed to build page query")
		return page, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Page").
			Int("page", query.Page).
			Int("page_size", query.PageSize).
			Msg("error selecting employees page")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*employeeRepository.Page").Msg("failed to scan employee row")
			return page, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		page.Records = append(page.Records, employee)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*employeeRepository.Page").Msg("error occurred during rows iteration")
		return page, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return page, nil
}

// Update writes the non-empty editable fields of employee.
func (r *employeeRepository) Update(ctx context.Context, employee models.Employee) error {
	query, args, err := buildUpdateEmployeeQuery(employee)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*employeeRepository.Update").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*employeeRepository.Update", query, args)
}

// UpdateStatus enables or disables an employee account.
func (r *employeeRepository) UpdateStatus(ctx context.Context, change models.StatusChange) error {
	query, args, err := buildUpdateStatusQuery(employeeTable, change)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*employeeRepository.UpdateStatus").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*employeeRepository.UpdateStatus", query, args)
}

func (r *employeeRepository) exec(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).
			Bool("retryable", r.db.retryable(err)).
			Msg("error executing statement")
		return r.statementError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoEmployeeWasFound
	}

	return nil
}

func (r *employeeRepository) statementError(err error) error {
	if pgErr := postgresError(err); pgErr != nil && pgErr.Code == pgerrcode.UniqueViolation {
		return failure.NewUniqueViolation(pgErr.Detail, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var e models.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Username,
		&e.Password,
		&e.Phone,
		&e.Sex,
		&e.IDNumber,
		&e.Status,
		&e.CreateTime,
		&e.UpdateTime,
		&e.CreateUser,
		&e.UpdateUser,
	)
	return e, err
}
