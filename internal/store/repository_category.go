package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sky-take-out/internal/failure"
	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/models"
	"github.com/jackc/pgerrcode"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a new category and returns it with the generated ID.
// A duplicate name surfaces as [failure.UniqueViolation].
func (c *categoryRepository) Create(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCategoryQuery(category)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.Create").Msg("failed to create query")
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.DB.QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Create").
			Str("name", category.Name).
			Bool("retryable", c.retryable(err)).
			Msg("failed to insert category")
		return models.Category{}, categoryStatementError(err)
	}

	return category, nil
}

// Page returns one page of categories filtered by name and type together with
// the total number of matching rows.
func (c *categoryRepository) Page(ctx context.Context, query models.CategoryPageQueryDTO) (models.PageResult[models.Category], error) {
	log := logger.FromContext(ctx)
	page := models.PageResult[models.Category]{Records: []models.Category{}}

	countQuery, countArgs, err := buildCountCategoriesQuery(query)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.Page").Msg("failed to create count query")
		return page, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&page.Total); err != nil {
		log.Err(err).Str("func", "categoryRepository.Page").Msg("failed to count categories")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if page.Total == 0 {
		return page, nil
	}

	pageQuery, pageArgs, err := buildPageCategoriesQuery(query)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.Page").Msg("failed to create page query")
		return page, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.Page").Msg("failed to execute query for categories page")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.Category
		scanErr := rows.Scan(
			&item.ID,
			&item.Type,
			&item.Name,
			&item.Sort,
			&item.Status,
			&item.CreateTime,
			&item.UpdateTime,
			&item.CreateUser,
			&item.UpdateUser,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "categoryRepository.Page").Msg("failed to scan category row")
			return page, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		page.Records = append(page.Records, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "categoryRepository.Page").Msg("error occurred during rows iteration")
		return page, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return page, nil
}

// Update writes the editable fields of category.
func (c *categoryRepository) Update(ctx context.Context, category models.Category) error {
	query, args, err := buildUpdateCategoryQuery(category)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return c.exec(ctx, "categoryRepository.Update", query, args)
}

// UpdateStatus enables or disables a category.
func (c *categoryRepository) UpdateStatus(ctx context.Context, change models.StatusChange) error {
	query, args, err := buildUpdateStatusQuery(categoryTable, change)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return c.exec(ctx, "categoryRepository.UpdateStatus", query, args)
}

// DeleteByID removes a category.
func (c *categoryRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := buildDeleteCategoryQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return c.exec(ctx, "categoryRepository.DeleteByID", query, args)
}

func (c *categoryRepository) exec(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Bool("retryable", c.retryable(err)).
			Msg("failed to execute statement")
		return categoryStatementError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoCategoryWasFound
	}

	return nil
}

func categoryStatementError(err error) error {
	switch postgresErrorCode(err) {
	case pgerrcode.UniqueViolation:
		return failure.NewUniqueViolation(postgresError(err).Detail, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
