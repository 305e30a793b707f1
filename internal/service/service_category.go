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

// categoryService is the concrete implementation of CategoryService.
// Every write stamps the audit fields with the current employee.
type categoryService struct {
	categoryRepository store.CategoryRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		now:                time.Now,
		logger:             logger,
	}
}

// Add creates a disabled category.
func (c *categoryService) Add(ctx context.Context, dto models.CategoryDTO) error {
	currentID, ok := utils.CurrentEmployeeID(ctx)
	if !ok {
		return failure.ErrUnauthorized
	}

	now := c.now()
	created, err := c.categoryRepository.Create(ctx, models.Category{
		Type:       dto.Type,
		Name:       dto.Name,
		Sort:       dto.Sort,
		Status:     models.StatusDisabled,
		CreateTime: now,
		UpdateTime: now,
		CreateUser: currentID,
		UpdateUser: currentID,
	})
	if err != nil {
		return fmt.Errorf("category creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Str("name", created.Name).Msg("category created")
	return nil
}

// Page lists categories filtered by name and type, ordered by sort.
func (c *categoryService) Page(ctx context.Context, query models.CategoryPageQueryDTO) (models.PageResult[models.Category], error) {
	page, err := c.categoryRepository.Page(ctx, query)
	if err != nil {
		return models.PageResult[models.Category]{}, fmt.Errorf("category page query failed: %w", err)
	}
	return page, nil
}

// StartOrStop enables (1) or disables (0) a category.
func (c *categoryService) StartOrStop(ctx context.Context, status int, id int64) error {
	if status != models.StatusEnabled && status != models.StatusDisabled {
		return failure.NewBusiness(MsgInvalidStatus)
	}

	currentID, ok := utils.CurrentEmployeeID(ctx)
	if !ok {
		return failure.ErrUnauthorized
	}

	err := c.categoryRepository.UpdateStatus(ctx, models.StatusChange{
		ID:         id,
		Status:     status,
		UpdateTime: c.now(),
		UpdateUser: currentID,
	})
	return categoryError(err)
}

// DeleteByID removes a category.
func (c *categoryService) DeleteByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return failure.NewBusiness(MsgInvalidID)
	}
	return categoryError(c.categoryRepository.DeleteByID(ctx, id))
}

// Update writes the editable fields of an existing category.
func (c *categoryService) Update(ctx context.Context, dto models.CategoryDTO) error {
	if dto.ID <= 0 {
		return failure.NewBusiness(MsgInvalidID)
	}

	currentID, ok := utils.CurrentEmployeeID(ctx)
	if !ok {
		return failure.ErrUnauthorized
	}

	err := c.categoryRepository.Update(ctx, models.Category{
		ID:         dto.ID,
		Type:       dto.Type,
		Name:       dto.Name,
		Sort:       dto.Sort,
		UpdateTime: c.now(),
		UpdateUser: currentID,
	})
	return categoryError(err)
}

func categoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoCategoryWasFound):
		return failure.WrapBusiness(MsgCategoryNotFound, err)
	default:
		return fmt.Errorf("category operation failed: %w", err)
	}
}
