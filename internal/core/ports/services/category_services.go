package services

import (
	"context"

	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	"github.com/kasicka/finance_tracker_app/internal/dto"
)

// CategoryReaderSvc defines read operations for categories.
type CategoryReaderSvc interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for categories.
type CategoryWriterSvc interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory applies a partial update to an existing category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category; records referencing it keep existing
	// with their category reference cleared.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategorySeederSvc creates the built-in default categories.
type CategorySeederSvc interface {
	// SeedDefaultCategories creates each default category unless one of the
	// same name already exists. Safe to run on every startup.
	SeedDefaultCategories(ctx context.Context) error
}

// CategorySvcFacade combines all category-related service interfaces.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
	CategorySeederSvc
}
