package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kasicka/finance_tracker_app/internal/apperrors"
	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/kasicka/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/kasicka/finance_tracker_app/internal/core/ports/services"
	"github.com/kasicka/finance_tracker_app/internal/dto"
)

// categoryService implements the CategorySvcFacade interface.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

// Ensure categoryService implements the CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now().UTC()

	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Icon:       req.Icon,
		Color:      req.Color,
		Type:       domain.CategoryType(*req.Type),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save category", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.String("name", category.Name))
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// UpdateCategory applies a partial merge: only fields present in the request
// overwrite stored fields.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to load category for update", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to load category %s: %w", categoryID, err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Type != nil {
		category.Type = domain.CategoryType(*req.Type)
	}
	category.LastUpdatedAt = time.Now().UTC()

	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return category, nil
}

// DeleteCategory removes a category. Records referencing it are preserved with
// their category reference cleared; they drop out of category grouping in
// reports until reassigned.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}

// SeedDefaultCategories creates each built-in category unless a category of
// the same name already exists, so re-running on every startup never
// duplicates anything.
func (s *categoryService) SeedDefaultCategories(ctx context.Context) error {
	now := time.Now().UTC()
	created := 0

	for _, seed := range domain.DefaultCategories {
		_, err := s.categoryRepo.FindCategoryByName(ctx, seed.Name)
		if err == nil {
			continue // already present
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check for category %s: %w", seed.Name, err)
		}

		category := domain.Category{
			CategoryID: uuid.NewString(),
			Name:       seed.Name,
			Type:       seed.Type,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
			// A concurrent seeder may have won the race; that still satisfies
			// the goal of one category per name.
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("failed to seed category %s: %w", seed.Name, err)
		}
		created++
	}

	s.LogInfo(ctx, "Default categories seeded", slog.Int("created", created), slog.Int("total", len(domain.DefaultCategories)))
	return nil
}
