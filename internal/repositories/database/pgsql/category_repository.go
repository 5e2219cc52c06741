package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kasicka/finance_tracker_app/internal/apperrors"
	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/kasicka/finance_tracker_app/internal/core/ports/repositories"
	"github.com/kasicka/finance_tracker_app/internal/middleware"
	"github.com/kasicka/finance_tracker_app/internal/models"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// Helper to convert domain.Category to models.Category
func toModelCategory(d domain.Category) models.Category {
	m := models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		Type:       int16(d.Type),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if d.Icon != "" {
		icon := d.Icon
		m.Icon = &icon
	}
	if d.Color != "" {
		color := d.Color
		m.Color = &color
	}
	return m
}

// Helper to convert models.Category to domain.Category
func toDomainCategory(m models.Category) domain.Category {
	d := domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Type:       domain.CategoryType(m.Type),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.Icon != nil {
		d.Icon = *m.Icon
	}
	if m.Color != nil {
		d.Color = *m.Color
	}
	return d
}

const categoryColumns = `category_id, name, icon, color, type, created_at, last_updated_at`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Icon,
		&m.Color,
		&m.Type,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCategory := toModelCategory(category)
	query := `
        INSERT INTO categories (category_id, name, icon, color, type, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelCategory.CategoryID,
		modelCategory.Name,
		modelCategory.Icon,
		modelCategory.Color,
		modelCategory.Type,
		modelCategory.CreatedAt,
		modelCategory.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on name
				return fmt.Errorf("category name %q: %w", category.Name, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to save category %s: %w", category.Name, err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	modelCategory, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	domainCategory := toDomainCategory(modelCategory)
	return &domainCategory, nil
}

func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1;`
	modelCategory, err := scanCategory(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by name %s: %w", name, err)
	}

	domainCategory := toDomainCategory(modelCategory)
	return &domainCategory, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		modelCategory, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(modelCategory))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCategory := toModelCategory(category)
	query := `
        UPDATE categories
        SET name = $1, icon = $2, color = $3, type = $4, last_updated_at = $5
        WHERE category_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCategory.Name,
		modelCategory.Icon,
		modelCategory.Color,
		modelCategory.Type,
		modelCategory.LastUpdatedAt,
		modelCategory.CategoryID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on name
				return fmt.Errorf("category name %q: %w", category.Name, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to execute update category query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", modelCategory.CategoryID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteCategory removes the category and clears the reference on any records
// still pointing at it, in one transaction. Records themselves are preserved.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback category delete", slog.String("error", rbErr.Error()))
		}
	}()

	clearQuery := `UPDATE records SET category_id = NULL, last_updated_at = now() WHERE category_id = $1;`
	if _, err := tx.Exec(ctx, clearQuery, categoryID); err != nil {
		return fmt.Errorf("failed to clear record references for category %s: %w", categoryID, err)
	}

	deleteQuery := `DELETE FROM categories WHERE category_id = $1;`
	cmdTag, err := tx.Exec(ctx, deleteQuery, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
