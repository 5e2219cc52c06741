package dto

import (
	"time"

	"github.com/kasicka/finance_tracker_app/internal/core/domain"
)

// CreateCategoryRequest defines the payload for creating a category.
// Type is a pointer so that 0 (expense) survives the required check.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  *int16 `json:"type" binding:"required,categorytype"`
}

// UpdateCategoryRequest defines the payload for partially updating a category.
// Only non-nil fields overwrite stored values.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
	Type  *int16  `json:"type" binding:"omitempty,categorytype"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	Icon       string    `json:"icon,omitempty"`
	Color      string    `json:"color,omitempty"`
	Type       int16     `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToCategoryResponse converts a domain.Category to a CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Icon:       c.Icon,
		Color:      c.Color,
		Type:       int16(c.Type),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.LastUpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain.Category to []CategoryResponse.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(&c)
	}
	return responses
}
