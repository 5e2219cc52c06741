package dto

import (
	"time"

	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest defines the payload for creating a record.
// Amount is a pointer so that a literal 0 (a valid income amount) survives the
// required check.
type CreateRecordRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	CategoryID  string           `json:"categoryId" binding:"required"`
	Date        *time.Time       `json:"date"`
	Description string           `json:"description" binding:"omitempty,max=500"`
}

// UpdateRecordRequest defines the payload for partially updating a record.
// Only non-nil fields overwrite stored values.
type UpdateRecordRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	CategoryID  *string          `json:"categoryId"`
	Date        *time.Time       `json:"date"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
}

// ListRecordsQuery carries the optional date-range filter for record listing.
// Dates are accepted as YYYY-MM-DD or RFC3339.
type ListRecordsQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// RecordResponse defines the data returned for a record.
type RecordResponse struct {
	RecordID     string          `json:"recordID"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   *string         `json:"categoryId"`
	CategoryName *string         `json:"categoryName,omitempty"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToRecordResponse converts a domain.Record to a RecordResponse DTO.
func ToRecordResponse(r *domain.Record) RecordResponse {
	return RecordResponse{
		RecordID:     r.RecordID,
		Amount:       r.Amount,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		Date:         r.Date,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.LastUpdatedAt,
	}
}

// ToRecordResponses converts a slice of domain.Record to []RecordResponse.
func ToRecordResponses(records []domain.Record) []RecordResponse {
	responses := make([]RecordResponse, len(records))
	for i, r := range records {
		responses[i] = ToRecordResponse(&r)
	}
	return responses
}
