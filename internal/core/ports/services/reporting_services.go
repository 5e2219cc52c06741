package services

import (
	"context"

	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade defines the aggregation operations over the record set.
// All four operations share the same inclusive date-range semantics; the
// scalar totals report zero (not absence) when nothing matches.
type ReportingSvcFacade interface {
	// CategorySummary groups the date-filtered records by transaction type
	// and category, with per-category count and amount sum. Types without
	// matching records are omitted from the result.
	CategorySummary(ctx context.Context, dateRange domain.DateRange) ([]domain.CategoryTypeGroup, error)

	// TotalIncome sums the amounts of date-filtered records classified as
	// income (amount >= 0).
	TotalIncome(ctx context.Context, dateRange domain.DateRange) (decimal.Decimal, error)

	// TotalExpense sums the amounts of date-filtered records classified as
	// expense (amount < 0).
	TotalExpense(ctx context.Context, dateRange domain.DateRange) (decimal.Decimal, error)

	// Balance sums the amounts of all date-filtered records regardless of
	// sign.
	Balance(ctx context.Context, dateRange domain.DateRange) (decimal.Decimal, error)
}
