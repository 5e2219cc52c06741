package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/kasicka/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/kasicka/finance_tracker_app/internal/core/ports/services"
)

// reportingService implements the ReportingSvcFacade interface. It is an
// explicit reduction over the date-filtered record sequence: classify each
// record by amount sign, fold into a (type, category) keyed accumulator, then
// re-key by type alone. Classification never consults the category's own type
// flag, so a record filed under an income category with a negative amount
// still counts as expense.
type reportingService struct {
	BaseService
	recordRepo portsrepo.RecordReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(recordRepo portsrepo.RecordReader) portssvc.ReportingSvcFacade {
	return &reportingService{recordRepo: recordRepo}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

type groupKey struct {
	txnType    domain.TransactionType
	categoryID string
}

// CategorySummary produces, for each transaction type observed in the
// date-filtered record set, the list of categories with per-category count and
// amount sum. Records whose category reference no longer resolves are skipped:
// they have no category identity to group under. A type with no matching
// records is omitted entirely rather than emitted as an empty group.
func (s *reportingService) CategorySummary(ctx context.Context, dateRange domain.DateRange) ([]domain.CategoryTypeGroup, error) {
	records, err := s.recordRepo.ListRecords(ctx, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve records for category summary")
		return nil, fmt.Errorf("failed to retrieve records for category summary: %w", err)
	}

	totals := make(map[groupKey]*domain.CategoryAmount)
	keyOrder := make([]groupKey, 0, len(records))
	skipped := 0

	for _, record := range records {
		if record.CategoryID == nil {
			skipped++
			continue
		}

		key := groupKey{
			txnType:    record.TransactionType(),
			categoryID: *record.CategoryID,
		}
		entry, ok := totals[key]
		if !ok {
			entry = &domain.CategoryAmount{
				CategoryID:  key.categoryID,
				TotalAmount: decimal.Zero,
			}
			if record.CategoryName != nil {
				entry.CategoryName = *record.CategoryName
			}
			totals[key] = entry
			keyOrder = append(keyOrder, key)
		}
		entry.Count++
		entry.TotalAmount = entry.TotalAmount.Add(record.Amount)
	}

	// Re-group by type alone, preserving first-seen category order within
	// each type.
	byType := make(map[domain.TransactionType][]domain.CategoryAmount)
	typeOrder := make([]domain.TransactionType, 0, 2)
	for _, key := range keyOrder {
		if _, ok := byType[key.txnType]; !ok {
			typeOrder = append(typeOrder, key.txnType)
		}
		byType[key.txnType] = append(byType[key.txnType], *totals[key])
	}

	groups := make([]domain.CategoryTypeGroup, 0, len(typeOrder))
	for _, txnType := range typeOrder {
		groups = append(groups, domain.CategoryTypeGroup{
			Type:       txnType,
			Categories: byType[txnType],
		})
	}

	s.LogInfo(ctx, "Category summary generated",
		slog.Int("record_count", len(records)),
		slog.Int("group_count", len(groups)),
		slog.Int("skipped_unresolved", skipped))
	return groups, nil
}

// TotalIncome sums the amounts of records classified as income within the
// date range. Zero matches yield a zero total, not an absent one.
func (s *reportingService) TotalIncome(ctx context.Context, dateRange domain.DateRange) (decimal.Decimal, error) {
	return s.sumAmounts(ctx, dateRange, func(t domain.TransactionType) bool {
		return t == domain.TransactionTypeIncome
	})
}

// TotalExpense sums the amounts of records classified as expense within the
// date range. The result is negative or zero.
func (s *reportingService) TotalExpense(ctx context.Context, dateRange domain.DateRange) (decimal.Decimal, error) {
	return s.sumAmounts(ctx, dateRange, func(t domain.TransactionType) bool {
		return t == domain.TransactionTypeExpense
	})
}

// Balance sums the amounts of all records within the date range regardless of
// sign.
func (s *reportingService) Balance(ctx context.Context, dateRange domain.DateRange) (decimal.Decimal, error) {
	return s.sumAmounts(ctx, dateRange, func(domain.TransactionType) bool {
		return true
	})
}

func (s *reportingService) sumAmounts(ctx context.Context, dateRange domain.DateRange, include func(domain.TransactionType) bool) (decimal.Decimal, error) {
	records, err := s.recordRepo.ListRecords(ctx, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve records for total")
		return decimal.Zero, fmt.Errorf("failed to retrieve records for total: %w", err)
	}

	total := decimal.Zero
	for _, record := range records {
		if include(record.TransactionType()) {
			total = total.Add(record.Amount)
		}
	}
	return total, nil
}
