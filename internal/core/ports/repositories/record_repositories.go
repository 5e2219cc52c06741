package repositories

import (
	"context"

	"github.com/kasicka/finance_tracker_app/internal/core/domain"
)

// RecordReader defines read operations for record data.
type RecordReader interface {
	// FindRecordByID retrieves a single record by its identifier.
	FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error)

	// ListRecords retrieves all records matching the optional date range,
	// ordered by date descending, with category names resolved where the
	// reference is still intact.
	ListRecords(ctx context.Context, dateRange domain.DateRange) ([]domain.Record, error)
}

// RecordWriter defines write operations for record data.
type RecordWriter interface {
	// SaveRecord persists a new record.
	SaveRecord(ctx context.Context, record domain.Record) error

	// UpdateRecord overwrites the mutable fields of an existing record.
	UpdateRecord(ctx context.Context, record domain.Record) error

	// DeleteRecord removes a record by identifier.
	DeleteRecord(ctx context.Context, recordID string) error
}

// RecordRepositoryFacade combines all record-related repository interfaces.
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}
