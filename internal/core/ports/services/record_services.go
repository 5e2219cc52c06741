package services

import (
	"context"

	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	"github.com/kasicka/finance_tracker_app/internal/dto"
)

// RecordReaderSvc defines read operations for records.
type RecordReaderSvc interface {
	// ListRecords retrieves records matching the optional date range,
	// newest first.
	ListRecords(ctx context.Context, dateRange domain.DateRange) ([]domain.Record, error)
}

// RecordWriterSvc defines write operations for records.
type RecordWriterSvc interface {
	// CreateRecord persists a new record after validating its inputs.
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.Record, error)

	// UpdateRecord applies a partial update: only fields present in the
	// request overwrite stored fields.
	UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest) (*domain.Record, error)

	// DeleteRecord removes a record by identifier.
	DeleteRecord(ctx context.Context, recordID string) error
}

// RecordSvcFacade combines all record-related service interfaces.
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
}
