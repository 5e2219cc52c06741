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

// recordService implements the RecordSvcFacade interface.
type recordService struct {
	BaseService
	recordRepo   portsrepo.RecordRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewRecordService creates a new record service.
func NewRecordService(recordRepo portsrepo.RecordRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.RecordSvcFacade {
	return &recordService{
		recordRepo:   recordRepo,
		categoryRepo: categoryRepo,
	}
}

// Ensure recordService implements the RecordSvcFacade interface
var _ portssvc.RecordSvcFacade = (*recordService)(nil)

func (s *recordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.Record, error) {
	// The category reference must resolve at creation time. A missing
	// category is the caller's mistake, not a system fault.
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category %s does not exist: %w", req.CategoryID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}

	now := time.Now().UTC()

	// The record date defaults to creation time when omitted.
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	categoryID := req.CategoryID
	record := domain.Record{
		RecordID:    uuid.NewString(),
		Amount:      *req.Amount,
		CategoryID:  &categoryID,
		Date:        date,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save record", slog.String("record_id", record.RecordID))
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.LogInfo(ctx, "Record created", slog.String("record_id", record.RecordID))
	return &record, nil
}

func (s *recordService) ListRecords(ctx context.Context, dateRange domain.DateRange) ([]domain.Record, error) {
	records, err := s.recordRepo.ListRecords(ctx, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records")
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// UpdateRecord applies a partial merge: only fields present in the request
// overwrite stored fields, everything else is left untouched.
func (s *recordService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest) (*domain.Record, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to load record for update", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to load record %s: %w", recordID, err)
	}

	if req.Amount != nil {
		record.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("category %s does not exist: %w", *req.CategoryID, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to resolve category %s: %w", *req.CategoryID, err)
		}
		record.CategoryID = req.CategoryID
		record.CategoryName = nil // stale after reassignment; resolved on next read
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	record.LastUpdatedAt = time.Now().UTC()

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	if err := s.recordRepo.UpdateRecord(ctx, *record); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update record", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to update record %s: %w", recordID, err)
	}

	s.LogInfo(ctx, "Record updated", slog.String("record_id", recordID))
	return record, nil
}

func (s *recordService) DeleteRecord(ctx context.Context, recordID string) error {
	if err := s.recordRepo.DeleteRecord(ctx, recordID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete record", slog.String("record_id", recordID))
		return fmt.Errorf("failed to delete record %s: %w", recordID, err)
	}

	s.LogInfo(ctx, "Record deleted", slog.String("record_id", recordID))
	return nil
}
