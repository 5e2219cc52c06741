package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kasicka/finance_tracker_app/internal/apperrors"
	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/kasicka/finance_tracker_app/internal/core/ports/repositories"
	"github.com/kasicka/finance_tracker_app/internal/models"
)

type PgxRecordRepository struct {
	BaseRepository
}

func newPgxRecordRepository(db *pgxpool.Pool) portsrepo.RecordRepositoryFacade {
	return &PgxRecordRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxRecordRepository implements portsrepo.RecordRepositoryFacade
var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

// Helper to convert domain.Record to models.Record
func toModelRecord(d domain.Record) models.Record {
	m := models.Record{
		RecordID:   d.RecordID,
		Amount:     d.Amount,
		CategoryID: d.CategoryID,
		Date:       d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if d.Description != "" {
		desc := d.Description
		m.Description = &desc
	}
	return m
}

// Helper to convert models.Record to domain.Record
func toDomainRecord(m models.Record) domain.Record {
	d := domain.Record{
		RecordID:     m.RecordID,
		Amount:       m.Amount,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		Date:         m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	return d
}

func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record domain.Record) error {
	modelRecord := toModelRecord(record)
	query := `
        INSERT INTO records (record_id, amount, category_id, date, description, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelRecord.RecordID,
		modelRecord.Amount,
		modelRecord.CategoryID,
		modelRecord.Date,
		modelRecord.Description,
		modelRecord.CreatedAt,
		modelRecord.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("category does not exist: %w", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (r *PgxRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error) {
	query := `
		SELECT r.record_id, r.amount, r.category_id, c.name, r.date, r.description, r.created_at, r.last_updated_at
		FROM records r
		LEFT JOIN categories c ON c.category_id = r.category_id
		WHERE r.record_id = $1;
	`
	var modelRecord models.Record
	err := r.Pool.QueryRow(ctx, query, recordID).Scan(
		&modelRecord.RecordID,
		&modelRecord.Amount,
		&modelRecord.CategoryID,
		&modelRecord.CategoryName,
		&modelRecord.Date,
		&modelRecord.Description,
		&modelRecord.CreatedAt,
		&modelRecord.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record by ID %s: %w", recordID, err)
	}

	domainRecord := toDomainRecord(modelRecord)
	return &domainRecord, nil
}

// ListRecords returns the records matching the optional inclusive date range,
// newest first, with the category name joined in where the reference is still
// intact. An inverted range matches nothing; that is left to the predicate
// rather than validated up front.
func (r *PgxRecordRepository) ListRecords(ctx context.Context, dateRange domain.DateRange) ([]domain.Record, error) {
	query := `
        SELECT r.record_id, r.amount, r.category_id, c.name, r.date, r.description, r.created_at, r.last_updated_at
        FROM records r
        LEFT JOIN categories c ON c.category_id = r.category_id
        WHERE ($1::timestamptz IS NULL OR r.date >= $1)
          AND ($2::timestamptz IS NULL OR r.date <= $2)
        ORDER BY r.date DESC;
    `
	rows, err := r.Pool.Query(ctx, query, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var modelRecord models.Record
		err := rows.Scan(
			&modelRecord.RecordID,
			&modelRecord.Amount,
			&modelRecord.CategoryID,
			&modelRecord.CategoryName,
			&modelRecord.Date,
			&modelRecord.Description,
			&modelRecord.CreatedAt,
			&modelRecord.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, toDomainRecord(modelRecord))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", rows.Err())
	}

	return records, nil
}

func (r *PgxRecordRepository) UpdateRecord(ctx context.Context, record domain.Record) error {
	modelRecord := toModelRecord(record)
	query := `
        UPDATE records
        SET amount = $1, category_id = $2, date = $3, description = $4, last_updated_at = $5
        WHERE record_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelRecord.Amount,
		modelRecord.CategoryID,
		modelRecord.Date,
		modelRecord.Description,
		modelRecord.LastUpdatedAt,
		modelRecord.RecordID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("category does not exist: %w", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to execute update record query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", modelRecord.RecordID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	query := `DELETE FROM records WHERE record_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", recordID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", recordID, apperrors.ErrNotFound)
	}
	return nil
}
