package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record mirrors a row of the records table.
type Record struct {
	RecordID     string
	Amount       decimal.Decimal
	CategoryID   *string
	CategoryName *string // populated only by queries joining categories
	Date         time.Time
	Description  *string
	AuditFields
}
