package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLength bounds the free-text description on a record.
const MaxDescriptionLength = 500

// Record represents a single monetary transaction.
// CategoryID is nullable: deleting a category clears the reference on its
// records instead of cascading the delete. CategoryName is resolved on read
// via a join and is nil whenever CategoryID is.
type Record struct {
	RecordID     string          `json:"recordID"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   *string         `json:"categoryID,omitempty"`
	CategoryName *string         `json:"categoryName,omitempty"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description,omitempty"`
	AuditFields
}

// TransactionType returns the income/expense classification of the record,
// derived purely from the amount sign. The category's own type flag is never
// consulted here; the two are not guaranteed to agree.
func (r Record) TransactionType() TransactionType {
	return ClassifyAmount(r.Amount)
}

// Validate checks domain invariants that binding cannot express.
func (r Record) Validate() error {
	if len(r.Description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds %d characters", MaxDescriptionLength)
	}
	return nil
}
