package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DateRange is an inclusive, optionally one- or two-sided predicate on record
// timestamps. A nil endpoint means "unbounded on that side"; both nil matches
// everything. No ordering of Start/End is enforced, an inverted range simply
// matches nothing.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether the range carries no constraint at all.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}
