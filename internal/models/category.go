package models

// Category mirrors a row of the categories table.
type Category struct {
	CategoryID string
	Name       string
	Icon       *string
	Color      *string
	Type       int16
	AuditFields
}
