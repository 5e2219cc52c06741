package domain

import "fmt"

// CategoryType is the income/expense flag stored on a category.
// It is display metadata only: report classification always derives from the
// record amount sign, not from this flag.
type CategoryType int16

const (
	CategoryTypeExpense CategoryType = 0
	CategoryTypeIncome  CategoryType = 1
)

// Valid reports whether the type is one of the two permitted values.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// Category is a named classification for records, with optional display
// metadata. Name is unique across all categories.
type Category struct {
	CategoryID string       `json:"categoryID"`
	Name       string       `json:"name"`
	Icon       string       `json:"icon,omitempty"`
	Color      string       `json:"color,omitempty"`
	Type       CategoryType `json:"type"`
	AuditFields
}

// Validate checks domain invariants on a category.
func (c Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if !c.Type.Valid() {
		return fmt.Errorf("category type must be 0 (expense) or 1 (income), got %d", c.Type)
	}
	return nil
}

// CategorySeed is a name/type pair used for startup seeding.
type CategorySeed struct {
	Name string
	Type CategoryType
}

// DefaultCategories is the built-in category set created at startup when
// missing. The names come from the fixed tag list the app originally shipped
// with; "ostatni" ("other") is the catch-all.
var DefaultCategories = []CategorySeed{
	{Name: "vzp", Type: CategoryTypeIncome},
	{Name: "plat", Type: CategoryTypeIncome},
	{Name: "investice", Type: CategoryTypeIncome},
	{Name: "polovicni_uvazek", Type: CategoryTypeIncome},
	{Name: "bonus", Type: CategoryTypeIncome},

	{Name: "nakupovani", Type: CategoryTypeExpense},
	{Name: "jidlo", Type: CategoryTypeExpense},
	{Name: "telefon", Type: CategoryTypeExpense},
	{Name: "zabava", Type: CategoryTypeExpense},
	{Name: "vzdelani", Type: CategoryTypeExpense},
	{Name: "krasa", Type: CategoryTypeExpense},
	{Name: "sport", Type: CategoryTypeExpense},
	{Name: "socialni", Type: CategoryTypeExpense},
	{Name: "doprava", Type: CategoryTypeExpense},
	{Name: "obleceni", Type: CategoryTypeExpense},
	{Name: "auto", Type: CategoryTypeExpense},
	{Name: "alkohol", Type: CategoryTypeExpense},
	{Name: "cigarety", Type: CategoryTypeExpense},
	{Name: "elektronika", Type: CategoryTypeExpense},
	{Name: "cestovani", Type: CategoryTypeExpense},
	{Name: "zdravi", Type: CategoryTypeExpense},
	{Name: "domaci_mazlicek", Type: CategoryTypeExpense},
	{Name: "opravy", Type: CategoryTypeExpense},
	{Name: "bydleni", Type: CategoryTypeExpense},
	{Name: "domov", Type: CategoryTypeExpense},
	{Name: "darky", Type: CategoryTypeExpense},
	{Name: "dary", Type: CategoryTypeExpense},
	{Name: "loterie", Type: CategoryTypeExpense},
	{Name: "svaciny", Type: CategoryTypeExpense},
	{Name: "deti", Type: CategoryTypeExpense},
	{Name: "zelenina", Type: CategoryTypeExpense},
	{Name: "ovoce", Type: CategoryTypeExpense},

	{Name: "ostatni", Type: CategoryTypeExpense},
}
