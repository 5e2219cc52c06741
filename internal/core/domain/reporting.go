package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionType is the income/expense classification of a record.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ClassifyAmount is the single source of truth for income/expense
// classification: a non-negative amount is income, a negative one is expense.
// Zero counts as income.
func ClassifyAmount(amount decimal.Decimal) TransactionType {
	if amount.Sign() < 0 {
		return TransactionTypeExpense
	}
	return TransactionTypeIncome
}

// CategoryAmount is one per-category tuple in a category summary report.
type CategoryAmount struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Count        int64           `json:"count"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// CategoryTypeGroup collects the per-category tuples observed for one
// transaction type. Types with no matching records are not represented.
type CategoryTypeGroup struct {
	Type       TransactionType  `json:"type"`
	Categories []CategoryAmount `json:"categories"`
}
