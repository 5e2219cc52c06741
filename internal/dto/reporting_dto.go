package dto

import (
	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryAmountResponse is one per-category tuple in the category summary.
type CategoryAmountResponse struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Count        int64           `json:"count"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// CategoryTypeGroupResponse is one per-type group in the category summary.
type CategoryTypeGroupResponse struct {
	Type       string                   `json:"type"`
	Categories []CategoryAmountResponse `json:"categories"`
}

// TotalIncomeResponse carries the income total. The snake_case key is part of
// the stable wire contract.
type TotalIncomeResponse struct {
	TotalIncome decimal.Decimal `json:"total_income"`
}

// TotalExpenseResponse carries the expense total.
type TotalExpenseResponse struct {
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// TotalBalanceResponse carries the net balance.
type TotalBalanceResponse struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// ToCategorySummaryResponse converts the domain report groups to DTOs.
func ToCategorySummaryResponse(groups []domain.CategoryTypeGroup) []CategoryTypeGroupResponse {
	responses := make([]CategoryTypeGroupResponse, len(groups))
	for i, g := range groups {
		categories := make([]CategoryAmountResponse, len(g.Categories))
		for j, c := range g.Categories {
			categories[j] = CategoryAmountResponse{
				CategoryID:   c.CategoryID,
				CategoryName: c.CategoryName,
				Count:        c.Count,
				TotalAmount:  c.TotalAmount,
			}
		}
		responses[i] = CategoryTypeGroupResponse{
			Type:       string(g.Type),
			Categories: categories,
		}
	}
	return responses
}
