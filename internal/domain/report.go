package domain

import "github.com/shopspring/decimal"

// MonthlySeriesEntry is one month's spending total in a yearly series.
type MonthlySeriesEntry struct {
	Month     int             `json:"month"`
	MonthName string          `json:"monthName"`
	Amount    decimal.Decimal `json:"amount"`
}

// CategoryDistributionEntry is one category's share of total spending.
type CategoryDistributionEntry struct {
	Category   Category        `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// BudgetVsActualEntry compares planned and actual spending for a category.
// Remaining is Budget minus Actual and goes negative on overspend.
type BudgetVsActualEntry struct {
	Category  Category        `json:"category"`
	Budget    decimal.Decimal `json:"budget"`
	Actual    decimal.Decimal `json:"actual"`
	Remaining decimal.Decimal `json:"remaining"`
}
