package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/soham0809/yardstick-backend/internal/domain"
	"github.com/soham0809/yardstick-backend/internal/util"
)

// ReportService builds the three analytics reports. The Build* functions
// are pure transforms over already-fetched records; the exported methods
// fetch the relevant window and delegate.
type ReportService struct {
	transactionRepo domain.TransactionRepository
	budgetRepo      domain.BudgetRepository
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository, budgetRepo domain.BudgetRepository) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

var oneHundred = decimal.NewFromInt(100)

// BuildMonthlySeries sums transaction amounts into twelve calendar-month
// buckets for the given year. Months are taken from the transaction date
// in UTC. The result always has exactly twelve entries in month order,
// zero-filled for months without transactions; records outside the year
// are ignored.
func BuildMonthlySeries(transactions []*domain.Transaction, year int) []domain.MonthlySeriesEntry {
	totals := make([]decimal.Decimal, 12)
	for i := range totals {
		totals[i] = decimal.Zero
	}

	for _, t := range transactions {
		date := t.Date.UTC()
		if date.Year() != year {
			continue
		}
		i := int(date.Month()) - 1
		totals[i] = totals[i].Add(t.Amount)
	}

	entries := make([]domain.MonthlySeriesEntry, 12)
	for i := range entries {
		entries[i] = domain.MonthlySeriesEntry{
			Month:     i + 1,
			MonthName: time.Month(i + 1).String(),
			Amount:    totals[i],
		}
	}
	return entries
}

// BuildCategoryDistribution groups transactions by category and computes
// each group's share of the grand total. Transactions without a category
// count as Other. Entries appear in first-seen order; an empty input
// yields an empty slice. A zero grand total yields 0% shares rather than
// a division by zero.
func BuildCategoryDistribution(transactions []*domain.Transaction) []domain.CategoryDistributionEntry {
	sums := make(map[domain.Category]decimal.Decimal)
	var order []domain.Category
	total := decimal.Zero

	for _, t := range transactions {
		category := domain.CategoryOrOther(t.Category)
		if _, seen := sums[category]; !seen {
			order = append(order, category)
		}
		sums[category] = sums[category].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	entries := make([]domain.CategoryDistributionEntry, 0, len(order))
	for _, category := range order {
		percentage := decimal.Zero
		if !total.IsZero() {
			percentage = sums[category].Div(total).Mul(oneHundred)
		}
		entries = append(entries, domain.CategoryDistributionEntry{
			Category:   category,
			Amount:     sums[category],
			Percentage: percentage,
		})
	}
	return entries
}

// BuildBudgetVsActual joins budgets and spending on category. The output
// category set is the union of both sides: a category present in only one
// source still appears, with the missing side defaulted to zero. Budgeted
// categories come first, then transaction-only categories in first-seen
// order. Remaining is budget minus actual.
func BuildBudgetVsActual(budgets []*domain.Budget, transactions []*domain.Transaction) []domain.BudgetVsActualEntry {
	budgeted := make(map[domain.Category]decimal.Decimal)
	spent := make(map[domain.Category]decimal.Decimal)
	seen := make(map[domain.Category]bool)
	var order []domain.Category

	// At most one budget exists per category in a given month
	for _, b := range budgets {
		budgeted[b.Category] = b.Amount
		if !seen[b.Category] {
			seen[b.Category] = true
			order = append(order, b.Category)
		}
	}

	for _, t := range transactions {
		category := domain.CategoryOrOther(t.Category)
		spent[category] = spent[category].Add(t.Amount)
		if !seen[category] {
			seen[category] = true
			order = append(order, category)
		}
	}

	entries := make([]domain.BudgetVsActualEntry, 0, len(order))
	for _, category := range order {
		budget := decimal.Zero
		if amount, ok := budgeted[category]; ok {
			budget = amount
		}
		actual := decimal.Zero
		if amount, ok := spent[category]; ok {
			actual = amount
		}
		entries = append(entries, domain.BudgetVsActualEntry{
			Category:  category,
			Budget:    budget,
			Actual:    actual,
			Remaining: budget.Sub(actual),
		})
	}
	return entries
}

// MonthlySeries fetches the year's transactions and builds the series
func (s *ReportService) MonthlySeries(year int) ([]domain.MonthlySeriesEntry, error) {
	start, end := util.YearRange(year)
	transactions, err := s.transactionRepo.GetAll(&domain.TransactionFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}
	return BuildMonthlySeries(transactions, year), nil
}

// CategoryDistribution fetches the requested window and builds the
// distribution. With month and year it covers one calendar month, with
// year alone the full year, and with neither the all-time ledger.
func (s *ReportService) CategoryDistribution(month, year *int) ([]domain.CategoryDistributionEntry, error) {
	var filters *domain.TransactionFilters
	switch {
	case month != nil && year != nil:
		start, end := util.MonthRange(*year, *month)
		filters = &domain.TransactionFilters{StartDate: &start, EndDate: &end}
	case year != nil:
		start, end := util.YearRange(*year)
		filters = &domain.TransactionFilters{StartDate: &start, EndDate: &end}
	}

	transactions, err := s.transactionRepo.GetAll(filters)
	if err != nil {
		return nil, err
	}
	return BuildCategoryDistribution(transactions), nil
}

// BudgetVsActual fetches the month's budgets and transactions and joins them
func (s *ReportService) BudgetVsActual(month, year int) ([]domain.BudgetVsActualEntry, error) {
	budgets, err := s.budgetRepo.GetByMonth(year, month)
	if err != nil {
		return nil, err
	}

	start, end := util.MonthRange(year, month)
	transactions, err := s.transactionRepo.GetAll(&domain.TransactionFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}
	return BuildBudgetVsActual(budgets, transactions), nil
}
