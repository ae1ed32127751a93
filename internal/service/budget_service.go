package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soham0809/yardstick-backend/internal/domain"
)

// BudgetService handles budget business logic
type BudgetService struct {
	budgetRepo domain.BudgetRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

// BudgetInput carries the fields for setting a budget
type BudgetInput struct {
	Category domain.Category
	Amount   decimal.Decimal
	Month    int
	Year     int
}

// Set creates or overwrites the budget for (category, month, year).
// Years outside 1900-2100 are rejected to catch typos like a dropped digit.
func (s *BudgetService) Set(input *BudgetInput) (*domain.Budget, error) {
	if !input.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	if input.Month < 1 || input.Month > 12 {
		return nil, domain.ErrInvalidMonth
	}
	if input.Year < 1900 || input.Year > 2100 {
		return nil, domain.ErrInvalidYear
	}

	return s.budgetRepo.Upsert(&domain.Budget{
		Category: input.Category,
		Amount:   input.Amount,
		Month:    input.Month,
		Year:     input.Year,
	})
}

// List returns budgets, optionally filtered to one month. Both month and
// year must be supplied for the filter to apply.
func (s *BudgetService) List(month, year *int) ([]*domain.Budget, error) {
	if month != nil && year != nil {
		return s.budgetRepo.GetByMonth(*year, *month)
	}
	return s.budgetRepo.GetAll()
}

// Delete removes a budget by ID
func (s *BudgetService) Delete(id uuid.UUID) error {
	return s.budgetRepo.Delete(id)
}
