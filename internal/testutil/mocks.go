package testutil

import (
	"sort"

	"github.com/google/uuid"
	"github.com/soham0809/yardstick-backend/internal/domain"
)

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions map[uuid.UUID]*domain.Transaction
	GetAllErr    error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[uuid.UUID]*domain.Transaction),
	}
}

// Create stores a new transaction with a generated ID
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	stored := *transaction
	stored.ID = uuid.New()
	stored.Category = domain.CategoryOrOther(stored.Category)
	m.Transactions[stored.ID] = &stored
	return &stored, nil
}

// GetByID retrieves a transaction by ID
func (m *MockTransactionRepository) GetByID(id uuid.UUID) (*domain.Transaction, error) {
	if transaction, ok := m.Transactions[id]; ok {
		return transaction, nil
	}
	return nil, domain.ErrTransactionNotFound
}

// GetAll retrieves transactions within the filter window, newest first
func (m *MockTransactionRepository) GetAll(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}

	var result []*domain.Transaction
	for _, transaction := range m.Transactions {
		if filters != nil {
			if filters.StartDate != nil && transaction.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && transaction.Date.After(*filters.EndDate) {
				continue
			}
		}
		result = append(result, transaction)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// Update replaces a transaction's mutable fields
func (m *MockTransactionRepository) Update(id uuid.UUID, data *domain.UpdateTransactionData) (*domain.Transaction, error) {
	transaction, ok := m.Transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	transaction.Amount = data.Amount
	transaction.Description = data.Description
	transaction.Date = data.Date
	transaction.Category = domain.CategoryOrOther(data.Category)
	return transaction, nil
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	return nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	m.Transactions[transaction.ID] = transaction
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets map[uuid.UUID]*domain.Budget
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[uuid.UUID]*domain.Budget),
	}
}

// Upsert creates a budget or overwrites the amount of the existing one
// for the same (category, month, year)
func (m *MockBudgetRepository) Upsert(budget *domain.Budget) (*domain.Budget, error) {
	for _, existing := range m.Budgets {
		if existing.Category == budget.Category && existing.Month == budget.Month && existing.Year == budget.Year {
			existing.Amount = budget.Amount
			return existing, nil
		}
	}
	stored := *budget
	stored.ID = uuid.New()
	m.Budgets[stored.ID] = &stored
	return &stored, nil
}

// GetAll retrieves every budget
func (m *MockBudgetRepository) GetAll() ([]*domain.Budget, error) {
	var result []*domain.Budget
	for _, budget := range m.Budgets {
		result = append(result, budget)
	}
	sortBudgets(result)
	return result, nil
}

// GetByMonth retrieves all budgets for a specific month
func (m *MockBudgetRepository) GetByMonth(year, month int) ([]*domain.Budget, error) {
	var result []*domain.Budget
	for _, budget := range m.Budgets {
		if budget.Year == year && budget.Month == month {
			result = append(result, budget)
		}
	}
	sortBudgets(result)
	return result, nil
}

// Delete removes a budget
func (m *MockBudgetRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Budgets[id]; !ok {
		return domain.ErrBudgetNotFound
	}
	delete(m.Budgets, id)
	return nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	m.Budgets[budget.ID] = budget
}

func sortBudgets(budgets []*domain.Budget) {
	sort.Slice(budgets, func(i, j int) bool {
		if budgets[i].Year != budgets[j].Year {
			return budgets[i].Year < budgets[j].Year
		}
		if budgets[i].Month != budgets[j].Month {
			return budgets[i].Month < budgets[j].Month
		}
		return budgets[i].Category < budgets[j].Category
	})
}
