package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soham0809/yardstick-backend/internal/domain"
)

// TransactionService handles transaction business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// TransactionInput carries the validated fields for create and update
type TransactionInput struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    domain.Category
}

func (s *TransactionService) validate(input *TransactionInput) (*TransactionInput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if input.Date.IsZero() {
		return nil, domain.ErrDateRequired
	}
	category := domain.CategoryOrOther(input.Category)
	if !category.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	return &TransactionInput{
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
		Category:    category,
	}, nil
}

// Create validates and stores a new transaction
func (s *TransactionService) Create(input *TransactionInput) (*domain.Transaction, error) {
	validated, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	return s.transactionRepo.Create(&domain.Transaction{
		Amount:      validated.Amount,
		Description: validated.Description,
		Date:        validated.Date,
		Category:    validated.Category,
	})
}

// List returns all transactions, newest first
func (s *TransactionService) List() ([]*domain.Transaction, error) {
	return s.transactionRepo.GetAll(nil)
}

// Get retrieves a single transaction by ID
func (s *TransactionService) Get(id uuid.UUID) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// Update validates and replaces a transaction's fields
func (s *TransactionService) Update(id uuid.UUID, input *TransactionInput) (*domain.Transaction, error) {
	validated, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	return s.transactionRepo.Update(id, &domain.UpdateTransactionData{
		Amount:      validated.Amount,
		Description: validated.Description,
		Date:        validated.Date,
		Category:    validated.Category,
	})
}

// Delete removes a transaction by ID
func (s *TransactionService) Delete(id uuid.UUID) error {
	return s.transactionRepo.Delete(id)
}
