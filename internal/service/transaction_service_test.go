package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soham0809/yardstick-backend/internal/domain"
	"github.com/soham0809/yardstick-backend/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	service := NewTransactionService(transactionRepo)

	transaction, err := service.Create(&TransactionInput{
		Amount:      decimal.NewFromInt(150),
		Description: "Groceries",
		Date:        date(2024, time.May, 10),
		Category:    domain.CategoryFood,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if transaction.ID == uuid.Nil {
		t.Error("expected a generated ID")
	}
	if transaction.Description != "Groceries" {
		t.Errorf("expected description 'Groceries', got %s", transaction.Description)
	}
}

func TestCreateTransaction_DefaultsCategoryToOther(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	service := NewTransactionService(transactionRepo)

	transaction, err := service.Create(&TransactionInput{
		Amount:      decimal.NewFromInt(10),
		Description: "Misc",
		Date:        date(2024, time.May, 10),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if transaction.Category != domain.CategoryOther {
		t.Errorf("expected category Other, got %s", transaction.Category)
	}
}

func TestCreateTransaction_Validation(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	service := NewTransactionService(transactionRepo)

	tests := []struct {
		name    string
		input   *TransactionInput
		wantErr error
	}{
		{
			name:    "missing description",
			input:   &TransactionInput{Amount: decimal.NewFromInt(10), Date: date(2024, time.May, 10)},
			wantErr: domain.ErrDescriptionRequired,
		},
		{
			name:    "whitespace description",
			input:   &TransactionInput{Amount: decimal.NewFromInt(10), Description: "   ", Date: date(2024, time.May, 10)},
			wantErr: domain.ErrDescriptionRequired,
		},
		{
			name:    "missing date",
			input:   &TransactionInput{Amount: decimal.NewFromInt(10), Description: "Misc"},
			wantErr: domain.ErrDateRequired,
		},
		{
			name:    "unknown category",
			input:   &TransactionInput{Amount: decimal.NewFromInt(10), Description: "Misc", Date: date(2024, time.May, 10), Category: "Bribes"},
			wantErr: domain.ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	service := NewTransactionService(transactionRepo)

	_, err := service.Update(uuid.New(), &TransactionInput{
		Amount:      decimal.NewFromInt(10),
		Description: "Misc",
		Date:        date(2024, time.May, 10),
	})
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	service := NewTransactionService(transactionRepo)

	err := service.Delete(uuid.New())
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestListTransactions_NewestFirst(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	service := NewTransactionService(transactionRepo)

	transactionRepo.AddTransaction(tx(10, date(2024, time.January, 1), domain.CategoryFood))
	transactionRepo.AddTransaction(tx(20, date(2024, time.March, 1), domain.CategoryFood))
	transactionRepo.AddTransaction(tx(30, date(2024, time.February, 1), domain.CategoryFood))

	transactions, err := service.List()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(transactions))
	}
	for i := 1; i < len(transactions); i++ {
		if transactions[i].Date.After(transactions[i-1].Date) {
			t.Errorf("expected newest-first ordering, got %v before %v",
				transactions[i-1].Date, transactions[i].Date)
		}
	}
}
