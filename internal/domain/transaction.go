package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Category    Category        `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TransactionFilters narrows transaction retrieval to a date window.
// Nil bounds are open ends; both bounds are inclusive.
type TransactionFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateTransactionData carries the mutable fields of a transaction.
type UpdateTransactionData struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    Category
}

type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	GetByID(id uuid.UUID) (*Transaction, error)
	GetAll(filters *TransactionFilters) ([]*Transaction, error)
	Update(id uuid.UUID, data *UpdateTransactionData) (*Transaction, error)
	Delete(id uuid.UUID) error
}
