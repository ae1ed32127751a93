package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a planned spending ceiling for one category in one month.
// At most one budget exists per (category, month, year); the store
// enforces this with a unique index and Upsert overwrites the amount.
type Budget struct {
	ID        uuid.UUID       `json:"id"`
	Category  Category        `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type BudgetRepository interface {
	Upsert(budget *Budget) (*Budget, error)
	GetAll() ([]*Budget, error)
	GetByMonth(year, month int) ([]*Budget, error)
	Delete(id uuid.UUID) error
}
