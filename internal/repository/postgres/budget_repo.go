package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/soham0809/yardstick-backend/internal/domain"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

const budgetColumns = "id, category, amount, month, year, created_at, updated_at"

// Upsert creates a budget or overwrites the amount of the existing one
// for the same (category, month, year). The conflict target is the unique
// index on that triple, so concurrent identical requests cannot duplicate.
func (r *BudgetRepository) Upsert(budget *domain.Budget) (*domain.Budget, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO budgets (category, amount, month, year)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (category, month, year)
		 DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()
		 RETURNING `+budgetColumns,
		string(budget.Category), amount, int32(budget.Month), int32(budget.Year),
	)
	return scanBudget(row)
}

// GetAll retrieves every budget
func (r *BudgetRepository) GetAll() ([]*domain.Budget, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx,
		`SELECT `+budgetColumns+` FROM budgets ORDER BY year, month, category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBudgets(rows)
}

// GetByMonth retrieves all budgets for a specific month
func (r *BudgetRepository) GetByMonth(year, month int) ([]*domain.Budget, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE year = $1 AND month = $2 ORDER BY category`,
		int32(year), int32(month),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBudgets(rows)
}

// Delete removes a budget
func (r *BudgetRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, uuidToPgUUID(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

// Helper functions

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var (
		id        pgtype.UUID
		category  string
		amount    pgtype.Numeric
		month     int32
		year      int32
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &category, &amount, &month, &year, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &domain.Budget{
		ID:        uuid.UUID(id.Bytes),
		Category:  domain.Category(category),
		Amount:    pgNumericToDecimal(amount),
		Month:     int(month),
		Year:      int(year),
		CreatedAt: createdAt.Time,
		UpdatedAt: updatedAt.Time,
	}, nil
}

func collectBudgets(rows pgx.Rows) ([]*domain.Budget, error) {
	var budgets []*domain.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return budgets, nil
}
