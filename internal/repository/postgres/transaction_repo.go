package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/soham0809/yardstick-backend/internal/domain"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = "id, amount, description, date, category, created_at, updated_at"

// Create inserts a new transaction and returns it with its generated ID
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var date pgtype.Date
	date.Time = transaction.Date
	date.Valid = true

	row := r.pool.QueryRow(ctx,
		`INSERT INTO transactions (amount, description, date, category)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+transactionColumns,
		amount, transaction.Description, date, string(transaction.Category),
	)
	return scanTransaction(row)
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(id uuid.UUID) (*domain.Transaction, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`,
		uuidToPgUUID(id),
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// GetAll retrieves transactions newest-first, optionally bounded to an
// inclusive date window
func (r *TransactionRepository) GetAll(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	ctx := context.Background()

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	args := []interface{}{}

	if filters != nil {
		if filters.StartDate != nil {
			args = append(args, pgtype.Date{Time: *filters.StartDate, Valid: true})
			query += fmt.Sprintf(" WHERE date >= $%d", len(args))
		}
		if filters.EndDate != nil {
			args = append(args, pgtype.Date{Time: *filters.EndDate, Valid: true})
			if len(args) == 1 {
				query += fmt.Sprintf(" WHERE date <= $%d", len(args))
			} else {
				query += fmt.Sprintf(" AND date <= $%d", len(args))
			}
		}
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Update replaces a transaction's mutable fields
func (r *TransactionRepository) Update(id uuid.UUID, data *domain.UpdateTransactionData) (*domain.Transaction, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(data.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var date pgtype.Date
	date.Time = data.Date
	date.Valid = true

	row := r.pool.QueryRow(ctx,
		`UPDATE transactions
		 SET amount = $2, description = $3, date = $4, category = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+transactionColumns,
		uuidToPgUUID(id), amount, data.Description, date, string(data.Category),
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, uuidToPgUUID(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// Helper functions

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		id        pgtype.UUID
		amount    pgtype.Numeric
		date      pgtype.Date
		category  string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	transaction := &domain.Transaction{}
	if err := row.Scan(&id, &amount, &transaction.Description, &date, &category, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	transaction.ID = uuid.UUID(id.Bytes)
	transaction.Amount = pgNumericToDecimal(amount)
	transaction.Date = date.Time
	transaction.Category = domain.Category(category)
	transaction.CreatedAt = createdAt.Time
	transaction.UpdatedAt = updatedAt.Time
	return transaction, nil
}

func uuidToPgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	if n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
