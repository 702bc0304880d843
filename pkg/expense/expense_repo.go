package expense

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Store persists a new expense for the owner.
	Store(ctx context.Context, ownerId string, expense Expense) error
	// FindAll returns the owner's expenses ordered by date descending.
	// Ties are broken by creation time and id so the order is stable
	// across repeated calls without intervening writes.
	FindAll(ctx context.Context, ownerId string) ([]Expense, error)
	// Delete removes the owner's expense and reports whether it existed.
	Delete(ctx context.Context, ownerId string, id string) (bool, error)
}

type ExpenseRepoImpl struct {
	db *pgxpool.Pool
}

func NewExpenseRepo(db *pgxpool.Pool) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

func (r *ExpenseRepoImpl) Store(ctx context.Context, ownerId string, expense Expense) error {
	query := `INSERT INTO expenses (id, user_id, amount, category, description, date, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		expense.ID,
		ownerId,
		expense.Amount,
		string(expense.Category),
		expense.Description,
		expense.Date.Format("2006-01-02"),
		expense.CreatedAt,
	)
	if err != nil {
		log.Errorf("failed to store expense: %v", err)
		return err
	}
	return nil
}

func (r *ExpenseRepoImpl) FindAll(ctx context.Context, ownerId string) ([]Expense, error) {
	query := `SELECT id, amount, category, description, date, created_at
				FROM expenses WHERE user_id = $1
				ORDER BY date DESC, created_at DESC, id`
	rows, err := r.db.Query(ctx, query, ownerId)
	if err != nil {
		log.Errorf("failed to query expenses: %v", err)
		return nil, err
	}
	defer rows.Close()

	expenses := []Expense{}
	for rows.Next() {
		var expense Expense
		var amount decimal.Decimal
		var category string
		var date time.Time
		if err := rows.Scan(
			&expense.ID,
			&amount,
			&category,
			&expense.Description,
			&date,
			&expense.CreatedAt,
		); err != nil {
			log.Errorf("failed to scan expense: %v", err)
			return nil, err
		}
		expense.Amount = amount
		expense.Category = Category(category)
		expense.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		log.Errorf("error iterating over expenses: %v", err)
		return nil, err
	}
	return expenses, nil
}

func (r *ExpenseRepoImpl) Delete(ctx context.Context, ownerId string, id string) (bool, error) {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, ownerId)
	if err != nil {
		log.Errorf("failed to delete expense: %v", err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
