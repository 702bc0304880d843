package budget

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Find returns the owner's budget; the second return value reports
	// whether one has been set.
	Find(ctx context.Context, ownerId string) (Budget, bool, error)
	// Save upserts the owner's budget. The id and created timestamp of an
	// existing record are preserved; only the limit and updated timestamp
	// change.
	Save(ctx context.Context, ownerId string, budget Budget) error
}

type BudgetRepoImpl struct {
	db *pgxpool.Pool
}

func NewBudgetRepo(db *pgxpool.Pool) *BudgetRepoImpl {
	return &BudgetRepoImpl{db: db}
}

func (r *BudgetRepoImpl) Find(ctx context.Context, ownerId string) (Budget, bool, error) {
	query := `SELECT id, monthly_limit, created_at, updated_at FROM budgets WHERE user_id = $1`
	var budget Budget
	err := r.db.QueryRow(ctx, query, ownerId).Scan(
		&budget.ID,
		&budget.MonthlyLimit,
		&budget.CreatedAt,
		&budget.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Budget{}, false, nil
	} else if err != nil {
		log.Errorf("failed to get budget: %v", err)
		return Budget{}, false, err
	}
	return budget, true, nil
}

func (r *BudgetRepoImpl) Save(ctx context.Context, ownerId string, budget Budget) error {
	query := `INSERT INTO budgets (id, user_id, monthly_limit, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (user_id) DO UPDATE
				SET monthly_limit = EXCLUDED.monthly_limit, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query,
		budget.ID,
		ownerId,
		budget.MonthlyLimit,
		budget.CreatedAt,
		budget.UpdatedAt,
	)
	if err != nil {
		log.Errorf("failed to save budget: %v", err)
		return err
	}
	return nil
}
