package budget

import (
	"context"
	"fmt"

	"github.com/Xrime/budget-buddy/internal/utils"
	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	// GetBudget returns the current owner's budget, or nil when none is set.
	GetBudget(ctx context.Context) (*Budget, error)
	// SetBudget upserts the current owner's monthly limit.
	SetBudget(ctx context.Context, monthlyLimit decimal.Decimal) (Budget, error)
}

type BudgetServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewBudgetService(repo Repository, clock utils.Clock) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo, clock: clock}
}

func (s *BudgetServiceImpl) GetBudget(ctx context.Context) (*Budget, error) {
	ownerId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	budget, found, err := s.repo.Find(ctx, ownerId)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &budget, nil
}

func (s *BudgetServiceImpl) SetBudget(ctx context.Context, monthlyLimit decimal.Decimal) (Budget, error) {
	ownerId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if monthlyLimit.IsNegative() {
		return Budget{}, ErrNegativeLimit
	}

	now := s.clock.Now()
	existing, found, err := s.repo.Find(ctx, ownerId)
	if err != nil {
		return Budget{}, err
	}

	budget := Budget{
		ID:           uuid.NewString(),
		MonthlyLimit: monthlyLimit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if found {
		// Upsert keeps the identity and creation timestamp of the record.
		budget.ID = existing.ID
		budget.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, ownerId, budget); err != nil {
		return Budget{}, err
	}
	return budget, nil
}
