package expense

import (
	"context"
	"fmt"
	"strings"

	"github.com/Xrime/budget-buddy/internal/utils"
	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// ListExpenses returns the current owner's expenses, newest date first.
	ListExpenses(ctx context.Context) ([]Expense, error)
	// AddExpense validates and persists a new expense for the current owner.
	AddExpense(ctx context.Context, input NewExpense) (Expense, error)
	// DeleteExpense removes the current owner's expense by id.
	// Returns ErrExpenseNotFound for a missing or foreign id.
	DeleteExpense(ctx context.Context, id string) error
}

type ExpenseServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewExpenseService(repo Repository, clock utils.Clock) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{repo: repo, clock: clock}
}

func (s *ExpenseServiceImpl) ListExpenses(ctx context.Context) ([]Expense, error) {
	ownerId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindAll(ctx, ownerId)
}

func (s *ExpenseServiceImpl) AddExpense(ctx context.Context, input NewExpense) (Expense, error) {
	ownerId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	// Validation happens before any persistence attempt.
	if err := input.Validate(); err != nil {
		return Expense{}, err
	}

	expense := Expense{
		ID:          uuid.NewString(),
		Amount:      input.Amount,
		Category:    NormalizeCategory(input.Category),
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Store(ctx, ownerId, expense); err != nil {
		return Expense{}, err
	}
	return expense, nil
}

func (s *ExpenseServiceImpl) DeleteExpense(ctx context.Context, id string) error {
	ownerId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, ownerId, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%s) or the user (%s) is not the owner", id, ownerId)
		return ErrExpenseNotFound
	}
	return nil
}
