package stats

import (
	"context"

	"github.com/Xrime/budget-buddy/pkg/budget"
	"github.com/Xrime/budget-buddy/pkg/expense"
	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/shopspring/decimal"
)

type stubExpenseService struct {
	expenses []expense.Expense
}

func (s *stubExpenseService) ListExpenses(ctx context.Context) ([]expense.Expense, error) {
	if _, err := user.CurrentId(ctx); err != nil {
		return nil, err
	}
	return s.expenses, nil
}

func (s *stubExpenseService) AddExpense(_ context.Context, _ expense.NewExpense) (expense.Expense, error) {
	panic("not supported")
}

func (s *stubExpenseService) DeleteExpense(_ context.Context, _ string) error {
	panic("not supported")
}

type stubBudgetService struct {
	budget *budget.Budget
}

func (s *stubBudgetService) GetBudget(ctx context.Context) (*budget.Budget, error) {
	if _, err := user.CurrentId(ctx); err != nil {
		return nil, err
	}
	return s.budget, nil
}

func (s *stubBudgetService) SetBudget(_ context.Context, _ decimal.Decimal) (budget.Budget, error) {
	panic("not supported")
}
