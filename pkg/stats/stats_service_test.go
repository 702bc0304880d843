package stats

import (
	"context"
	"testing"
	"time"

	"github.com/Xrime/budget-buddy/internal/utils"
	"github.com/Xrime/budget-buddy/pkg/budget"
	"github.com/Xrime/budget-buddy/pkg/expense"
	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setup(expenses []expense.Expense, currentBudget *budget.Budget, now time.Time) (StatsService, context.Context) {
	service := NewStatsService(
		&stubExpenseService{expenses: expenses},
		&stubBudgetService{budget: currentBudget},
		&utils.MockClock{FixedNow: now},
	)
	ctx := user.WithUser(context.Background(), user.User{
		Id:          "owner-1",
		DisplayName: "Test User 1",
	})
	return service, ctx
}

func TestStatsServiceImpl_GetSummary(t *testing.T) {
	// given
	now := time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)
	expenses := []expense.Expense{
		expenseOn(day(2024, time.January, 17), expense.CategoryFood, "30.00"),
		expenseOn(day(2024, time.January, 5), expense.CategoryBills, "60.00"),
	}
	monthlyBudget := &budget.Budget{
		ID:           "budget-1",
		MonthlyLimit: decimal.NewFromInt(100),
	}
	service, ctx := setup(expenses, monthlyBudget, now)

	// when
	summary, err := service.GetSummary(ctx)

	// then
	assert.NoError(t, err)
	assert.True(t, summary.Periods.Today.Total.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, summary.Periods.Month.Total.Equal(decimal.RequireFromString("90.00")))
	assert.Len(t, summary.Categories, 2)

	assert.NotNil(t, summary.Budget)
	assert.Equal(t, BudgetStatusNear, summary.Budget.Status)
	assert.InDelta(t, 90.0, summary.Budget.PercentageUsed, 0.0001)
}

func TestStatsServiceImpl_GetSummary_WithoutBudget(t *testing.T) {
	// given
	now := time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)
	service, ctx := setup(nil, nil, now)

	// when
	summary, err := service.GetSummary(ctx)

	// then
	assert.NoError(t, err)
	assert.Nil(t, summary.Budget)
	assert.Empty(t, summary.Categories)
}

func TestStatsServiceImpl_GetSummary_RequiresUser(t *testing.T) {
	service, _ := setup(nil, nil, time.Now())

	_, err := service.GetSummary(context.Background())

	assert.ErrorIs(t, err, user.ErrNoUser)
}

func TestStatsServiceImpl_GetWeeklyTrend(t *testing.T) {
	// given
	now := time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)
	expenses := []expense.Expense{
		expenseOn(day(2024, time.January, 2), expense.CategoryFood, "10.00"),
	}
	service, ctx := setup(expenses, nil, now)

	// when
	trend, err := service.GetWeeklyTrend(ctx, now)

	// then
	assert.NoError(t, err)
	assert.Len(t, trend, 5)
	assert.True(t, trend[0].Total.Equal(decimal.RequireFromString("10.00")))
}
