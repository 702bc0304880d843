package stats

import (
	"context"
	"time"

	"github.com/Xrime/budget-buddy/internal/utils"
	"github.com/Xrime/budget-buddy/pkg/budget"
	"github.com/Xrime/budget-buddy/pkg/expense"
)

type StatsService interface {
	// GetSummary computes the dashboard summary for the current owner:
	// period totals, category breakdown and budget status.
	GetSummary(ctx context.Context) (Summary, error)
	// GetWeeklyTrend computes the per-week spend for the month containing ref.
	GetWeeklyTrend(ctx context.Context, ref time.Time) ([]WeekBucket, error)
}

type StatsServiceImpl struct {
	expenseService expense.Service
	budgetService  budget.Service
	clock          utils.Clock
}

func NewStatsService(expenseService expense.Service, budgetService budget.Service, clock utils.Clock) *StatsServiceImpl {
	return &StatsServiceImpl{
		expenseService: expenseService,
		budgetService:  budgetService,
		clock:          clock,
	}
}

func (s *StatsServiceImpl) GetSummary(ctx context.Context) (Summary, error) {
	expenses, err := s.expenseService.ListExpenses(ctx)
	if err != nil {
		return Summary{}, err
	}
	currentBudget, err := s.budgetService.GetBudget(ctx)
	if err != nil {
		return Summary{}, err
	}

	now := s.clock.Now()
	summary := Summary{
		Periods:    CalculatePeriodTotals(expenses, now),
		Categories: CalculateCategoryBreakdown(expenses),
	}
	if currentBudget != nil {
		status := CalculateBudgetStatus(currentBudget.MonthlyLimit, summary.Periods.Month.Total)
		summary.Budget = &status
	}
	return summary, nil
}

func (s *StatsServiceImpl) GetWeeklyTrend(ctx context.Context, ref time.Time) ([]WeekBucket, error) {
	expenses, err := s.expenseService.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return CalculateWeeklyTrend(expenses, ref), nil
}
