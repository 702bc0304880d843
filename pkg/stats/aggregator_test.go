package stats

import (
	"testing"
	"time"

	"github.com/Xrime/budget-buddy/pkg/expense"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func expenseOn(date time.Time, category expense.Category, amount string) expense.Expense {
	return expense.Expense{
		ID:       "e-" + date.Format("2006-01-02") + "-" + string(category),
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func TestStartOfWeek_IsAlwaysMonday(t *testing.T) {
	// 2024-01-15 is a Monday
	monday := day(2024, time.January, 15)

	for offset := 0; offset < 7; offset++ {
		start := StartOfWeek(monday.AddDate(0, 0, offset))
		assert.Equal(t, monday, start, "day offset %d", offset)
		assert.Equal(t, time.Monday, start.Weekday())
	}
}

func TestCalculatePeriodTotals(t *testing.T) {
	// given Wednesday 2024-01-17; week is Jan 15-21, month is January
	now := time.Date(2024, time.January, 17, 14, 30, 0, 0, time.UTC)
	expenses := []expense.Expense{
		expenseOn(day(2024, time.January, 17), expense.CategoryFood, "12.50"),
		expenseOn(day(2024, time.January, 17), expense.CategoryTransport, "3.00"),
		expenseOn(day(2024, time.January, 15), expense.CategoryBills, "40.00"),
		expenseOn(day(2024, time.January, 2), expense.CategoryShopping, "100.00"),
		expenseOn(day(2023, time.December, 28), expense.CategoryFood, "9.99"),
		// dated after "now": not part of any running period
		expenseOn(day(2024, time.January, 20), expense.CategoryFood, "5.00"),
	}

	// when
	totals := CalculatePeriodTotals(expenses, now)

	// then
	assert.True(t, totals.Today.Total.Equal(decimal.RequireFromString("15.50")))
	assert.Equal(t, 2, totals.Today.Count)
	assert.True(t, totals.Week.Total.Equal(decimal.RequireFromString("55.50")))
	assert.Equal(t, 3, totals.Week.Count)
	assert.True(t, totals.Month.Total.Equal(decimal.RequireFromString("155.50")))
	assert.Equal(t, 4, totals.Month.Count)
}

func TestCalculatePeriodTotals_EmptyList(t *testing.T) {
	totals := CalculatePeriodTotals(nil, day(2024, time.March, 10))

	assert.True(t, totals.Today.Total.IsZero())
	assert.True(t, totals.Week.Total.IsZero())
	assert.True(t, totals.Month.Total.IsZero())
	assert.Equal(t, 0, totals.Month.Count)
}

func TestCalculateCategoryBreakdown(t *testing.T) {
	// given
	expenses := []expense.Expense{
		expenseOn(day(2024, time.January, 1), expense.CategoryFood, "30.00"),
		expenseOn(day(2024, time.January, 2), expense.CategoryFood, "45.00"),
		expenseOn(day(2024, time.January, 3), expense.CategoryTransport, "25.00"),
	}

	// when
	breakdown := CalculateCategoryBreakdown(expenses)

	// then sorted by total descending
	assert.Len(t, breakdown, 2)
	assert.Equal(t, expense.CategoryFood, breakdown[0].Category)
	assert.True(t, breakdown[0].Total.Equal(decimal.RequireFromString("75.00")))
	assert.InDelta(t, 75.0, breakdown[0].Percentage, 0.0001)
	assert.Equal(t, expense.CategoryTransport, breakdown[1].Category)
	assert.InDelta(t, 25.0, breakdown[1].Percentage, 0.0001)

	sum := 0.0
	for _, stat := range breakdown {
		sum += stat.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.0001)
}

func TestCalculateCategoryBreakdown_EmptyList(t *testing.T) {
	breakdown := CalculateCategoryBreakdown(nil)

	assert.Empty(t, breakdown)
}

func TestCalculateWeeklyTrend(t *testing.T) {
	// given January 2024: Jan 1 is a Monday, five weeks cover the month
	ref := day(2024, time.January, 10)
	expenses := []expense.Expense{
		expenseOn(day(2024, time.January, 1), expense.CategoryFood, "10.00"),
		expenseOn(day(2024, time.January, 7), expense.CategoryFood, "5.00"),
		expenseOn(day(2024, time.January, 8), expense.CategoryBills, "20.00"),
		expenseOn(day(2024, time.January, 31), expense.CategoryOther, "1.00"),
		// outside the month: ignored
		expenseOn(day(2024, time.February, 1), expense.CategoryFood, "99.00"),
	}

	// when
	trend := CalculateWeeklyTrend(expenses, ref)

	// then
	assert.Len(t, trend, 5)
	assert.Equal(t, day(2024, time.January, 1), trend[0].WeekStart)
	assert.Equal(t, "Jan 01", trend[0].Label)
	assert.True(t, trend[0].Total.Equal(decimal.RequireFromString("15.00")))
	assert.True(t, trend[1].Total.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, trend[2].Total.IsZero())
	assert.True(t, trend[3].Total.IsZero())
	// Jan 29 week contains Jan 31 and Feb 1; only the January expense was given
	assert.Equal(t, day(2024, time.January, 29), trend[4].WeekStart)
	assert.True(t, trend[4].Total.Equal(decimal.RequireFromString("1.00")))
}

func TestCalculateWeeklyTrend_FirstWeekStartsInPreviousMonth(t *testing.T) {
	// February 2024 starts on a Thursday; its first bucket is Monday Jan 29
	trend := CalculateWeeklyTrend(nil, day(2024, time.February, 15))

	assert.Equal(t, day(2024, time.January, 29), trend[0].WeekStart)
	assert.Equal(t, time.Monday, trend[0].WeekStart.Weekday())
}

func TestCalculateWeeklyTrend_EmptyMonthKeepsZeroBuckets(t *testing.T) {
	trend := CalculateWeeklyTrend(nil, day(2024, time.June, 1))

	assert.NotEmpty(t, trend)
	for _, bucket := range trend {
		assert.True(t, bucket.Total.IsZero())
		assert.Equal(t, time.Monday, bucket.WeekStart.Weekday())
	}
}

func TestCalculateBudgetStatus_Near(t *testing.T) {
	status := CalculateBudgetStatus(decimal.NewFromInt(100), decimal.NewFromInt(90))

	assert.Equal(t, BudgetStatusNear, status.Status)
	assert.InDelta(t, 90.0, status.PercentageUsed, 0.0001)
	assert.True(t, status.Remaining.Equal(decimal.NewFromInt(10)))
}

func TestCalculateBudgetStatus_Over(t *testing.T) {
	status := CalculateBudgetStatus(decimal.NewFromInt(100), decimal.NewFromInt(110))

	assert.Equal(t, BudgetStatusOver, status.Status)
	assert.True(t, status.Remaining.Equal(decimal.NewFromInt(-10)))
}

func TestCalculateBudgetStatus_Normal(t *testing.T) {
	status := CalculateBudgetStatus(decimal.NewFromInt(100), decimal.NewFromInt(50))

	assert.Equal(t, BudgetStatusNormal, status.Status)
	assert.InDelta(t, 50.0, status.PercentageUsed, 0.0001)
}

func TestCalculateBudgetStatus_ZeroLimitIsUnset(t *testing.T) {
	status := CalculateBudgetStatus(decimal.Zero, decimal.NewFromInt(42))

	assert.Equal(t, BudgetStatusUnset, status.Status)
	assert.Equal(t, 0.0, status.PercentageUsed)
}

func TestCalculateBudgetStatus_ExactlyAtThresholdIsNormal(t *testing.T) {
	status := CalculateBudgetStatus(decimal.NewFromInt(100), decimal.NewFromInt(80))

	assert.Equal(t, BudgetStatusNormal, status.Status)
}
