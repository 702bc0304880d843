package stats

import (
	"sort"
	"time"

	"github.com/Xrime/budget-buddy/pkg/expense"
	"github.com/shopspring/decimal"
)

// All time bucketing in this package uses one convention: days run on the
// calendar date of the expense, weeks start on Monday, months on day 1.
// Every function is pure; "now" is always an explicit argument.

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	d := dateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func within(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}

// CalculatePeriodTotals sums expenses whose date falls within
// [start-of-day, now], [start-of-week, now] and [start-of-month, now].
func CalculatePeriodTotals(expenses []expense.Expense, now time.Time) PeriodTotals {
	today := dateOnly(now)
	weekStart := StartOfWeek(now)
	monthStart := StartOfMonth(now)

	var totals PeriodTotals
	for _, e := range expenses {
		date := dateOnly(e.Date)
		if within(date, today, today) {
			totals.Today.Total = totals.Today.Total.Add(e.Amount)
			totals.Today.Count++
		}
		if within(date, weekStart, today) {
			totals.Week.Total = totals.Week.Total.Add(e.Amount)
			totals.Week.Count++
		}
		if within(date, monthStart, today) {
			totals.Month.Total = totals.Month.Total.Add(e.Amount)
			totals.Month.Count++
		}
	}
	return totals
}

// CalculateCategoryBreakdown groups all expenses (not time-filtered) by
// category and computes each category's share of the grand total. An empty
// list yields an empty breakdown; a zero grand total yields zero percentages.
func CalculateCategoryBreakdown(expenses []expense.Expense) []CategoryStat {
	sums := map[expense.Category]decimal.Decimal{}
	for _, e := range expenses {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	grandTotal := decimal.Zero
	for _, total := range sums {
		grandTotal = grandTotal.Add(total)
	}

	breakdown := make([]CategoryStat, 0, len(sums))
	for category, total := range sums {
		stat := CategoryStat{Category: category, Total: total}
		if grandTotal.IsPositive() {
			stat.Percentage = total.Div(grandTotal).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		breakdown = append(breakdown, stat)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// CalculateWeeklyTrend partitions the month containing ref into week buckets.
// The first bucket is anchored to the Monday of the week containing day 1
// (which may fall in the previous month); buckets then step by 7 days while
// their start date is still within the month. Each bucket sums expenses
// dated within [start, start+6d] inclusive. Weeks with no expenses report a
// zero total, never absence.
func CalculateWeeklyTrend(expenses []expense.Expense, ref time.Time) []WeekBucket {
	monthStart := StartOfMonth(ref)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var buckets []WeekBucket
	for weekStart := StartOfWeek(monthStart); !weekStart.After(monthEnd); weekStart = weekStart.AddDate(0, 0, 7) {
		weekEnd := weekStart.AddDate(0, 0, 6)
		total := decimal.Zero
		for _, e := range expenses {
			if within(dateOnly(e.Date), weekStart, weekEnd) {
				total = total.Add(e.Amount)
			}
		}
		buckets = append(buckets, WeekBucket{
			WeekStart: weekStart,
			Label:     weekStart.Format("Jan 02"),
			Total:     total,
		})
	}
	return buckets
}

var nearLimitThreshold = decimal.NewFromFloat(0.8)

// CalculateBudgetStatus classifies the month's spend against the limit:
// over when remaining is negative, near when more than 80% of the limit is
// used, unset when the limit is zero (percentage used reads as 0), normal
// otherwise.
func CalculateBudgetStatus(limit, spent decimal.Decimal) BudgetStatus {
	status := BudgetStatus{
		Limit:     limit,
		Spent:     spent,
		Remaining: limit.Sub(spent),
	}

	if limit.IsZero() {
		status.Status = BudgetStatusUnset
		return status
	}

	ratio := spent.Div(limit)
	status.PercentageUsed = ratio.Mul(decimal.NewFromInt(100)).InexactFloat64()
	switch {
	case status.Remaining.IsNegative():
		status.Status = BudgetStatusOver
	case ratio.GreaterThan(nearLimitThreshold):
		status.Status = BudgetStatusNear
	default:
		status.Status = BudgetStatusNormal
	}
	return status
}
