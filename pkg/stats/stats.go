package stats

import (
	"time"

	"github.com/Xrime/budget-buddy/pkg/expense"
	"github.com/shopspring/decimal"
)

// PeriodStat is the spend within one time bucket.
type PeriodStat struct {
	Total decimal.Decimal
	Count int
}

// PeriodTotals covers the three rolling dashboard buckets, each spanning
// [start of period, now].
type PeriodTotals struct {
	Today PeriodStat
	Week  PeriodStat
	Month PeriodStat
}

// CategoryStat is one slice of the category breakdown. Percentage is the
// category's share of the grand total across all categories.
type CategoryStat struct {
	Category   expense.Category
	Total      decimal.Decimal
	Percentage float64
}

// WeekBucket is one bar of the weekly trend chart. WeekStart is the Monday
// the bucket is anchored to; the bucket spans [WeekStart, WeekStart+6d].
type WeekBucket struct {
	WeekStart time.Time
	Label     string
	Total     decimal.Decimal
}

type BudgetStatusKind string

const (
	BudgetStatusNormal BudgetStatusKind = "normal"
	BudgetStatusNear   BudgetStatusKind = "near"
	BudgetStatusOver   BudgetStatusKind = "over"
	// BudgetStatusUnset is reported when the configured limit is zero, so
	// percentage-used has no meaning.
	BudgetStatusUnset BudgetStatusKind = "unset"
)

// BudgetStatus compares the monthly limit against the current month's spend.
type BudgetStatus struct {
	Limit          decimal.Decimal
	Spent          decimal.Decimal
	Remaining      decimal.Decimal
	PercentageUsed float64
	Status         BudgetStatusKind
}

// Summary is the full dashboard payload for one owner.
type Summary struct {
	Periods    PeriodTotals
	Categories []CategoryStat
	// Budget is nil when the owner has not set a budget yet.
	Budget *BudgetStatus
}
