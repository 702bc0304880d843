package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryHealthcare    Category = "Healthcare"
	CategoryOther         Category = "Other"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBills,
		CategoryHealthcare,
		CategoryOther,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryEntertainment,
		CategoryShopping, CategoryBills, CategoryHealthcare, CategoryOther:
		return true
	default:
		return false
	}
}

// categoryKeywords maps best-effort guesses (voice transcripts, imports) onto
// the fixed set. The guess is never authoritative: anything not matched here
// or in the set itself becomes Other.
var categoryKeywords = map[string]Category{
	"lunch":         CategoryFood,
	"dinner":        CategoryFood,
	"breakfast":     CategoryFood,
	"food":          CategoryFood,
	"uber":          CategoryTransport,
	"taxi":          CategoryTransport,
	"bus":           CategoryTransport,
	"transport":     CategoryTransport,
	"movie":         CategoryEntertainment,
	"entertainment": CategoryEntertainment,
	"clothes":       CategoryShopping,
	"shopping":      CategoryShopping,
	"electricity":   CategoryBills,
	"water":         CategoryBills,
	"bills":         CategoryBills,
	"hospital":      CategoryHealthcare,
	"medicine":      CategoryHealthcare,
	"healthcare":    CategoryHealthcare,
}

// NormalizeCategory validates a raw category string against the fixed set.
// Exact members pass through; known keywords map to their category;
// everything else is Other.
func NormalizeCategory(raw string) Category {
	trimmed := strings.TrimSpace(raw)
	for _, c := range Categories() {
		if strings.EqualFold(trimmed, string(c)) {
			return c
		}
	}
	if c, ok := categoryKeywords[strings.ToLower(trimmed)]; ok {
		return c
	}
	return CategoryOther
}

var (
	ErrInvalidAmount   = errors.New("expense amount must be positive")
	ErrInvalidDate     = errors.New("expense date is required")
	ErrExpenseNotFound = errors.New("expense not found")
)

// Expense is a single spending record. Immutable once created; the only
// mutation in scope is deletion by the owner.
type Expense struct {
	ID       string
	Amount   decimal.Decimal
	Category Category
	// Description is free text entered by the owner.
	Description string
	// Date is the economic date of the expense, distinct from CreatedAt.
	Date      time.Time
	CreatedAt time.Time
}

// NewExpense is the caller-supplied part of an expense; id and creation
// timestamp are assigned by the service.
type NewExpense struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

func (n NewExpense) Validate() error {
	if !n.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if n.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}
