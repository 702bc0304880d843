package budget

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNegativeLimit = errors.New("monthly limit must not be negative")

// Budget is the single monthly spending limit an owner can set.
// Setting a new limit updates the existing record in place (the id and
// creation timestamp are preserved).
type Budget struct {
	ID           string
	MonthlyLimit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
