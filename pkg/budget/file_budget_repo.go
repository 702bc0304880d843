package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Xrime/budget-buddy/internal/kvstore"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const budgetKey = "budget"

// budgetRecord is the serialized form of a Budget in the key-value store.
// Timestamps are ISO-8601 strings and the limit a decimal string so records
// round-trip exactly.
type budgetRecord struct {
	Id           string `json:"id"`
	MonthlyLimit string `json:"monthly_limit"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// FileBudgetRepo keeps at most one serialized budget per owner namespace.
type FileBudgetRepo struct {
	store *kvstore.Store
}

func NewFileBudgetRepo(store *kvstore.Store) *FileBudgetRepo {
	return &FileBudgetRepo{store: store}
}

func (r *FileBudgetRepo) Find(ctx context.Context, ownerId string) (Budget, bool, error) {
	data, found, err := r.store.Get("owner/"+ownerId, budgetKey)
	if err != nil {
		log.Errorf("failed to read budget: %v", err)
		return Budget{}, false, err
	}
	if !found {
		return Budget{}, false, nil
	}
	var record budgetRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Errorf("failed to deserialize budget: %v", err)
		return Budget{}, false, err
	}
	limit, err := decimal.NewFromString(record.MonthlyLimit)
	if err != nil {
		return Budget{}, false, fmt.Errorf("invalid monthly limit %q: %w", record.MonthlyLimit, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
	if err != nil {
		return Budget{}, false, fmt.Errorf("invalid created_at %q: %w", record.CreatedAt, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, record.UpdatedAt)
	if err != nil {
		return Budget{}, false, fmt.Errorf("invalid updated_at %q: %w", record.UpdatedAt, err)
	}
	return Budget{
		ID:           record.Id,
		MonthlyLimit: limit,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, true, nil
}

func (r *FileBudgetRepo) Save(ctx context.Context, ownerId string, budget Budget) error {
	data, err := json.Marshal(budgetRecord{
		Id:           budget.ID,
		MonthlyLimit: budget.MonthlyLimit.String(),
		CreatedAt:    budget.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:    budget.UpdatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to serialize budget: %w", err)
	}
	if err := r.store.Put("owner/"+ownerId, budgetKey, data); err != nil {
		log.Errorf("failed to save budget: %v", err)
		return err
	}
	return nil
}
