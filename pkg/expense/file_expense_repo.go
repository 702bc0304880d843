package expense

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Xrime/budget-buddy/internal/kvstore"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const expensesKey = "expenses"

// ownerNamespace scopes every key-value entry to a single owner.
func ownerNamespace(ownerId string) string {
	return "owner/" + ownerId
}

// expenseRecord is the serialized form of an Expense in the key-value store.
// Date and creation timestamp are ISO-8601 strings so records round-trip
// exactly; amounts are decimal strings for the same reason.
type expenseRecord struct {
	Id          string `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}

func toRecord(e Expense) expenseRecord {
	return expenseRecord{
		Id:          e.ID,
		Amount:      e.Amount.String(),
		Category:    string(e.Category),
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339Nano),
	}
}

func fromRecord(r expenseRecord) (Expense, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return Expense{}, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return Expense{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return Expense{}, fmt.Errorf("invalid created_at %q: %w", r.CreatedAt, err)
	}
	return Expense{
		ID:          r.Id,
		Amount:      amount,
		Category:    Category(r.Category),
		Description: r.Description,
		Date:        date,
		CreatedAt:   createdAt,
	}, nil
}

// FileExpenseRepo keeps each owner's expenses as one serialized sequence
// under the owner's namespace, mirroring the original local-storage layout.
type FileExpenseRepo struct {
	store *kvstore.Store
}

func NewFileExpenseRepo(store *kvstore.Store) *FileExpenseRepo {
	return &FileExpenseRepo{store: store}
}

func (r *FileExpenseRepo) readAll(ownerId string) ([]Expense, error) {
	data, found, err := r.store.Get(ownerNamespace(ownerId), expensesKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []Expense{}, nil
	}
	var records []expenseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to deserialize expenses: %w", err)
	}
	expenses := make([]Expense, 0, len(records))
	for _, record := range records {
		expense, err := fromRecord(record)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

func (r *FileExpenseRepo) writeAll(ownerId string, expenses []Expense) error {
	records := make([]expenseRecord, 0, len(expenses))
	for _, expense := range expenses {
		records = append(records, toRecord(expense))
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize expenses: %w", err)
	}
	// The whole collection is replaced in one write, so a failure leaves
	// the previously persisted sequence untouched.
	return r.store.Put(ownerNamespace(ownerId), expensesKey, data)
}

func (r *FileExpenseRepo) Store(ctx context.Context, ownerId string, expense Expense) error {
	expenses, err := r.readAll(ownerId)
	if err != nil {
		log.Errorf("failed to read expenses: %v", err)
		return err
	}
	expenses = append(expenses, expense)
	if err := r.writeAll(ownerId, expenses); err != nil {
		log.Errorf("failed to store expense: %v", err)
		return err
	}
	return nil
}

func (r *FileExpenseRepo) FindAll(ctx context.Context, ownerId string) ([]Expense, error) {
	expenses, err := r.readAll(ownerId)
	if err != nil {
		log.Errorf("failed to read expenses: %v", err)
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		if !expenses[i].CreatedAt.Equal(expenses[j].CreatedAt) {
			return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
		}
		return expenses[i].ID < expenses[j].ID
	})
	return expenses, nil
}

func (r *FileExpenseRepo) Delete(ctx context.Context, ownerId string, id string) (bool, error) {
	expenses, err := r.readAll(ownerId)
	if err != nil {
		log.Errorf("failed to read expenses: %v", err)
		return false, err
	}
	remaining := make([]Expense, 0, len(expenses))
	found := false
	for _, expense := range expenses {
		if expense.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, expense)
	}
	if !found {
		return false, nil
	}
	if err := r.writeAll(ownerId, remaining); err != nil {
		log.Errorf("failed to delete expense: %v", err)
		return false, err
	}
	return true, nil
}
