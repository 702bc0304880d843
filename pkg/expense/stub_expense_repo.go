package expense

import (
	"context"
	"sort"
)

type ownedExpense struct {
	ownerId string
	expense Expense
}

type StubExpenseRepo struct {
	data []ownedExpense
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{}
}

func (s *StubExpenseRepo) Store(ctx context.Context, ownerId string, expense Expense) error {
	s.data = append(s.data, ownedExpense{ownerId: ownerId, expense: expense})
	return nil
}

func (s *StubExpenseRepo) FindAll(ctx context.Context, ownerId string) ([]Expense, error) {
	expenses := []Expense{}
	for _, owned := range s.data {
		if owned.ownerId == ownerId {
			expenses = append(expenses, owned.expense)
		}
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

func (s *StubExpenseRepo) Delete(ctx context.Context, ownerId string, id string) (bool, error) {
	for i, owned := range s.data {
		if owned.ownerId == ownerId && owned.expense.ID == id {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.data = nil
}
