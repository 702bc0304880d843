package budget

import (
	"context"
)

type StubBudgetRepo struct {
	data map[string]Budget
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: map[string]Budget{}}
}

func (s *StubBudgetRepo) Find(ctx context.Context, ownerId string) (Budget, bool, error) {
	budget, ok := s.data[ownerId]
	return budget, ok, nil
}

func (s *StubBudgetRepo) Save(ctx context.Context, ownerId string, budget Budget) error {
	s.data[ownerId] = budget
	return nil
}

func (s *StubBudgetRepo) Cleanup() {
	s.data = map[string]Budget{}
}
