package budget

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Xrime/budget-buddy/internal/kvstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileRepo(t *testing.T) (context.Context, *FileBudgetRepo) {
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return context.Background(), NewFileBudgetRepo(store)
}

func TestFileBudgetRepo_RoundTrip(t *testing.T) {
	ctx, repo := setupFileRepo(t)

	// given
	original := Budget{
		ID:           "budget-1",
		MonthlyLimit: decimal.RequireFromString("500.00"),
		CreatedAt:    time.Date(2024, time.January, 17, 12, 0, 0, 123456789, time.UTC),
		UpdatedAt:    time.Date(2024, time.January, 19, 8, 30, 0, 0, time.UTC),
	}

	// when
	err := repo.Save(ctx, "owner-1", original)
	assert.NoError(t, err)

	// then every field survives serialization exactly
	found, ok, err := repo.Find(ctx, "owner-1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, original.ID, found.ID)
	assert.True(t, found.MonthlyLimit.Equal(original.MonthlyLimit))
	assert.True(t, found.CreatedAt.Equal(original.CreatedAt))
	assert.True(t, found.UpdatedAt.Equal(original.UpdatedAt))
}

func TestFileBudgetRepo_Find_NotSet(t *testing.T) {
	ctx, repo := setupFileRepo(t)

	_, found, err := repo.Find(ctx, "owner-1")

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestFileBudgetRepo_Save_ReplacesExistingRecord(t *testing.T) {
	ctx, repo := setupFileRepo(t)

	now := time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)
	budget := Budget{ID: "budget-1", MonthlyLimit: decimal.NewFromInt(500), CreatedAt: now, UpdatedAt: now}
	err := repo.Save(ctx, "owner-1", budget)
	assert.NoError(t, err)

	budget.MonthlyLimit = decimal.NewFromInt(750)
	err = repo.Save(ctx, "owner-1", budget)
	assert.NoError(t, err)

	found, ok, err := repo.Find(ctx, "owner-1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, found.MonthlyLimit.Equal(decimal.NewFromInt(750)))
}
