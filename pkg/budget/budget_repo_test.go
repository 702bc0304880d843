package budget

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Xrime/budget-buddy/internal/test_utils"
	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var pgContainer *postgres.PostgresContainer
var connect func() *pgxpool.Pool

func TestMain(m *testing.M) {
	pgContainer, connect = test_utils.TestWithDB()
	code := m.Run()
	_ = pgContainer.Terminate(context.Background())
	os.Exit(code)
}

func setupPgRepo(t *testing.T) (context.Context, *BudgetRepoImpl, string) {
	ctx := context.Background()
	db := connect()
	t.Cleanup(db.Close)

	// budgets reference users, so each test gets its own owner row
	userRepo := user.NewUserRepo(db)
	owner, err := userRepo.CreateUser(ctx, user.User{Id: uuid.NewString(), DisplayName: "Test Owner"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = userRepo.DeleteUser(ctx, owner.Id)
	})

	return ctx, NewBudgetRepo(db), owner.Id
}

func TestBudgetRepoImpl_Find_NotSet(t *testing.T) {
	ctx, repo, ownerId := setupPgRepo(t)

	_, found, err := repo.Find(ctx, ownerId)

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestBudgetRepoImpl_SaveAndFind(t *testing.T) {
	ctx, repo, ownerId := setupPgRepo(t)

	// given
	now := time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)
	original := Budget{
		ID:           uuid.NewString(),
		MonthlyLimit: decimal.RequireFromString("500.00"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// when
	err := repo.Save(ctx, ownerId, original)
	assert.NoError(t, err)

	// then
	found, ok, err := repo.Find(ctx, ownerId)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, original.ID, found.ID)
	assert.True(t, found.MonthlyLimit.Equal(original.MonthlyLimit))
}

func TestBudgetRepoImpl_Save_UpsertsOnConflict(t *testing.T) {
	ctx, repo, ownerId := setupPgRepo(t)

	// given
	now := time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)
	budget := Budget{
		ID:           uuid.NewString(),
		MonthlyLimit: decimal.NewFromInt(500),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := repo.Save(ctx, ownerId, budget)
	assert.NoError(t, err)

	// when the same owner saves again with a new limit
	budget.MonthlyLimit = decimal.NewFromInt(750)
	budget.UpdatedAt = now.Add(48 * time.Hour)
	err = repo.Save(ctx, ownerId, budget)
	assert.NoError(t, err)

	// then a single record remains, carrying the new limit
	found, ok, err := repo.Find(ctx, ownerId)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, found.MonthlyLimit.Equal(decimal.NewFromInt(750)))
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))
}
