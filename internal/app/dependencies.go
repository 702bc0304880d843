package app

import (
	"github.com/Xrime/budget-buddy/internal/config"
	"github.com/Xrime/budget-buddy/internal/kvstore"
	"github.com/Xrime/budget-buddy/internal/utils"
	"github.com/Xrime/budget-buddy/pkg/budget"
	"github.com/Xrime/budget-buddy/pkg/expense"
	"github.com/Xrime/budget-buddy/pkg/stats"
	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	UserRepo    user.Repo
	UserService user.Service
	UserHandler *user.Handler

	ExpenseRepo       expense.Repository
	ExpenseService    expense.Service
	CsvExportRenderer *expense.CsvExportRendererImpl
	ExpenseHandler    *expense.ExpenseHandler

	BudgetRepo    budget.Repository
	BudgetService budget.Service
	BudgetHandler *budget.BudgetHandler

	StatsService *stats.StatsServiceImpl
	StatsHandler *stats.StatsHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
// Repositories are picked by the configured storage backend: Postgres or a
// local bbolt file. Exactly one of db and kv is non-nil.
func BuildDependencies(db *pgxpool.Pool, kv *kvstore.Store, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	switch cfg.Storage.Backend {
	case config.FileBackend:
		deps.UserRepo = user.NewFileUserRepo(kv)
		deps.ExpenseRepo = expense.NewFileExpenseRepo(kv)
		deps.BudgetRepo = budget.NewFileBudgetRepo(kv)
	default:
		deps.UserRepo = user.NewUserRepo(db)
		deps.ExpenseRepo = expense.NewExpenseRepo(db)
		deps.BudgetRepo = budget.NewBudgetRepo(db)
	}

	deps.UserService = user.NewUserService(deps.UserRepo)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.ExpenseService = expense.NewExpenseService(deps.ExpenseRepo, deps.Clock)
	deps.CsvExportRenderer = expense.NewCsvExportRenderer()
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService, deps.CsvExportRenderer)

	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo, deps.Clock)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	deps.StatsService = stats.NewStatsService(deps.ExpenseService, deps.BudgetService, deps.Clock)
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.Clock)

	return deps
}
