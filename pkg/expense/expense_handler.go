package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Xrime/budget-buddy/internal/rest"
	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	Id          string          `json:"id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
}

type ExpenseHandler struct {
	expenseService Service
	exportRenderer ExportRenderer
}

func NewExpenseHandler(expenseService Service, exportRenderer ExportRenderer) *ExpenseHandler {
	return &ExpenseHandler{expenseService, exportRenderer}
}

// ListExpenses godoc
// @Summary List expenses
// @Description List the current owner's expenses, newest date first. Responds with a CSV export when "Accept: text/csv" is sent.
// @Tags Expense
// @Produce json
// @Produce text/csv
// @Success 200 {array} ExpenseDTO
// @Failure 401 {object} rest.ErrorResponse "Not authenticated"
// @Router /api/expense [get]
func (handler *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := handler.expenseService.ListExpenses(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		csv, err := handler.exportRenderer.Render(expenses)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, expenseToDTO(expense))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CreateExpense godoc
// @Summary Record a new expense
// @Tags Expense
// @Accept json
// @Produce json
// @Param expense body ExpenseDTO true "Expense"
// @Success 201 {object} ExpenseDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid expense"
// @Failure 401 {object} rest.ErrorResponse "Not authenticated"
// @Router /api/expense [post]
func (handler *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	log.Debug("Recording new expense")
	w.Header().Set("Content-Type", "application/json")

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	input, err := dtoToNewExpense(dto)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "date must be in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := handler.expenseService.AddExpense(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(expenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags Expense
// @Param expenseId path string true "Expense ID"
// @Success 204
// @Failure 401 {object} rest.ErrorResponse "Not authenticated"
// @Failure 404 {object} rest.ErrorResponse "Expense not found"
// @Router /api/expense/{expenseId} [delete]
func (handler *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	expenseId := vars["expenseId"]

	if err := handler.expenseService.DeleteExpense(r.Context(), expenseId); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case errors.Is(err, user.ErrNoUser):
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Not authenticated"})
	case errors.Is(err, ErrInvalidAmount):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Expense amount must be positive"})
	case errors.Is(err, ErrInvalidDate):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Expense date is required"})
	case errors.Is(err, ErrExpenseNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Expense not found"})
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func expenseToDTO(expense Expense) ExpenseDTO {
	createdAt := expense.CreatedAt
	return ExpenseDTO{
		Id:          expense.ID,
		Amount:      expense.Amount,
		Category:    string(expense.Category),
		Description: expense.Description,
		Date:        expense.Date.Format("2006-01-02"),
		CreatedAt:   &createdAt,
	}
}

func dtoToNewExpense(dto ExpenseDTO) (NewExpense, error) {
	var date time.Time
	if dto.Date != "" {
		parsed, err := time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return NewExpense{}, err
		}
		date = parsed
	}
	return NewExpense{
		Amount:      dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        date,
	}, nil
}
