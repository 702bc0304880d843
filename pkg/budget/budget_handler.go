package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Xrime/budget-buddy/internal/rest"
	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	Id           string          `json:"id,omitempty"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
	CreatedAt    *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"`
}

type BudgetHandler struct {
	budgetService Service
}

func NewBudgetHandler(budgetService Service) *BudgetHandler {
	return &BudgetHandler{budgetService}
}

// GetBudget godoc
// @Summary Get the monthly budget
// @Tags Budget
// @Produce json
// @Success 200 {object} BudgetDTO
// @Failure 401 {object} rest.ErrorResponse "Not authenticated"
// @Failure 404 {object} rest.ErrorResponse "Budget not set"
// @Router /api/budget [get]
func (handler *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	budget, err := handler.budgetService.GetBudget(r.Context())
	if err != nil {
		writeBudgetError(w, err)
		return
	}
	if budget == nil {
		w.WriteHeader(http.StatusNotFound)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Budget not set"})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(budgetToDTO(*budget)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// SetBudget godoc
// @Summary Set the monthly budget limit
// @Description Creates the budget on first set; afterwards updates the limit in place.
// @Tags Budget
// @Accept json
// @Produce json
// @Param budget body BudgetDTO true "Budget"
// @Success 200 {object} BudgetDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid limit"
// @Failure 401 {object} rest.ErrorResponse "Not authenticated"
// @Router /api/budget [put]
func (handler *BudgetHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting monthly budget")
	w.Header().Set("Content-Type", "application/json")

	var dto BudgetDTO
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

	saved, err := handler.budgetService.SetBudget(r.Context(), dto.MonthlyLimit)
	if err != nil {
		writeBudgetError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(budgetToDTO(saved)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeBudgetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrNoUser):
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Not authenticated"})
	case errors.Is(err, ErrNegativeLimit):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Monthly limit must not be negative"})
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func budgetToDTO(budget Budget) BudgetDTO {
	createdAt := budget.CreatedAt
	updatedAt := budget.UpdatedAt
	return BudgetDTO{
		Id:           budget.ID,
		MonthlyLimit: budget.MonthlyLimit,
		CreatedAt:    &createdAt,
		UpdatedAt:    &updatedAt,
	}
}
