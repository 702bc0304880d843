package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Xrime/budget-buddy/internal/rest"
	"github.com/Xrime/budget-buddy/internal/utils"
	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/shopspring/decimal"
)

type PeriodStatDTO struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type CategoryStatDTO struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Percentage float64         `json:"percentage"`
}

type BudgetStatusDTO struct {
	Limit          decimal.Decimal `json:"limit"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed float64         `json:"percentageUsed"`
	Status         string          `json:"status"`
}

type SummaryDTO struct {
	Today      PeriodStatDTO     `json:"today"`
	Week       PeriodStatDTO     `json:"week"`
	Month      PeriodStatDTO     `json:"month"`
	Categories []CategoryStatDTO `json:"categories"`
	Budget     *BudgetStatusDTO  `json:"budget,omitempty"`
}

type WeekBucketDTO struct {
	WeekStart string          `json:"weekStart"`
	Label     string          `json:"label"`
	Total     decimal.Decimal `json:"total"`
}

type StatsHandler struct {
	statsService StatsService
	clock        utils.Clock
}

func NewStatsHandler(statsService StatsService, clock utils.Clock) *StatsHandler {
	return &StatsHandler{statsService, clock}
}

// GetSummary godoc
// @Summary Get the spending summary
// @Description Period totals for today/week/month, category breakdown, and budget status when a budget is set
// @Tags Stats
// @Produce json
// @Success 200 {object} SummaryDTO
// @Failure 401 {object} rest.ErrorResponse "Not authenticated"
// @Router /api/stats/summary [get]
func (handler *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := handler.statsService.GetSummary(r.Context())
	if err != nil {
		writeStatsError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetWeeklyTrend godoc
// @Summary Get the weekly spending trend for a month
// @Tags Stats
// @Produce json
// @Param month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {array} WeekBucketDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid month format"
// @Failure 401 {object} rest.ErrorResponse "Not authenticated"
// @Router /api/stats/trend [get]
func (handler *StatsHandler) GetWeeklyTrend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ref := handler.clock.Now()
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		parsed, err := time.Parse("2006-01", monthParam)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid month format",
				Details: "month must be in YYYY-MM format",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		ref = parsed
	}

	trend, err := handler.statsService.GetWeeklyTrend(r.Context(), ref)
	if err != nil {
		writeStatsError(w, err)
		return
	}

	dtos := make([]WeekBucketDTO, 0, len(trend))
	for _, bucket := range trend {
		dtos = append(dtos, WeekBucketDTO{
			WeekStart: bucket.WeekStart.Format("2006-01-02"),
			Label:     bucket.Label,
			Total:     bucket.Total,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeStatsError(w http.ResponseWriter, err error) {
	if errors.Is(err, user.ErrNoUser) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Not authenticated"})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func summaryToDTO(summary Summary) SummaryDTO {
	dto := SummaryDTO{
		Today: PeriodStatDTO{Total: summary.Periods.Today.Total, Count: summary.Periods.Today.Count},
		Week:  PeriodStatDTO{Total: summary.Periods.Week.Total, Count: summary.Periods.Week.Count},
		Month: PeriodStatDTO{Total: summary.Periods.Month.Total, Count: summary.Periods.Month.Count},
	}
	dto.Categories = make([]CategoryStatDTO, 0, len(summary.Categories))
	for _, stat := range summary.Categories {
		dto.Categories = append(dto.Categories, CategoryStatDTO{
			Category:   string(stat.Category),
			Total:      stat.Total,
			Percentage: stat.Percentage,
		})
	}
	if summary.Budget != nil {
		dto.Budget = &BudgetStatusDTO{
			Limit:          summary.Budget.Limit,
			Spent:          summary.Budget.Spent,
			Remaining:      summary.Budget.Remaining,
			PercentageUsed: summary.Budget.PercentageUsed,
			Status:         string(summary.Budget.Status),
		}
	}
	return dto
}
