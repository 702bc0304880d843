package expense

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Xrime/budget-buddy/pkg/user"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func setupHandler(t *testing.T) (*mux.Router, context.Context, func()) {
	service := NewExpenseService(repoStub, clock)
	handler := NewExpenseHandler(service, NewCsvExportRenderer())

	router := mux.NewRouter()
	router.HandleFunc("/api/expense", handler.ListExpenses).Methods("GET")
	router.HandleFunc("/api/expense", handler.CreateExpense).Methods("POST")
	router.HandleFunc("/api/expense/{expenseId}", handler.DeleteExpense).Methods("DELETE")

	ctx := user.WithUser(context.Background(), user.User{Id: "owner-1", DisplayName: "Test User 1"})
	return router, ctx, func() {
		repoStub.Cleanup()
	}
}

func TestExpenseHandler_CreateAndList(t *testing.T) {
	router, ctx, teardown := setupHandler(t)
	defer teardown()

	// when
	body := `{"amount": "12.50", "category": "Food", "description": "Lunch", "date": "2024-01-15"}`
	req := httptest.NewRequest("POST", "/api/expense", strings.NewReader(body)).WithContext(ctx)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// then
	assert.Equal(t, http.StatusCreated, resp.Code)
	var created ExpenseDTO
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "2024-01-15", created.Date)

	req = httptest.NewRequest("GET", "/api/expense", nil).WithContext(ctx)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	var listed []ExpenseDTO
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	assert.Len(t, listed, 1)
	assert.Equal(t, created.Id, listed[0].Id)
}

func TestExpenseHandler_ListExpenses_AsCsv(t *testing.T) {
	router, ctx, teardown := setupHandler(t)
	defer teardown()

	// given
	clock.SetNow(time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC))
	body := `{"amount": "12.50", "category": "Food", "description": "Lunch \"special\"", "date": "2024-01-05"}`
	req := httptest.NewRequest("POST", "/api/expense", strings.NewReader(body)).WithContext(ctx)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusCreated, resp.Code)

	// when
	req = httptest.NewRequest("GET", "/api/expense", nil).WithContext(ctx)
	req.Header.Set("Accept", "text/csv")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// then
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "expenses.csv")
	expected := "Date,Category,Description,Amount\n" +
		`2024-01-05,Food,"Lunch ""special""",12.50`
	assert.Equal(t, expected, resp.Body.String())
}

func TestExpenseHandler_CreateExpense_InvalidAmount(t *testing.T) {
	router, ctx, teardown := setupHandler(t)
	defer teardown()

	body := `{"amount": "0", "category": "Food", "date": "2024-01-15"}`
	req := httptest.NewRequest("POST", "/api/expense", strings.NewReader(body)).WithContext(ctx)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestExpenseHandler_DeleteExpense_NotFound(t *testing.T) {
	router, ctx, teardown := setupHandler(t)
	defer teardown()

	req := httptest.NewRequest("DELETE", "/api/expense/unknown-id", nil).WithContext(ctx)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestExpenseHandler_RequiresUser(t *testing.T) {
	router, _, teardown := setupHandler(t)
	defer teardown()

	req := httptest.NewRequest("GET", "/api/expense", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
