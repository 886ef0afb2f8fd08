// internal/api/handler/stats_test.go
package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/util"
)

func TestSummaryHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockTransactionService)
		h := NewStatsHandler(svc, testLogger())

		summary := domain.NewSummary(map[domain.TransactionType]decimal.Decimal{
			domain.TransactionTypeIncome:  decimal.NewFromInt(1000),
			domain.TransactionTypeExpense: decimal.NewFromInt(300),
			domain.TransactionTypeSavings: decimal.NewFromInt(100),
		}, 3)
		svc.On("Summary", mock.Anything, int64(7), "2024-01-01", "2024-01-31").
			Return(summary, nil).Once()

		rec := httptest.NewRecorder()
		h.Summary(rec, authedRequest(http.MethodGet,
			"/api/stats/summary?start_date=2024-01-01&end_date=2024-01-31", nil, 7))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(1000), body["total_income"])
		assert.Equal(t, float64(300), body["total_expense"])
		assert.Equal(t, float64(600), body["balance"])
		assert.Equal(t, float64(3), body["transaction_count"])
		svc.AssertExpectations(t)
	})

	t.Run("BadDateFilter", func(t *testing.T) {
		svc := new(MockTransactionService)
		h := NewStatsHandler(svc, testLogger())

		svc.On("Summary", mock.Anything, int64(7), "bad", "").
			Return(nil, util.Validationf("Invalid date format. Use YYYY-MM-DD")).Once()

		rec := httptest.NewRecorder()
		h.Summary(rec, authedRequest(http.MethodGet, "/api/stats/summary?start_date=bad", nil, 7))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", decodeBody(t, rec)["error"])
	})
}

func TestByCategoryHandler(t *testing.T) {
	svc := new(MockTransactionService)
	h := NewStatsHandler(svc, testLogger())

	totals := []domain.CategoryTotal{
		{Category: "rent", Total: domain.AmountFromFloat(800)},
		{Category: "food", Total: domain.AmountFromFloat(70.5)},
	}
	svc.On("ByCategory", mock.Anything, int64(7), "").
		Return(domain.TransactionTypeExpense, totals, nil).Once()

	rec := httptest.NewRecorder()
	h.ByCategory(rec, authedRequest(http.MethodGet, "/api/stats/by-category", nil, 7))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "expense", body["type"])
	categories := body["categories"].([]interface{})
	assert.Len(t, categories, 2)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "rent", first["category"])
	assert.Equal(t, float64(800), first["total"])
}
