package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"household-budget/internal/dto"
	"household-budget/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	mux    *http.ServeMux
	calls  atomic.Int32
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.calls.Store(0)
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		s.mux.ServeHTTP(w, r)
	}))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) newClient(opts ...Option) *Client {
	base := []Option{
		WithBackoff(func(int) time.Duration { return 0 }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return New(s.server.URL+"/", append(base, opts...)...)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func errorBody(code, message string, details ...string) map[string]any {
	return map[string]any{"error": map[string]any{
		"code": code, "message": message, "details": details, "trace_id": "trace-1",
	}}
}

func (s *ClientTestSuite) TestListBudgets_DecodesEnvelope() {
	s.mux.HandleFunc("/api/budgets", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("2025-01", r.URL.Query().Get("month"))
		writeJSON(w, http.StatusOK, map[string]any{"data": []models.Budget{
			{ID: 1, Month: "2025-01", Category: "食費", Amount: 50000},
		}})
	})

	budgets, err := s.newClient().ListBudgets(context.Background(), "2025-01")

	s.Require().NoError(err)
	s.Require().Len(budgets, 1)
	s.Equal(int64(50000), budgets[0].Amount)
}

func (s *ClientTestSuite) TestListExpenses_OmitsEmptyFilters() {
	s.mux.HandleFunc("/api/expenses", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.URL.RawQuery)
		writeJSON(w, http.StatusOK, map[string]any{"data": []models.Expense{}})
	})

	expenses, err := s.newClient().ListExpenses(context.Background(), "", "")

	s.Require().NoError(err)
	s.Empty(expenses)
}

func (s *ClientTestSuite) TestRecordExpense_SendsBody() {
	amount := int64(gofakeit.Number(1, 100000))
	memo := gofakeit.Sentence(3)

	s.mux.HandleFunc("/api/expenses", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("application/json", r.Header.Get("Content-Type"))

		var req dto.RecordExpenseRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("2025-01-15", req.Date)
		s.Equal(amount, *req.Amount)
		s.Equal(memo, *req.Memo)

		writeJSON(w, http.StatusCreated, map[string]any{"data": models.Expense{
			ID: 9, Date: req.Date, Month: "2025-01", Category: req.Category, Amount: *req.Amount, Memo: req.Memo,
		}})
	})

	expense, err := s.newClient().RecordExpense(context.Background(), dto.RecordExpenseRequest{
		Date: "2025-01-15", Category: "食費", Amount: &amount, Memo: &memo,
	})

	s.Require().NoError(err)
	s.Equal(uint(9), expense.ID)
	s.Equal("2025-01", expense.Month)
}

func (s *ClientTestSuite) TestRetriesThenSucceeds() {
	var attempts atomic.Int32
	s.mux.HandleFunc("/api/summary", func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			writeJSON(w, http.StatusServiceUnavailable, errorBody("SYSTEM_003", "Service temporarily unavailable"))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": models.Summary{Month: "2025-01", Status: models.BudgetStatusOK}})
	})

	summary, err := s.newClient().Summary(context.Background(), "2025-01", models.BudgetSourceLegacy)

	s.Require().NoError(err)
	s.Equal(models.BudgetStatusOK, summary.Status)
	s.Equal(int32(3), attempts.Load())
}

func (s *ClientTestSuite) TestRetryResendsBody() {
	var bodies []string
	s.mux.HandleFunc("/api/budgets", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(raw))
		if len(bodies) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"data": models.Budget{ID: 1}})
	})

	_, err := s.newClient().UpsertBudget(context.Background(), "2025-01", "食費", 1000)

	s.Require().NoError(err)
	s.Require().Len(bodies, 2)
	s.Equal(bodies[0], bodies[1])
	s.JSONEq(`{"month":"2025-01","category":"食費","amount":1000}`, bodies[0])
}

func (s *ClientTestSuite) TestRetriesExhausted() {
	s.mux.HandleFunc("/api/reconciliation/verify", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, errorBody("SYSTEM_001", "An unexpected error occurred"))
	})

	_, err := s.newClient(WithMaxRetries(3)).Verify(context.Background())

	var apiErr *Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(KindHTTP, apiErr.Kind)
	s.Equal(http.StatusInternalServerError, apiErr.StatusCode)
	s.Equal("SYSTEM_001", apiErr.Code)
	s.Equal(int32(4), s.calls.Load())
}

func (s *ClientTestSuite) TestClientErrorNotRetried() {
	s.mux.HandleFunc("/api/budgets/9", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("BUDGET_001", "Budget not found"))
	})

	_, err := s.newClient().GetBudget(context.Background(), 9)

	var apiErr *Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(KindHTTP, apiErr.Kind)
	s.Equal("BUDGET_001", apiErr.Code)
	s.Equal("trace-1", apiErr.TraceID)
	s.Equal("HTTPエラー 404: Budget not found", apiErr.Error())
	s.Equal(int32(1), s.calls.Load())
}

func (s *ClientTestSuite) TestValidationErrorCarriesDetails() {
	s.mux.HandleFunc("/api/monthly-budgets", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity,
			errorBody("VALIDATION_005", "Validation failed", "month: must be in YYYY-MM format with month 01-12"))
	})

	_, err := s.newClient().ListMonthlyBudgets(context.Background(), "2025-13", "")

	var apiErr *Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal([]string{"month: must be in YYYY-MM format with month 01-12"}, apiErr.Details)
	s.Contains(apiErr.Error(), "month: must be in YYYY-MM format")
}

func (s *ClientTestSuite) TestNonEnvelopeErrorBody() {
	s.mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway upstream", http.StatusTeapot)
	})

	_, err := s.newClient().ListCategories(context.Background(), "")

	var apiErr *Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusTeapot, apiErr.StatusCode)
	s.Equal([]string{"bad gateway upstream"}, apiErr.Details)
}

func (s *ClientTestSuite) TestTimeout() {
	s.mux.HandleFunc("/api/summary", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := s.newClient(WithTimeout(50*time.Millisecond), WithMaxRetries(0)).
		Summary(context.Background(), "", "")

	var apiErr *Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(KindTimeout, apiErr.Kind)
	s.Equal("タイムアウト: リクエストが0.05秒以内に完了しませんでした", apiErr.Error())
}

func (s *ClientTestSuite) TestConnectionError() {
	s.server.Close()

	c := s.newClient(WithMaxRetries(2))
	_, err := c.Health(context.Background())

	var apiErr *Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(KindConnection, apiErr.Kind)
	s.Equal("接続エラー: バックエンドに接続できません ("+c.BaseURL()+")", apiErr.Error())
}

func (s *ClientTestSuite) TestCancelledContextStopsRetrying() {
	s.mux.HandleFunc("/api/budgets", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	ctx, cancel := context.WithCancel(context.Background())
	c := s.newClient(WithBackoff(func(int) time.Duration {
		cancel()
		return time.Minute
	}))

	_, err := c.ListBudgets(ctx, "2025-01")

	var apiErr *Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(KindRequest, apiErr.Kind)
	s.ErrorIs(err, context.Canceled)
	s.Equal(int32(1), s.calls.Load())
}

func (s *ClientTestSuite) TestExportExpenses() {
	s.mux.HandleFunc("/api/expenses/export/2025-01", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write([]byte("PK\x03\x04workbook"))
	})

	var buf bytes.Buffer
	err := s.newClient().ExportExpenses(context.Background(), "2025-01", &buf)

	s.Require().NoError(err)
	s.Equal("PK\x03\x04workbook", buf.String())
}

func (s *ClientTestSuite) TestDeleteExpense() {
	s.mux.HandleFunc("/api/expenses/4", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodDelete, r.Method)
		writeJSON(w, http.StatusOK, map[string]any{"message": "deleted"})
	})

	s.NoError(s.newClient().DeleteExpense(context.Background(), 4))
}

func (s *ClientTestSuite) TestGenerateSampleExpenses_OmitsZeroCount() {
	s.mux.HandleFunc("/api/dev/sample-expenses", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("2025-06", r.URL.Query().Get("month"))
		s.False(r.URL.Query().Has("count"))
		writeJSON(w, http.StatusCreated, map[string]any{"data": map[string]any{"month": "2025-06", "created": 60, "failed": 0}})
	})

	resp, err := s.newClient().GenerateSampleExpenses(context.Background(), "2025-06", 0)
	s.Require().NoError(err)
	s.Equal(60, resp.Created)
}

func (s *ClientTestSuite) TestExponentialBackoff() {
	s.Equal(time.Second, ExponentialBackoff(0))
	s.Equal(2*time.Second, ExponentialBackoff(1))
	s.Equal(4*time.Second, ExponentialBackoff(2))
}
