package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "household-budget/internal/errors"
	"household-budget/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// APIHandlerSuite drives every handler through the real router with mocked services
type APIHandlerSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	echo              *echo.Echo
	budgetSvc         *service_mocks.MockBudgetServiceInterface
	monthlyBudgetSvc  *service_mocks.MockMonthlyBudgetServiceInterface
	expenseSvc        *service_mocks.MockExpenseServiceInterface
	exportSvc         *service_mocks.MockExportServiceInterface
	categorySvc       *service_mocks.MockCategoryServiceInterface
	summarySvc        *service_mocks.MockSummaryServiceInterface
	reconciliationSvc *service_mocks.MockReconciliationServiceInterface
	generator         *service_mocks.MockSampleExpenseGeneratorInterface
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (s *APIHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetSvc = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.monthlyBudgetSvc = service_mocks.NewMockMonthlyBudgetServiceInterface(s.ctrl)
	s.expenseSvc = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.exportSvc = service_mocks.NewMockExportServiceInterface(s.ctrl)
	s.categorySvc = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.summarySvc = service_mocks.NewMockSummaryServiceInterface(s.ctrl)
	s.reconciliationSvc = service_mocks.NewMockReconciliationServiceInterface(s.ctrl)
	s.generator = service_mocks.NewMockSampleExpenseGeneratorInterface(s.ctrl)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	RegisterRoutes(s.echo, "/api", Handlers{
		Budget:         NewBudgetHandler(s.budgetSvc),
		MonthlyBudget:  NewMonthlyBudgetHandler(s.monthlyBudgetSvc),
		Expense:        NewExpenseHandler(s.expenseSvc, s.exportSvc),
		Category:       NewCategoryHandler(s.categorySvc),
		Summary:        NewSummaryHandler(s.summarySvc),
		Reconciliation: NewReconciliationHandler(s.reconciliationSvc),
		Dev:            NewDevHandler(s.expenseSvc, s.generator),
	})
}

func (s *APIHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAPIHandlerSuite(t *testing.T) {
	suite.Run(t, new(APIHandlerSuite))
}

// do sends a request through the router. A string body is sent verbatim.
func (s *APIHandlerSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, strings.NewReader(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *APIHandlerSuite) decodeData(rec *httptest.ResponseRecorder, v interface{}) {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	s.Require().NoError(json.Unmarshal(env.Data, v))
}

func (s *APIHandlerSuite) decodeMessage(rec *httptest.ResponseRecorder) string {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Message
}

func (s *APIHandlerSuite) assertError(rec *httptest.ResponseRecorder, status int, code string) apperrors.ErrorResponse {
	s.Equal(status, rec.Code, rec.Body.String())

	var response apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(code, response.Error.Code)
	return response
}

func (s *APIHandlerSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/nothing-here", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APIHandlerSuite) TestMetricsEndpoint() {
	rec := s.do(http.MethodGet, "/metrics", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "go_goroutines")
}
