package services_test

import (
	"testing"
	"time"

	"household-budget/internal/models"
	"household-budget/internal/repositories"
	"household-budget/internal/repositories/repository_mocks"
	"household-budget/internal/services"
	"household-budget/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     services.ExpenseServiceInterface
}

func TestExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

func (s *ExpenseServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	// 2025-12-31 16:30 UTC is 2026-01-01 01:30 in Tokyo
	now := time.Date(2025, 12, 31, 16, 30, 0, 0, time.UTC)
	s.service = services.NewExpenseService(s.expenseRepo, tokyo, fixedClock(now), s.metrics, discardLogger())
}

func (s *ExpenseServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseServiceTestSuite) TestRecordExpense_WithDate() {
	memo := "スーパー"
	s.expenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		s.Equal("2025-12-14", expense.Date)
		s.Equal("食費", expense.Category)
		s.Equal(int64(3200), expense.Amount)
		s.Equal(&memo, expense.Memo)
		expense.ID = 7
		expense.Month = "2025-12"
		return nil
	})

	expense, err := s.service.RecordExpense(services.RecordExpenseInput{
		Date:     "2025-12-14",
		Category: "食費",
		Amount:   3200,
		Memo:     &memo,
	})
	s.Require().NoError(err)
	s.Equal(uint(7), expense.ID)
	s.Equal("2025-12", expense.Month)
}

func (s *ExpenseServiceTestSuite) TestRecordExpense_DefaultsToTodayInTimezone() {
	s.expenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		s.Equal("2026-01-01", expense.Date)
		return nil
	})

	_, err := s.service.RecordExpense(services.RecordExpenseInput{Category: "交通費", Amount: 500})
	s.Require().NoError(err)
}

func (s *ExpenseServiceTestSuite) TestRecordExpense_Invalid() {
	_, err := s.service.RecordExpense(services.RecordExpenseInput{Date: "2025-02-30", Category: "食費", Amount: 1})
	s.ErrorIs(err, models.ErrInvalidDate)

	_, err = s.service.RecordExpense(services.RecordExpenseInput{Date: "2025-12-01", Category: "食費", Amount: -10})
	s.ErrorIs(err, models.ErrNegativeAmount)
}

func (s *ExpenseServiceTestSuite) TestRecordExpense_InvalidCategoryFromHook() {
	s.expenseRepo.EXPECT().Create(gomock.Any()).Return(models.ErrInvalidCategoryKey)

	_, err := s.service.RecordExpense(services.RecordExpenseInput{Date: "2025-12-01", Amount: 1})
	s.ErrorIs(err, models.ErrInvalidCategoryKey)
}

func (s *ExpenseServiceTestSuite) TestListExpenses() {
	filters := models.ExpenseFilters{Month: "2025-12", Category: "食費"}
	stored := []models.Expense{{ID: 1, Date: "2025-12-01", Month: "2025-12", Category: "食費", Amount: 1200}}
	s.expenseRepo.EXPECT().Find(filters).Return(stored, nil)

	expenses, err := s.service.ListExpenses(filters)
	s.Require().NoError(err)
	s.Equal(stored, expenses)

	_, err = s.service.ListExpenses(models.ExpenseFilters{Month: "202512"})
	s.ErrorIs(err, models.ErrInvalidMonthKey)
}

func (s *ExpenseServiceTestSuite) TestGetAndDeleteExpense_NotFound() {
	s.expenseRepo.EXPECT().FindByID(uint(3)).Return(nil, repositories.ErrExpenseNotFound)
	s.expenseRepo.EXPECT().Delete(uint(3)).Return(repositories.ErrExpenseNotFound)

	_, err := s.service.GetExpense(3)
	s.ErrorIs(err, services.ErrExpenseNotFound)
	s.ErrorIs(s.service.DeleteExpense(3), services.ErrExpenseNotFound)
}

func (s *ExpenseServiceTestSuite) TestStatistics() {
	s.expenseRepo.EXPECT().SumByCategory("2025-12").Return([]models.CategoryTotal{
		{Category: "食費", Total: 42000},
		{Category: "交通費", Total: 3000},
	}, nil)

	stats, err := s.service.Statistics("2025-12")
	s.Require().NoError(err)
	s.Equal(map[string]int64{"食費": 42000, "交通費": 3000}, stats)
}

func (s *ExpenseServiceTestSuite) TestStatistics_EmptyMonth() {
	s.expenseRepo.EXPECT().SumByCategory("2026-03").Return([]models.CategoryTotal{}, nil)

	stats, err := s.service.Statistics("2026-03")
	s.Require().NoError(err)
	s.NotNil(stats)
	s.Empty(stats)
}
