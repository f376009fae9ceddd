package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"household-budget/internal/models"
	"household-budget/internal/repositories"
	"household-budget/internal/services"

	"github.com/golang/mock/gomock"
)

func (s *APIHandlerSuite) TestRecordExpense_DateDefaultsInService() {
	memo := "スーパー"
	s.expenseSvc.EXPECT().RecordExpense(services.RecordExpenseInput{
		Category: "食費",
		Amount:   3200,
		Memo:     &memo,
	}).Return(&models.Expense{ID: 1, Date: "2025-01-15", Month: "2025-01", Category: "食費", Amount: 3200, Memo: &memo}, nil)

	rec := s.do(http.MethodPost, "/api/expenses", map[string]interface{}{
		"category": "食費", "amount": 3200, "memo": memo,
	})

	s.Equal(http.StatusCreated, rec.Code)
	var expense models.Expense
	s.decodeData(rec, &expense)
	s.Equal("2025-01", expense.Month)
}

func (s *APIHandlerSuite) TestRecordExpense_ImpossibleDate() {
	rec := s.do(http.MethodPost, "/api/expenses", map[string]interface{}{
		"date": "2025-02-30", "category": "食費", "amount": 100,
	})

	response := s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_006")
	s.Equal([]string{"date: must be a real date in YYYY-MM-DD format"}, response.Error.Details)
}

func (s *APIHandlerSuite) TestListExpenses() {
	s.expenseSvc.EXPECT().ListExpenses(models.ExpenseFilters{Month: "2025-01", Category: "食費"}).
		Return([]models.Expense{{ID: 2, Date: "2025-01-20", Month: "2025-01", Category: "食費", Amount: 800}}, nil)

	rec := s.do(http.MethodGet, "/api/expenses?month=2025-01&category=%E9%A3%9F%E8%B2%BB", nil)

	s.Equal(http.StatusOK, rec.Code)
	var expenses []models.Expense
	s.decodeData(rec, &expenses)
	s.Len(expenses, 1)
}

func (s *APIHandlerSuite) TestListExpenses_NoFilters() {
	s.expenseSvc.EXPECT().ListExpenses(models.ExpenseFilters{}).Return([]models.Expense{}, nil)

	rec := s.do(http.MethodGet, "/api/expenses", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data": []}`, rec.Body.String())
}

func (s *APIHandlerSuite) TestGetExpense_NotFound() {
	s.expenseSvc.EXPECT().GetExpense(uint(5)).Return(nil, services.ErrExpenseNotFound)

	rec := s.do(http.MethodGet, "/api/expenses/5", nil)

	s.assertError(rec, http.StatusNotFound, "EXPENSE_001")
}

func (s *APIHandlerSuite) TestDeleteExpense() {
	s.expenseSvc.EXPECT().DeleteExpense(uint(5)).Return(nil)

	rec := s.do(http.MethodDelete, "/api/expenses/5", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("deleted", s.decodeMessage(rec))
}

func (s *APIHandlerSuite) TestGetStatistics() {
	s.expenseSvc.EXPECT().Statistics("2025-01").Return(map[string]int64{"食費": 4000, "交通費": 1200}, nil)

	rec := s.do(http.MethodGet, "/api/expenses/statistics/2025-01", nil)

	s.Equal(http.StatusOK, rec.Code)
	var stats map[string]int64
	s.decodeData(rec, &stats)
	s.Equal(int64(4000), stats["食費"])
}

func (s *APIHandlerSuite) TestExportExpenses() {
	s.exportSvc.EXPECT().ExportMonth("2025-01", gomock.Any()).DoAndReturn(func(month string, w io.Writer) error {
		_, err := w.Write([]byte("PK-workbook"))
		return err
	})
	s.exportSvc.EXPECT().FileName("2025-01").Return("expenses_2025-01.xlsx")

	rec := s.do(http.MethodGet, "/api/expenses/export/2025-01", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(xlsxContentType, rec.Header().Get("Content-Type"))
	s.Equal(`attachment; filename="expenses_2025-01.xlsx"`, rec.Header().Get("Content-Disposition"))
	s.Equal("PK-workbook", rec.Body.String())
}

func (s *APIHandlerSuite) TestExportExpenses_FailureIsJSON() {
	s.exportSvc.EXPECT().ExportMonth("2025-01", gomock.Any()).Return(errors.New("excelize: write failed"))

	rec := s.do(http.MethodGet, "/api/expenses/export/2025-01", nil)

	s.assertError(rec, http.StatusInternalServerError, "SYSTEM_001")
	s.Empty(rec.Header().Get("Content-Disposition"))
}

func (s *APIHandlerSuite) TestListExpenses_StoreFailureIsDatabaseError() {
	storeErr := &repositories.DatabaseError{Op: "find expenses", Err: errors.New("no such table: expenses")}
	s.expenseSvc.EXPECT().ListExpenses(models.ExpenseFilters{Month: "2025-01"}).
		Return(nil, fmt.Errorf("failed to list expenses: %w", storeErr))

	rec := s.do(http.MethodGet, "/api/expenses?month=2025-01", nil)

	response := s.assertError(rec, http.StatusInternalServerError, "SYSTEM_002")
	s.Equal("Database connection error", response.Error.Message)
	s.NotContains(rec.Body.String(), "no such table")
}
