package services

import (
	"fmt"
	"io"
	"log/slog"

	"household-budget/internal/models"
	"household-budget/internal/repositories"

	"github.com/xuri/excelize/v2"
)

const expenseSheetName = "支出"

var expenseSheetHeaders = []string{"ID", "日付", "カテゴリ", "金額", "メモ"}

// exportService implements ExportServiceInterface with excelize
type exportService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewExportService creates the spreadsheet exporter
func NewExportService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExportServiceInterface {
	return &exportService{
		expenseRepo: expenseRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// FileName returns the download name of a month's workbook
func (s *exportService) FileName(month string) string {
	return fmt.Sprintf("expenses_%s.xlsx", month)
}

// ExportMonth writes one row per expense of the month plus a total row
func (s *exportService) ExportMonth(month string, w io.Writer) error {
	if !models.IsValidMonthKey(month) {
		return models.ErrInvalidMonthKey
	}

	expenses, err := s.expenseRepo.Find(models.ExpenseFilters{Month: month})
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", expenseSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("failed to create data style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("failed to create total style: %w", err)
	}

	for col, width := range map[string]float64{"A": 8, "B": 12, "C": 16, "D": 12, "E": 36} {
		f.SetColWidth(expenseSheetName, col, col, width)
	}

	for i, header := range expenseSheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(expenseSheetName, cell, header)
		f.SetCellStyle(expenseSheetName, cell, cell, headerStyle)
	}

	var total int64
	row := 2
	for _, expense := range expenses {
		memo := ""
		if expense.Memo != nil {
			memo = *expense.Memo
		}

		f.SetCellValue(expenseSheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(expenseSheetName, fmt.Sprintf("B%d", row), expense.Date)
		f.SetCellValue(expenseSheetName, fmt.Sprintf("C%d", row), expense.Category)
		f.SetCellValue(expenseSheetName, fmt.Sprintf("D%d", row), expense.Amount)
		f.SetCellValue(expenseSheetName, fmt.Sprintf("E%d", row), memo)
		f.SetCellStyle(expenseSheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle)

		total += expense.Amount
		row++
	}

	f.SetCellValue(expenseSheetName, fmt.Sprintf("A%d", row), "合計")
	f.SetCellValue(expenseSheetName, fmt.Sprintf("D%d", row), total)
	f.SetCellValue(expenseSheetName, fmt.Sprintf("E%d", row), fmt.Sprintf("%d件", len(expenses)))
	f.SetCellStyle(expenseSheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), totalStyle)

	if err := f.Write(w); err != nil {
		s.metrics.IncrementCounter("expense_exports_total", map[string]string{"status": "failed"})
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	s.metrics.IncrementCounter("expense_exports_total", map[string]string{"status": "success"})
	s.logger.Info("expenses exported", "month", month, "rows", len(expenses), "total", total)

	return nil
}
