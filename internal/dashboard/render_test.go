package dashboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"household-budget/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_Summary(t *testing.T) {
	var buf bytes.Buffer
	perDay := 1875.0

	NewRenderer(&buf).Summary(&models.Summary{
		Month:         "2025-01",
		Source:        models.BudgetSourceLegacy,
		TotalBudget:   70000,
		TotalSpent:    40000,
		Remaining:     30000,
		RemainingDays: 16,
		PerDayBudget:  &perDay,
		UsageRate:     57.14,
		Status:        models.BudgetStatusOK,
		StatusMessage: "予算内で順調です",
		StatusColor:   "green",
	})

	out := buf.String()
	for _, want := range []string{
		"2025年1月 の家計サマリー",
		"¥70,000", "¥40,000", "¥30,000",
		"16日", "¥1,875/日",
		"状態: OK", "57.1%", "予算内で順調です",
		"予算ソース: legacy",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderer_SummaryPastMonth(t *testing.T) {
	var buf bytes.Buffer

	NewRenderer(&buf).Summary(&models.Summary{
		Month:       "2024-11",
		TotalBudget: 1000,
		TotalSpent:  1500,
		Remaining:   -500,
		UsageRate:   150,
		Status:      models.BudgetStatusDanger,
		StatusColor: "red",
	})

	out := buf.String()
	assert.Contains(t, out, "-¥500")
	assert.Contains(t, out, "0日")
	assert.Contains(t, out, "-")
	assert.Contains(t, out, ProgressBar(150, progressWidth))
}

func TestRenderer_BudgetsTotalRow(t *testing.T) {
	var buf bytes.Buffer

	NewRenderer(&buf).Budgets("2025-01", []models.Budget{
		{ID: 1, Category: "住居費", Amount: 80000},
		{ID: 2, Category: "食費", Amount: 50000},
	})

	out := buf.String()
	assert.Contains(t, out, "住居費")
	assert.Contains(t, out, "合計")
	assert.Contains(t, out, "¥130,000")
}

func TestRenderer_EmptyLists(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Budgets("2025-01", nil)
	r.MonthlyBudgets("2025-01", nil)
	r.Expenses(nil)
	r.Statistics("2025-01", map[string]int64{})

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "予算が登録されていません"))
	assert.Equal(t, 2, strings.Count(out, "支出がありません"))
}

func TestRenderer_ExpensesFooter(t *testing.T) {
	var buf bytes.Buffer
	memo := "ランチ"

	NewRenderer(&buf).Expenses([]models.Expense{
		{ID: 1, Date: "2025-01-10", Category: "食費", Amount: 1200, Memo: &memo},
		{ID: 2, Date: "2025-01-11", Category: "交通費", Amount: 800},
	})

	out := buf.String()
	assert.Contains(t, out, "ランチ")
	assert.Contains(t, out, "2件 / 合計 ¥2,000")
}

func TestRenderer_StatisticsOrderedByAmount(t *testing.T) {
	var buf bytes.Buffer

	NewRenderer(&buf).Statistics("2025-01", map[string]int64{
		"交通費": 1000,
		"食費":  3000,
	})

	out := buf.String()
	assert.Less(t, strings.Index(out, "食費"), strings.Index(out, "交通費"))
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "¥4,000")
}

func TestRenderer_CompatibilityReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.CompatibilityReport(&models.CompatibilityReport{IsCompatible: true, Categories: 14})
	assert.Contains(t, buf.String(), "すべての予算がカテゴリに対応しています")

	buf.Reset()
	r.CompatibilityReport(&models.CompatibilityReport{
		BudgetRecords:         1,
		BudgetWithoutCategory: []models.UnresolvedBudget{{ID: 7, Month: "2025-01", Category: "ペット", Amount: 3000}},
	})
	assert.Contains(t, buf.String(), "ペット")
	assert.Contains(t, buf.String(), "カテゴリ未登録の予算 (budgets)")
	assert.NotContains(t, buf.String(), "(monthly_budgets)")
}

func TestRenderer_SyncStatsAndMessages(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.SyncStats("legacy → linked", &models.SyncStats{Total: 3, Synced: 2, Skipped: 1})
	r.Success("保存しました")
	r.Error(errors.New("接続エラー"))

	out := buf.String()
	assert.Contains(t, out, "対象 3件")
	assert.Contains(t, out, "2件")
	assert.Contains(t, out, "✓ 保存しました")
	assert.Contains(t, out, "✗ 接続エラー")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat("░", 10)+"]", ProgressBar(0, 10))
	assert.Equal(t, "["+strings.Repeat("█", 5)+strings.Repeat("░", 5)+"]", ProgressBar(50, 10))
	assert.Equal(t, "["+strings.Repeat("█", 10)+"]", ProgressBar(250, 10))
	assert.Equal(t, "["+strings.Repeat("░", 10)+"]", ProgressBar(-5, 10))
	assert.Equal(t, "", ProgressBar(50, 0))
}
