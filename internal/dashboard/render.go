package dashboard

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"household-budget/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const progressWidth = 30

// Renderer writes dashboard views to one output. Colours are dropped
// automatically when the output is not a terminal.
type Renderer struct {
	out    io.Writer
	styles styles
}

// NewRenderer creates a renderer for out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

func (r *Renderer) println(s string) {
	fmt.Fprintln(r.out, s)
}

// Summary renders the month's headline numbers and its status
func (r *Renderer) Summary(s *models.Summary) {
	r.println(r.styles.title.Render(fmt.Sprintf("%s の家計サマリー", FormatMonth(s.Month))))

	rows := [][2]string{
		{"予算合計", FormatYen(s.TotalBudget)},
		{"使用合計", FormatYen(s.TotalSpent)},
		{"残額", FormatYen(s.Remaining)},
		{"残日数", FormatDays(s.RemainingDays)},
		{"1日あたり残予算", FormatPerDay(s.PerDayBudget)},
	}

	lines := make([]string, 0, len(rows)+3)
	for _, row := range rows {
		value := r.styles.value.Render(row[1])
		if row[0] == "残額" && s.Remaining < 0 {
			value = r.styles.danger.Render(row[1])
		}
		lines = append(lines, fmt.Sprintf("%s  %s", r.styles.label.Render(padRight(row[0], 16)), value))
	}

	status := r.styles.statusStyle(s.StatusColor)
	lines = append(lines,
		"",
		fmt.Sprintf("%s  %s", status.Render("状態: "+string(s.Status)), ProgressBar(s.UsageRate, progressWidth)+" "+FormatPercent(s.UsageRate)),
		status.Render(s.StatusMessage),
	)

	r.println(r.styles.box.Render(strings.Join(lines, "\n")))
	r.println(r.styles.subtle.Render("予算ソース: " + string(s.Source)))
}

// Budgets renders legacy budgets with a total row
func (r *Renderer) Budgets(month string, budgets []models.Budget) {
	r.println(r.styles.title.Render(fmt.Sprintf("%s の予算", FormatMonth(month))))
	if len(budgets) == 0 {
		r.println(r.styles.subtle.Render("予算が登録されていません"))
		return
	}

	var total int64
	rows := make([][]string, 0, len(budgets)+1)
	for _, b := range budgets {
		total += b.Amount
		rows = append(rows, []string{strconv.FormatUint(uint64(b.ID), 10), b.Category, FormatYen(b.Amount)})
	}
	rows = append(rows, []string{"", "合計", FormatYen(total)})

	r.println(r.table([]string{"ID", "カテゴリ", "金額"}, rows).Render())
}

// MonthlyBudgets renders catalog-linked budgets with their category type
func (r *Renderer) MonthlyBudgets(month string, details []models.MonthlyBudgetDetail) {
	r.println(r.styles.title.Render(fmt.Sprintf("%s のカテゴリ別予算", FormatMonth(month))))
	if len(details) == 0 {
		r.println(r.styles.subtle.Render("予算が登録されていません"))
		return
	}

	var total int64
	rows := make([][]string, 0, len(details)+1)
	for _, d := range details {
		total += d.Amount
		rows = append(rows, []string{d.CategoryID, d.CategoryName, CategoryTypeLabel(d.CategoryType), FormatYen(d.Amount)})
	}
	rows = append(rows, []string{"", "合計", "", FormatYen(total)})

	r.println(r.table([]string{"ID", "カテゴリ", "種別", "金額"}, rows).Render())
}

// Expenses renders the ledger rows and a count/total footer
func (r *Renderer) Expenses(expenses []models.Expense) {
	if len(expenses) == 0 {
		r.println(r.styles.subtle.Render("支出がありません"))
		return
	}

	var total int64
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		total += e.Amount
		memo := ""
		if e.Memo != nil {
			memo = *e.Memo
		}
		rows = append(rows, []string{strconv.FormatUint(uint64(e.ID), 10), e.Date, e.Category, FormatYen(e.Amount), memo})
	}

	r.println(r.table([]string{"ID", "日付", "カテゴリ", "金額", "メモ"}, rows).Render())
	r.println(fmt.Sprintf("%d件 / 合計 %s", len(expenses), FormatYen(total)))
}

// Categories renders the catalog
func (r *Renderer) Categories(categories []models.Category) {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		active := "○"
		if !c.IsActive {
			active = "×"
		}
		rows = append(rows, []string{c.ID, c.Name, CategoryTypeLabel(c.Type), active})
	}

	r.println(r.table([]string{"ID", "名前", "種別", "有効"}, rows).Render())
}

// Statistics renders per-category spending, largest first, with each share of the total
func (r *Renderer) Statistics(month string, stats map[string]int64) {
	r.println(r.styles.title.Render(fmt.Sprintf("%s のカテゴリ別支出", FormatMonth(month))))
	if len(stats) == 0 {
		r.println(r.styles.subtle.Render("支出がありません"))
		return
	}

	type entry struct {
		category string
		amount   int64
	}
	entries := make([]entry, 0, len(stats))
	var total int64
	for category, amount := range stats {
		entries = append(entries, entry{category, amount})
		total += amount
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].amount != entries[j].amount {
			return entries[i].amount > entries[j].amount
		}
		return entries[i].category < entries[j].category
	})

	rows := make([][]string, 0, len(entries)+1)
	for _, e := range entries {
		share := 0.0
		if total > 0 {
			share = float64(e.amount) / float64(total) * 100
		}
		rows = append(rows, []string{e.category, FormatYen(e.amount), FormatPercent(share)})
	}
	rows = append(rows, []string{"合計", FormatYen(total), FormatPercent(100)})

	r.println(r.table([]string{"カテゴリ", "金額", "割合"}, rows).Render())
}

// SyncStats renders the outcome of a bulk reconciliation run
func (r *Renderer) SyncStats(direction string, stats *models.SyncStats) {
	r.println(r.styles.title.Render(direction))
	r.println(fmt.Sprintf("対象 %d件 / 同期 %s / スキップ %s",
		stats.Total,
		r.styles.success.Render(fmt.Sprintf("%d件", stats.Synced)),
		r.styles.warning.Render(fmt.Sprintf("%d件", stats.Skipped)),
	))
}

// CompatibilityReport renders rows that cannot be resolved against the catalog
func (r *Renderer) CompatibilityReport(report *models.CompatibilityReport) {
	r.println(r.styles.title.Render("予算テーブル整合性チェック"))
	r.println(fmt.Sprintf("budgets: %d件 / monthly_budgets: %d件 / categories: %d件",
		report.BudgetRecords, report.MonthlyBudgetRecords, report.Categories))

	if report.IsCompatible {
		r.println(r.styles.success.Render("すべての予算がカテゴリに対応しています"))
		return
	}

	if len(report.BudgetWithoutCategory) > 0 {
		rows := make([][]string, 0, len(report.BudgetWithoutCategory))
		for _, b := range report.BudgetWithoutCategory {
			rows = append(rows, []string{strconv.FormatUint(uint64(b.ID), 10), b.Month, b.Category, FormatYen(b.Amount)})
		}
		r.println(r.styles.warning.Render("カテゴリ未登録の予算 (budgets)"))
		r.println(r.table([]string{"ID", "月", "カテゴリ", "金額"}, rows).Render())
	}

	if len(report.MonthlyBudgetWithoutCategory) > 0 {
		rows := make([][]string, 0, len(report.MonthlyBudgetWithoutCategory))
		for _, b := range report.MonthlyBudgetWithoutCategory {
			rows = append(rows, []string{strconv.FormatUint(uint64(b.ID), 10), b.Month, b.CategoryID, FormatYen(b.Amount)})
		}
		r.println(r.styles.warning.Render("カテゴリ未登録の予算 (monthly_budgets)"))
		r.println(r.table([]string{"ID", "月", "カテゴリID", "金額"}, rows).Render())
	}
}

// Success prints a one-line confirmation
func (r *Renderer) Success(message string) {
	r.println(r.styles.success.Render("✓ " + message))
}

// Error prints a one-line failure
func (r *Renderer) Error(err error) {
	r.println(r.styles.danger.Render("✗ " + err.Error()))
}

func (r *Renderer) table(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.subtle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.header
			}
			return r.styles.cell
		})
}

// ProgressBar draws a usage rate as a fixed-width bar, capped at 100%
func ProgressBar(rate float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(rate / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
