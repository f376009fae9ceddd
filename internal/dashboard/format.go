// Package dashboard renders backend data for the terminal.
package dashboard

import (
	"fmt"
	"time"

	"household-budget/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Japanese)

// FormatYen renders an amount as ¥123,456
func FormatYen(amount int64) string {
	if amount < 0 {
		return printer.Sprintf("-¥%d", -amount)
	}
	return printer.Sprintf("¥%d", amount)
}

// FormatPercent renders a 0-100+ rate with one decimal, e.g. 75.5%
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// FormatDays renders a remaining-day count; negatives show as 0日
func FormatDays(days int) string {
	if days < 0 {
		days = 0
	}
	return fmt.Sprintf("%d日", days)
}

// FormatPerDay renders the per-day budget, or "-" when there is none
func FormatPerDay(perDay *float64) string {
	if perDay == nil {
		return "-"
	}
	return FormatYen(int64(*perDay)) + "/日"
}

// FormatMonth renders YYYY-MM as 2025年1月. Malformed input is returned as is.
func FormatMonth(month string) string {
	return models.MonthLabel(month)
}

// FormatDate renders YYYY-MM-DD as 2025年12月25日
func FormatDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}

// CurrentMonth returns the month key of now in loc
func CurrentMonth(now time.Time, loc *time.Location) string {
	return models.MonthKeyOf(now.In(loc))
}

// CategoryTypeLabel names a category type in Japanese
func CategoryTypeLabel(categoryType string) string {
	switch categoryType {
	case models.CategoryTypeFixed:
		return "固定費"
	case models.CategoryTypeVariable:
		return "変動費"
	case models.CategoryTypeLifestyle:
		return "生活費"
	case models.CategoryTypeEvent:
		return "イベント"
	default:
		return categoryType
	}
}
