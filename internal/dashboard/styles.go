package dashboard

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#4ECDC4")
	colorYellow = lipgloss.Color("#FFE66D")
	colorRed    = lipgloss.Color("#FF6B6B")
	colorSubtle = lipgloss.Color("#666666")
	colorHeader = lipgloss.Color("86")
)

// styles holds the lipgloss styles bound to one output's renderer
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	subtle  lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	box     lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorRed),
		label:   r.NewStyle().Foreground(colorSubtle),
		value:   r.NewStyle().Bold(true),
		subtle:  r.NewStyle().Foreground(colorSubtle),
		header:  r.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(0, 2),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		danger:  r.NewStyle().Foreground(colorRed).Bold(true),
	}
}

// statusStyle picks the style matching a summary's status colour
func (s styles) statusStyle(color string) lipgloss.Style {
	switch color {
	case "green":
		return s.success
	case "yellow":
		return s.warning
	case "red":
		return s.danger
	default:
		return s.value
	}
}
