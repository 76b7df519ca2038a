package styles

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/orderbook/internal/config"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Contact:"
	ValueStyle    lipgloss.Style

	// Table styles
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
	BorderStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// Card style for single records such as the golden client
	CardStyle lipgloss.Style
	CardWidth = 60
)

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	ValueStyle = lipgloss.NewStyle()

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
		Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Error))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(CardWidth)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderTable renders rows under headers with the themed border.
// Rows listed in warn are drawn in the warning color.
func RenderTable(headers []string, rows [][]string, warn map[int]bool) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case warn[row]:
				return CellStyle.Foreground(WarningStyle.GetForeground())
			default:
				return CellStyle
			}
		}).
		String()
}

// RenderField renders "Label: value"
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
