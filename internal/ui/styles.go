package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorLow       = lipgloss.Color("78")  // Green - low bias
	colorMid       = lipgloss.Color("214") // Amber - mid bias
	colorHigh      = lipgloss.Color("196") // Red - high bias
)

// CardBorder wraps an unselected card.
var CardBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// SelectedCardBorder wraps the card under the cursor.
var SelectedCardBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorHighlight).
	Padding(0, 1)

// TitleStyle for card titles.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// MetaStyle for the source/date/lang line and the confidence label.
var MetaStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)

// SourceBadge style for source name badges.
var SourceBadge = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// TagChip style for tag chips.
var TagChip = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("237")).
	Padding(0, 1).
	MarginRight(1)

// IdeaStyle for the main-idea line.
var IdeaStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("251")).
	Italic(true)

// URLStyle for the outbound link.
var URLStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("32")).
	Underline(true)

// SummaryStyle for the count/last-updated line above the list.
var SummaryStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

// ErrorStyle for the fixed load-failure message.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// ControlsStyle for the filter controls line.
var ControlsStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// ControlValue highlights the current value of a control.
var ControlValue = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Bold(true)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in the status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in the status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// FilterBar style for the search input bar.
var FilterBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("240")).
	Padding(0, 1)

// HelpStyle for the empty-list hint.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// biasColor picks the bar color for a clamped bias score.
func biasColor(score float64) lipgloss.Color {
	switch {
	case score >= 67:
		return colorHigh
	case score >= 34:
		return colorMid
	default:
		return colorLow
	}
}
