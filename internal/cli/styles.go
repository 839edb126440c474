// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7C9EF5")
	// SuccessColor indicates low risk or successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates medium risk or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates high risk or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats low-risk scores and success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats medium-risk scores and warnings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats high-risk scores and errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}

// ScoreStyle returns the style for a risk score: green below 30, yellow
// below 60, red above.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score < 30:
		return SuccessStyle
	case score < 60:
		return WarningStyle
	default:
		return ErrorStyle
	}
}

// FormatScore renders a risk score with its severity color.
func FormatScore(score float64) string {
	return ScoreStyle(score).Render(fmt.Sprintf("%.0f", score))
}

// FormatVerdict renders a price verdict with its severity color.
func FormatVerdict(verdict string) string {
	switch verdict {
	case "fair":
		return SuccessStyle.Render(verdict)
	case "high":
		return ErrorStyle.Render(verdict)
	case "low":
		return WarningStyle.Render(verdict)
	default:
		return SubtleStyle.Render(verdict)
	}
}
