package formatter

import (
	"fmt"
	"strings"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the lipgloss style corresponding to a goal status.
func StatusColor(status domain.GoalStatus) lipgloss.Style {
	switch status {
	case domain.StatusCompleted:
		return StyleGreen
	case domain.StatusAhead:
		return StyleGreen
	case domain.StatusOnTrack:
		return StyleBlue
	case domain.StatusBehind:
		return StyleYellow
	case domain.StatusOverdue:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusPill returns a colored status indicator such as "● ON TRACK".
func StatusPill(status domain.GoalStatus) string {
	switch status {
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ COMPLETED")
	case domain.StatusAhead:
		return StyleGreen.Render("● AHEAD")
	case domain.StatusOnTrack:
		return StyleBlue.Render("● ON TRACK")
	case domain.StatusBehind:
		return StyleYellow.Render("● BEHIND")
	case domain.StatusOverdue:
		return StyleRed.Render("▲ OVERDUE")
	default:
		return StyleDim.Render("○ UNKNOWN")
	}
}

// TypeBadge returns a capitalized, purple-styled goal type label.
func TypeBadge(t domain.GoalType) string {
	s := string(t)
	if s == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	return StylePurple.Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
