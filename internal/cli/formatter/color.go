package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aurora/internal/domain"
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

// EffortColor returns the style for an effort tier.
func EffortColor(e domain.Effort) lipgloss.Style {
	switch e {
	case domain.EffortIntensive:
		return StyleRed
	case domain.EffortModerate:
		return StyleYellow
	case domain.EffortLight:
		return StyleGreen
	default:
		return StyleDim
	}
}

// EffortBadge returns a colored effort indicator such as "● INTENSIVE".
func EffortBadge(e domain.Effort) string {
	if e == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return EffortColor(e).Render("● " + strings.ToUpper(string(e)))
}

// UrgencyColor colors by calendar days remaining: red inside the urgent
// window, yellow within a week.
func UrgencyColor(days int) lipgloss.Style {
	switch {
	case days <= 2:
		return StyleRed
	case days <= 7:
		return StyleYellow
	default:
		return StyleFg
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
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
