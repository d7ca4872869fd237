package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aurora/internal/domain"
)

// FormatProfile renders the student card with goals and strengths.
func FormatProfile(p domain.Profile) string {
	name := p.Name
	if name == "" {
		name = "Student"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(name), Dim(fmt.Sprintf("week #%d", p.SemesterWeek))))
	if len(p.Goals) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render("GOALS"))
		b.WriteString("\n")
		b.WriteString(Bullets(p.Goals))
		b.WriteString("\n")
	}
	if len(p.Strengths) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render("STRENGTHS"))
		b.WriteString("\n")
		b.WriteString(Bullets(p.Strengths))
		b.WriteString("\n")
	}
	return RenderBox("Profile", strings.TrimRight(b.String(), "\n"))
}

// FormatAchievements renders the momentum tracker.
func FormatAchievements(items []domain.Achievement) string {
	var b strings.Builder
	b.WriteString(Header("Momentum tracker"))
	b.WriteString("\n")
	for _, a := range items {
		b.WriteString(fmt.Sprintf("%s %s\n  %s\n", StyleGreen.Render("✔"), Bold(a.Title), Dim(a.Detail)))
	}
	return b.String()
}

// FormatResources renders the resource deck.
func FormatResources(items []domain.Resource) string {
	var b strings.Builder
	b.WriteString(Header("Resource drop"))
	b.WriteString("\n")
	for _, r := range items {
		b.WriteString(fmt.Sprintf("\n%s %s\n  %s\n  %s\n",
			StylePurple.Render("["+r.Tag+"]"),
			Bold(r.Title),
			r.Description,
			StyleBlue.Underline(true).Render(r.URL),
		))
	}
	return b.String()
}
