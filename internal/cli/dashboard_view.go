package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/cli/formatter"
	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

// wideLayoutWidth is the terminal width at which panes sit side by side.
const wideLayoutWidth = 110

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 1)
	activePaneStyle = paneStyle.BorderForeground(formatter.ColorHeader)
)

func (m dashboardModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Could not load dashboard: "+m.err.Error()) + "\n"
	}
	if !m.loaded {
		return formatter.Dim("Loading your semester...") + "\n"
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.viewTasks(),
		m.viewPlan(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.viewChat(),
		m.viewPrompts(),
		m.viewTimer(),
	)

	var body string
	if m.width >= wideLayoutWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, right, left)
	}

	parts := []string{m.viewHeader(), body}
	if m.status != "" {
		parts = append(parts, formatter.StyleYellow.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n") + "\n"
}

func (m dashboardModel) viewHeader() string {
	p := m.profile
	name := p.Name
	if name == "" {
		name = "Student"
	}
	line := fmt.Sprintf("%s  %s  %s",
		formatter.StyleHeader.Render("Aurora · "+name),
		formatter.Dim(fmt.Sprintf("Week %d", p.SemesterWeek)),
		formatter.Dim("Next deadline: "+nextDeadline(m.tasks, m.now())),
	)
	goals := p.Goals
	if len(goals) > 2 {
		goals = goals[:2]
	}
	if len(goals) == 0 {
		return line
	}
	return line + "\n" + formatter.StylePurple.Render("Goals: "+strings.Join(goals, " · "))
}

// nextDeadline names the weekday of the earliest task due today or later.
func nextDeadline(tasks []domain.Task, now time.Time) string {
	var next *domain.Task
	for i := range tasks {
		t := &tasks[i]
		if domain.CalendarDaysUntil(t.Due, now) < 0 {
			continue
		}
		if next == nil || t.Due.Before(next.Due) {
			next = t
		}
	}
	if next == nil {
		return "none"
	}
	return next.Due.In(now.Location()).Weekday().String()
}

func (m dashboardModel) viewTasks() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Tasks"))
	b.WriteString("\n")
	if len(m.tasks) == 0 {
		b.WriteString(formatter.Dim("No tasks yet."))
	}
	now := m.now()
	for i, t := range m.tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s  %s",
			formatter.EffortBadge(t.Effort),
			t.FocusLabel(),
			formatter.UrgencyStyled(t.Due, now),
		))
	}
	if len(m.recommended) > 0 {
		b.WriteString("\n\n")
		b.WriteString(formatter.Bold("Recommended next"))
		for _, t := range m.recommended {
			b.WriteString("\n")
			b.WriteString(formatter.StyleGreen.Render("→ ") + t.FocusLabel())
		}
	}
	return paneStyle.Render(b.String())
}

func (m dashboardModel) viewPlan() string {
	var b strings.Builder
	b.WriteString(formatter.Header("This week"))
	today := m.now().Weekday().String()
	for _, e := range m.plan {
		focus := formatter.Dim("open")
		if len(e.FocusAreas) > 0 {
			focus = e.FocusAreas[0]
			if extra := len(e.FocusAreas) - 1; extra > 0 {
				focus += formatter.Dim(fmt.Sprintf(" +%d", extra))
			}
		}
		day := fmt.Sprintf("%-9s", e.Day)
		if e.Day == today {
			day = formatter.StyleGreen.Bold(true).Render(day)
		} else {
			day = formatter.Bold(day)
		}
		b.WriteString("\n")
		b.WriteString(day + " " + focus)
	}
	return paneStyle.Render(b.String())
}

func (m dashboardModel) viewChat() string {
	style := paneStyle
	if !m.promptFocus {
		style = activePaneStyle
	}
	return style.Render(m.chat.View() + "\n" + m.input.View())
}

func (m dashboardModel) viewPrompts() string {
	style := paneStyle
	if m.promptFocus {
		style = activePaneStyle
	}
	var b strings.Builder
	b.WriteString(formatter.Header("Try next"))
	for i, p := range m.prompts() {
		marker := "  "
		if m.promptFocus && i == m.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("\n%s%s %s", marker, formatter.StyleYellow.Render(fmt.Sprintf("%d.", i+1)), p))
	}
	return style.Render(b.String())
}

func (m dashboardModel) viewTimer() string {
	preset := m.presets[m.timer.Mode]
	state := "paused"
	if m.timer.Running {
		state = "running"
	}
	lines := []string{
		formatter.Header("Focus timer"),
		fmt.Sprintf("%s  %s  %s",
			formatter.Bold(preset.Label),
			formatter.StyleGreen.Bold(true).Render(m.timer.Clock()),
			formatter.Dim(state),
		),
		m.bar.ViewAs(m.timer.Elapsed(m.presets)),
		formatter.Dim(fmt.Sprintf("Cycles completed: %d", m.timer.CyclesCompleted)),
	}
	if m.timer.Mode == domain.TimerBreak {
		lines = append(lines, formatter.StyleYellow.Render(breakTip(m.timer.CyclesCompleted)))
	}
	return paneStyle.Render(strings.Join(lines, "\n"))
}

// breakTip rotates through the wellbeing tips as focus cycles complete.
func breakTip(cycles int) string {
	tips := scheduler.WellbeingTips()
	return tips[cycles%len(tips)]
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
