package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/aurora/internal/cli/formatter"
	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/intelligence"
	"github.com/alexanderramin/aurora/internal/seed"
	"github.com/alexanderramin/aurora/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxPrompts is how many prompts the number keys can reach.
const maxPrompts = 9

type snapshotLoadedMsg struct {
	snap *service.Snapshot
	err  error
}

type askDoneMsg struct {
	res *service.AskResult
	err error
}

// timerTickMsg carries the timer generation that scheduled it. Ticks from
// an older generation are dropped, so pausing and resuming never doubles
// the countdown speed.
type timerTickMsg struct {
	gen int
}

// tickFunc schedules the next timerTickMsg for gen.
type tickFunc func(gen int) tea.Cmd

func secondTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

// dashboardModel is the root bubbletea model of the study dashboard.
type dashboardModel struct {
	ctx     context.Context
	app     *App
	presets domain.TimerPresets
	tick    tickFunc
	keys    dashboardKeyMap

	input textinput.Model
	chat  viewport.Model
	bar   progress.Model
	help  help.Model

	timer    domain.FocusTimer
	timerGen int

	profile     domain.Profile
	tasks       []domain.Task
	plan        domain.WeeklyPlan
	history     []domain.ChatMessage
	followUps   []string
	recommended []domain.Task

	promptFocus bool
	cursor      int
	pending     bool
	loaded      bool
	status      string
	err         error

	width, height int
}

func newDashboardModel(ctx context.Context, app *App, tick tickFunc) dashboardModel {
	presets := app.TimerPresets
	if len(presets) == 0 {
		presets = domain.DefaultTimerPresets()
	}
	if tick == nil {
		tick = secondTick
	}

	in := textinput.New()
	in.Placeholder = "Ask Aurora about your week..."
	in.Prompt = "› "
	in.CharLimit = 500
	in.Focus()

	return dashboardModel{
		ctx:       ctx,
		app:       app,
		presets:   presets,
		tick:      tick,
		keys:      defaultDashboardKeys(),
		input:     in,
		chat:      viewport.New(60, 10),
		bar:       progress.New(progress.WithGradient(string(formatter.ColorHeader), string(formatter.ColorGreen)), progress.WithoutPercentage()),
		help:      help.New(),
		timer:     domain.NewFocusTimer(presets),
		followUps: intelligence.DefaultFollowUps(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadSnapshot())
}

func (m dashboardModel) loadSnapshot() tea.Cmd {
	ctx, dash := m.ctx, m.app.Dashboard
	return func() tea.Msg {
		snap, err := dash.Snapshot(ctx)
		return snapshotLoadedMsg{snap: snap, err: err}
	}
}

func (m dashboardModel) ask(message string) tea.Cmd {
	ctx, chat := m.ctx, m.app.Chat
	return func() tea.Msg {
		res, err := chat.Ask(ctx, message)
		return askDoneMsg{res: res, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case snapshotLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loaded = true
		m.profile = msg.snap.Profile
		m.tasks = msg.snap.Tasks
		m.plan = msg.snap.Plan
		m.history = msg.snap.History
		m.refreshChat()
		return m, nil

	case askDoneMsg:
		m.pending = false
		if msg.err != nil {
			m.status = "Could not reach Aurora: " + msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.applyAnswer(msg.res)
		return m, nil

	case timerTickMsg:
		if msg.gen != m.timerGen || !m.timer.Running {
			return m, nil
		}
		if m.timer.Tick() {
			m.status = m.presets[m.timer.Mode].Label + " complete."
			return m, nil
		}
		return m, m.tick(m.timerGen)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Timer):
		m.timer.Toggle()
		return m, m.restartTicks()

	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset(m.presets)
		return m, m.restartTicks()

	case key.Matches(msg, m.keys.Focus):
		return m.applyPreset(domain.TimerFocus)
	case key.Matches(msg, m.keys.Break):
		return m.applyPreset(domain.TimerBreak)
	case key.Matches(msg, m.keys.Deep):
		return m.applyPreset(domain.TimerDeep)

	case key.Matches(msg, m.keys.SwitchPane):
		m.promptFocus = !m.promptFocus
		if m.promptFocus {
			m.input.Blur()
			return m, nil
		}
		return m, m.input.Focus()
	}

	if m.promptFocus {
		return m.handlePromptKey(msg)
	}

	if key.Matches(msg, m.keys.Send) {
		text := m.input.Value()
		m.input.Reset()
		return m.submit(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dashboardModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prompts := m.prompts()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(prompts)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Send):
		if m.cursor < len(prompts) {
			return m.submit(prompts[m.cursor])
		}
	case key.Matches(msg, m.keys.Pick):
		i := int(msg.Runes[0] - '1')
		if i < len(prompts) {
			m.cursor = i
			return m.submit(prompts[i])
		}
	}
	return m, nil
}

// submit sends text to the assistant unless it is blank or a reply is
// still outstanding.
func (m dashboardModel) submit(text string) (tea.Model, tea.Cmd) {
	if m.pending || !hasText(text) {
		return m, nil
	}
	m.pending = true
	m.status = "Aurora is thinking..."
	return m, m.ask(text)
}

func (m dashboardModel) applyPreset(mode domain.TimerMode) (tea.Model, tea.Cmd) {
	m.timer.ApplyPreset(mode, m.presets)
	return m, m.restartTicks()
}

// restartTicks invalidates outstanding ticks and schedules a new one when
// the timer is running.
func (m *dashboardModel) restartTicks() tea.Cmd {
	m.timerGen++
	if !m.timer.Running {
		return nil
	}
	return m.tick(m.timerGen)
}

func (m *dashboardModel) applyAnswer(res *service.AskResult) {
	m.history = append(m.history, res.Question, res.Answer)
	if len(res.Response.FollowUpPrompts) > 0 {
		m.followUps = res.Response.FollowUpPrompts
	}
	m.recommended = res.Response.RecommendedTasks
	if res.Response.UpdatedPlan != nil {
		m.plan = res.Response.UpdatedPlan
	}
	m.cursor = 0
	m.refreshChat()
}

// prompts returns the selectable prompts: the latest follow-ups first, then
// the quick prompts, without duplicates.
func (m dashboardModel) prompts() []string {
	seen := make(map[string]bool)
	out := make([]string, 0, maxPrompts)
	for _, group := range [][]string{m.followUps, seed.QuickPrompts()} {
		for _, p := range group {
			if seen[p] || len(out) == maxPrompts {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// refreshChat wraps the history to the viewport width before setting it, so
// GotoBottom lands on the last wrapped line.
func (m *dashboardModel) refreshChat() {
	wrapped := lipgloss.NewStyle().Width(m.chat.Width).Render(formatter.FormatHistory(m.history))
	m.chat.SetContent(wrapped)
	m.chat.GotoBottom()
}

func (m *dashboardModel) resize() {
	chatWidth := m.width
	if m.width >= wideLayoutWidth {
		chatWidth = m.width / 2
	}
	m.chat.Width = max(chatWidth-4, 20)
	m.chat.Height = max(m.height/3, 6)
	m.input.Width = max(chatWidth-8, 20)
	m.bar.Width = max(chatWidth-10, 10)
	m.help.Width = m.width
	m.refreshChat()
}

func (m dashboardModel) now() time.Time {
	return m.app.now()
}
