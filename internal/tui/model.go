// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typesprint/internal/logger"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	session *session.Session
	display *display
	sched   *scheduler
	keys    keyMap
	help    help.Model
	log     *logger.Logger

	width  int
	height int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	doneStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// NewModel constructs a typing TUI model with a freshly reset session.
func NewModel(cfg model.Config, texts session.TextSource, log *logger.Logger) *Model {
	if log == nil {
		log = logger.Default()
	}
	m := &Model{
		display: &display{},
		sched:   newScheduler(tickInterval),
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     log.WithPrefix("tui"),
	}
	m.session = session.New(m.display, m.sched, texts,
		session.WithMaxTime(cfg.MaxTime),
		session.WithLogger(log),
	)
	return m
}

// Result summarizes the session on screen.
func (m *Model) Result() model.Result {
	return m.session.Result()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if !m.sched.accept(msg) {
			m.log.Debug("dropped stale tick gen=%d", msg.gen)
			return m, nil
		}
		m.session.Tick()
		m.sched.rearm()
		return m, m.sched.take()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.session.Reset()
			return m, m.sched.take()
		}
		switch msg.Type {
		case tea.KeySpace:
			m.handleRunes([]rune{' '})
		case tea.KeyRunes:
			m.handleRunes(msg.Runes)
		}
		return m, m.sched.take()
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.display.target) == 0 {
		return ""
	}
	styledRunes := buildStyledRunes(m.display.target, m.display.states)
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.height < 4 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 2
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	helpLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.help.View(m.keys))
	return body + "\n" + footerLine + "\n" + helpLine
}

// handleRunes feeds each rune through the input buffer into the session, the
// way each keystroke lands in the text field before being checked.
func (m *Model) handleRunes(runes []rune) {
	for _, r := range runes {
		m.display.typeRune(r)
		m.session.SubmitChar(r)
	}
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Time Left %ds", m.display.timeLeft),
		fmt.Sprintf("Mistakes %d", m.display.mistakes),
		fmt.Sprintf("WPM %d", m.display.wpm),
		fmt.Sprintf("CPM %d", m.display.cpm),
	}
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if status := m.status(); status != "" {
		footer += "  " + doneStyle.Render(status)
	}
	return footer
}

func (m *Model) status() string {
	if m.session == nil || m.session.Running() {
		return ""
	}
	r := m.session.Result()
	switch {
	case r.Finished:
		return "Done"
	case r.TimeLeft == 0:
		return "Time's up"
	default:
		return ""
	}
}
