package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typesprint/internal/session"
)

const tickInterval = time.Second

// tickMsg carries the generation of the schedule that produced it. Stopping
// bumps the generation so a tick already in flight is dropped.
type tickMsg struct {
	gen int
}

// scheduler implements session.Ticker on top of tea.Tick. It keeps at most
// one outstanding tick; Update hands the pending command back to Bubble Tea.
type scheduler struct {
	interval time.Duration
	gen      int
	active   bool
	pending  tea.Cmd
}

var _ session.Ticker = (*scheduler)(nil)

func newScheduler(interval time.Duration) *scheduler {
	return &scheduler{interval: interval}
}

func (s *scheduler) StartTicking() {
	s.gen++
	s.active = true
	s.pending = s.next()
}

func (s *scheduler) StopTicking() {
	s.gen++
	s.active = false
	s.pending = nil
}

// accept reports whether msg belongs to the live schedule.
func (s *scheduler) accept(msg tickMsg) bool {
	return s.active && msg.gen == s.gen
}

// rearm schedules the tick after an accepted one.
func (s *scheduler) rearm() {
	if s.active {
		s.pending = s.next()
	}
}

func (s *scheduler) take() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

func (s *scheduler) next() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
