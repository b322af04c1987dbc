package tui

import "github.com/verte-zerg/typesprint/internal/session"

// display keeps what the session last pushed, for rendering.
type display struct {
	target   []rune
	states   []session.CharState
	input    []rune
	timeLeft int
	mistakes int
	wpm      int
	cpm      int
}

var _ session.View = (*display)(nil)

func (d *display) RenderTarget(text []rune) {
	d.target = append([]rune(nil), text...)
	d.states = make([]session.CharState, len(text))
}

func (d *display) SetCharState(index int, state session.CharState) {
	if index < 0 || index >= len(d.states) {
		return
	}
	d.states[index] = state
}

func (d *display) ShowTime(seconds int) { d.timeLeft = seconds }
func (d *display) ShowMistakes(n int)   { d.mistakes = n }
func (d *display) ShowWPM(n int)        { d.wpm = n }
func (d *display) ShowCPM(n int)        { d.cpm = n }
func (d *display) ClearInput()          { d.input = nil }

func (d *display) typeRune(r rune) {
	d.input = append(d.input, r)
}
