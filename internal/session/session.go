// Package session tracks one timed typing attempt against a target paragraph.
//
// A Session is driven by three events: SubmitChar for each typed rune, Reset
// for a new attempt, and Tick once per second while the test is running. It
// never creates timers itself; it asks a host-owned Ticker to start and stop
// delivering ticks, and pushes every visible change through a View.
package session

import (
	"github.com/verte-zerg/typesprint/internal/logger"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
)

// CharState is the display state of one target position.
type CharState int

const (
	Pending CharState = iota
	Active
	Correct
	Incorrect
)

func (s CharState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// View receives display updates.
type View interface {
	RenderTarget(text []rune)
	SetCharState(index int, state CharState)
	ShowTime(seconds int)
	ShowMistakes(n int)
	ShowWPM(n int)
	ShowCPM(n int)
	ClearInput()
}

// Ticker is the host scheduler. After StartTicking it calls Session.Tick about
// once per second until StopTicking.
type Ticker interface {
	StartTicking()
	StopTicking()
}

// TextSource supplies the paragraph for each new attempt.
type TextSource interface {
	Pick() string
}

// Session holds the state of the current attempt.
type Session struct {
	view    View
	ticker  Ticker
	texts   TextSource
	log     *logger.Logger
	maxTime int

	target   []rune
	states   []CharState
	index    int
	mistakes int
	timeLeft int
	running  bool
	ticking  bool
	wpm      int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default is logger.Default().
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithMaxTime sets the time budget in seconds. Values <= 0 are ignored.
func WithMaxTime(seconds int) Option {
	return func(s *Session) {
		if seconds > 0 {
			s.maxTime = seconds
		}
	}
}

// New creates a session and performs the first Reset, so the view is fully
// rendered on return.
func New(view View, ticker Ticker, texts TextSource, opts ...Option) *Session {
	s := &Session{
		view:    view,
		ticker:  ticker,
		texts:   texts,
		maxTime: model.DefaultMaxTime,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Default()
	}
	s.log = s.log.WithPrefix("session")
	s.Reset()
	return s
}

// Start begins the countdown. It is a no-op while already running.
func (s *Session) Start() {
	if s.running {
		return
	}
	s.running = true
	s.startTicker()
	s.log.Info("started: %d chars, %ds", len(s.target), s.timeLeft)
}

// SubmitChar classifies typed against the current position and advances.
// Once the text is exhausted or time is up it only terminates the session.
func (s *Session) SubmitChar(typed rune) {
	if s.index >= len(s.target) || s.timeLeft <= 0 {
		s.terminate()
		return
	}
	if !s.running {
		s.Start()
	}

	expected := s.target[s.index]
	if typed == expected {
		s.setState(s.index, Correct)
		s.log.Debug("pos %d typed %q: correct", s.index, typed)
	} else {
		s.mistakes++
		s.setState(s.index, Incorrect)
		s.log.Debug("pos %d typed %q want %q: incorrect", s.index, typed, expected)
	}
	s.index++
	if s.index < len(s.target) {
		s.setState(s.index, Active)
	}

	s.view.ShowMistakes(s.mistakes)
	s.view.ShowCPM(s.CPM())

	if s.index == len(s.target) {
		s.terminate()
	}
}

// Tick advances the countdown by one second and refreshes WPM. Ticks that
// arrive while the session is not running are ignored.
func (s *Session) Tick() {
	if !s.running || s.timeLeft <= 0 {
		return
	}
	s.timeLeft--
	s.wpm = s.computeWPM()
	s.view.ShowTime(s.timeLeft)
	s.view.ShowWPM(s.wpm)
	if s.timeLeft == 0 {
		s.terminate()
	}
}

// Reset discards the current attempt and starts over with a freshly picked
// paragraph.
func (s *Session) Reset() {
	s.stopTicker()
	s.running = false
	s.target = []rune(s.texts.Pick())
	s.states = make([]CharState, len(s.target))
	s.index = 0
	s.mistakes = 0
	s.timeLeft = s.maxTime
	s.wpm = 0

	s.view.ClearInput()
	s.view.RenderTarget(s.target)
	if len(s.target) > 0 {
		s.setState(0, Active)
	}
	s.view.ShowTime(s.timeLeft)
	s.view.ShowMistakes(0)
	s.view.ShowWPM(0)
	s.view.ShowCPM(0)
	s.log.Info("reset: %d chars", len(s.target))
}

func (s *Session) terminate() {
	s.stopTicker()
	s.view.ClearInput()
	if !s.running {
		return
	}
	s.running = false
	r := s.Result()
	s.log.Info("finished: wpm=%d cpm=%d mistakes=%d typed=%d/%d elapsed=%ds",
		r.WPM, r.CPM, r.Mistakes, r.Typed, r.Length, r.ElapsedSeconds)
}

func (s *Session) startTicker() {
	if s.ticking {
		s.ticker.StopTicking()
	}
	s.ticking = true
	s.ticker.StartTicking()
}

func (s *Session) stopTicker() {
	if !s.ticking {
		return
	}
	s.ticking = false
	s.ticker.StopTicking()
}

func (s *Session) setState(i int, state CharState) {
	s.states[i] = state
	s.view.SetCharState(i, state)
}

func (s *Session) computeWPM() int {
	return stats.WPM(s.CPM(), s.Elapsed())
}

// CPM returns the number of correctly typed characters.
func (s *Session) CPM() int {
	return stats.CPM(s.index, s.mistakes)
}

// WPM returns the WPM computed at the last tick.
func (s *Session) WPM() int {
	return s.wpm
}

// Elapsed returns whole seconds counted down so far.
func (s *Session) Elapsed() int {
	return s.maxTime - s.timeLeft
}

// Index returns the position of the next character to type.
func (s *Session) Index() int { return s.index }

// Mistakes returns the number of incorrect positions.
func (s *Session) Mistakes() int { return s.mistakes }

// TimeLeft returns the remaining seconds.
func (s *Session) TimeLeft() int { return s.timeLeft }

// Running reports whether the countdown is active.
func (s *Session) Running() bool { return s.running }

// MaxTime returns the time budget in seconds.
func (s *Session) MaxTime() int { return s.maxTime }

// Target returns a copy of the paragraph being typed.
func (s *Session) Target() []rune {
	out := make([]rune, len(s.target))
	copy(out, s.target)
	return out
}

// States returns a copy of the per-position display states.
func (s *Session) States() []CharState {
	out := make([]CharState, len(s.states))
	copy(out, s.states)
	return out
}

// Result summarizes the current attempt.
func (s *Session) Result() model.Result {
	return model.Result{
		Text:           string(s.target),
		Length:         len(s.target),
		Typed:          s.index,
		Mistakes:       s.mistakes,
		TimeLeft:       s.timeLeft,
		ElapsedSeconds: s.Elapsed(),
		WPM:            s.computeWPM(),
		CPM:            s.CPM(),
		Accuracy:       stats.Accuracy(s.index, s.mistakes),
		Running:        s.running,
		Finished:       len(s.target) > 0 && s.index == len(s.target),
	}
}
