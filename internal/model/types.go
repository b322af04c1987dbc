// Package model defines shared data structures.
package model

// DefaultMaxTime is the time budget of one test in seconds.
const DefaultMaxTime = 60

// Config defines test settings.
type Config struct {
	MaxTime  int
	Seed     int64
	LogFile  string
	LogLevel string
}

// Result summarizes one session at the moment it was read.
type Result struct {
	Text           string
	Length         int
	Typed          int
	Mistakes       int
	TimeLeft       int
	ElapsedSeconds int
	WPM            int
	CPM            int
	Accuracy       float64
	Running        bool
	Finished       bool
}

// Started reports whether any character was typed in the session.
func (r Result) Started() bool {
	return r.Typed > 0
}

// Correct returns the number of positions typed correctly.
func (r Result) Correct() int {
	return r.Typed - r.Mistakes
}
