package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DEBUG,
		"INFO":    INFO,
		"":        INFO,
		"warning": WARN,
		" error ": ERROR,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithLevel(DEBUG), WithClock(fixedClock)).
		WithPrefix("session").
		WithField("b", 2).
		WithField("a", "x")

	l.Debug("typed %q", 'c')
	assert.Equal(t, "2024-03-01 12:30:00.000 DEBUG [session] typed 'c' a=x b=2\n", buf.String())
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithLevel(WARN))
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN  shown")
	assert.Contains(t, buf.String(), "ERROR shown too")
}

func TestDefaultDiscards(t *testing.T) {
	l := New()
	assert.False(t, l.Enabled(ERROR))
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(WithOutput(&buf), WithClock(fixedClock))
	_ = parent.WithField("k", "v")
	parent.Info("plain")
	assert.NotContains(t, buf.String(), "k=v")
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typesprint.log")
	for i := 0; i < 2; i++ {
		l, f, err := OpenFile(path, INFO)
		require.NoError(t, err)
		l.Info("line %d", i)
		require.NoError(t, f.Close())
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "line 0")
	assert.Contains(t, string(data), "line 1")
}
