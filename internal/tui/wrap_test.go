package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typesprint/internal/session"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	states := []session.CharState{session.Correct, session.Active}

	runes := buildStyledRunes(target, states)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	target := []rune("a")
	states := []session.CharState{session.Correct}

	runes := buildStyledRunes(target, states)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	states := []session.CharState{session.Correct, session.Incorrect}

	runes := buildStyledRunes(target, states)
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	target := []rune("one two")
	states := make([]session.CharState, len(target))
	states[0] = session.Correct
	states[1] = session.Active

	runes := buildStyledRunes(target, states)
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("n") {
		t.Fatalf("expected underlined current word style at cursor")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
	if runes[6].s != pendingStyle.Render("o") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesCursorOnSpace(t *testing.T) {
	target := []rune("ab cd")
	states := []session.CharState{session.Correct, session.Correct, session.Active, session.Pending, session.Pending}

	runes := buildStyledRunes(target, states)
	if runes[2].s != pendingStyle.Underline(true).Render(" ") {
		t.Fatalf("expected underlined pending space at cursor")
	}
	if runes[3].s != currentWordStyle.Render("c") {
		t.Fatalf("expected next word highlighted while cursor is on the space")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	states := []session.CharState{session.Correct, session.Incorrect, session.Active}

	runes := buildStyledRunes(target, states)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected marker to keep space semantics for wrapping")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	target := []rune("aa bb cc")
	runes := buildStyledRunes(target, nil)

	got := wrapStyledRunes(runes, 5)
	want := plain("aa") + "\n" + plain("bb cc")
	if got != want {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapStyledRunesHardBreaksLongWord(t *testing.T) {
	runes := buildStyledRunes([]rune("abcdef"), nil)

	got := wrapStyledRunes(runes, 4)
	want := plain("abcd") + "\n" + plain("ef")
	if got != want {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func plain(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(pendingStyle.Render(string(r)))
	}
	return b.String()
}
