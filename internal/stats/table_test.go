package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"#", "Chars", "Text"}
	rows := [][]string{
		{"1", "42", "abc"},
		{"12", "7", "hello"},
	}
	rightAlign := map[int]bool{0: true, 1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != " # Chars Text" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != " 1    42 abc" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "12     7 hello" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFitLastColumnTruncates(t *testing.T) {
	headers := []string{"#", "Text"}
	rows := [][]string{{"1", "abcdefghij"}, {"2", "abc"}}

	fitLastColumn(headers, rows, 7)
	if rows[0][1] != "abcd…" {
		t.Fatalf("expected truncated cell, got %q", rows[0][1])
	}
	if rows[1][1] != "abc" {
		t.Fatalf("expected short cell untouched, got %q", rows[1][1])
	}
}

func TestDisplayWidthCountsTypographicApostrophe(t *testing.T) {
	if got := displayWidth("it’s"); got != 4 {
		t.Fatalf("expected width 4, got %d", got)
	}
}
