// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/verte-zerg/typesprint/internal/model"
)

// CharsPerWord is the conventional word length used for WPM.
const CharsPerWord = 5

// WPM computes words per minute from correct characters over elapsed seconds.
// It is 0 when no time has elapsed and never negative.
func WPM(correct, elapsedSeconds int) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	minutes := float64(elapsedSeconds) / 60.0
	wpm := Round((float64(correct) / CharsPerWord) / minutes)
	if wpm < 0 {
		return 0
	}
	return wpm
}

// CPM is the number of correctly typed characters so far.
func CPM(typed, mistakes int) int {
	if c := typed - mistakes; c > 0 {
		return c
	}
	return 0
}

// Accuracy returns the correct share of typed characters in [0, 1].
func Accuracy(typed, mistakes int) float64 {
	if typed <= 0 {
		return 0
	}
	return float64(CPM(typed, mistakes)) / float64(typed)
}

// Round rounds half up, so 4.5 becomes 5 and -4.5 becomes -4.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// RenderResult prints a summary block for one session.
func RenderResult(w io.Writer, r model.Result) error {
	if !r.Started() {
		_, err := fmt.Fprintln(w, "No characters typed.")
		return err
	}
	status := "time up"
	if r.Finished {
		status = "text complete"
	} else if r.Running {
		status = "interrupted"
	}
	lines := []string{
		fmt.Sprintf("Result (%s)", status),
		fmt.Sprintf("WPM: %d", r.WPM),
		fmt.Sprintf("CPM: %d", r.CPM),
		fmt.Sprintf("Mistakes: %d", r.Mistakes),
		fmt.Sprintf("Accuracy: %.2f%%", r.Accuracy*100),
		fmt.Sprintf("Progress: %d/%d", r.Typed, r.Length),
		fmt.Sprintf("Elapsed: %ds", r.ElapsedSeconds),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderTexts prints the paragraphs as a table. Text cells are truncated to
// fit maxWidth when it is positive.
func RenderTexts(w io.Writer, texts []string, maxWidth int) error {
	if len(texts) == 0 {
		_, err := fmt.Fprintln(w, "No texts available.")
		return err
	}
	headers := []string{"#", "Chars", "Words", "Text"}
	rows := make([][]string, 0, len(texts))
	for i, text := range texts {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(utf8.RuneCountInString(text)),
			strconv.Itoa(wordCount(text)),
			text,
		})
	}
	if maxWidth > 0 {
		fitLastColumn(headers, rows, maxWidth)
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func wordCount(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		if r == ' ' {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
