// Package corpus holds the fixed paragraph set and picks typing texts from it.
package corpus

import (
	"math/rand"
	"time"
)

var paragraphs = []string{
	"Avoid daydreaming about the years to come.",
	"You are the most important person in your whole life.",
	"Always be true to who you are, and ignore what other people have to say about you.",
	"Only demonstrate your strength when it’s really required.",
}

// Texts returns a copy of the built-in paragraphs in their fixed order.
func Texts() []string {
	out := make([]string, len(paragraphs))
	copy(out, paragraphs)
	return out
}

// Picker selects paragraphs uniformly at random.
type Picker struct {
	rnd   *rand.Rand
	texts []string
}

// New returns a Picker over the built-in paragraphs. A zero seed seeds from the clock.
func New(seed int64) *Picker {
	return NewWithTexts(seed, paragraphs)
}

// NewWithTexts returns a Picker over the given texts, dropping duplicates and
// empty entries while keeping first-seen order.
func NewWithTexts(seed int64, texts []string) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Picker{
		rnd:   rand.New(rand.NewSource(seed)),
		texts: dedupe(texts),
	}
}

// Len reports how many distinct texts the picker chooses from.
func (p *Picker) Len() int {
	return len(p.texts)
}

// Pick returns one text. Consecutive picks are independent, so repeats happen.
func (p *Picker) Pick() string {
	if len(p.texts) == 0 {
		return ""
	}
	return p.texts[p.rnd.Intn(len(p.texts))]
}

func dedupe(texts []string) []string {
	seen := make(map[string]struct{}, len(texts))
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		if text == "" {
			continue
		}
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}
	return out
}
