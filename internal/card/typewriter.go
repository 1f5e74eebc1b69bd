package card

import (
	"strings"
	"unicode/utf8"
)

const DefaultCharsPerSecond = 18.0

// Typewriter reveals a script one rune at a time.
type Typewriter struct {
	lines []string
	cps   float64
	total int
}

func NewTypewriter(lines []string, cps float64) *Typewriter {
	if cps <= 0 {
		cps = DefaultCharsPerSecond
	}
	total := 0
	for _, l := range lines {
		total += utf8.RuneCountInString(l)
	}
	return &Typewriter{lines: lines, cps: cps, total: total}
}

// Visible returns the revealed lines after elapsed seconds and whether the
// whole script is shown.
func (tw *Typewriter) Visible(elapsed float64) ([]string, bool) {
	if elapsed < 0 {
		elapsed = 0
	}
	budget := int(elapsed * tw.cps)
	if budget >= tw.total {
		return tw.lines, true
	}

	out := make([]string, 0, len(tw.lines))
	for _, l := range tw.lines {
		if budget <= 0 {
			break
		}
		n := utf8.RuneCountInString(l)
		if n <= budget {
			out = append(out, l)
			budget -= n
			continue
		}
		out = append(out, string([]rune(l)[:budget]))
		budget = 0
	}
	return out, false
}

// Text is Visible joined with newlines.
func (tw *Typewriter) Text(elapsed float64) string {
	lines, _ := tw.Visible(elapsed)
	return strings.Join(lines, "\n")
}

// Duration is the time needed to reveal everything.
func (tw *Typewriter) Duration() float64 {
	return float64(tw.total) / tw.cps
}
