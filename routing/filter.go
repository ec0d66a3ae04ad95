package routing

import "strings"

/* ──────────── line markers ──────────── */

const (
	markerStart = "PTERM"   // opens a capture region
	markerRow   = "ACTIVE:" // a route row inside a region
	markerEnd   = "END"     // closes the region

	prefixWidth = 8 // characters dropped from the front of a kept row
)

// FilterState is the capture state of a LineFilter.
type FilterState int

const (
	Seeking FilterState = iota // outside a capture region
	Active                     // inside one
)

func (s FilterState) String() string {
	switch s {
	case Seeking:
		return "seeking"
	case Active:
		return "active"
	}
	return "unknown"
}

// LineFilter is the two-state scanner that picks route rows out of the
// raw log. The zero value starts in Seeking.
//
// Each line runs three checks in a fixed order, and one line may hit
// several of them:
//
//  1. Seeking and the line holds "PTERM": switch to Active.
//  2. Active and the line holds "ACTIVE:": emit the line minus its
//     first 8 characters, newline terminated.
//  3. Active and the line holds "END": switch back to Seeking.
type LineFilter struct {
	state FilterState
}

func (f *LineFilter) State() FilterState { return f.state }

// Step feeds one raw line (without terminator) through the filter and
// returns the cleaned line when one is emitted.
func (f *LineFilter) Step(line string) (string, bool) {
	if f.state == Seeking && strings.Contains(line, markerStart) {
		f.state = Active
	}
	if f.state != Active {
		return "", false
	}

	var out string
	emit := strings.Contains(line, markerRow)
	if emit {
		out = dropPrefix(line, prefixWidth) + "\n"
	}
	if strings.Contains(line, markerEnd) {
		f.state = Seeking
	}
	return out, emit
}

// Filter runs a fresh LineFilter over lines. An unterminated region
// captures until the last line.
func Filter(lines []string) []string {
	var (
		f   LineFilter
		out []string
	)
	for _, l := range lines {
		if c, ok := f.Step(l); ok {
			out = append(out, c)
		}
	}
	return out
}

// dropPrefix removes the first n characters (not bytes) of s.
func dropPrefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
