package routing

import (
	"log/slog"
	"strings"
	"unicode"
)

// ParseRecords decodes cleaned text into records.
//
// The text is cut into blocks at whitespace-only lines. Column bounds
// are inferred per block: a character position is occupied when any
// line of the block has a non-space rune there, and every maximal run of
// occupied positions is one column. Each line then yields one Record,
// its cells being the trimmed text under each column; blank cells are
// null. Columns past the tenth are dropped and missing ones stay null.
// Tabs count as a single position.
func ParseRecords(text string) []Record {
	var (
		recs  []Record
		block [][]rune
	)
	flush := func() {
		if len(block) > 0 {
			recs = append(recs, parseBlock(block)...)
			block = block[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, []rune(line))
	}
	flush()
	return recs
}

type span struct{ start, end int } // [start, end) in runes

func parseBlock(lines [][]rune) []Record {
	spans := columnSpans(lines)
	if len(spans) > NumFields {
		slog.Debug("dropping extra columns", "columns", len(spans), "kept", NumFields)
		spans = spans[:NumFields]
	}

	recs := make([]Record, 0, len(lines))
	for _, l := range lines {
		var r Record
		for i, sp := range spans {
			r[i] = cell(l, sp)
		}
		recs = append(recs, r)
	}
	return recs
}

func columnSpans(lines [][]rune) []span {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	occupied := make([]bool, width)
	for _, l := range lines {
		for i, r := range l {
			if !unicode.IsSpace(r) {
				occupied[i] = true
			}
		}
	}

	var spans []span
	start := -1
	for i, occ := range occupied {
		switch {
		case occ && start < 0:
			start = i
		case !occ && start >= 0:
			spans = append(spans, span{start, i})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, span{start, width})
	}
	return spans
}

func cell(line []rune, sp span) Cell {
	if sp.start >= len(line) {
		return Cell{}
	}
	v := strings.TrimSpace(string(line[sp.start:min(sp.end, len(line))]))
	if v == "" {
		return Cell{}
	}
	return Text(v)
}
