// Package spc loads the SPC reference table that maps signalling point
// codes to site names.
//
// The reference file is line oriented: a code, a run of whitespace, then
// the name (which may itself contain spaces):
//
//	100	EastSite
//	2041    North Exchange 2
//
// A repeated code overwrites the earlier entry.
package spc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/jalad-shrimali/gtrc-filter/textutil"
)

// ErrMalformedMappingLine reports a reference line that has a code but no name.
var ErrMalformedMappingLine = errors.New("malformed mapping line")

// MalformedLineError carries the offending line; it matches ErrMalformedMappingLine.
type MalformedLineError struct {
	Line int // 1-based
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%v: line %d %q has no name", ErrMalformedMappingLine, e.Line, e.Text)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedMappingLine }

// Lookuper resolves a code to its name.
type Lookuper interface {
	Lookup(code string) (name string, ok bool)
}

// Table is the in-memory code → name map. It is read-only once built.
type Table map[string]string

// Lookup implements Lookuper with exact, case-sensitive matching.
func (t Table) Lookup(code string) (string, bool) {
	name, ok := t[code]
	return name, ok
}

// Parse builds a Table from decoded reference lines. Whitespace-only
// lines are skipped.
func Parse(lines []string) (Table, error) {
	t := make(Table, len(lines))
	for i, line := range lines {
		code, name, ok := splitLine(line)
		if code == "" {
			continue
		}
		if !ok {
			return nil, &MalformedLineError{Line: i + 1, Text: line}
		}
		t[code] = name
	}
	return t, nil
}

// Load reads and parses reference content from r.
func Load(r io.Reader) (Table, error) {
	lines, err := textutil.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("read spc: %w", err)
	}
	return Parse(lines)
}

// LoadFile opens path and loads it. A missing file surfaces as an
// error matching os.ErrNotExist.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// splitLine cuts line at its first whitespace run after the code.
// ok is false when nothing but the code is present.
func splitLine(line string) (code, name string, ok bool) {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, "", false
	}
	name = strings.TrimSpace(s[i:])
	if name == "" {
		return s[:i], "", false
	}
	return s[:i], name, true
}
