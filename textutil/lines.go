// Package textutil decodes line-oriented text inputs.
//
// Both the routing log and the SPC reference file arrive as loosely
// controlled UTF-8. Ill-formed byte sequences are replaced with U+FFFD
// instead of failing the conversion, and a leading byte order mark is
// dropped so it never sticks to the first token of the file.
package textutil

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Replacement is the rune substituted for every ill-formed byte sequence.
const Replacement = '�'

// Decode returns b as valid UTF-8 text.
func Decode(b []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), b)
	if err != nil {
		// the replacing decoder does not fail on input; keep the bytes usable anyway
		return strings.ToValidUTF8(string(b), string(Replacement))
	}
	return string(out)
}

// Lines decodes b and splits it into lines without their terminators.
// "\r\n" and "\n" both end a line; a final terminator does not open an
// extra empty line.
func Lines(b []byte) []string {
	return split(Decode(b))
}

// ReadLines is Lines over a reader.
func ReadLines(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return nil, err
	}
	return split(string(b)), nil
}

func split(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
