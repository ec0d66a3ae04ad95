package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_Terminators(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines([]byte("a\nb\n")))
	assert.Equal(t, []string{"a", "b"}, Lines([]byte("a\r\nb")))
	assert.Equal(t, []string{"a", "", "b"}, Lines([]byte("a\n\nb\n")))
	assert.Nil(t, Lines(nil))
	assert.Equal(t, []string{""}, Lines([]byte("\n")))
}

func TestLines_ReplacesInvalidBytes(t *testing.T) {
	lines := Lines([]byte("ok\nbad\xff\xfeline\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "ok", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "bad"))
	assert.True(t, strings.HasSuffix(lines[1], "line"))
	assert.Contains(t, lines[1], string(Replacement))
}

func TestLines_DropsByteOrderMark(t *testing.T) {
	lines := Lines([]byte("\xef\xbb\xbf100 Alpha\n"))
	require.Len(t, lines, 1)
	assert.Equal(t, "100 Alpha", lines[0])
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("x\r\ny\xc3\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "x", lines[0])
	assert.Equal(t, "y"+string(Replacement), lines[1])
}
