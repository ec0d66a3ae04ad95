package routing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_SingleRegion(t *testing.T) {
	lines := []string{
		"junk line",
		"PTERM marker here",
		"ACTIVE: ROWDATA...",
		"END",
	}
	assert.Equal(t, []string{"ROWDATA...\n"}, Filter(lines))
}

func TestFilter_FixedPrefixWidth(t *testing.T) {
	out := Filter([]string{"PTERM", "ACTIVE:12345678ROWDATA"})
	assert.Equal(t, []string{"2345678ROWDATA\n"}, out)
}

func TestFilter_NoStartMarker(t *testing.T) {
	out := Filter([]string{"ACTIVE: one", "ACTIVE: two", "END"})
	assert.Empty(t, out)
}

func TestFilter_UnterminatedRegion(t *testing.T) {
	out := Filter([]string{"PTERM", "ACTIVE: a", "noise", "ACTIVE: b"})
	assert.Equal(t, []string{"a\n", "b\n"}, out)
}

func TestFilter_StartLineCanEmit(t *testing.T) {
	out := Filter([]string{"PTERM ACTIVE: x"})
	assert.Equal(t, []string{"TIVE: x\n"}, out)
}

func TestFilter_EndLineCanEmit(t *testing.T) {
	var f LineFilter
	f.Step("PTERM")
	got, ok := f.Step("ACTIVE: last END")
	require.True(t, ok)
	assert.Equal(t, "last END\n", got)
	assert.Equal(t, Seeking, f.State())

	_, ok = f.Step("ACTIVE: after")
	assert.False(t, ok)
}

func TestFilter_StartAndEndOnSameLine(t *testing.T) {
	var f LineFilter
	_, ok := f.Step("PTERM ... END")
	assert.False(t, ok)
	assert.Equal(t, Seeking, f.State())
}

func TestFilter_RegionsReopen(t *testing.T) {
	lines := []string{
		"PTERM", "ACTIVE: r1", "END",
		"ACTIVE: skipped",
		"PTERM", "ACTIVE: r2", "END",
	}
	assert.Equal(t, []string{"r1\n", "r2\n"}, Filter(lines))
}

func TestFilter_ShortAndMultibyteLines(t *testing.T) {
	out := Filter([]string{"PTERM", "ACTIVE:", "ééACTIVE:Z"})
	assert.Equal(t, []string{"\n", ":Z\n"}, out)
}

func TestLineFilter_NeverEmitsWhileSeeking(t *testing.T) {
	lines := []string{
		"header", "ACTIVE: x", "END", "PTERM", "ACTIVE: a", "ACTIVE: END b",
		"ACTIVE: c", "PTERM again", "ACTIVE: d", "END", "tail ACTIVE: e",
	}
	var f LineFilter
	for _, l := range lines {
		before := f.State()
		_, ok := f.Step(l)
		if ok {
			assert.True(t, before == Active || strings.Contains(l, "PTERM"), l)
		}
	}
	assert.Equal(t, []string{"a\n", "END b\n", "d\n"}, Filter(lines))
}

func TestFilterState_String(t *testing.T) {
	assert.Equal(t, "seeking", Seeking.String())
	assert.Equal(t, "active", Active.String())
}
