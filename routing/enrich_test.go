package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalad-shrimali/gtrc-filter/spc"
)

// countingLookup records every code it is asked for.
type countingLookup struct {
	spc.Table
	asked []string
}

func (c *countingLookup) Lookup(code string) (string, bool) {
	c.asked = append(c.asked, code)
	return c.Table.Lookup(code)
}

func record(psp, ssp Cell) Record {
	var r Record
	r[idxPSP] = psp
	r[idxSSP] = ssp
	return r
}

func TestLookupKey(t *testing.T) {
	assert.Equal(t, "C123", LookupKey("A-B-C123"))
	assert.Equal(t, "42", LookupKey("X-42"))
	assert.Equal(t, "777", LookupKey("777"))
	assert.Equal(t, "", LookupKey("trailing-"))
}

func TestEnrich_ResolvesBothCodes(t *testing.T) {
	names, err := spc.Load(stringsReader("42\tEastSite\n7 West Site\n"))
	require.NoError(t, err)

	e := Enrich(record(Text("X-42"), Text("A-B-7")), names)
	assert.Equal(t, Text("EastSite"), e.PSPName)
	assert.Equal(t, Text("West Site"), e.SSPName)
}

func TestEnrich_NullCodeSkipsLookup(t *testing.T) {
	lk := &countingLookup{Table: spc.Table{"42": "EastSite"}}
	e := Enrich(record(Cell{}, Text("42")), lk)

	assert.False(t, e.PSPName.Valid)
	assert.Equal(t, Text("EastSite"), e.SSPName)
	assert.Equal(t, []string{"42"}, lk.asked)
}

func TestEnrich_UnmappedCodeIsNull(t *testing.T) {
	e := Enrich(record(Text("X-99"), Text("nope")), spc.Table{"42": "EastSite"})
	assert.False(t, e.PSPName.Valid)
	assert.False(t, e.SSPName.Valid)
}

func TestEnrich_NoCaseFolding(t *testing.T) {
	e := Enrich(record(Text("X-ab"), Cell{}), spc.Table{"AB": "Upper"})
	assert.False(t, e.PSPName.Valid)
}

func TestEnrich_DoesNotChangeRecord(t *testing.T) {
	r := record(Text("X-42"), Text("Y-1"))
	orig := r
	e := Enrich(r, spc.Table{"42": "EastSite"})
	assert.Equal(t, orig, r)
	assert.Equal(t, orig, e.Record)
}

func TestEnrich_Deterministic(t *testing.T) {
	names := spc.Table{"42": "EastSite"}
	for _, code := range []Cell{Text("X-42"), Text("42"), Text("Z-1"), {}} {
		a := Enrich(record(code, code), names)
		b := Enrich(record(code, code), names)
		assert.Equal(t, a, b)
	}
}

func TestEnrichAll_KeepsOrder(t *testing.T) {
	recs := []Record{record(Text("1"), Cell{}), record(Text("2"), Cell{})}
	out := EnrichAll(recs, spc.Table{"1": "One", "2": "Two"})
	require.Len(t, out, 2)
	assert.Equal(t, "One", out[0].PSPName.Value)
	assert.Equal(t, "Two", out[1].PSPName.Value)
}
