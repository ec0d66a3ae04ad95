package routing

import (
	"strings"

	"github.com/jalad-shrimali/gtrc-filter/spc"
)

// LookupKey is the part of a PSP/SSP code after its last '-', or the
// whole code when it has none ("A-B-C123" → "C123").
func LookupKey(code string) string {
	if i := strings.LastIndex(code, "-"); i >= 0 {
		return code[i+1:]
	}
	return code
}

// Enrich resolves the PSP and SSP names of r. Null codes are not looked
// up; unknown codes give a null name. r itself is copied, never changed.
func Enrich(r Record, names spc.Lookuper) EnrichedRecord {
	return EnrichedRecord{
		Record:  r,
		PSPName: resolve(r.PSP(), names),
		SSPName: resolve(r.SSP(), names),
	}
}

// EnrichAll enriches recs in order.
func EnrichAll(recs []Record, names spc.Lookuper) []EnrichedRecord {
	out := make([]EnrichedRecord, len(recs))
	for i, r := range recs {
		out[i] = Enrich(r, names)
	}
	return out
}

func resolve(code Cell, names spc.Lookuper) Cell {
	if !code.Valid {
		return Cell{}
	}
	if name, ok := names.Lookup(LookupKey(code.Value)); ok {
		return Text(name)
	}
	return Cell{}
}
