// Package routing turns a Winfiol GTRC routing log into the normalized
// route report.
//
// The conversion is a fixed pipeline, each stage materialising its
// output before the next one starts:
//
//	raw log ─▶ Filter ─▶ cleaned lines ─▶ ParseRecords ─▶ Record
//	        ─▶ Enrich (SPC lookup) ─▶ EnrichedRecord ─▶ WriteReport ─▶ xlsx
//
// Convert runs the whole pipeline as a pure function of the log and
// reference bytes. File handling (input kind checks, reference
// location, atomic output) lives in the file helpers of this package and
// in the command.
package routing

/* ──────────── fixed 10-field record layout (keep order) ──────────── */

const NumFields = 10

// Fields are the positional record columns as they appear in the log.
var Fields = [NumFields]string{
	"GTRC", "PSP", "PTERM", "PINTER", "PSSN",
	"SSP", "STERM", "SINTER", "SSSN", "LSH",
}

const (
	idxPSP = 1
	idxSSP = 5
)

// Cell is an optional text value. The zero Cell is null.
type Cell struct {
	Value string
	Valid bool
}

// Text returns a non-null Cell holding s.
func Text(s string) Cell { return Cell{Value: s, Valid: true} }

func (c Cell) String() string {
	if !c.Valid {
		return "<null>"
	}
	return c.Value
}

// Record is one parsed route row. Missing trailing fields are null.
type Record [NumFields]Cell

func (r Record) PSP() Cell { return r[idxPSP] }
func (r Record) SSP() Cell { return r[idxSSP] }

// Field returns the cell for a column name from Fields.
func (r Record) Field(name string) (Cell, bool) {
	for i, f := range Fields {
		if f == name {
			return r[i], true
		}
	}
	return Cell{}, false
}

// EnrichedRecord is a Record plus the resolved PSP/SSP site names.
type EnrichedRecord struct {
	Record
	PSPName Cell
	SSPName Cell
}

// Row returns the cells in ReportHeader order.
func (e EnrichedRecord) Row() []Cell {
	row := make([]Cell, 0, len(ReportHeader))
	row = append(row, e.Record[:]...)
	return append(row, e.PSPName, e.SSPName)
}
