package routing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jalad-shrimali/gtrc-filter/spc"
	"github.com/jalad-shrimali/gtrc-filter/textutil"
)

var (
	// ErrMissingReferenceFile: the SPC reference source is absent.
	ErrMissingReferenceFile = errors.New("missing reference file")
	// ErrUnsupportedInputKind: the log file is not one of the accepted kinds.
	ErrUnsupportedInputKind = errors.New("unsupported input kind")
)

// DefaultInputKinds are the accepted log extensions.
var DefaultInputKinds = []string{"txt", "log"}

// Result holds every stage output of one conversion.
type Result struct {
	Cleaned []string
	Records []EnrichedRecord
}

// Resolved counts the records whose PSP and SSP names were found.
func (r *Result) Resolved() (psp, ssp int) {
	for _, rec := range r.Records {
		if rec.PSPName.Valid {
			psp++
		}
		if rec.SSPName.Valid {
			ssp++
		}
	}
	return psp, ssp
}

// Process runs filter, parser and enricher over the raw log bytes.
func Process(raw []byte, names spc.Lookuper) *Result {
	lines := textutil.Lines(raw)
	cleaned := Filter(lines)
	recs := ParseRecords(strings.Join(cleaned, ""))
	slog.Debug("routing log processed",
		"lines", len(lines), "cleaned", len(cleaned), "records", len(recs))
	return &Result{Cleaned: cleaned, Records: EnrichAll(recs, names)}
}

// Convert is the whole conversion as a pure function: raw log and SPC
// reference content in, xlsx workbook bytes out. A nil reference means
// the reference source is absent.
func Convert(raw, reference []byte) ([]byte, error) {
	if reference == nil {
		return nil, ErrMissingReferenceFile
	}
	names, err := spc.Parse(textutil.Lines(reference))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteReport(&buf, Process(raw, names).Records); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return buf.Bytes(), nil
}

// CheckInputKind accepts name when its extension is one of kinds,
// compared without case and without the leading dot.
func CheckInputKind(name string, kinds []string) error {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext != "" {
		for _, k := range kinds {
			if strings.EqualFold(ext, strings.TrimPrefix(k, ".")) {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %q (accepted: %s)", ErrUnsupportedInputKind, filepath.Base(name), strings.Join(kinds, ", "))
}

// LoadReference loads the SPC text file at path.
func LoadReference(path string) (spc.Table, error) {
	t, err := spc.LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingReferenceFile, path)
	}
	return t, err
}

// OpenReferenceStore opens the SQLite copy of the reference table.
func OpenReferenceStore(ctx context.Context, path string) (*spc.Store, error) {
	st, err := spc.OpenStore(ctx, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingReferenceFile, path)
	}
	return st, err
}

// CleanedPath is where the filter output of input is kept: the input
// name with "_cleaned" before its extension.
func CleanedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_cleaned" + ext
}

// ReportPath is the default report location for input inside dir.
func ReportPath(dir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".xlsx")
}
