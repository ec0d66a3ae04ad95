package routing

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

/* ──────────── report layout (keep order) ──────────── */

const SheetName = "report"

// ReportHeader is the 12-column output layout: the ten record fields
// followed by the resolved names.
var ReportHeader = append(Fields[:], "PSP_Name", "SSP_Name")

// NewWorkbook lays recs out on a single sheet under ReportHeader. Null
// cells are left empty. The caller closes the workbook.
func NewWorkbook(recs []EnrichedRecord) (*excelize.File, error) {
	x := excelize.NewFile()
	if err := x.SetSheetName(x.GetSheetName(0), SheetName); err != nil {
		x.Close()
		return nil, err
	}

	set := func(col, row int, v string) error {
		cell, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return err
		}
		return x.SetCellStr(SheetName, cell, v)
	}
	for c, h := range ReportHeader {
		if err := set(c, 0, h); err != nil {
			x.Close()
			return nil, err
		}
	}
	for r, rec := range recs {
		for c, v := range rec.Row() {
			if !v.Valid {
				continue
			}
			if err := set(c, r+1, v.Value); err != nil {
				x.Close()
				return nil, fmt.Errorf("row %d: %w", r+1, err)
			}
		}
	}
	return x, nil
}

// WriteReport writes recs to w as an xlsx workbook.
func WriteReport(w io.Writer, recs []EnrichedRecord) error {
	x, err := NewWorkbook(recs)
	if err != nil {
		return err
	}
	defer x.Close()
	return x.Write(w)
}

// WriteReportFile writes the workbook to path. Either the complete file
// appears at path or nothing does.
func WriteReportFile(path string, recs []EnrichedRecord) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		return WriteReport(w, recs)
	})
}

// WriteCleanedFile stores the filter output, one cleaned line after another.
func WriteCleanedFile(path string, cleaned []string) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, strings.Join(cleaned, ""))
		return err
	})
}

// writeFileAtomic streams into a temp file beside path and renames it
// into place once everything is flushed and synced.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()
	_ = os.Chmod(tmpPath, 0o644)

	bw := bufio.NewWriterSize(tmp, 64*1024)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
