// Package export persists mark results as tabular output.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/voicelab/pitchmark/contour"
)

// Sink consumes an ordered batch of mark results and persists them as one
// table, one row per result.
type Sink interface {
	Write(results []contour.MarkResult) error
}

// XLSXWriter writes mark results to a single-sheet Excel workbook with a
// header row followed by one row per mark, column order
// sounding | time_mark | relative_time_sec | hz.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates a writer targeting the given workbook path
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write builds the workbook and saves it, replacing any existing file
func (w *XLSXWriter) Write(results []contour.MarkResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := []any{"sounding", "time_mark", "relative_time_sec", "hz"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []any{r.Sounding, r.TimeMark, r.RelativeTimeSec, r.Hz}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", w.path, err)
	}

	return nil
}
