package reports

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

// ErrEmptyExportSet signals an export request over zero rows. It is
// surfaced to the user as a no-op notice, never written as a headers-only
// file.
var ErrEmptyExportSet = errors.New("nothing to export")

// ExportColumn maps one labelled CSV column to its value accessor. Column
// order in the spec slice is the column order in the output.
type ExportColumn[T any] struct {
	Header string
	Value  func(T) string
}

// ToExportRows maps records to export rows per the ordered column spec,
// preserving the filtered/sorted order of the input.
func ToExportRows[T any](records []T, cols []ExportColumn[T]) (header []string, rows [][]string) {
	header = make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Header
	}
	rows = make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.Value(r)
		}
		rows = append(rows, row)
	}
	return header, rows
}

// WriteCSV serializes header + rows with CRLF terminators; fields holding
// commas or quotes come out quoted. Zero rows is ErrEmptyExportSet.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		return ErrEmptyExportSet
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SummarizeDetails renders structured log details as a compact one-line
// summary (field/old/new/task/file/target), not a recursive dump. Nil or
// all-empty details summarize to "".
func SummarizeDetails(d *models.ActivityDetails) string {
	if d == nil {
		return ""
	}
	parts := []string{}
	if d.Field != "" {
		parts = append(parts, "field: "+d.Field)
	}
	if d.OldValue != "" {
		parts = append(parts, "old: "+d.OldValue)
	}
	if d.NewValue != "" {
		parts = append(parts, "new: "+d.NewValue)
	}
	if d.TaskTitle != "" {
		parts = append(parts, "task: "+d.TaskTitle)
	}
	if d.FileName != "" {
		parts = append(parts, "file: "+d.FileName)
	}
	if d.TargetUserName != "" {
		parts = append(parts, "target: "+d.TargetUserName)
	}
	return strings.Join(parts, "; ")
}

// FormatMoney stringifies a numeric value for export, trimming trailing
// zeros ("500" rather than "500.000000").
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDate stringifies a date for export; the zero time becomes "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 02, 2006")
}

// FormatTimestamp stringifies a full timestamp for export; zero becomes "".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
