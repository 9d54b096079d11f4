package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idelchi/depsize/internal/report"
)

// jsonRow mirrors a report row with its human-readable rendering attached.
type jsonRow struct {
	Label string `json:"label"`
	Bytes uint64 `json:"bytes"`
	Size  string `json:"size"`
}

// jsonReport is the document emitted by --output json.
type jsonReport struct {
	Rows       []jsonRow `json:"rows"`
	TotalBytes uint64    `json:"total_bytes"`
	Total      string    `json:"total"`
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(rows []report.Row, total uint64, writer io.Writer) error {
	doc := jsonReport{
		Rows:       make([]jsonRow, 0, len(rows)),
		TotalBytes: total,
		Total:      report.FormatSize(total),
	}

	for _, row := range rows {
		doc.Rows = append(doc.Rows, jsonRow{
			Label: row.Label,
			Bytes: row.Bytes,
			Size:  report.FormatSize(row.Bytes),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}
