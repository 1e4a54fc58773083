package submission

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportFilename is the download name of a CSV export.
const ExportFilename = "filtered-submissions.csv"

// CSVHeader returns the header written for an empty export.
func CSVHeader() []string {
	header := make([]string, 0, len(Columns)+1)
	header = append(header, KeyID)
	for _, column := range Columns {
		header = append(header, column.Key)
	}
	return header
}

// WriteCSV writes records with a header row. The header is the union of
// every record's backend keys in first-seen order; each cell holds the value
// as the backend sent it and keys a record lacks are left empty.
func WriteCSV(w io.Writer, records []Submission) error {
	header, rows := csvTable(records)
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func csvTable(records []Submission) ([]string, [][]string) {
	if len(records) == 0 {
		return CSVHeader(), nil
	}
	var header []string
	index := make(map[string]int)
	values := make([][]Field, len(records))
	for idx, record := range records {
		values[idx] = record.Fields()
		for _, field := range values[idx] {
			if _, ok := index[field.Key]; !ok {
				index[field.Key] = len(header)
				header = append(header, field.Key)
			}
		}
	}
	rows := make([][]string, len(records))
	for idx, fields := range values {
		row := make([]string, len(header))
		for _, field := range fields {
			row[index[field.Key]] = field.Text
		}
		rows[idx] = row
	}
	return header, rows
}
