package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RawRow is one data line of the source file: column header → raw cell
// value, tagged with the source line number for reporting. Rows are
// ephemeral; they exist only between parsing and mapping.
type RawRow struct {
	Line   int
	Fields map[string]string
}

// ParseCSV reads the whole file into header + raw rows. Structural problems
// (no header, no data rows, malformed CSV) wrap ErrParse and abort the
// import before anything is written.
func ParseCSV(data []byte) ([]string, []RawRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headerRecord, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: file is empty", ErrParse)
		}
		return nil, nil, fmt.Errorf("%w: read header: %v", ErrParse, err)
	}

	header := make([]string, len(headerRecord))
	for index, name := range headerRecord {
		header[index] = strings.ToLower(strings.TrimSpace(name))
	}

	rows := make([]RawRow, 0)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrParse, line, err)
		}

		fields := make(map[string]string, len(header))
		empty := true
		for index, name := range header {
			value := ""
			if index < len(record) {
				value = strings.TrimSpace(record[index])
			}
			fields[name] = value
			if value != "" {
				empty = false
			}
		}
		if empty {
			continue
		}

		rows = append(rows, RawRow{Line: line, Fields: fields})
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: no data rows", ErrParse)
	}
	return header, rows, nil
}
