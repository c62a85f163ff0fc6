package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV parses every record from r. Quoted fields are honored, a bare quote inside an
// unquoted field is kept as text, and rows may have fewer or more fields than the header.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	return records, nil
}

// Lower-cased and trimmed, with a leading byte order mark removed
func NormalizeCSVHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
}

// ParseCSVToMap turns records into one map per data row.
// The first record is the header; keys are the trimmed, lower-cased header names.
// The Nth occurrence of a duplicate header is renamed with a _N suffix and missing cells become "".
func ParseCSVToMap(records [][]string) []map[string]string {
	if len(records) == 0 {
		return []map[string]string{}
	}

	headers := make([]string, len(records[0]))
	headerCount := make(map[string]int)

	for i, header := range records[0] {
		key := NormalizeCSVHeader(header)
		if count, exists := headerCount[key]; exists {
			headerCount[key]++
			headers[i] = fmt.Sprintf("%s_%d", key, count+2)
		} else {
			headerCount[key] = 0
			headers[i] = key
		}
	}

	result := make([]map[string]string, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for j, header := range headers {
			if j < len(record) {
				row[header] = strings.TrimSpace(record[j])
			} else {
				row[header] = ""
			}
		}
		result = append(result, row)
	}

	return result
}
