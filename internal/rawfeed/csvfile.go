package rawfeed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/pools"
)

// csvFile is a thin CSV reader over one GTFS table, adapted from the
// teacher repo's parser/csv_parser.go: lazy quotes, BOM-stripped headers,
// and pooled row maps to keep large-feed parsing allocation-light.
type csvFile struct {
	filename   string
	headers    []string
	reader     *csv.Reader
	rowCounter int
	parser     *pools.PooledCSVParser
}

func newCSVFile(r io.Reader, filename string) (*csvFile, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty file: %s", filename)
		}
		return nil, fmt.Errorf("failed to read headers from %s: %w", filename, err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	return &csvFile{
		filename:   filename,
		headers:    headers,
		reader:     reader,
		rowCounter: 1,
		parser:     pools.NewPooledCSVParser(),
	}, nil
}

// row is one data row: 1-based line number (header is line 1) and its
// field values keyed by header name.
type row struct {
	lineNumber int
	values     map[string]string
}

func (f *csvFile) next() (*row, error) {
	values, err := f.reader.Read()
	if err != nil {
		return nil, err
	}
	f.rowCounter++

	rowValues := map[string]string(nil)
	if len(values) == len(f.headers) {
		rowValues = f.parser.ParseRecord(values, f.headers)
	}
	if rowValues == nil {
		rowValues = make(map[string]string, len(f.headers))
		for i, h := range f.headers {
			if i < len(values) {
				rowValues[h] = values[i]
			} else {
				rowValues[h] = ""
			}
		}
	}
	return &row{lineNumber: f.rowCounter, values: rowValues}, nil
}
