// Package ingest reads user supplied JSON and CSV files and looks for an
// (x,y) pair of numeric columns that the scatter chart can plot.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrUnsupported reports a file whose extension is neither .json nor .csv.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrNoCandidate reports data without two numeric columns.
	ErrNoCandidate = errors.New("no numeric column pair")
)

// Format is the detected file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Table is a record view of the file: ordered column names and one map per
// row. Values are float64 when numeric, otherwise the raw decoded value.
type Table struct {
	Columns []string
	Rows    []map[string]any
}

// Result is a parsed file.
type Result struct {
	Name   string
	Format Format
	Table  Table
	// Lines is the number of non-blank CSV lines, header included.
	Lines int
	// Cols is the number of CSV header fields.
	Cols int
	// Entries is the number of top-level JSON keys or array elements.
	Entries int
}

// DetectFormat maps a file name to a format by extension.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%s: %w", name, ErrUnsupported)
	}
}

// ReadFile loads and parses the file at path.
func ReadFile(path string) (Result, error) {
	name := filepath.Base(path)
	if _, err := DetectFormat(name); err != nil {
		return Result{Name: name}, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{Name: name}, fmt.Errorf("read %s: %w", name, err)
	}
	return Parse(name, content)
}

// Parse decodes content according to the extension of name.
func Parse(name string, content []byte) (Result, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return Result{Name: name}, err
	}
	res := Result{Name: name, Format: format}
	switch format {
	case FormatCSV:
		res.Table, res.Lines, res.Cols = parseCSV(string(content))
		res.Entries = len(res.Table.Rows)
		return res, nil
	default:
		table, entries, err := parseJSON(content)
		if err != nil {
			return res, fmt.Errorf("parse %s: %w", name, err)
		}
		res.Table, res.Entries = table, entries
		return res, nil
	}
}

// parseCSV splits on newlines and commas without quoting support. The first
// non-blank line holds the headers.
func parseCSV(content string) (Table, int, int) {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return Table{}, 0, 0
	}

	headers := splitTrim(lines[0])
	table := Table{Columns: headers}
	for _, line := range lines[1:] {
		fields := splitTrim(line)
		row := make(map[string]any, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				row[h] = coerce(fields[i])
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, len(lines), len(headers)
}

func splitTrim(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func coerce(field string) any {
	if f, ok := parseFinite(field); ok {
		return f
	}
	return field
}

// parseFinite parses s as a float, rejecting NaN and infinities so spellings
// like "NaN" or "Inf" stay text.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseJSON decodes a document and, when it is an array of objects, builds a
// table whose column order follows the keys of the first object.
func parseJSON(content []byte) (Table, int, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Table{}, 0, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Table{}, 0, errors.New("unexpected trailing data")
	}

	switch v := doc.(type) {
	case map[string]any:
		return Table{}, len(v), nil
	case []any:
		table := Table{}
		var raw []json.RawMessage
		if err := json.Unmarshal(content, &raw); err == nil && len(raw) > 0 {
			table.Columns = objectKeys(raw[0])
		}
		for _, el := range v {
			obj, ok := el.(map[string]any)
			if !ok {
				continue
			}
			row := make(map[string]any, len(obj))
			for k, val := range obj {
				if n, ok := val.(json.Number); ok {
					if f, err := n.Float64(); err == nil {
						row[k] = f
						continue
					}
				}
				row[k] = val
			}
			table.Rows = append(table.Rows, row)
		}
		return table, len(v), nil
	default:
		return Table{}, 0, nil
	}
}

// objectKeys returns the keys of a JSON object in document order.
func objectKeys(raw json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, _ := tok.(string)
		keys = append(keys, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return keys
		}
	}
	return keys
}
