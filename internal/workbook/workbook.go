// Package workbook loads survey definition sheets into ordered row records.
// It reads XLSX workbooks (the classic XLSForm container), CSV exports of a
// single sheet, and a YAML row-list dialect that is convenient for fixtures.
//
// The loader is the boundary between document formats and the graph core:
// it trims cell whitespace, maps header columns to values, skips structural
// and incomplete rows, and tracks group/repeat nesting so every emitted row
// carries its ancestor chain. Positions are assigned by the graph builder
// after this filtering, so emitted rows are exactly the graph's nodes.
package workbook

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/surveytools/formgraph/internal/xlsform"
)

// DefaultSheet is the worksheet holding the survey definition in an
// XLSForm workbook.
const DefaultSheet = "survey"

// Column names with fixed meaning in a survey sheet.
const (
	ColumnType = "type"
	ColumnName = "name"
)

// UnbalancedGroupError reports an "end group"/"end repeat" row with no
// matching begin row.
type UnbalancedGroupError struct {
	// Row is the 1-based sheet row of the unmatched end marker.
	Row int
	// Type is the end marker's type value.
	Type string
}

// Error implements the error interface.
func (e *UnbalancedGroupError) Error() string {
	return fmt.Sprintf("row %d: %q without a matching begin", e.Row, e.Type)
}

// Load reads the survey rows from path, dispatching on the file extension:
// .xlsx/.xlsm open the named worksheet, .csv reads the file as one sheet,
// and .yaml/.yml parse the YAML row-list dialect.
func Load(path, sheet string) ([]xlsform.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet)
	case ".csv":
		return LoadCSV(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported survey format %q (want .xlsx, .csv, or .yaml)", filepath.Ext(path))
	}
}

// LoadXLSX reads the named worksheet of an XLSX workbook.
func LoadXLSX(path, sheet string) ([]xlsform.Row, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return FromCells(cells)
}

// LoadCSV reads a CSV export of a single survey sheet.
func LoadCSV(path string) ([]xlsform.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are normal in sheet exports
	cells, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return FromCells(cells)
}

// LoadYAML reads the YAML row-list dialect: a document whose body is a
// sequence of column->value mappings, one per survey row.
func LoadYAML(path string) ([]xlsform.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening YAML survey: %w", err)
	}

	var records []map[string]string
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing YAML survey: %w", err)
	}

	cells := recordsToCells(records)
	return FromCells(cells)
}

// recordsToCells flattens column->value records into a header row plus data
// rows, preserving first-seen column order.
func recordsToCells(records []map[string]string) [][]string {
	var header []string
	seen := make(map[string]bool)
	addColumn := func(column string) {
		if !seen[column] {
			seen[column] = true
			header = append(header, column)
		}
	}
	// Fixed columns lead so structural detection never depends on record
	// key order.
	addColumn(ColumnType)
	addColumn(ColumnName)
	for _, record := range records {
		for column := range record {
			addColumn(column)
		}
	}
	// Map iteration above is unordered; settle remaining columns by name.
	sort.Strings(header[2:])

	cells := [][]string{header}
	for _, record := range records {
		rowCells := make([]string, len(header))
		for i, column := range header {
			rowCells[i] = record[column]
		}
		cells = append(cells, rowCells)
	}
	return cells
}

// FromCells converts raw sheet cells (header row first) into ordered survey
// rows. Cell values are whitespace-trimmed. Rows missing a type or a name
// are skipped, "end group"/"end repeat" rows close the current nesting
// level, and "begin group"/"begin repeat" rows both become rows themselves
// and open a nesting level.
func FromCells(cells [][]string) ([]xlsform.Row, error) {
	if len(cells) == 0 {
		return nil, nil
	}

	header := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		header[i] = strings.TrimSpace(h)
	}

	var rows []xlsform.Row
	var ancestors []string
	for i, rowCells := range cells[1:] {
		fields := make(map[string]string, len(header))
		for col, column := range header {
			if column == "" {
				continue
			}
			value := ""
			if col < len(rowCells) {
				value = strings.TrimSpace(rowCells[col])
			}
			fields[column] = value
		}

		rowType := fields[ColumnType]
		rowName := fields[ColumnName]

		if isEndMarker(rowType) {
			if len(ancestors) == 0 {
				return nil, &UnbalancedGroupError{Row: i + 2, Type: rowType}
			}
			ancestors = ancestors[:len(ancestors)-1]
			continue
		}

		if rowType != "" && rowName != "" {
			rows = append(rows, xlsform.Row{
				Name:      rowName,
				Type:      rowType,
				Fields:    fields,
				Ancestors: append([]string(nil), ancestors...),
			})
		}

		if isBeginMarker(rowType) {
			ancestors = append(ancestors, rowName)
		}
	}

	return rows, nil
}

// isBeginMarker reports whether the type opens a group or repeat. Both the
// space and underscore spellings occur in the wild.
func isBeginMarker(rowType string) bool {
	switch normalizeMarker(rowType) {
	case "begin group", "begin repeat":
		return true
	}
	return false
}

// isEndMarker reports whether the type closes a group or repeat.
func isEndMarker(rowType string) bool {
	switch normalizeMarker(rowType) {
	case "end group", "end repeat":
		return true
	}
	return false
}

func normalizeMarker(rowType string) string {
	return strings.ReplaceAll(strings.ToLower(rowType), "_", " ")
}
