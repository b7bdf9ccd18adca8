// Package importer provides CSV and Excel import for item and bin lists.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/xuri/excelize/v2"
)

// Target selects what the rows of a file describe.
type Target int

const (
	TargetItems Target = iota
	TargetBins
)

func (t Target) String() string {
	if t == TargetBins {
		return "bins"
	}
	return "items"
}

// ImportResult holds the results of an import operation. Only the slice
// matching the import target is populated.
type ImportResult struct {
	Items    []model.ItemSpec
	Bins     []model.BinSpec
	Errors   []string
	Warnings []string
}

// Count returns the number of imported rows.
func (r ImportResult) Count() int {
	return len(r.Items) + len(r.Bins)
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name     int
	Width    int
	Height   int
	Depth    int
	Weight   int
	Quantity int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "label", "description", "desc", "sku", "product", "container"},
	"width":    {"width", "w"},
	"height":   {"height", "h"},
	"depth":    {"depth", "d", "length", "len", "l"},
	"weight":   {"weight", "wt", "kg", "mass", "max weight", "max_weight", "maxweight", "capacity", "payload"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces", "units"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping Name, Width, Height, Depth, Weight, Quantity and false otherwise.
// A row holding any numeric cell is always data.
func DetectColumns(row []string) (ColumnMapping, bool) {
	positional := ColumnMapping{
		Name:     0,
		Width:    1,
		Height:   2,
		Depth:    3,
		Weight:   4,
		Quantity: 5,
	}
	if hasNumericCell(row) {
		return positional, false
	}

	mapping := ColumnMapping{
		Name:     -1,
		Width:    -1,
		Height:   -1,
		Depth:    -1,
		Weight:   -1,
		Quantity: -1,
	}
	slots := map[string]*int{
		"name":     &mapping.Name,
		"width":    &mapping.Width,
		"height":   &mapping.Height,
		"depth":    &mapping.Depth,
		"weight":   &mapping.Weight,
		"quantity": &mapping.Quantity,
	}

	// Match each cell against the known aliases
	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return positional, false
	}

	return mapping, true
}

func hasNumericCell(row []string) bool {
	for _, cell := range row {
		if _, err := parseNumber(strings.TrimSpace(cell)); err == nil {
			return true
		}
	}
	return false
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber accepts both "12.5" and "12,5".
func parseNumber(s string) (float64, error) {
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}

// row is the target-independent content of one data line.
type row struct {
	name                         string
	width, height, depth, weight float64
	qty                          int
}

// parseRow extracts a row using the given column mapping.
// Returns the row, any error message, and any warning message.
func parseRow(cells []string, mapping ColumnMapping, rowLabel, fallbackName string) (row, string, string) {
	// Name, with fallback
	r := row{name: getCell(cells, mapping.Name)}
	if r.name == "" {
		r.name = fallbackName
	}

	// Parse dimensions
	dims := []struct {
		label string
		idx   int
		dst   *float64
	}{
		{"width", mapping.Width, &r.width},
		{"height", mapping.Height, &r.height},
		{"depth", mapping.Depth, &r.depth},
	}
	for _, dim := range dims {
		s := getCell(cells, dim.idx)
		if s == "" {
			return row{}, fmt.Sprintf("%s: Missing %s value", rowLabel, dim.label), ""
		}
		v, err := parseNumber(s)
		if err != nil {
			return row{}, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, dim.label, s), ""
		}
		*dim.dst = v
	}
	if r.width <= 0 || r.height <= 0 || r.depth <= 0 {
		return row{}, fmt.Sprintf("%s: Width, height, and depth must be positive", rowLabel), ""
	}

	// Parse optional weight
	if s := getCell(cells, mapping.Weight); s != "" {
		v, err := parseNumber(s)
		if err != nil {
			return row{}, fmt.Sprintf("%s: Invalid weight '%s'", rowLabel, s), ""
		}
		if v < 0 {
			return row{}, fmt.Sprintf("%s: Weight must not be negative", rowLabel), ""
		}
		r.weight = v
	}

	// Parse quantity
	var warning string
	r.qty = 1
	if s := getCell(cells, mapping.Quantity); s != "" {
		qty, err := strconv.Atoi(s)
		if err != nil {
			return row{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, s), ""
		}
		if qty <= 0 {
			return row{}, fmt.Sprintf("%s: Quantity must be positive", rowLabel), ""
		}
		r.qty = qty
	} else if mapping.Quantity >= 0 && mapping.Quantity < len(cells) {
		warning = fmt.Sprintf("%s: Empty quantity, defaulting to 1", rowLabel)
	}

	return r, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile dispatches on the file extension: .xlsx and .xlsm are read as
// Excel workbooks, everything else as CSV.
func ImportFile(path string, target Target) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return ImportExcel(path, target)
	default:
		return ImportCSV(path, target)
	}
}

// ImportCSV imports items or bins from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, target Target) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	// Detect delimiter
	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, target, "Line", result.Warnings)
}

// ImportCSVFromReader imports items or bins from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, target Target) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, target, "Line", nil)
}

// ImportExcel imports items or bins from the first sheet of an Excel workbook.
func ImportExcel(path string, target Target) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	// Read the first sheet
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, target, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, target Target, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect header row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Check required columns
		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "Depth")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 4 {
		if _, err := parseNumber(strings.TrimSpace(rows[0][1])); err != nil {
			// Unrecognized header; keep the positional mapping.
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	prefix := "Item"
	if target == TargetBins {
		prefix = "Bin"
	}

	for i := startRow; i < len(rows); i++ {
		// Skip empty rows
		cells := rows[i]
		if isEmptyRow(cells) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		fallback := fmt.Sprintf("%s %d", prefix, result.Count()+1)
		r, errMsg, warning := parseRow(cells, mapping, rowLabel, fallback)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		if target == TargetBins {
			result.Bins = append(result.Bins, model.NewBinSpec(r.name, r.width, r.height, r.depth, r.weight, r.qty))
		} else {
			result.Items = append(result.Items, model.NewItemSpec(r.name, r.width, r.height, r.depth, r.weight, r.qty))
		}
	}

	return result
}
