// Package importer provides CSV and Excel import functionality for device
// presets. It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/adaptive-layout/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Presets  []model.DevicePreset
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name     int
	Width    int
	Height   int
	Hinge    int
	Tabletop int
	Notes    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "label", "device", "preset", "model", "description"},
	"width":    {"width", "w", "width dp", "width_dp", "min width"},
	"height":   {"height", "h", "height dp", "height_dp", "min height"},
	"hinge":    {"hinge", "hinges", "fold", "foldable", "hinge orientation"},
	"tabletop": {"tabletop", "table top", "table-top", "posture"},
	"notes":    {"notes", "note", "comment", "comments", "remarks"},
}

// HingeOrientation is the fold seam described by an import row.
type HingeOrientation int

const (
	HingeNone HingeOrientation = iota
	HingeVertical
	HingeHorizontal
)

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
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Only consider delimiters that produce more than 1 column
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

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:     -1,
		Width:    -1,
		Height:   -1,
		Hinge:    -1,
		Tabletop: -1,
		Notes:    -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				var slot *int
				switch role {
				case "name":
					slot = &mapping.Name
				case "width":
					slot = &mapping.Width
				case "height":
					slot = &mapping.Height
				case "hinge":
					slot = &mapping.Hinge
				case "tabletop":
					slot = &mapping.Tabletop
				case "notes":
					slot = &mapping.Notes
				}
				if slot != nil && *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Name, Width, Height, Hinge, Tabletop, Notes
		return ColumnMapping{
			Name:     0,
			Width:    1,
			Height:   2,
			Hinge:    3,
			Tabletop: 4,
			Notes:    5,
		}, false
	}

	return mapping, true
}

// ParseHinge converts a hinge cell to an orientation. "yes" and "true" mean a
// vertical (book style) fold. The boolean reports whether the text was recognized.
func ParseHinge(s string) (HingeOrientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v", "book", "yes", "y", "true", "1":
		return HingeVertical, true
	case "horizontal", "flip", "clamshell":
		return HingeHorizontal, true
	case "", "none", "n", "no", "false", "0", "-":
		return HingeNone, true
	default:
		return HingeNone, false
	}
}

// parseFlag converts a yes/no style cell to a bool.
func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "x", "tabletop":
		return true, true
	case "", "no", "n", "false", "0", "-", "flat":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDp parses a dimension cell and rounds it to whole dp.
func parseDp(s string) (int, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return int(math.Round(v)), nil
}

// parseRow extracts a DevicePreset from a row using the given column mapping.
// Returns the preset, any error message, and any warning messages.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, presetCount int) (model.DevicePreset, string, []string) {
	var warnings []string

	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Device %d", presetCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.DevicePreset{}, fmt.Sprintf("%s: Missing width value", rowLabel), nil
	}
	width, err := parseDp(widthStr)
	if err != nil {
		return model.DevicePreset{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), nil
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.DevicePreset{}, fmt.Sprintf("%s: Missing height value", rowLabel), nil
	}
	height, err := parseDp(heightStr)
	if err != nil {
		return model.DevicePreset{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), nil
	}

	if width <= 0 || height <= 0 {
		return model.DevicePreset{}, fmt.Sprintf("%s: Width and height must be positive", rowLabel), nil
	}

	hinge := HingeNone
	if hingeStr := getCell(row, mapping.Hinge); hingeStr != "" {
		h, ok := ParseHinge(hingeStr)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown hinge '%s', treating device as flat", rowLabel, hingeStr))
		}
		hinge = h
	}

	tabletop := false
	if tabletopStr := getCell(row, mapping.Tabletop); tabletopStr != "" {
		v, ok := parseFlag(tabletopStr)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown tabletop value '%s', defaulting to No", rowLabel, tabletopStr))
		}
		tabletop = v
	}

	var preset model.DevicePreset
	if hinge == HingeNone {
		if tabletop {
			warnings = append(warnings, fmt.Sprintf("%s: Tabletop ignored for a device without a hinge", rowLabel))
		}
		preset = model.NewDevicePreset(name, width, height)
	} else {
		preset = model.NewFoldablePreset(name, width, height, hinge == HingeVertical, tabletop)
	}
	preset.Notes = getCell(row, mapping.Notes)

	return preset, "", warnings
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

// ImportCSV imports device presets from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
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

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports device presets from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
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

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports device presets from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
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

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile dispatches on the file extension: .xlsx and .xlsm go through
// ImportExcel, everything else is read as CSV.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into presets.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// No recognized header: if the width column is not numeric the first
		// row is most likely an unrecognized header.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		preset, errMsg, warnings := parseRow(row, mapping, rowLabel, len(result.Presets))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)

		result.Presets = append(result.Presets, preset)
	}

	return result
}
