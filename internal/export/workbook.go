package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/adaptive-layout/internal/adaptive"
	"github.com/piwi3910/adaptive-layout/internal/devicetype"
)

// Sheet names used in the classification workbook.
const (
	SheetClassification = "Classification"
	SheetSummary        = "Summary"
	SheetThresholds     = "Thresholds"
)

// WorkbookHeaders are the column titles of the classification sheet.
var WorkbookHeaders = []string{
	"ID", "Name", "Width (dp)", "Height (dp)", "Min Width (dp)", "Min Height (dp)",
	"Posture", "Hinges", "Device Type", "Rank", "Aspect Ratio", "Landscape Phone",
	"Layout", "Bottom Bar", "Notes",
}

// ExportWorkbook writes an Excel workbook with one row per classified preset,
// a per-kind summary and the thresholds used for classification.
func ExportWorkbook(path string, rows []Classification) error {
	if len(rows) == 0 {
		return fmt.Errorf("no presets to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetClassification); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetThresholds); err != nil {
		return fmt.Errorf("failed to create thresholds sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeClassificationSheet(f, rows, headerStyle); err != nil {
		return err
	}
	if err := writeSummarySheet(f, rows, headerStyle); err != nil {
		return err
	}
	if err := writeThresholdsSheet(f, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeClassificationSheet(f *excelize.File, rows []Classification, headerStyle int) error {
	sheet := SheetClassification

	header := make([]interface{}, len(WorkbookHeaders))
	for i, h := range WorkbookHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(WorkbookHeaders))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			r.Preset.ID,
			r.Preset.Name,
			r.Preset.WidthDp,
			r.Preset.HeightDp,
			r.Info.SizeClass.MinWidthDp,
			r.Info.SizeClass.MinHeightDp,
			postureText(r.Preset),
			len(r.Preset.Hinges),
			r.Device.Kind().String(),
			r.Device.Rank(),
			aspectCell(r.Device.AspectRatio()),
			adaptive.YesNo(r.Device.IsLandscapePhone()),
			r.Plan.Describe(),
			adaptive.YesNo(r.Plan.ShowBottomBar),
			r.Preset.Notes,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "G", "G", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "M", "M", 30)
}

func writeSummarySheet(f *excelize.File, rows []Classification, headerStyle int) error {
	sheet := SheetSummary
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Device Type", "Rank", "Presets"}); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return err
	}

	counts := CountByKind(rows)
	for i, k := range devicetype.Kinds() {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{k.String(), k.Rank(), counts[k]}); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return f.SetColWidth(sheet, "A", "A", 16)
}

func writeThresholdsSheet(f *excelize.File, headerStyle int) error {
	sheet := SheetThresholds
	data := [][]interface{}{
		{"Threshold", "Value"},
		{"Medium lower bound (dp)", devicetype.MediumLowerBound},
		{"Expanded lower bound (dp)", devicetype.ExpandedLowerBound},
		{"Large lower bound (dp)", devicetype.LargeLowerBound},
		{"ExtraLarge lower bound (dp)", devicetype.ExtraLargeLowerBound},
		{"Medium max aspect ratio", devicetype.MediumMaxAspectRatio},
		{"Landscape phone max height (dp)", devicetype.LandscapePhoneMaxHeight},
		{"Landscape phone min aspect ratio", devicetype.LandscapePhoneMinAspectRatio},
	}
	for i, row := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write thresholds: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 34)
}

// aspectCell formats an aspect ratio for a cell. Spreadsheets have no
// infinity, so a zero-height window is written as text.
func aspectCell(ratio float64) interface{} {
	if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		return "inf"
	}
	return math.Round(ratio*100) / 100
}
