package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/adaptive-layout/internal/adaptive"
	"github.com/piwi3910/adaptive-layout/internal/devicetype"
	"github.com/piwi3910/adaptive-layout/internal/model"
)

// rgb is a fill color for a drawn panel.
type rgb struct {
	R, G, B int
}

// panelColors mirrors the panel backgrounds used by the UI.
var panelColors = map[adaptive.Panel]rgb{
	adaptive.PanelList:      {R: 0xE3, G: 0xF2, B: 0xFD},
	adaptive.PanelDetail:    {R: 0xC8, G: 0xE6, B: 0xC9},
	adaptive.PanelAnalytics: {R: 0xFF, G: 0xF9, B: 0xC4},
}

// bottomBarHeightDp is the height of the navigation bar drawn in previews.
const bottomBarHeightDp = 56.0

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportReport generates a PDF document describing how each preset is
// classified. Every preset gets its own page with a scaled layout diagram,
// followed by a summary page with a table of all presets.
func ExportReport(path string, rows []Classification) error {
	if len(rows) == 0 {
		return fmt.Errorf("no presets to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, row := range rows {
		pdf.AddPage()
		renderPresetPage(pdf, row, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, rows)

	return pdf.OutputFileAndClose(path)
}

// renderPresetPage draws one classified preset on the current PDF page.
func renderPresetPage(pdf *fpdf.Fpdf, row Classification, num int) {
	p := row.Preset

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Preset %d: %s (%d x %d dp)", num, p.Name, p.WidthDp, p.HeightDp)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Size class: %d x %d dp | Device type: %s (rank %d) | Landscape phone: %s | Layout: %s",
		row.Info.SizeClass.MinWidthDp, row.Info.SizeClass.MinHeightDp,
		row.Device.Kind(), row.Device.Rank(), adaptive.YesNo(row.Device.IsLandscapePhone()), row.Plan.Describe())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	w, h := float64(p.WidthDp), float64(p.HeightDp)
	if w <= 0 || h <= 0 {
		return
	}
	scale := math.Min(drawWidth/w, drawHeight/h)
	canvasW := w * scale
	canvasH := h * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Device body
	pdf.SetFillColor(250, 250, 250)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.6)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	contentH := canvasH
	if row.Plan.ShowBottomBar {
		barH := math.Min(bottomBarHeightDp*scale, canvasH/3)
		contentH = canvasH - barH
		pdf.SetFillColor(245, 245, 245)
		pdf.SetDrawColor(120, 120, 120)
		pdf.SetLineWidth(0.3)
		pdf.Rect(offsetX, offsetY+contentH, canvasW, barH, "FD")
		drawCenteredText(pdf, "Home    Search", offsetX, offsetY+contentH, canvasW, barH, 7)
	}

	x := offsetX
	for i, pw := range row.Plan.Widths(float32(canvasW)) {
		slot := row.Plan.Slots[i]
		col := panelColors[slot.Panel]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(x, offsetY, float64(pw), contentH, "FD")
		if pw > 15 && contentH > 8 {
			drawCenteredText(pdf, slot.Panel.Title(), x, offsetY, float64(pw), contentH, labelFontSize(float64(pw), contentH))
		}
		x += float64(pw)
	}

	drawHinges(pdf, p.Hinges, scale, offsetX, offsetY)
	drawDimensionAnnotations(pdf, p, offsetX, offsetY, canvasW, canvasH)
	drawPanelLegend(pdf, row, offsetY+canvasH+5)
}

// drawHinges renders fold seams as dashed red lines across the device.
func drawHinges(pdf *fpdf.Fpdf, hinges []model.HingeInfo, scale, offsetX, offsetY float64) {
	if len(hinges) == 0 {
		return
	}
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.6)
	pdf.SetDashPattern([]float64{2, 1.5}, 0)
	for _, hg := range hinges {
		b := hg.Bounds
		pdf.Line(
			offsetX+float64(b.Left)*scale, offsetY+float64(b.Top)*scale,
			offsetX+float64(b.Right)*scale, offsetY+float64(b.Bottom)*scale,
		)
	}
	pdf.SetDashPattern([]float64{}, 0)
}

// drawCenteredText writes a single line centred in the given rectangle.
func drawCenteredText(pdf *fpdf.Fpdf, text string, x, y, w, h, size float64) {
	pdf.SetFont("Helvetica", "", size)
	pdf.SetTextColor(0, 0, 0)
	tw := pdf.GetStringWidth(text)
	if tw >= w-2 {
		return
	}
	pdf.SetXY(x+(w-tw)/2, y+h/2-2)
	pdf.CellFormat(tw, 4, text, "", 0, "C", false, 0, "")
}

// drawDimensionAnnotations adds width and height labels outside the device outline.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, p model.DevicePreset, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d dp", p.WidthDp)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d dp", p.HeightDp)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawPanelLegend lists the visible panels with their share of the width.
func drawPanelLegend(pdf *fpdf.Fpdf, row Classification, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Panels shown:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	total := row.Plan.TotalWeight()

	for _, slot := range row.Plan.Slots {
		col := panelColors[slot.Panel]
		label := fmt.Sprintf("%s (%.0f%%)", slot.Panel.Title(), 100*slot.Weight/total)
		labelW := pdf.GetStringWidth(label) + 6

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.Rect(xPos, startY+0.5, 3, 3, "FD")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}

	if notes := row.Preset.Notes; notes != "" {
		pdf.SetFont("Helvetica", "I", 7)
		pdf.SetXY(marginLeft, startY+5)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Notes: "+notes, "", 0, "L", false, 0, "")
	}
}

// renderSummaryPage draws the final page with per-kind counts, a table of
// every preset and the thresholds used for classification.
func renderSummaryPage(pdf *fpdf.Fpdf, rows []Classification) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Device Classification Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Device Types", "", 0, "L", false, 0, "")
	y += 9

	counts := CountByKind(rows)
	pdf.SetFont("Helvetica", "", 10)
	for _, k := range devicetype.Kinds() {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, fmt.Sprintf("%s (rank %d):", k, k.Rank()), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", counts[k]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 6
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Presets", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{55, 30, 30, 45, 25, 25, 57}
	headers := []string{"Preset", "Window", "Size Class", "Posture", "Device Type", "Landscape", "Layout"}
	drawTableHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6
		pdf.SetFont("Helvetica", "", 8)
	}
	drawTableHeader()

	for i, row := range rows {
		if y > pageHeight-marginBottom-12 {
			pdf.AddPage()
			y = marginTop
			drawTableHeader()
		}

		rowData := []string{
			row.Preset.Name,
			fmt.Sprintf("%d x %d", row.Preset.WidthDp, row.Preset.HeightDp),
			fmt.Sprintf("%d x %d", row.Info.SizeClass.MinWidthDp, row.Info.SizeClass.MinHeightDp),
			postureText(row.Preset),
			row.Device.Kind().String(),
			adaptive.YesNo(row.Device.IsLandscapePhone()),
			row.Plan.Describe(),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if y > pageHeight-marginBottom-45 {
		pdf.AddPage()
		y = marginTop
	}

	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Thresholds", "", 0, "L", false, 0, "")
	y += 9

	thresholdItems := []struct {
		label string
		value string
	}{
		{"Medium", fmt.Sprintf(">= %d dp wide, aspect ratio < %.1f", devicetype.MediumLowerBound, devicetype.MediumMaxAspectRatio)},
		{"Expanded", fmt.Sprintf(">= %d dp wide", devicetype.ExpandedLowerBound)},
		{"Large", fmt.Sprintf(">= %d dp wide", devicetype.LargeLowerBound)},
		{"ExtraLarge", fmt.Sprintf(">= %d dp wide", devicetype.ExtraLargeLowerBound)},
		{"Landscape phone", fmt.Sprintf("< %d dp high, aspect ratio >= %.1f", devicetype.LandscapePhoneMaxHeight, devicetype.LandscapePhoneMinAspectRatio)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range thresholdItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(100, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by Adaptive Layout - Device Classification Report", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 10
	case minDim > 20:
		return 8
	default:
		return 6
	}
}
