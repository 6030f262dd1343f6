package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/adaptive-layout/internal/model"
)

// CardInfo holds the data encoded into each preset card's QR code. The
// embedded preset can be loaded back into the simulator as is.
type CardInfo struct {
	Preset    model.DevicePreset `json:"preset"`
	Kind      string             `json:"kind"`
	Rank      int                `json:"rank"`
	Landscape bool               `json:"landscape_phone"`
	Layout    string             `json:"layout"`
}

// Card layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each card cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	cardMarginTop  = 12.7 // mm
	cardMarginLeft = 4.8  // mm
	cardWidth      = 66.7 // mm per card
	cardHeight     = 25.4 // mm per card
	cardCols       = 3
	cardRows       = 10
	cardsPerPage   = cardCols * cardRows
	qrSize         = 20.0 // QR code size in mm
	cardPadding    = 2.0  // mm internal padding
)

// CollectCardInfos extracts the card data for every classified preset.
func CollectCardInfos(rows []Classification) []CardInfo {
	cards := make([]CardInfo, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, CardInfo{
			Preset:    r.Preset,
			Kind:      r.Device.Kind().String(),
			Rank:      r.Device.Rank(),
			Landscape: r.Device.IsLandscapePhone(),
			Layout:    r.Plan.Describe(),
		})
	}
	return cards
}

// ExportPresetCards generates a PDF of QR-coded cards, one per preset. Each
// card shows the preset name, its size and device type, and a QR code that
// encodes the preset and its classification as JSON. Cards are laid out on a
// standard label sheet (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportPresetCards(path string, rows []Classification) error {
	cards := CollectCardInfos(rows)
	if len(cards) == 0 {
		return fmt.Errorf("no presets to generate cards for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, card := range cards {
		if i%cardsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % cardsPerPage
		col := posOnPage % cardCols
		row := posOnPage / cardCols

		x := cardMarginLeft + float64(col)*cardWidth
		y := cardMarginTop + float64(row)*cardHeight

		if err := renderCard(pdf, x, y, i, card); err != nil {
			return fmt.Errorf("failed to render card for %q: %w", card.Preset.Name, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderCard draws a single card at the given position.
func renderCard(pdf *fpdf.Fpdf, x, y float64, index int, info CardInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal card info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", index, info.Preset.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + cardWidth - qrSize - cardPadding
	qrY := y + (cardHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + cardPadding
	textW := cardWidth - qrSize - 3*cardPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+cardPadding)
	pdf.CellFormat(textW, 4.5, truncate(pdf, info.Preset.Name, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+cardPadding+5)
	dims := fmt.Sprintf("%d x %d dp", info.Preset.WidthDp, info.Preset.HeightDp)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+cardPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("%s (rank %d)", info.Kind, info.Rank), "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+cardPadding+12.5)
	pdf.CellFormat(textW, 3, truncate(pdf, postureText(info.Preset), textW), "", 1, "L", false, 0, "")

	if info.Landscape {
		pdf.SetXY(textX, y+cardPadding+16)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Landscape phone", "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// truncate shortens text with an ellipsis until it fits the given width.
func truncate(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	for len(text) > 0 && pdf.GetStringWidth(text+"...") > width {
		text = text[:len(text)-1]
	}
	return text + "..."
}
