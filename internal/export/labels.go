package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/CratePack/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each item label's QR code.
type LabelInfo struct {
	ItemID   string  `json:"id"`
	ItemName string  `json:"name"`
	Width    float64 `json:"w"`
	Height   float64 `json:"h"`
	Depth    float64 `json:"d"`
	Weight   float64 `json:"weight"`
	BinIndex int     `json:"bin"`
	BinName  string  `json:"bin_name"`
	Rotation string  `json:"rotation"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per packed item, on
// Avery 5160 sheets. The QR code carries the LabelInfo as JSON so a scanner
// at the loading dock can tell which bin and position the item belongs to.
func ExportLabels(path string, result model.PackResult) error {
	// Collect every packed item across all used bins
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return fmt.Errorf("no packed items to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		// Grid position on the current sheet
		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label, i); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.ItemName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, seq int) error {
	// Draw light border as cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%d_%s", seq, info.ItemID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Item name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate name if too long
	name := info.ItemName
	if pdf.GetStringWidth(name) > textW {
		runes := []rune(name)
		for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > textW {
			runes = runes[:len(runes)-1]
		}
		name = string(runes)
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	// Dimensions and weight
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f x %.0f  %.1f kg", info.Width, info.Height, info.Depth, info.Weight)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Bin and position info
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	binInfo := fmt.Sprintf("Bin %d @ (%.0f, %.0f, %.0f)", info.BinIndex, info.X, info.Y, info.Z)
	pdf.CellFormat(textW, 3, binInfo, "", 1, "L", false, 0, "")

	// Bin name
	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, info.BinName, "", 0, "L", false, 0, "")

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information for every packed item, in
// bin order. Bin numbers count used bins only, matching the PDF pages.
func CollectLabelInfos(result model.PackResult) []LabelInfo {
	var labels []LabelInfo
	for binIdx, b := range result.UsedBins() {
		for _, it := range b.Items {
			labels = append(labels, LabelInfo{
				ItemID:   it.ID,
				ItemName: it.Name,
				Width:    it.Width,
				Height:   it.Height,
				Depth:    it.Depth,
				Weight:   it.Weight,
				BinIndex: binIdx + 1,
				BinName:  b.Name,
				Rotation: it.RotationType.String(),
				X:        it.Position[model.WidthAxis],
				Y:        it.Position[model.HeightAxis],
				Z:        it.Position[model.DepthAxis],
			})
		}
	}
	return labels
}
