// Package export writes packing results to PDF, label sheets, Excel
// workbooks, DXF drawings and plain-text reports.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/CratePack/internal/model"
)

// itemColor represents an RGB fill for a placed item.
type itemColor struct {
	R, G, B int
}

var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 25.0
	panelGap     = 10.0
	drawAreaTop  = marginTop + headerHeight + 12.0
)

// view selects which bin faces a panel projects onto the page.
type view int

const (
	topView   view = iota // width across, depth down
	frontView             // width across, height up
)

func (v view) String() string {
	if v == frontView {
		return "Front view (W x H)"
	}
	return "Top view (W x D)"
}

// ExportPDF writes one page per used bin with a top and a front projection
// of its contents, followed by a summary page.
func ExportPDF(path string, result model.PackResult) error {
	used := result.UsedBins()
	if len(used) == 0 {
		return fmt.Errorf("no packed bins to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	// One page per used bin
	for i, b := range used {
		pdf.AddPage()
		renderBinPage(pdf, b, i+1)
	}

	// Summary page
	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderBinPage draws a single bin on the current PDF page.
func renderBinPage(pdf *fpdf.Fpdf, b *model.Bin, binNum int) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Bin %d: %s (%.0f x %.0f x %.0f)", binNum, b.Name, b.Width, b.Height, b.Depth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Used volume: %.0f | Bin volume: %.0f | Fill: %.1f%% | Weight: %.1f / %.1f",
		len(b.Items), b.UsedVolume(), b.Volume(), b.FillRatio(), b.ItemsWeight(), b.MaxWeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")
	if b.Overweight() {
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, marginTop+headerHeight+5)
		pdf.CellFormat(100, 5, "OVERWEIGHT", "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	// Two side-by-side panels above the legend
	panelW := (pageWidth - marginLeft - marginRight - panelGap) / 2
	panelH := pageHeight - drawAreaTop - marginBottom - legendHeight

	renderView(pdf, b, topView, marginLeft, drawAreaTop, panelW, panelH)
	renderView(pdf, b, frontView, marginLeft+panelW+panelGap, drawAreaTop, panelW, panelH)

	drawItemsLegend(pdf, b, drawAreaTop+panelH+6)
}

// projected is an item rectangle in view coordinates, origin top-left.
type projected struct {
	index      int
	x, y, w, h float64
	depth      float64 // draw order key, smaller is drawn first
}

// project maps the bin contents onto the page plane of v.
func project(b *model.Bin, v view) (float64, float64, []projected) {
	rects := make([]projected, 0, len(b.Items))
	for i, it := range b.Items {
		d := it.Dimension()
		p := it.Position
		switch v {
		case frontView:
			rects = append(rects, projected{
				index: i,
				x:     p[model.WidthAxis],
				y:     b.Height - p[model.HeightAxis] - d[model.HeightAxis],
				w:     d[model.WidthAxis],
				h:     d[model.HeightAxis],
				depth: -p[model.DepthAxis],
			})
		default:
			rects = append(rects, projected{
				index: i,
				x:     p[model.WidthAxis],
				y:     p[model.DepthAxis],
				w:     d[model.WidthAxis],
				h:     d[model.DepthAxis],
				depth: p[model.HeightAxis] + d[model.HeightAxis],
			})
		}
	}
	sort.SliceStable(rects, func(i, j int) bool { return rects[i].depth < rects[j].depth })

	if v == frontView {
		return b.Width, b.Height, rects
	}
	return b.Width, b.Depth, rects
}

// renderView draws one projection of the bin scaled into the given panel.
func renderView(pdf *fpdf.Fpdf, b *model.Bin, v view, left, top, panelW, panelH float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(left, top-6)
	pdf.CellFormat(panelW, 5, v.String(), "", 0, "L", false, 0, "")

	// Scale the bin to fit the panel
	boundsW, boundsH, rects := project(b, v)
	scale := math.Min(panelW/boundsW, panelH/boundsH)
	canvasW := boundsW * scale
	canvasH := boundsH * scale
	offsetX := left + (panelW-canvasW)/2
	offsetY := top

	// Bin floor (cardboard color)
	pdf.SetFillColor(222, 196, 150)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Draw items, farthest first
	for _, r := range rects {
		col := itemColors[r.index%len(itemColors)]
		rw := r.w * scale
		rh := r.h * scale
		rx := offsetX + r.x*scale
		ry := offsetY + r.y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(rx, ry, rw, rh, "FD")

		// Label if the rectangle is large enough
		if rw > 8 && rh > 5 {
			pdf.SetFont("Helvetica", "", labelFontSize(rw, rh))
			pdf.SetTextColor(0, 0, 0)
			label := fmt.Sprintf("%d", r.index+1)
			labelW := pdf.GetStringWidth(label)
			pdf.SetXY(rx+(rw-labelW)/2, ry+rh/2-2)
			pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
		}
	}

	drawDimensionAnnotations(pdf, boundsW, boundsH, offsetX, offsetY, canvasW, canvasH)
}

// drawDimensionAnnotations labels the panel edges with the bin extents.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, w, h, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width label (bottom)
	widthLabel := fmt.Sprintf("%.0f", w)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height label (left side, rotated)
	heightLabel := fmt.Sprintf("%.0f", h)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawItemsLegend renders numbered swatches for the items in the bin.
func drawItemsLegend(pdf *fpdf.Fpdf, b *model.Bin, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, it := range b.Items {
		col := itemColors[i%len(itemColors)]
		d := it.Dimension()
		label := fmt.Sprintf("%d %s (%.0fx%.0fx%.0f)", i+1, it.Name, d[0], d[1], d[2])
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}
		if startY > pageHeight-marginBottom {
			break
		}

		// Color swatch
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Load Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Overall statistics
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	used := result.UsedBins()
	summaryItems := []struct {
		label string
		value string
	}{
		{"Bins Used", fmt.Sprintf("%d of %d", len(used), len(result.Bins))},
		{"Overall Fill", fmt.Sprintf("%.1f%%", result.TotalEfficiency())},
		{"Items Packed", fmt.Sprintf("%d", result.PackedCount())},
		{"Unfit Items", fmt.Sprintf("%d", len(result.Unfit))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Bin breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Bin Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 70, 55, 20, 30, 45, 30}
	headers := []string{"Bin", "Name", "Dimensions", "Items", "Fill", "Weight / Max", "Status"}

	// Table header
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, b := range used {
		// Continue on a new page when the table overflows
		if y > pageHeight-marginBottom-6 {
			pdf.AddPage()
			y = marginTop
		}
		status := "OK"
		if b.Overweight() {
			status = "Overweight"
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			b.Name,
			fmt.Sprintf("%.0f x %.0f x %.0f", b.Width, b.Height, b.Depth),
			fmt.Sprintf("%d", len(b.Items)),
			fmt.Sprintf("%.1f%%", b.FillRatio()),
			fmt.Sprintf("%.1f / %.1f", b.ItemsWeight(), b.MaxWeight),
			status,
		}

		// Alternate row shading
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Unfit items warning
	if len(result.Unfit) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unfit Items", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, it := range result.Unfit {
			if y > pageHeight-marginBottom-5 {
				pdf.AddPage()
				y = marginTop
			}
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %.0f x %.0f x %.0f (weight: %.1f)", it.Name, it.Width, it.Height, it.Depth, it.Weight)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CratePack - 3D Load Planner", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
