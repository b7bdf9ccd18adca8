package export

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by ExportXLSX.
const (
	SheetLoadPlan = "Load Plan"
	SheetBins     = "Bins"
	SheetUnfit    = "Unfit"
)

var (
	loadPlanHeader = []interface{}{"Bin #", "Bin", "Item", "ID", "Width", "Height", "Depth", "Weight", "Rotation", "X", "Y", "Z", "Placed W", "Placed H", "Placed D"}
	binsHeader     = []interface{}{"Bin #", "Bin", "Width", "Height", "Depth", "Items", "Fill %", "Weight", "Max Weight", "Overweight"}
	unfitHeader    = []interface{}{"Item", "ID", "Width", "Height", "Depth", "Weight"}
)

// ExportXLSX writes a workbook with a per-item load plan, a per-bin summary
// and the list of unfit items.
func ExportXLSX(path string, result model.PackResult) error {
	if len(result.UsedBins()) == 0 && len(result.Unfit) == 0 {
		return fmt.Errorf("nothing to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetLoadPlan); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetBins, SheetUnfit} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	var planRows, binRows, unfitRows [][]interface{}
	for binIdx, b := range result.UsedBins() {
		binNum := binIdx + 1
		for _, it := range b.Items {
			d := it.Dimension()
			p := it.Position
			planRows = append(planRows, []interface{}{
				binNum, b.Name, it.Name, it.ID,
				it.Width, it.Height, it.Depth, it.Weight,
				it.RotationType.String(),
				p[model.WidthAxis], p[model.HeightAxis], p[model.DepthAxis],
				d[model.WidthAxis], d[model.HeightAxis], d[model.DepthAxis],
			})
		}
		binRows = append(binRows, []interface{}{
			binNum, b.Name, b.Width, b.Height, b.Depth,
			len(b.Items), round1(b.FillRatio()), b.ItemsWeight(), b.MaxWeight, b.Overweight(),
		})
	}
	for _, it := range result.Unfit {
		unfitRows = append(unfitRows, []interface{}{it.Name, it.ID, it.Width, it.Height, it.Depth, it.Weight})
	}

	tables := []struct {
		sheet  string
		header []interface{}
		rows   [][]interface{}
	}{
		{SheetLoadPlan, loadPlanHeader, planRows},
		{SheetBins, binsHeader, binRows},
		{SheetUnfit, unfitHeader, unfitRows},
	}
	for _, tbl := range tables {
		if err := writeTable(f, tbl.sheet, tbl.header, tbl.rows, headerStyle); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 14); err != nil {
		return fmt.Errorf("failed to size %s columns: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}
