package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// binSpacing separates consecutive bins along X in model space.
const binSpacing = 0.25

var layerColors = []color.ColorNumber{
	color.Red,
	color.Yellow,
	color.Green,
	color.Cyan,
	color.Blue,
	color.Magenta,
}

// ExportDXF writes a 3D wireframe of every used bin and its items. Each bin
// gets its own layer; bins are laid out side by side along the X axis with
// a gap of a quarter of the preceding bin width.
func ExportDXF(path string, result model.PackResult) error {
	used := result.UsedBins()
	if len(used) == 0 {
		return fmt.Errorf("no packed bins to export")
	}

	d := dxf.NewDrawing()
	offset := 0.0
	for i, b := range used {
		layer := LayerName(i+1, b.Name)
		if _, err := d.AddLayer(layer, layerColors[i%len(layerColors)], dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add layer %q: %w", layer, err)
		}

		origin := model.Pivot{offset, 0, 0}
		if err := drawBox(d, origin, b.Dimension()); err != nil {
			return fmt.Errorf("bin %q: %w", b.Name, err)
		}
		for _, it := range b.Items {
			p := it.Position.Offset(model.WidthAxis, offset)
			if err := drawBox(d, p, it.Dimension()); err != nil {
				return fmt.Errorf("item %q: %w", it.Name, err)
			}
		}

		offset += b.Width * (1 + binSpacing)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// LayerName returns the DXF layer used for the n-th used bin.
func LayerName(n int, binName string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, binName)
	return fmt.Sprintf("BIN%d_%s", n, clean)
}

// drawBox emits the 12 edges of an axis-aligned box. DXF Y is the bin depth
// and DXF Z is the bin height, so the drawing opens upright in CAD tools.
func drawBox(d *drawing.Drawing, p model.Pivot, dim model.Dimension) error {
	x0, y0, z0 := p[model.WidthAxis], p[model.DepthAxis], p[model.HeightAxis]
	x1, y1, z1 := x0+dim[model.WidthAxis], y0+dim[model.DepthAxis], z0+dim[model.HeightAxis]

	corners := [8][3]float64{
		{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		a, b := corners[e[0]], corners[e[1]]
		if _, err := d.Line(a[0], a[1], a[2], b[0], b[1], b[2]); err != nil {
			return err
		}
	}
	return nil
}
