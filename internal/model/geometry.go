package model

import "fmt"

// Axis identifies one of the three spatial axes of a bin.
type Axis int

const (
	WidthAxis Axis = iota
	HeightAxis
	DepthAxis
)

// Axes lists the axes in probing order.
var Axes = [3]Axis{WidthAxis, HeightAxis, DepthAxis}

func (a Axis) String() string {
	switch a {
	case WidthAxis:
		return "Width"
	case HeightAxis:
		return "Height"
	case DepthAxis:
		return "Depth"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Pivot is the minimum-coordinate corner of a box, indexed by Axis.
type Pivot [3]float64

// Origin is the pivot every bin is first filled from.
var Origin = Pivot{0, 0, 0}

// Offset returns the pivot moved by delta along a single axis.
func (p Pivot) Offset(a Axis, delta float64) Pivot {
	p[a] += delta
	return p
}

func (p Pivot) String() string {
	return fmt.Sprintf("[%g %g %g]", p[0], p[1], p[2])
}

// Dimension holds the extents of a box along each Axis.
type Dimension [3]float64

// Volume returns the product of the three extents.
func (d Dimension) Volume() float64 {
	return d[0] * d[1] * d[2]
}

// RotationType is one of the six axis-aligned orientations of an item.
// The value names the intrinsic measurement that ends up on each bin axis,
// e.g. HDW puts the item's height along the bin width.
type RotationType int

const (
	RotationWHD RotationType = iota
	RotationHWD
	RotationHDW
	RotationDHW
	RotationDWH
	RotationWDH
)

// RotationTypes lists all orientations in the order placement tries them.
var RotationTypes = [6]RotationType{
	RotationWHD,
	RotationHWD,
	RotationHDW,
	RotationDHW,
	RotationDWH,
	RotationWDH,
}

var rotationLabels = [6]string{
	"RotationType_WHD (w,h,d)",
	"RotationType_HWD (h,w,d)",
	"RotationType_HDW (h,d,w)",
	"RotationType_DHW (d,h,w)",
	"RotationType_DWH (d,w,h)",
	"RotationType_WDH (w,d,h)",
}

// Valid reports whether r is one of the six defined orientations.
func (r RotationType) Valid() bool {
	return r >= RotationWHD && r <= RotationWDH
}

func (r RotationType) String() string {
	if !r.Valid() {
		return fmt.Sprintf("RotationType(%d)", int(r))
	}
	return rotationLabels[r]
}

// Apply permutes intrinsic (w, h, d) measurements into bin-axis extents.
func (r RotationType) Apply(w, h, d float64) Dimension {
	switch r {
	case RotationHWD:
		return Dimension{h, w, d}
	case RotationHDW:
		return Dimension{h, d, w}
	case RotationDHW:
		return Dimension{d, h, w}
	case RotationDWH:
		return Dimension{d, w, h}
	case RotationWDH:
		return Dimension{w, d, h}
	default:
		return Dimension{w, h, d}
	}
}
