package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var (
	// ErrInvalidDimension is returned when an item or bin is given a
	// non-positive or non-finite extent.
	ErrInvalidDimension = errors.New("dimensions must be positive and finite")
	// ErrInvalidWeight is returned for a negative or non-finite weight.
	ErrInvalidWeight = errors.New("weight must be non-negative and finite")
)

// Item is a cuboid to be placed in a bin.
type Item struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Width        float64      `json:"width" yaml:"width"`
	Height       float64      `json:"height" yaml:"height"`
	Depth        float64      `json:"depth" yaml:"depth"`
	Weight       float64      `json:"weight" yaml:"weight"`
	RotationType RotationType `json:"rotation_type" yaml:"rotation_type"`
	Position     Pivot        `json:"position" yaml:"position"`
}

// NewItem validates the measurements and returns an unplaced item at the origin.
func NewItem(name string, w, h, d, weight float64) (*Item, error) {
	if err := validateExtents(w, h, d); err != nil {
		return nil, fmt.Errorf("item %q: %w", name, err)
	}
	if err := validateWeight(weight); err != nil {
		return nil, fmt.Errorf("item %q: %w", name, err)
	}
	return &Item{
		ID:           uuid.New().String()[:8],
		Name:         name,
		Width:        w,
		Height:       h,
		Depth:        d,
		Weight:       weight,
		RotationType: RotationWHD,
	}, nil
}

// Volume is rotation invariant.
func (i *Item) Volume() float64 {
	return i.Width * i.Height * i.Depth
}

// Dimension returns the item's extents along the bin axes for its current rotation.
func (i *Item) Dimension() Dimension {
	return i.RotationType.Apply(i.Width, i.Height, i.Depth)
}

// DimensionAs returns the extents the item would have under rotation r.
func (i *Item) DimensionAs(r RotationType) Dimension {
	return r.Apply(i.Width, i.Height, i.Depth)
}

// Intersects reports whether the two items overlap in all three axis-pair
// projections. Boxes that only touch do not intersect.
func (i *Item) Intersects(other *Item) bool {
	return boxesIntersect(i.Position, i.Dimension(), other.Position, other.Dimension())
}

func (i *Item) String() string {
	return fmt.Sprintf("%s(%gx%gx%g, weight: %g) pos(%s) rt(%s)",
		i.Name, i.Width, i.Height, i.Depth, i.Weight, i.Position, i.RotationType)
}

// boxesIntersect tests the (W,H), (H,D) and (W,D) projections.
func boxesIntersect(p1 Pivot, d1 Dimension, p2 Pivot, d2 Dimension) bool {
	return rectIntersect(p1, d1, p2, d2, WidthAxis, HeightAxis) &&
		rectIntersect(p1, d1, p2, d2, HeightAxis, DepthAxis) &&
		rectIntersect(p1, d1, p2, d2, WidthAxis, DepthAxis)
}

// rectIntersect compares box centers on the x/y axes against the sum of
// half-extents. The comparison is strict so that zero-gap neighbours pass.
func rectIntersect(p1 Pivot, d1 Dimension, p2 Pivot, d2 Dimension, x, y Axis) bool {
	cx1 := p1[x] + d1[x]/2
	cy1 := p1[y] + d1[y]/2
	cx2 := p2[x] + d2[x]/2
	cy2 := p2[y] + d2[y]/2

	ix := math.Max(cx1, cx2) - math.Min(cx1, cx2)
	iy := math.Max(cy1, cy2) - math.Min(cy1, cy2)

	return ix < (d1[x]+d2[x])/2 && iy < (d1[y]+d2[y])/2
}

func validateExtents(w, h, d float64) error {
	for _, v := range []float64{w, h, d} {
		if !(v > 0) || math.IsInf(v, 0) {
			return ErrInvalidDimension
		}
	}
	return nil
}

func validateWeight(weight float64) error {
	if !(weight >= 0) || math.IsInf(weight, 0) {
		return ErrInvalidWeight
	}
	return nil
}
