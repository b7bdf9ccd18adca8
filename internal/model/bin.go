package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Bin is a container with fixed interior dimensions.
//
// MaxWeight is advisory metadata: placement never checks it. Overweight
// reports the condition after the fact.
type Bin struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
	Depth     float64 `json:"depth" yaml:"depth"`
	MaxWeight float64 `json:"max_weight" yaml:"max_weight"`
	Items     []*Item `json:"items" yaml:"items"`
}

// Placement is an accepted orientation and position for an item.
type Placement struct {
	Rotation  RotationType `json:"rotation" yaml:"rotation"`
	Position  Pivot        `json:"position" yaml:"position"`
	Dimension Dimension    `json:"dimension" yaml:"dimension"`
}

// NewBin validates the measurements and returns an empty bin.
func NewBin(name string, w, h, d, maxWeight float64) (*Bin, error) {
	if err := validateExtents(w, h, d); err != nil {
		return nil, fmt.Errorf("bin %q: %w", name, err)
	}
	if err := validateWeight(maxWeight); err != nil {
		return nil, fmt.Errorf("bin %q: %w", name, err)
	}
	return &Bin{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     w,
		Height:    h,
		Depth:     d,
		MaxWeight: maxWeight,
		Items:     []*Item{},
	}, nil
}

// Volume returns the interior volume.
func (b *Bin) Volume() float64 {
	return b.Width * b.Height * b.Depth
}

// Dimension returns the interior extents indexed by Axis.
func (b *Bin) Dimension() Dimension {
	return Dimension{b.Width, b.Height, b.Depth}
}

// Fit finds the first rotation, in RotationTypes order, under which item
// placed at pivot stays inside the bin and clears every contained item.
// Neither the bin nor the item is modified.
func (b *Bin) Fit(item *Item, pivot Pivot) (Placement, bool) {
	bounds := b.Dimension()
	for _, rt := range RotationTypes {
		d := item.DimensionAs(rt)
		if bounds[WidthAxis] < pivot[WidthAxis]+d[WidthAxis] ||
			bounds[HeightAxis] < pivot[HeightAxis]+d[HeightAxis] ||
			bounds[DepthAxis] < pivot[DepthAxis]+d[DepthAxis] {
			continue
		}

		free := true
		for _, ib := range b.Items {
			if boxesIntersect(ib.Position, ib.Dimension(), pivot, d) {
				free = false
				break
			}
		}
		if free {
			return Placement{Rotation: rt, Position: pivot, Dimension: d}, true
		}
	}
	return Placement{}, false
}

// PutItem places item at pivot using the first rotation that fits and
// appends it to the bin. On failure it returns false and leaves both the
// bin and the item untouched.
func (b *Bin) PutItem(item *Item, pivot Pivot) bool {
	p, ok := b.Fit(item, pivot)
	if !ok {
		return false
	}
	item.RotationType = p.Rotation
	item.Position = p.Position
	b.Items = append(b.Items, item)
	return true
}

// UsedVolume sums the volume of the contained items.
func (b *Bin) UsedVolume() float64 {
	var total float64
	for _, it := range b.Items {
		total += it.Volume()
	}
	return total
}

// FillRatio returns used volume as a percentage of the bin volume.
func (b *Bin) FillRatio() float64 {
	v := b.Volume()
	if v == 0 {
		return 0
	}
	return (b.UsedVolume() / v) * 100.0
}

// ItemsWeight sums the weight of the contained items.
func (b *Bin) ItemsWeight() float64 {
	var total float64
	for _, it := range b.Items {
		total += it.Weight
	}
	return total
}

// Overweight reports whether the contents exceed MaxWeight. Informational only.
func (b *Bin) Overweight() bool {
	return b.ItemsWeight() > b.MaxWeight
}

func (b *Bin) String() string {
	return fmt.Sprintf("%s(%gx%gx%g, max_weight:%g)", b.Name, b.Width, b.Height, b.Depth, b.MaxWeight)
}
