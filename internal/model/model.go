package model

import (
	"errors"
	"fmt"
)

// ItemSpec describes one line of an item list. Quantity copies are
// expanded into separate Items by Job.Build.
type ItemSpec struct {
	Name     string  `json:"name" yaml:"name"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Depth    float64 `json:"depth" yaml:"depth"`
	Weight   float64 `json:"weight" yaml:"weight"`
	Quantity int     `json:"quantity" yaml:"quantity"`
}

func NewItemSpec(name string, w, h, d, weight float64, qty int) ItemSpec {
	return ItemSpec{Name: name, Width: w, Height: h, Depth: d, Weight: weight, Quantity: qty}
}

// Volume returns the volume of a single copy.
func (s ItemSpec) Volume() float64 {
	return s.Width * s.Height * s.Depth
}

// BinSpec describes an available container type.
type BinSpec struct {
	Name      string  `json:"name" yaml:"name"`
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
	Depth     float64 `json:"depth" yaml:"depth"`
	MaxWeight float64 `json:"max_weight" yaml:"max_weight"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
}

func NewBinSpec(name string, w, h, d, maxWeight float64, qty int) BinSpec {
	return BinSpec{Name: name, Width: w, Height: h, Depth: d, MaxWeight: maxWeight, Quantity: qty}
}

// Volume returns the interior volume of one bin.
func (s BinSpec) Volume() float64 {
	return s.Width * s.Height * s.Depth
}

// Job ties item and bin lists together for save/load.
type Job struct {
	Name   string      `json:"name" yaml:"name"`
	Items  []ItemSpec  `json:"items" yaml:"items"`
	Bins   []BinSpec   `json:"bins" yaml:"bins"`
	Result *PackResult `json:"result,omitempty" yaml:"result,omitempty"`
}

func NewJob() Job {
	return Job{
		Name:  "Untitled",
		Items: []ItemSpec{},
		Bins:  []BinSpec{},
	}
}

// Build expands quantities into fresh items and bins. Copies of a spec
// with quantity > 1 are suffixed "#n". A quantity below 1 counts as 1.
// Every invalid spec is reported in the joined error.
func (j Job) Build() ([]*Item, []*Bin, error) {
	var items []*Item
	var bins []*Bin
	var errs []error

	for _, s := range j.Items {
		for n := 1; n <= max(s.Quantity, 1); n++ {
			it, err := NewItem(copyName(s.Name, n, s.Quantity), s.Width, s.Height, s.Depth, s.Weight)
			if err != nil {
				errs = append(errs, err)
				break
			}
			items = append(items, it)
		}
	}
	for _, s := range j.Bins {
		for n := 1; n <= max(s.Quantity, 1); n++ {
			b, err := NewBin(copyName(s.Name, n, s.Quantity), s.Width, s.Height, s.Depth, s.MaxWeight)
			if err != nil {
				errs = append(errs, err)
				break
			}
			bins = append(bins, b)
		}
	}

	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}
	return items, bins, nil
}

func copyName(name string, n, qty int) string {
	if qty <= 1 {
		return name
	}
	return fmt.Sprintf("%s #%d", name, n)
}

// PackResult holds the outcome of a packing run.
type PackResult struct {
	Bins  []*Bin  `json:"bins" yaml:"bins"`
	Unfit []*Item `json:"unfit" yaml:"unfit"`
}

// UsedBins returns the bins that received at least one item.
func (r PackResult) UsedBins() []*Bin {
	var used []*Bin
	for _, b := range r.Bins {
		if len(b.Items) > 0 {
			used = append(used, b)
		}
	}
	return used
}

// PackedCount returns the number of items placed across all bins.
func (r PackResult) PackedCount() int {
	n := 0
	for _, b := range r.Bins {
		n += len(b.Items)
	}
	return n
}

// TotalEfficiency returns packed volume as a percentage of the volume of
// the bins actually used.
func (r PackResult) TotalEfficiency() float64 {
	var used, total float64
	for _, b := range r.UsedBins() {
		used += b.UsedVolume()
		total += b.Volume()
	}
	if total == 0 {
		return 0
	}
	return (used / total) * 100.0
}
