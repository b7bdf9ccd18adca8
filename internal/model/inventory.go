package model

import "github.com/google/uuid"

// BinPreset represents a reusable container definition.
type BinPreset struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Depth     float64 `json:"depth"`
	MaxWeight float64 `json:"max_weight"`
	Category  string  `json:"category"`
}

// NewBinPreset creates a new BinPreset with a generated ID.
func NewBinPreset(name string, w, h, d, maxWeight float64, category string) BinPreset {
	return BinPreset{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     w,
		Height:    h,
		Depth:     d,
		MaxWeight: maxWeight,
		Category:  category,
	}
}

// ToBinSpec converts a BinPreset into a BinSpec with the given quantity.
func (bp BinPreset) ToBinSpec(qty int) BinSpec {
	return NewBinSpec(bp.Name, bp.Width, bp.Height, bp.Depth, bp.MaxWeight, qty)
}

// Inventory holds the user's saved bin presets.
type Inventory struct {
	Bins []BinPreset `json:"bins"`
}

// DefaultInventory returns an inventory of common cartons, pallets and
// containers. Measurements are in mm and kg.
func DefaultInventory() Inventory {
	return Inventory{
		Bins: []BinPreset{
			NewBinPreset("Carton S 305x215x150", 305, 215, 150, 10, "Carton"),
			NewBinPreset("Carton M 400x300x250", 400, 300, 250, 20, "Carton"),
			NewBinPreset("Carton L 600x400x400", 600, 400, 400, 30, "Carton"),
			NewBinPreset("Euro Pallet 1200x800", 800, 1500, 1200, 1000, "Pallet"),
			NewBinPreset("Container 20ft", 2352, 2393, 5898, 28200, "Container"),
			NewBinPreset("Container 40ft", 2352, 2393, 12032, 26700, "Container"),
		},
	}
}

// FindBinByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindBinByID(id string) *BinPreset {
	for i := range inv.Bins {
		if inv.Bins[i].ID == id {
			return &inv.Bins[i]
		}
	}
	return nil
}

// FindBinByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindBinByName(name string) *BinPreset {
	for i := range inv.Bins {
		if inv.Bins[i].Name == name {
			return &inv.Bins[i]
		}
	}
	return nil
}

// BinNames returns the preset names in inventory order.
func (inv *Inventory) BinNames() []string {
	names := make([]string, len(inv.Bins))
	for i, b := range inv.Bins {
		names[i] = b.Name
	}
	return names
}

// Merge appends the presets of other that are not already present. A
// preset is present when its ID or its name is already in the inventory.
// It returns the number of presets added.
func (inv *Inventory) Merge(other Inventory) int {
	ids := make(map[string]bool, len(inv.Bins))
	names := make(map[string]bool, len(inv.Bins))
	for _, b := range inv.Bins {
		ids[b.ID] = true
		names[b.Name] = true
	}

	added := 0
	for _, b := range other.Bins {
		if ids[b.ID] || names[b.Name] {
			continue
		}
		inv.Bins = append(inv.Bins, b)
		ids[b.ID] = true
		names[b.Name] = true
		added++
	}
	return added
}
