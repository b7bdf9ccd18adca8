package model

import "math"

// BinEstimate holds a volume-based lower bound on the bins needed for an
// item list. Geometry is ignored, so the real packing may need more.
type BinEstimate struct {
	TotalItemVolume float64 `json:"total_item_volume"`
	TotalItemWeight float64 `json:"total_item_weight"`
	BinVolume       float64 `json:"bin_volume"`
	BinsNeededExact float64 `json:"bins_needed_exact"` // Exact fractional number of bins
	BinsNeededMin   int     `json:"bins_needed_min"`   // Ceiling of exact
	BinsWithWaste   int     `json:"bins_with_waste"`   // Including the waste factor
	BinsByWeight    int     `json:"bins_by_weight"`    // Ceiling of weight / max weight, 0 if max weight is 0
	WastePercent    float64 `json:"waste_percent"`
}

// CalculateBinEstimate computes how many bins of the given type an item list
// needs by volume alone, padded by wastePercent (e.g. 15 for 15%).
func CalculateBinEstimate(items []ItemSpec, bin BinSpec, wastePercent float64) BinEstimate {
	var totalVolume, totalWeight float64
	for _, it := range items {
		qty := float64(max(it.Quantity, 1))
		totalVolume += it.Volume() * qty
		totalWeight += it.Weight * qty
	}

	est := BinEstimate{
		TotalItemVolume: totalVolume,
		TotalItemWeight: totalWeight,
		BinVolume:       bin.Volume(),
		WastePercent:    wastePercent,
	}
	if est.BinVolume <= 0 {
		return est
	}

	est.BinsNeededExact = totalVolume / est.BinVolume
	est.BinsNeededMin = int(math.Ceil(est.BinsNeededExact))
	est.BinsWithWaste = int(math.Ceil(est.BinsNeededExact * (1 + wastePercent/100.0)))
	if bin.MaxWeight > 0 {
		est.BinsByWeight = int(math.Ceil(totalWeight / bin.MaxWeight))
	}
	return est
}
