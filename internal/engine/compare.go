package engine

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
)

// ComparisonScenario names a bin catalog to pack against.
type ComparisonScenario struct {
	Name string
	Bins []model.BinSpec
}

// ComparisonResult holds the packing result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.PackResult
	BinsUsed     int
	PackedCount  int
	FillPercent  float64
	UnfitCount   int
	UsedBinsSize float64 // total volume of the bins that received items
}

// CompareScenarios packs the same item list against each scenario's bins and
// returns the results in scenario order. Every scenario gets fresh items, so
// runs do not affect each other.
func CompareScenarios(scenarios []ComparisonScenario, items []model.ItemSpec, opts ...Option) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		job := model.Job{Name: scenario.Name, Items: items, Bins: scenario.Bins}
		result, err := PackJob(job, opts...)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		var usedSize float64
		used := result.UsedBins()
		for _, b := range used {
			usedSize += b.Volume()
		}

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Result:       result,
			BinsUsed:     len(used),
			PackedCount:  result.PackedCount(),
			FillPercent:  result.TotalEfficiency(),
			UnfitCount:   len(result.Unfit),
			UsedBinsSize: usedSize,
		})
	}

	return results, nil
}

// BuildDefaultScenarios generates the full catalog plus one scenario per bin
// type, to show what each container size achieves on its own.
func BuildDefaultScenarios(bins []model.BinSpec) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name: "All Bins",
			Bins: bins,
		},
	}
	if len(bins) < 2 {
		return scenarios
	}

	for _, b := range bins {
		scenarios = append(scenarios, ComparisonScenario{
			Name: fmt.Sprintf("Only %s", b.Name),
			Bins: []model.BinSpec{b},
		})
	}
	return scenarios
}
