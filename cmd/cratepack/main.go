// CratePack - 3D load planner
//
// Packs cuboid items into containers with a greedy first-fit heuristic and
// exports load plans as text, PDF, item labels, XLSX and DXF.
//
// Build:
//   go build -o cratepack ./cmd/cratepack
//
// Usage:
//   cratepack pack --items items.csv --bins bins.csv --formats pdf,xlsx
//   cratepack compare job.yaml
//   cratepack estimate --items items.xlsx --preset "Euro Pallet 1200x800"
//   cratepack presets list

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
