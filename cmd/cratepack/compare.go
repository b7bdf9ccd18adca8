package main

import (
	"errors"
	"fmt"

	"github.com/piwi3910/CratePack/internal/engine"
	"github.com/spf13/cobra"
)

var compareInputs inputFlags

var compareCmd = &cobra.Command{
	Use:   "compare [job-file]",
	Short: "Compare packing against the full bin catalog and each bin type alone",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompare,
}

func init() {
	compareInputs.register(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	job, err := compareInputs.loadJob(args)
	if err != nil {
		return err
	}
	if len(job.Bins) == 0 {
		return errors.New("no bins: pass a job file, --bins or --preset")
	}

	results, err := engine.CompareScenarios(engine.BuildDefaultScenarios(job.Bins), job.Items, engine.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Scenario comparison: "+job.Name))
	fmt.Fprintf(out, "%-32s %6s %8s %7s %8s %14s\n", "Scenario", "Bins", "Packed", "Unfit", "Fill %", "Bin volume")
	for _, r := range results {
		line := fmt.Sprintf("%-32s %6d %8d %7d %8.1f %14.0f",
			r.Scenario.Name, r.BinsUsed, r.PackedCount, r.UnfitCount, r.FillPercent, r.UsedBinsSize)
		if r.UnfitCount > 0 {
			line = warnStyle.Render(line)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
