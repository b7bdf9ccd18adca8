package main

import (
	"errors"
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/spf13/cobra"
)

var estimateInputs inputFlags

var estimateCmd = &cobra.Command{
	Use:   "estimate [job-file]",
	Short: "Estimate bins needed per bin type by volume and weight alone",
	Long: `Estimate gives a lower bound on the number of bins of each type the
items need, ignoring geometry. The waste factor pads the volume bound to
account for packing gaps.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateInputs.register(estimateCmd)
	estimateCmd.Flags().Float64("waste", 0, "waste factor in percent (default: waste_factor from config)")
	bindFlag(settings, "waste_factor", estimateCmd, "waste")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	job, err := estimateInputs.loadJob(args)
	if err != nil {
		return err
	}
	if len(job.Bins) == 0 {
		return errors.New("no bins: pass a job file, --bins or --preset")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Volume estimate: %s (waste %g%%)", job.Name, appConfig.WasteFactor)))
	fmt.Fprintf(out, "%-32s %10s %10s %12s %10s\n", "Bin", "Exact", "Minimum", "With waste", "By weight")
	for _, b := range job.Bins {
		est := model.CalculateBinEstimate(job.Items, b, appConfig.WasteFactor)
		fmt.Fprintf(out, "%-32s %10.2f %10d %12d %10d\n",
			b.Name, est.BinsNeededExact, est.BinsNeededMin, est.BinsWithWaste, est.BinsByWeight)
	}
	return nil
}
