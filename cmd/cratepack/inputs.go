package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piwi3910/CratePack/internal/importer"
	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/spf13/cobra"
)

// inputFlags are the job sources shared by pack, compare and estimate.
type inputFlags struct {
	itemsPath string
	binsPath  string
	presets   []string
	presetQty int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.itemsPath, "items", "", "CSV or XLSX file with items (name, width, height, depth, weight, quantity)")
	cmd.Flags().StringVar(&f.binsPath, "bins", "", "CSV or XLSX file with bins (name, width, height, depth, max weight, quantity)")
	cmd.Flags().StringSliceVar(&f.presets, "preset", nil, "bin preset name from the inventory (repeatable)")
	cmd.Flags().IntVar(&f.presetQty, "preset-qty", 0, "quantity for each --preset bin (default: default_bin_qty)")
}

// loadJob assembles a job from an optional job file plus any imported item
// and bin lists and inventory presets.
func (f *inputFlags) loadJob(args []string) (model.Job, error) {
	job := model.NewJob()
	if len(args) > 0 {
		loaded, err := project.LoadJob(args[0])
		if err != nil {
			return job, err
		}
		job = loaded
		logger.Debug("loaded job", "path", args[0], "items", len(job.Items), "bins", len(job.Bins))
	}

	if f.itemsPath != "" {
		res, err := importList(f.itemsPath, importer.TargetItems)
		if err != nil {
			return job, err
		}
		job.Items = append(job.Items, res.Items...)
	}
	if f.binsPath != "" {
		res, err := importList(f.binsPath, importer.TargetBins)
		if err != nil {
			return job, err
		}
		job.Bins = append(job.Bins, res.Bins...)
	}

	if len(f.presets) > 0 {
		bins, err := presetBins(f.presets, f.presetQty)
		if err != nil {
			return job, err
		}
		job.Bins = append(job.Bins, bins...)
	}

	if len(job.Items) == 0 {
		return job, errors.New("no items: pass a job file or --items")
	}
	return job, nil
}

// importList imports path, logging warnings and failing on any row error.
func importList(path string, target importer.Target) (importer.ImportResult, error) {
	res := importer.ImportFile(path, target)
	for _, w := range res.Warnings {
		logger.Warn("import", "file", path, "warning", w)
	}
	if len(res.Errors) > 0 {
		return res, fmt.Errorf("import %s from %s:\n  %s", target, path, strings.Join(res.Errors, "\n  "))
	}
	logger.Debug("imported", "file", path, "target", target.String(), "count", res.Count())
	return res, nil
}

// presetBins resolves inventory preset names into bin specs.
func presetBins(names []string, qty int) ([]model.BinSpec, error) {
	inv, path, err := project.LoadOrCreateInventory(appConfig.InventoryPath)
	if err != nil {
		return nil, fmt.Errorf("load inventory %s: %w", path, err)
	}
	if qty <= 0 {
		qty = max(appConfig.DefaultBinQty, 1)
	}

	var bins []model.BinSpec
	for _, name := range names {
		preset := inv.FindBinByName(name)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset %q (see 'cratepack presets list')", name)
		}
		bins = append(bins, preset.ToBinSpec(qty))
	}
	return bins, nil
}
