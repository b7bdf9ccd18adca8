package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/CratePack/internal/engine"
	"github.com/piwi3910/CratePack/internal/export"
	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/spf13/cobra"
)

// recentJobsLimit caps AppConfig.RecentJobs.
const recentJobsLimit = 10

var (
	packInputs inputFlags
	packSave   string
	packQuiet  bool
)

var packCmd = &cobra.Command{
	Use:   "pack [job-file]",
	Short: "Pack items into bins and print or export the load plan",
	Long: `Pack the items of a job file (.cratepack, .json, .yaml) and/or imported
item and bin lists. The report is printed to stdout; --formats writes
additional exports (txt, pdf, labels, xlsx, dxf, json) to --output-dir.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPack,
}

func init() {
	packInputs.register(packCmd)
	packCmd.Flags().StringSlice("formats", nil, "export formats: txt, pdf, labels, xlsx, dxf, json")
	packCmd.Flags().String("output-dir", "", "directory for exported files")
	packCmd.Flags().Bool("verify", true, "check the result for overlaps and out-of-bounds placements")
	packCmd.Flags().StringVar(&packSave, "save", "", "save the job with its result to this file")
	packCmd.Flags().BoolVarP(&packQuiet, "quiet", "q", false, "do not print the report")

	bindFlag(settings, "export_formats", packCmd, "formats")
	bindFlag(settings, "output_dir", packCmd, "output-dir")
	bindFlag(settings, "verify_packing", packCmd, "verify")
}

func runPack(cmd *cobra.Command, args []string) error {
	job, err := packInputs.loadJob(args)
	if err != nil {
		return err
	}

	result, err := engine.PackJob(job, engine.WithLogger(logger))
	if err != nil {
		return err
	}
	if appConfig.VerifyPacking {
		if err := engine.Verify(result.Bins); err != nil {
			return fmt.Errorf("packing failed verification: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if !packQuiet {
		if err := printReport(out, job.Name, result); err != nil {
			return err
		}
	}

	written, err := exportAll(appConfig.OutputDir, fileStem(job.Name), appConfig.ExportFormats, job, result)
	for _, p := range written {
		fmt.Fprintln(out, dimStyle.Render("wrote "+p))
	}
	if err != nil {
		return err
	}

	if packSave != "" {
		job.Result = &result
		if err := project.SaveJob(packSave, job); err != nil {
			return err
		}
		fmt.Fprintln(out, dimStyle.Render("saved "+packSave))
		rememberJob(packSave)
	} else if len(args) > 0 {
		rememberJob(args[0])
	}
	return nil
}

func printReport(w io.Writer, name string, result model.PackResult) error {
	fmt.Fprintln(w, titleStyle.Render("Load plan: "+name))
	if err := export.WriteReport(w, result); err != nil {
		return err
	}
	for _, b := range result.UsedBins() {
		if b.Overweight() {
			fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("warning: %s carries %g over max weight %g", b.Name, b.ItemsWeight(), b.MaxWeight)))
		}
	}
	if n := len(result.Unfit); n > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("warning: %d item(s) did not fit any bin", n)))
	}
	return nil
}

// exportAll writes one file per format into dir and returns the paths
// written so far, also on error.
func exportAll(dir, stem string, formats []string, job model.Job, result model.PackResult) ([]string, error) {
	if len(formats) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, format := range formats {
		format = strings.ToLower(strings.TrimSpace(format))
		var (
			path string
			err  error
		)
		switch format {
		case "txt":
			path = filepath.Join(dir, stem+".txt")
			err = writeTextReport(path, result)
		case "pdf":
			path = filepath.Join(dir, stem+".pdf")
			err = export.ExportPDF(path, result)
		case "labels":
			path = filepath.Join(dir, stem+"-labels.pdf")
			err = export.ExportLabels(path, result)
		case "xlsx":
			path = filepath.Join(dir, stem+".xlsx")
			err = export.ExportXLSX(path, result)
		case "dxf":
			path = filepath.Join(dir, stem+".dxf")
			err = export.ExportDXF(path, result)
		case "json":
			path = filepath.Join(dir, stem+project.JobExt)
			job.Result = &result
			err = project.SaveJob(path, job)
		case "":
			continue
		default:
			return written, fmt.Errorf("unknown export format %q", format)
		}
		if err != nil {
			return written, fmt.Errorf("export %s: %w", format, err)
		}
		logger.Debug("exported", "format", format, "path", path)
		written = append(written, path)
	}
	return written, nil
}

func writeTextReport(path string, result model.PackResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteReport(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fileStem turns a job name into a safe file name stem.
func fileStem(name string) string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		default:
			return -1
		}
	}, strings.TrimSpace(name))
	if stem == "" {
		return "loadplan"
	}
	return strings.ToLower(stem)
}

// rememberJob records path in the config file's recent jobs. Failures are
// logged, not returned: the packing itself already succeeded.
func rememberJob(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cfgPath := configPath()
	cfg, err := project.LoadAppConfig(cfgPath)
	if err != nil {
		logger.Warn("could not update recent jobs", "error", err)
		return
	}
	cfg.AddRecentJob(abs, recentJobsLimit)
	if err := project.SaveAppConfig(cfgPath, cfg); err != nil {
		logger.Warn("could not update recent jobs", "error", err)
	}
}
