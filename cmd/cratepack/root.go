package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global flag values.
var (
	flagConfig  string
	flagVerbose bool
)

// Loaded by PersistentPreRunE so every subcommand sees the same settings.
var (
	settings  = project.NewConfig()
	appConfig = model.DefaultAppConfig()
	logger    = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AFFF"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

var rootCmd = &cobra.Command{
	Use:   "cratepack",
	Short: "Plan how boxes are loaded into cartons, pallets and containers",
	Long: `cratepack packs cuboid items into the smallest suitable bins using a
greedy first-fit heuristic with six axis-aligned rotations. Results can be
printed or exported as PDF load reports, QR item labels, XLSX and DXF.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.cratepack/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log packing decisions to stderr")

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(versionCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return project.DefaultConfigPath()
}

// loadSettings reads the config file with flag and CRATEPACK_* overrides
// applied, then builds the logger.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := project.ReadAppConfig(settings, configPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	appConfig = cfg

	l, err := newLogger(cmd.ErrOrStderr(), appConfig.LogLevel, flagVerbose)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// newLogger returns a text logger at level, or at debug when verbose is set.
func newLogger(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", level, err)
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// bindFlag maps a command flag onto a config key so the flag wins over the
// file and the environment when set.
func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, flag string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %q: %v", flag, err))
	}
}
