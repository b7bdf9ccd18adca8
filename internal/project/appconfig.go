package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CRATEPACK_WASTE_FACTOR.
const EnvPrefix = "CRATEPACK"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.cratepack/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cratepack")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// configValues flattens cfg into viper keys.
func configValues(cfg model.AppConfig) map[string]any {
	return map[string]any{
		"output_dir":      cfg.OutputDir,
		"export_formats":  cfg.ExportFormats,
		"units":           cfg.Units,
		"default_bin_qty": cfg.DefaultBinQty,
		"waste_factor":    cfg.WasteFactor,
		"log_level":       cfg.LogLevel,
		"recent_jobs":     cfg.RecentJobs,
		"inventory_path":  cfg.InventoryPath,
		"templates_path":  cfg.TemplatesPath,
		"verify_packing":  cfg.VerifyPacking,
	}
}

// NewConfig returns a viper instance seeded with DefaultAppConfig and
// environment overrides. Callers may bind command-line flags to it before
// reading.
func NewConfig() *viper.Viper {
	v := viper.New()
	for key, val := range configValues(model.DefaultAppConfig()) {
		v.SetDefault(key, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// ReadAppConfig merges the file at path into v and decodes the result.
// A missing file is not an error; defaults and overrides still apply.
func ReadAppConfig(v *viper.Viper, path string) (model.AppConfig, error) {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return model.AppConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg model.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.RecentJobs == nil {
		cfg.RecentJobs = []string{}
	}
	if cfg.ExportFormats == nil {
		cfg.ExportFormats = []string{}
	}
	return cfg, nil
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	return ReadAppConfig(NewConfig(), path)
}

// SaveAppConfig persists an AppConfig to path. The format follows the file
// extension (.yaml, .yml, .json or .toml). Missing parent directories are
// created.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	v := viper.New()
	for key, val := range configValues(config) {
		v.Set(key, val)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
