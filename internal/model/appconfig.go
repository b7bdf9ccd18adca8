package model

// AppConfig holds application-wide preferences.
type AppConfig struct {
	// Output defaults for the pack command
	OutputDir     string   `json:"output_dir" mapstructure:"output_dir"`
	ExportFormats []string `json:"export_formats" mapstructure:"export_formats"`
	Units         string   `json:"units" mapstructure:"units"`
	DefaultBinQty int      `json:"default_bin_qty" mapstructure:"default_bin_qty"`

	// WasteFactor is a percentage applied by volume estimates.
	WasteFactor float64 `json:"waste_factor" mapstructure:"waste_factor"`

	// Application preferences
	LogLevel      string   `json:"log_level" mapstructure:"log_level"`
	RecentJobs    []string `json:"recent_jobs" mapstructure:"recent_jobs"`
	InventoryPath string   `json:"inventory_path" mapstructure:"inventory_path"` // empty = default path
	TemplatesPath string   `json:"templates_path" mapstructure:"templates_path"` // empty = default path
	VerifyPacking bool     `json:"verify_packing" mapstructure:"verify_packing"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		OutputDir:     "cratepack-out",
		ExportFormats: []string{},
		Units:         "mm",
		DefaultBinQty: 1,
		WasteFactor:   15,
		LogLevel:      "info",
		RecentJobs:    []string{},
		VerifyPacking: true,
	}
}

// AddRecentJob moves path to the front of RecentJobs, keeping at most limit entries.
func (c *AppConfig) AddRecentJob(path string, limit int) {
	jobs := []string{path}
	for _, j := range c.RecentJobs {
		if j != path {
			jobs = append(jobs, j)
		}
	}
	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	c.RecentJobs = jobs
}
