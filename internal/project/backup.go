package project

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piwi3910/CratePack/internal/model"
)

// BackupVersion is written into every backup. Backups with a different
// major version are rejected.
const BackupVersion = "1.1.0"

// ErrUnsupportedBackup is returned for backups from an incompatible version.
var ErrUnsupportedBackup = errors.New("unsupported backup version")

// BackupData bundles everything a user keeps under ~/.cratepack.
type BackupData struct {
	Version   string              `json:"version"`
	CreatedAt string              `json:"created_at"`
	Config    model.AppConfig     `json:"config"`
	Inventory model.Inventory     `json:"inventory"`
	Templates model.TemplateStore `json:"templates"`
}

// ExportAllData writes config, inventory and templates to one JSON file.
func ExportAllData(path string, cfg model.AppConfig, inv model.Inventory, templates model.TemplateStore) error {
	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    cfg,
		Inventory: inv,
		Templates: templates,
	}
	if err := writeJSON(path, backup); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file. Applying it is up to the caller.
// Backups written before templates were included restore an empty store.
func ImportAllData(path string) (BackupData, error) {
	var backup BackupData
	if err := readJSON(path, &backup); err != nil {
		return BackupData{}, fmt.Errorf("read backup: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if major(backup.Version) != major(BackupVersion) {
		return BackupData{}, fmt.Errorf("%w: %s", ErrUnsupportedBackup, backup.Version)
	}

	if backup.Config.RecentJobs == nil {
		backup.Config.RecentJobs = []string{}
	}
	if backup.Config.ExportFormats == nil {
		backup.Config.ExportFormats = []string{}
	}
	if backup.Inventory.Bins == nil {
		backup.Inventory.Bins = []model.BinPreset{}
	}
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []model.JobTemplate{}
	}
	return backup, nil
}

func major(version string) string {
	v, _, _ := strings.Cut(strings.TrimPrefix(version, "v"), ".")
	return v
}
