package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CratePack/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.WasteFactor = 20
	cfg.Units = "in"
	inv := model.DefaultInventory()
	templates := model.NewTemplateStore()
	templates.Put(model.NewJobTemplate("Mugs", "", model.Job{
		Items: []model.ItemSpec{model.NewItemSpec("Mug", 10, 12, 10, 0.4, 24)},
	}))

	if err := ExportAllData(path, cfg, inv, templates); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != BackupVersion {
		t.Errorf("expected version %s, got %s", BackupVersion, backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.WasteFactor != 20 || backup.Config.Units != "in" {
		t.Errorf("unexpected config %+v", backup.Config)
	}
	if len(backup.Inventory.Bins) != len(inv.Bins) {
		t.Errorf("expected %d presets, got %d", len(inv.Bins), len(backup.Inventory.Bins))
	}
	if backup.Templates.FindByName("Mugs") == nil {
		t.Error("expected template Mugs in backup")
	}
}

func TestImportAllDataWithoutTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	data := `{"version":"1.0.0","created_at":"2025-01-01T00:00:00Z","config":{"units":"mm"},"inventory":{"bins":[]}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Templates.Templates == nil || backup.Config.RecentJobs == nil || backup.Config.ExportFormats == nil {
		t.Error("expected nil lists to be replaced by empty ones")
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noversion.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestImportAllDataUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.json")
	if err := os.WriteFile(path, []byte(`{"version":"2.0.0"}`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ImportAllData(path)
	if !errors.Is(err, ErrUnsupportedBackup) {
		t.Fatalf("expected ErrUnsupportedBackup, got %v", err)
	}
}
