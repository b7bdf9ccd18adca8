package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CratePack/internal/model"
)

func TestDefaultInventoryPath(t *testing.T) {
	path, err := DefaultInventoryPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "inventory.json" {
		t.Errorf("expected filename inventory.json, got %s", filepath.Base(path))
	}
	if dir := filepath.Base(filepath.Dir(path)); dir != ".cratepack" {
		t.Errorf("expected parent dir .cratepack, got %s", dir)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_inventory.json")

	inv := model.Inventory{
		Bins: []model.BinPreset{
			model.NewBinPreset("Tote", 600, 400, 300, 25, "Tote"),
		},
	}
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(loaded.Bins) != 1 {
		t.Fatalf("expected 1 bin preset, got %d", len(loaded.Bins))
	}
	if loaded.Bins[0].Name != "Tote" || loaded.Bins[0].MaxWeight != 25 {
		t.Errorf("unexpected preset %+v", loaded.Bins[0])
	}
}

func TestLoadInventoryCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(inv.Bins) != len(model.DefaultInventory().Bins) {
		t.Errorf("expected default presets, got %d", len(inv.Bins))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected inventory file to be created: %v", err)
	}
}

func TestLoadOrCreateInventoryExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.json")
	inv, used, err := LoadOrCreateInventory(path)
	if err != nil {
		t.Fatalf("LoadOrCreateInventory failed: %v", err)
	}
	if used != path {
		t.Errorf("expected path %s, got %s", path, used)
	}
	if len(inv.Bins) == 0 {
		t.Error("expected default presets")
	}
}

func TestImportInventoryMergesByIDAndName(t *testing.T) {
	dir := t.TempDir()
	shared := model.NewBinPreset("Shared", 1, 1, 1, 1, "Carton")
	existing := model.Inventory{Bins: []model.BinPreset{shared}}

	importPath := filepath.Join(dir, "import.json")
	imported := model.Inventory{Bins: []model.BinPreset{
		shared,
		model.NewBinPreset("Shared", 3, 3, 3, 3, "Carton"),
		model.NewBinPreset("New", 2, 2, 2, 2, "Carton"),
	}}
	if err := SaveInventory(importPath, imported); err != nil {
		t.Fatal(err)
	}

	merged, err := ImportInventory(importPath, existing)
	if err != nil {
		t.Fatalf("ImportInventory failed: %v", err)
	}
	if len(merged.Bins) != 2 {
		t.Fatalf("expected 2 presets after merge, got %d", len(merged.Bins))
	}
	if merged.Bins[1].Name != "New" {
		t.Errorf("expected New appended, got %s", merged.Bins[1].Name)
	}
	if len(existing.Bins) != 1 {
		t.Error("existing inventory must not be modified in place")
	}
}

func TestLoadInventoryMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("[1,2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInventory(path); err == nil {
		t.Fatal("expected error for malformed inventory")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[1,2" {
		t.Error("malformed inventory must not be overwritten")
	}
}

func TestImportInventoryInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	existing := model.DefaultInventory()
	got, err := ImportInventory(path, existing)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if len(got.Bins) != len(existing.Bins) {
		t.Error("existing inventory should be returned unchanged")
	}
}
