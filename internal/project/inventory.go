package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/piwi3910/CratePack/internal/model"
)

// DefaultInventoryPath returns ~/.cratepack/inventory.json.
func DefaultInventoryPath() (string, error) {
	return filepath.Join(DefaultConfigDir(), "inventory.json"), nil
}

// SaveInventory writes the inventory to path as JSON.
func SaveInventory(path string, inv model.Inventory) error {
	return writeJSON(path, inv)
}

// LoadInventory reads the inventory at path. A missing file is created
// with the default presets.
func LoadInventory(path string) (model.Inventory, error) {
	var inv model.Inventory
	err := readJSON(path, &inv)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		inv = model.DefaultInventory()
		return inv, SaveInventory(path, inv)
	case err != nil:
		return model.Inventory{}, err
	}
	if inv.Bins == nil {
		inv.Bins = []model.BinPreset{}
	}
	return inv, nil
}

// LoadOrCreateInventory loads the inventory from path, or from the default
// location when path is empty, and returns the path used.
func LoadOrCreateInventory(path string) (model.Inventory, string, error) {
	if path == "" {
		p, err := DefaultInventoryPath()
		if err != nil {
			return model.DefaultInventory(), "", err
		}
		path = p
	}
	inv, err := LoadInventory(path)
	return inv, path, err
}

// ImportInventory merges the presets of the inventory file at path into
// existing. On error existing is returned unchanged.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	var imported model.Inventory
	if err := readJSON(path, &imported); err != nil {
		return existing, fmt.Errorf("import inventory: %w", err)
	}
	existing.Bins = append([]model.BinPreset(nil), existing.Bins...)
	existing.Merge(imported)
	return existing, nil
}
