package project

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/piwi3910/CratePack/internal/model"
)

// TemplatePath returns path, or ~/.cratepack/templates.json when path is empty.
func TemplatePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return filepath.Join(DefaultConfigDir(), "templates.json"), nil
}

// SaveTemplates writes the template store to path as JSON.
func SaveTemplates(path string, store model.TemplateStore) error {
	return writeJSON(path, store)
}

// LoadTemplates reads the template store at path. A missing file is an
// empty store.
func LoadTemplates(path string) (model.TemplateStore, error) {
	var store model.TemplateStore
	err := readJSON(path, &store)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return model.NewTemplateStore(), nil
	case err != nil:
		return model.TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []model.JobTemplate{}
	}
	return store, nil
}
