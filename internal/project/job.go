package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/CratePack/internal/model"
	"gopkg.in/yaml.v3"
)

// JobExt is the extension used for job files written by the CLI.
const JobExt = ".cratepack"

// ErrUnknownFormat is returned for job files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown job file format")

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", JobExt:
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnknownFormat)
	}
}

// SaveJob writes job to path as JSON (.json, .cratepack) or YAML
// (.yaml, .yml). Parent directories are created.
func SaveJob(path string, job model.Job) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch f {
	case formatYAML:
		data, err = yaml.Marshal(job)
	default:
		data, err = json.MarshalIndent(job, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := writeFile(path, data); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	return nil
}

// LoadJob reads a job file written by SaveJob or by hand.
func LoadJob(path string) (model.Job, error) {
	f, err := formatFor(path)
	if err != nil {
		return model.Job{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to read job file: %w", err)
	}

	// Start from a zero job so a missing name falls back to the file name
	var job model.Job
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, &job)
	default:
		err = json.Unmarshal(data, &job)
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to parse job file: %w", err)
	}

	if job.Name == "" {
		job.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if job.Items == nil {
		job.Items = []model.ItemSpec{}
	}
	if job.Bins == nil {
		job.Bins = []model.BinSpec{}
	}
	return job, nil
}
