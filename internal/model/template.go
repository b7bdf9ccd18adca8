package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// JobTemplate is a reusable item and bin list, such as a recurring order or
// a standard shipment. It never carries a packing result.
type JobTemplate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
	Items       []ItemSpec `json:"items"`
	Bins        []BinSpec  `json:"bins"`
}

// NewJobTemplate captures the item and bin lists of job.
func NewJobTemplate(name, description string, job Job) JobTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return JobTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       cloneSpecs(job.Items),
		Bins:        cloneSpecs(job.Bins),
	}
}

// ToJob creates a new Job from this template. The lists are copied so the
// job can be edited without touching the template.
func (t JobTemplate) ToJob(jobName string) Job {
	return Job{
		Name:  jobName,
		Items: cloneSpecs(t.Items),
		Bins:  cloneSpecs(t.Bins),
	}
}

// TemplateStore holds a collection of job templates.
type TemplateStore struct {
	Templates []JobTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []JobTemplate{},
	}
}

// Put adds t, replacing any template with the same name. A replaced
// template keeps its ID and creation time.
func (ts *TemplateStore) Put(t JobTemplate) {
	if existing := ts.FindByName(t.Name); existing != nil {
		t.ID = existing.ID
		t.CreatedAt = existing.CreatedAt
		*existing = t
		return
	}
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by name. Returns true if found and removed.
func (ts *TemplateStore) Remove(name string) bool {
	for i, t := range ts.Templates {
		if t.Name == name {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

func cloneSpecs[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return slices.Clone(s)
}
