package engine

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
)

// PackJob builds fresh items and bins from job and packs them.
func PackJob(job model.Job, opts ...Option) (model.PackResult, error) {
	items, bins, err := job.Build()
	if err != nil {
		return model.PackResult{}, fmt.Errorf("build job %q: %w", job.Name, err)
	}

	p := New(opts...)
	p.AddBin(bins...)
	p.AddItem(items...)
	p.Pack()
	return p.Result(), nil
}
