package engine

import (
	"slices"

	"github.com/piwi3910/CratePack/internal/model"
)

type itemState struct {
	item     *model.Item
	rotation model.RotationType
	position model.Pivot
}

type binState struct {
	bin   *model.Bin
	items []*model.Item
}

// snapshot records bin contents and item placements so a trial repack can
// be undone.
type snapshot struct {
	bins  []binState
	items []itemState
}

// takeSnapshot captures the given bins, every item they hold, and extra.
func takeSnapshot(bins []*model.Bin, extra []*model.Item) snapshot {
	var s snapshot
	seen := make(map[*model.Item]bool)
	record := func(it *model.Item) {
		if seen[it] {
			return
		}
		seen[it] = true
		s.items = append(s.items, itemState{item: it, rotation: it.RotationType, position: it.Position})
	}

	for _, b := range bins {
		s.bins = append(s.bins, binState{bin: b, items: slices.Clone(b.Items)})
		for _, it := range b.Items {
			record(it)
		}
	}
	for _, it := range extra {
		record(it)
	}
	return s
}

func (s snapshot) restore() {
	for _, bs := range s.bins {
		bs.bin.Items = bs.items
	}
	for _, is := range s.items {
		is.item.RotationType = is.rotation
		is.item.Position = is.position
	}
}
