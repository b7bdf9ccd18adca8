package engine

import (
	"io"
	"log/slog"
	"slices"
	"sort"

	"github.com/piwi3910/CratePack/internal/model"
)

// Packer runs the greedy 3D bin-packing heuristic.
//
// A Packer mutates the bins and items handed to it and is not safe for
// concurrent use; callers sharing bins or items between packers must
// serialize Pack calls themselves.
type Packer struct {
	bins   []*model.Bin
	items  []*model.Item
	unfit  []*model.Item
	logger *slog.Logger
}

// Option configures a Packer.
type Option func(*Packer)

// WithLogger routes placement diagnostics to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(p *Packer) {
		if l != nil {
			p.logger = l
		}
	}
}

func New(opts ...Option) *Packer {
	p := &Packer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddBin registers containers. Order is irrelevant; Pack sorts them.
func (p *Packer) AddBin(bins ...*model.Bin) {
	p.bins = append(p.bins, bins...)
}

// AddItem queues items for packing. Order is irrelevant; Pack sorts them.
func (p *Packer) AddItem(items ...*model.Item) {
	p.items = append(p.items, items...)
}

// Bins returns the registered bins, sorted by volume once Pack has run.
func (p *Packer) Bins() []*model.Bin {
	return p.bins
}

// Items returns the items still waiting to be packed.
func (p *Packer) Items() []*model.Item {
	return p.items
}

// UnfitItems returns the items that could not be placed in any bin.
func (p *Packer) UnfitItems() []*model.Item {
	return p.unfit
}

// Result returns the bins and unfit items as a PackResult.
func (p *Packer) Result() model.PackResult {
	return model.PackResult{Bins: p.bins, Unfit: p.unfit}
}

// Pack places every queued item into a bin or moves it to the unfit list.
//
// Bins are sorted by ascending volume and items by descending volume once,
// up front. The largest remaining item picks the smallest bin that holds it
// at the origin, and that bin is then filled with as much of the queue as
// possible before the leftovers are requeued.
func (p *Packer) Pack() {
	sort.SliceStable(p.bins, func(i, j int) bool {
		return p.bins[i].Volume() < p.bins[j].Volume()
	})
	sort.SliceStable(p.items, func(i, j int) bool {
		return p.items[i].Volume() > p.items[j].Volume()
	})

	for len(p.items) > 0 {
		head := p.items[0]
		b := p.findFittedBin(head)
		if b == nil {
			p.logger.Debug("no bin fits item", "item", head.Name, "volume", head.Volume())
			p.unfitItem()
			continue
		}

		p.logger.Debug("bin selected", "item", head.Name, "bin", b.Name)
		left := p.packToBin(b, p.items, true)
		if len(left) == len(p.items) {
			// The head could not be seated after all; drop it so the
			// queue keeps shrinking.
			p.unfitItem()
			continue
		}
		p.items = left
	}
}

// unfitItem moves the head of the queue to the unfit list.
func (p *Packer) unfitItem() {
	if len(p.items) == 0 {
		return
	}
	p.unfit = append(p.unfit, p.items[0])
	p.items = p.items[1:]
}

// findFittedBin returns the first bin, in sorted order, that can take item
// at the origin. It only probes; nothing is placed.
func (p *Packer) findFittedBin(item *model.Item) *model.Bin {
	for _, b := range p.bins {
		if _, ok := b.Fit(item, model.Origin); ok {
			return b
		}
	}
	return nil
}

// packToBin seats items[0] at the origin of b and tries to place the rest
// next to already placed items. It returns the items it could not place.
//
// With escalate set, a head that does not fit moves on to the next larger
// bin, and an item that fits nowhere in b triggers a move of b's whole load
// plus that item into a larger bin. If the head cannot be seated at all the
// full input list is returned.
func (p *Packer) packToBin(b *model.Bin, items []*model.Item, escalate bool) []*model.Item {
	for !b.PutItem(items[0], model.Origin) {
		if !escalate {
			return items
		}
		next := p.biggerBinThan(b)
		if next == nil {
			return items
		}
		p.logger.Debug("head escalated", "item", items[0].Name, "from", b.Name, "to", next.Name)
		b = next
	}

	var unpacked []*model.Item
	for _, it := range items[1:] {
		if putAtCandidatePivots(b, it) {
			continue
		}
		if escalate {
			if bigger := p.escalate(b, it); bigger != nil {
				b = bigger
				continue
			}
		}
		unpacked = append(unpacked, it)
	}
	return unpacked
}

// putAtCandidatePivots tries every pivot adjacent to a placed item: first
// the far width face of each item in placement order, then the height faces,
// then the depth faces. The first pivot that accepts the item wins.
func putAtCandidatePivots(b *model.Bin, it *model.Item) bool {
	for _, axis := range model.Axes {
		placed := b.Items
		for _, ib := range placed {
			pv := ib.Position.Offset(axis, ib.Dimension()[axis])
			if b.PutItem(it, pv) {
				return true
			}
		}
	}
	return false
}

// escalate retries b's current load plus it in each strictly larger bin,
// smallest first. A successful attempt empties b and returns the bin that
// now holds the load; failed attempts are rolled back.
func (p *Packer) escalate(b *model.Bin, it *model.Item) *model.Bin {
	load := append(slices.Clone(b.Items), it)

	for _, bigger := range p.binsBiggerThan(b) {
		snap := takeSnapshot([]*model.Bin{b, bigger}, load)
		if left := p.packToBin(bigger, load, false); len(left) == 0 {
			p.logger.Debug("load escalated", "item", it.Name, "from", b.Name, "to", bigger.Name, "items", len(load))
			b.Items = []*model.Item{}
			return bigger
		}
		snap.restore()
	}
	return nil
}

// biggerBinThan returns the first bin with strictly greater volume than b.
func (p *Packer) biggerBinThan(b *model.Bin) *model.Bin {
	v := b.Volume()
	for _, b2 := range p.bins {
		if b2.Volume() > v {
			return b2
		}
	}
	return nil
}

// binsBiggerThan returns every bin with strictly greater volume than b, in
// bin order.
func (p *Packer) binsBiggerThan(b *model.Bin) []*model.Bin {
	v := b.Volume()
	var bigger []*model.Bin
	for _, b2 := range p.bins {
		if b2.Volume() > v {
			bigger = append(bigger, b2)
		}
	}
	return bigger
}
