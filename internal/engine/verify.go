package engine

import (
	"errors"
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
)

// Verify checks that every item in every bin lies inside the bin and that
// no two items in the same bin intersect. All violations are joined.
func Verify(bins []*model.Bin) error {
	var errs []error
	for _, b := range bins {
		bounds := b.Dimension()
		for i, it := range b.Items {
			d := it.Dimension()
			for _, a := range model.Axes {
				if it.Position[a] < 0 || it.Position[a]+d[a] > bounds[a] {
					errs = append(errs, fmt.Errorf("bin %q: item %q exceeds %s bound", b.Name, it.Name, a))
					break
				}
			}
			for _, other := range b.Items[i+1:] {
				if it.Intersects(other) {
					errs = append(errs, fmt.Errorf("bin %q: items %q and %q intersect", b.Name, it.Name, other.Name))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// VerifyPartition checks that each of items ends up in exactly one bin or
// in the unfit list of result, and that nothing else does.
func VerifyPartition(items []*model.Item, result model.PackResult) error {
	seen := make(map[*model.Item]int, len(items))
	for _, b := range result.Bins {
		for _, it := range b.Items {
			seen[it]++
		}
	}
	for _, it := range result.Unfit {
		seen[it]++
	}

	var errs []error
	for _, it := range items {
		switch n := seen[it]; n {
		case 1:
		case 0:
			errs = append(errs, fmt.Errorf("item %q is neither packed nor unfit", it.Name))
		default:
			errs = append(errs, fmt.Errorf("item %q appears %d times", it.Name, n))
		}
		delete(seen, it)
	}
	for it := range seen {
		errs = append(errs, fmt.Errorf("item %q was never queued", it.Name))
	}
	return errors.Join(errs...)
}
