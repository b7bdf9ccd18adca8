package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, w, h, d, weight float64) *model.Item {
	t.Helper()
	it, err := model.NewItem(name, w, h, d, weight)
	require.NoError(t, err)
	return it
}

func mustBin(t *testing.T, name string, w, h, d, maxWeight float64) *model.Bin {
	t.Helper()
	b, err := model.NewBin(name, w, h, d, maxWeight)
	require.NoError(t, err)
	return b
}

func TestPack_SingleBinSingleItem(t *testing.T) {
	bin := mustBin(t, "Bin", 10, 10, 10, 100)
	item := mustItem(t, "Item", 2, 2, 2, 1)

	p := New()
	p.AddBin(bin)
	p.AddItem(item)
	p.Pack()

	require.Len(t, bin.Items, 1)
	assert.Same(t, item, bin.Items[0])
	assert.Equal(t, model.Origin, item.Position)
	assert.Equal(t, model.RotationWHD, item.RotationType)
	assert.Empty(t, p.UnfitItems())
	assert.Empty(t, p.Items())
}

func TestPack_ItemLargerThanEveryBin(t *testing.T) {
	bin := mustBin(t, "Tiny", 1, 1, 1, 100)
	item := mustItem(t, "Item", 2, 2, 2, 1)

	p := New()
	p.AddBin(bin)
	p.AddItem(item)
	p.Pack()

	assert.Empty(t, bin.Items)
	require.Len(t, p.UnfitItems(), 1)
	assert.Same(t, item, p.UnfitItems()[0])
}

func TestPack_NoBins(t *testing.T) {
	p := New()
	p.AddItem(mustItem(t, "A", 1, 1, 1, 1), mustItem(t, "B", 2, 2, 2, 1))
	p.Pack()

	assert.Len(t, p.UnfitItems(), 2)
	assert.Empty(t, p.Items())
}

func TestPack_NoItems(t *testing.T) {
	bin := mustBin(t, "Bin", 10, 10, 10, 100)
	p := New()
	p.AddBin(bin)
	p.Pack()

	assert.Empty(t, bin.Items)
	assert.Empty(t, p.UnfitItems())
}

func TestPack_SortsBinsAscendingAndItemsDescending(t *testing.T) {
	large := mustBin(t, "Large", 20, 20, 20, 100)
	small := mustBin(t, "Small", 10, 10, 10, 100)
	first := mustItem(t, "Small", 2, 2, 2, 1)
	second := mustItem(t, "Big", 3, 3, 3, 1)

	p := New()
	p.AddBin(large, small)
	p.AddItem(first, second)
	p.Pack()

	require.Len(t, p.Bins(), 2)
	assert.Same(t, small, p.Bins()[0])
	assert.Same(t, large, p.Bins()[1])

	// The larger item is seated first at the origin of the smallest bin,
	// the smaller one against its width face.
	require.Len(t, small.Items, 2)
	assert.Same(t, second, small.Items[0])
	assert.Equal(t, model.Origin, second.Position)
	assert.Equal(t, model.Pivot{3, 0, 0}, first.Position)
	assert.Empty(t, large.Items)
}

func TestPack_CandidatePivotsAreAxisMajor(t *testing.T) {
	// Width is exhausted by the first item, so the second goes on top.
	bin := mustBin(t, "Bin", 4, 8, 4, 100)
	a := mustItem(t, "A", 4, 4, 4, 1)
	b := mustItem(t, "B", 4, 4, 4, 1)

	p := New()
	p.AddBin(bin)
	p.AddItem(a, b)
	p.Pack()

	require.Len(t, bin.Items, 2)
	assert.Equal(t, model.Origin, a.Position)
	assert.Equal(t, model.Pivot{0, 4, 0}, b.Position)
}

func TestPack_EscalatesLoadToBiggerBin(t *testing.T) {
	small := mustBin(t, "Small", 4, 4, 4, 100)
	big := mustBin(t, "Big", 8, 8, 8, 100)
	a := mustItem(t, "A", 4, 4, 4, 1)
	b := mustItem(t, "B", 4, 4, 4, 1)

	p := New()
	p.AddBin(big, small)
	p.AddItem(a, b)
	p.Pack()

	assert.Empty(t, small.Items, "load should have moved out of the small bin")
	require.Len(t, big.Items, 2)
	assert.Same(t, a, big.Items[0])
	assert.Same(t, b, big.Items[1])
	assert.Equal(t, model.Origin, a.Position)
	assert.Equal(t, model.Pivot{4, 0, 0}, b.Position)
	assert.Empty(t, p.UnfitItems())
}

func TestPack_FailedEscalationIsRolledBack(t *testing.T) {
	// The medium bin cannot hold both cubes, so the escalation attempt fails
	// and must leave both bins as they were. The second cube is requeued and
	// lands alone in the medium bin.
	small := mustBin(t, "Small", 4, 4, 4, 100)
	medium := mustBin(t, "Medium", 5, 5, 5, 100)
	a := mustItem(t, "A", 4, 4, 4, 1)
	b := mustItem(t, "B", 4, 4, 4, 1)

	p := New()
	p.AddBin(small, medium)
	p.AddItem(a, b)
	p.Pack()

	require.Len(t, small.Items, 1)
	assert.Same(t, a, small.Items[0])
	assert.Equal(t, model.Origin, a.Position)
	require.Len(t, medium.Items, 1)
	assert.Same(t, b, medium.Items[0])
	assert.Equal(t, model.Origin, b.Position)
	assert.Empty(t, p.UnfitItems())

	all := []*model.Item{a, b}
	assert.NoError(t, VerifyPartition(all, p.Result()))
}

func TestPack_EscalationChainsPastTooSmallBins(t *testing.T) {
	small := mustBin(t, "Small", 4, 4, 4, 100)
	medium := mustBin(t, "Medium", 5, 5, 5, 100)
	large := mustBin(t, "Large", 8, 4, 4, 100)
	a := mustItem(t, "A", 4, 4, 4, 1)
	b := mustItem(t, "B", 4, 4, 4, 1)

	p := New()
	p.AddBin(large, medium, small)
	p.AddItem(a, b)
	p.Pack()

	// Medium (125) is tried before Large (128) and rejected.
	assert.Empty(t, small.Items)
	assert.Empty(t, medium.Items)
	require.Len(t, large.Items, 2)
	assert.Empty(t, p.UnfitItems())
}

func TestPack_OverflowStartsAnotherBin(t *testing.T) {
	b1 := mustBin(t, "Box 1", 4, 4, 4, 100)
	b2 := mustBin(t, "Box 2", 4, 4, 4, 100)
	a := mustItem(t, "A", 4, 4, 4, 1)
	b := mustItem(t, "B", 4, 4, 4, 1)
	c := mustItem(t, "C", 4, 4, 4, 1)

	p := New()
	p.AddBin(b1, b2)
	p.AddItem(a, b, c)
	p.Pack()

	assert.Len(t, b1.Items, 1)
	assert.Len(t, b2.Items, 1)
	require.Len(t, p.UnfitItems(), 1)
	assert.Same(t, c, p.UnfitItems()[0])
}

func TestPack_WeightIsNotEnforced(t *testing.T) {
	bin := mustBin(t, "Bin", 10, 10, 10, 1)
	heavy := mustItem(t, "Heavy", 2, 2, 2, 50)

	p := New()
	p.AddBin(bin)
	p.AddItem(heavy)
	p.Pack()

	require.Len(t, bin.Items, 1)
	assert.True(t, bin.Overweight())
}

func TestPack_InvariantsHoldOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var items []*model.Item
	for i := 0; i < 60; i++ {
		items = append(items, mustItem(t, fmt.Sprintf("I%d", i),
			float64(1+rng.Intn(6)), float64(1+rng.Intn(6)), float64(1+rng.Intn(6)), 1))
	}
	bins := []*model.Bin{
		mustBin(t, "S", 6, 6, 6, 100),
		mustBin(t, "M", 8, 8, 8, 100),
		mustBin(t, "L", 10, 10, 10, 100),
		mustBin(t, "Flat", 12, 2, 12, 100),
	}

	p := New()
	p.AddBin(bins...)
	p.AddItem(items...)
	p.Pack()

	assert.NoError(t, Verify(p.Bins()))
	assert.NoError(t, VerifyPartition(items, p.Result()))
	assert.Empty(t, p.Items())
}

func TestPack_LogsUnfitItems(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := New(WithLogger(logger))
	p.AddBin(mustBin(t, "Tiny", 1, 1, 1, 1))
	p.AddItem(mustItem(t, "Crate", 3, 3, 3, 1))
	p.Pack()

	assert.Contains(t, buf.String(), "no bin fits item")
	assert.Contains(t, buf.String(), "item=Crate")
}

func TestWithLogger_IgnoresNil(t *testing.T) {
	p := New(WithLogger(nil))
	require.NotNil(t, p.logger)
}

func TestFindFittedBin_DoesNotCommit(t *testing.T) {
	bin := mustBin(t, "Bin", 10, 10, 10, 100)
	item := mustItem(t, "Item", 2, 3, 4, 1)

	p := New()
	p.AddBin(bin)

	got := p.findFittedBin(item)
	assert.Same(t, bin, got)
	assert.Empty(t, bin.Items)
}

func TestBiggerBinThan(t *testing.T) {
	small := mustBin(t, "Small", 1, 1, 1, 1)
	same := mustBin(t, "Same", 1, 1, 1, 1)
	big := mustBin(t, "Big", 2, 2, 2, 1)

	p := New()
	p.AddBin(small, same, big)

	assert.Same(t, big, p.biggerBinThan(small))
	assert.Nil(t, p.biggerBinThan(big))
	assert.Equal(t, []*model.Bin{big}, p.binsBiggerThan(same))
}

func TestSnapshot_Restore(t *testing.T) {
	bin := mustBin(t, "Bin", 10, 10, 10, 100)
	a := mustItem(t, "A", 2, 2, 2, 1)
	b := mustItem(t, "B", 2, 2, 2, 1)
	require.True(t, bin.PutItem(a, model.Origin))

	snap := takeSnapshot([]*model.Bin{bin}, []*model.Item{b})
	require.True(t, bin.PutItem(b, model.Pivot{2, 0, 0}))
	a.Position = model.Pivot{5, 5, 5}

	snap.restore()

	assert.Equal(t, []*model.Item{a}, bin.Items)
	assert.Equal(t, model.Origin, a.Position)
	assert.Equal(t, model.Origin, b.Position)
}
