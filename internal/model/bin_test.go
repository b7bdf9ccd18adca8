package model

import (
	"errors"
	"testing"
)

func TestNewBinRejectsBadMeasurements(t *testing.T) {
	if _, err := NewBin("bad", 1, 0, 1, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
	if _, err := NewBin("bad", 1, 1, 1, -5); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("expected ErrInvalidWeight, got %v", err)
	}
}

func TestBinFitPicksFirstRotationThatFits(t *testing.T) {
	bin, _ := NewBin("Flat", 9, 5, 2, 100)
	it, _ := NewItem("Long", 5, 2, 9, 1)

	p, ok := bin.Fit(it, Origin)
	if !ok {
		t.Fatal("expected the item to fit")
	}
	if p.Rotation != RotationDWH {
		t.Errorf("expected RotationDWH, got %v", p.Rotation)
	}
	if p.Dimension != (Dimension{9, 5, 2}) {
		t.Errorf("expected dimension [9 5 2], got %v", p.Dimension)
	}
}

func TestBinFitDoesNotMutate(t *testing.T) {
	bin, _ := NewBin("Flat", 9, 5, 2, 100)
	it, _ := NewItem("Long", 5, 2, 9, 1)

	if _, ok := bin.Fit(it, Origin); !ok {
		t.Fatal("expected the item to fit")
	}
	if it.RotationType != RotationWHD {
		t.Errorf("Fit changed the rotation to %v", it.RotationType)
	}
	if len(bin.Items) != 0 {
		t.Errorf("Fit added %d items to the bin", len(bin.Items))
	}
}

func TestBinPutItemCommitsPlacement(t *testing.T) {
	bin, _ := NewBin("Flat", 9, 5, 2, 100)
	it, _ := NewItem("Long", 5, 2, 9, 1)

	if !bin.PutItem(it, Origin) {
		t.Fatal("expected PutItem to succeed")
	}
	if it.RotationType != RotationDWH {
		t.Errorf("expected RotationDWH, got %v", it.RotationType)
	}
	if len(bin.Items) != 1 || bin.Items[0] != it {
		t.Errorf("expected the item to be appended, got %v", bin.Items)
	}
}

func TestBinPutItemFailureLeavesItemUntouched(t *testing.T) {
	bin, _ := NewBin("Cube", 4, 4, 4, 100)
	it, _ := NewItem("Long", 5, 2, 9, 1)
	it.Position = Pivot{1, 2, 3}

	if bin.PutItem(it, Origin) {
		t.Fatal("expected PutItem to fail")
	}
	if it.RotationType != RotationWHD || it.Position != (Pivot{1, 2, 3}) {
		t.Errorf("failed PutItem mutated the item: %v", it)
	}
	if len(bin.Items) != 0 {
		t.Errorf("failed PutItem appended to the bin")
	}
}

func TestBinPutItemRejectsOverlap(t *testing.T) {
	bin, _ := NewBin("Cube", 4, 4, 4, 100)
	a, _ := NewItem("A", 2, 2, 2, 1)
	b, _ := NewItem("B", 2, 2, 2, 1)

	if !bin.PutItem(a, Origin) {
		t.Fatal("expected first item to fit")
	}
	if bin.PutItem(b, Pivot{1, 1, 1}) {
		t.Error("expected overlapping placement to fail")
	}
	if !bin.PutItem(b, Pivot{2, 0, 0}) {
		t.Error("expected touching placement to succeed")
	}
}

func TestBinPutItemTriesNextRotationOnOverlap(t *testing.T) {
	// Upright the item reaches into the shelf above it; lying flat it clears.
	bin, _ := NewBin("Box", 3, 3, 1, 100)
	shelf, _ := NewItem("Shelf", 3, 2, 1, 1)
	shelf.Position = Pivot{0, 1, 0}
	bin.Items = append(bin.Items, shelf)

	it, _ := NewItem("Brick", 1, 2, 1, 1)
	if !bin.PutItem(it, Origin) {
		t.Fatal("expected the item to fit lying flat")
	}
	if it.RotationType != RotationHWD {
		t.Errorf("expected RotationHWD, got %v", it.RotationType)
	}
	if it.Dimension() != (Dimension{2, 1, 1}) {
		t.Errorf("expected dimension [2 1 1], got %v", it.Dimension())
	}
}

func TestBinDiagnostics(t *testing.T) {
	bin, _ := NewBin("Box", 10, 10, 10, 3)
	a, _ := NewItem("A", 5, 10, 10, 2)
	b, _ := NewItem("B", 5, 10, 10, 2)
	bin.PutItem(a, Origin)

	if bin.FillRatio() != 50 {
		t.Errorf("expected fill 50%%, got %g", bin.FillRatio())
	}
	if bin.Overweight() {
		t.Error("2kg in a 3kg bin is not overweight")
	}

	bin.PutItem(b, Pivot{5, 0, 0})
	if bin.UsedVolume() != 1000 {
		t.Errorf("expected used volume 1000, got %g", bin.UsedVolume())
	}
	if bin.ItemsWeight() != 4 {
		t.Errorf("expected weight 4, got %g", bin.ItemsWeight())
	}
	if !bin.Overweight() {
		t.Error("expected the bin to report overweight")
	}
}

func TestBinString(t *testing.T) {
	bin, _ := NewBin("Crate", 10, 20, 30, 40)
	want := "Crate(10x20x30, max_weight:40)"
	if got := bin.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
