package model

import (
	"errors"
	"math"
	"testing"
)

func TestNewItemRejectsBadMeasurements(t *testing.T) {
	cases := []struct {
		name          string
		w, h, d, wt   float64
		wantDimension bool
	}{
		{"zero width", 0, 1, 1, 1, true},
		{"negative depth", 1, 1, -2, 1, true},
		{"NaN height", 1, math.NaN(), 1, 1, true},
		{"infinite width", math.Inf(1), 1, 1, 1, true},
		{"negative weight", 1, 1, 1, -1, false},
		{"NaN weight", 1, 1, 1, math.NaN(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewItem("bad", tc.w, tc.h, tc.d, tc.wt)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.wantDimension && !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("expected ErrInvalidDimension, got %v", err)
			}
			if !tc.wantDimension && !errors.Is(err, ErrInvalidWeight) {
				t.Errorf("expected ErrInvalidWeight, got %v", err)
			}
		})
	}
}

func TestNewItemDefaults(t *testing.T) {
	it, err := NewItem("Box", 2, 3, 4, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.RotationType != RotationWHD {
		t.Errorf("expected RotationWHD, got %v", it.RotationType)
	}
	if it.Position != Origin {
		t.Errorf("expected origin, got %v", it.Position)
	}
	if len(it.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", it.ID)
	}
}

func TestItemVolumeIsRotationInvariant(t *testing.T) {
	it, _ := NewItem("Box", 2, 3, 5, 1)
	for _, rt := range RotationTypes {
		it.RotationType = rt
		if v := it.Dimension().Volume(); v != 30 {
			t.Errorf("%v: expected volume 30, got %g", rt, v)
		}
		if it.Volume() != 30 {
			t.Errorf("%v: Volume() changed to %g", rt, it.Volume())
		}
	}
}

func TestItemDimensionPerRotation(t *testing.T) {
	it, _ := NewItem("Box", 1, 2, 3, 1)
	want := map[RotationType]Dimension{
		RotationWHD: {1, 2, 3},
		RotationHWD: {2, 1, 3},
		RotationHDW: {2, 3, 1},
		RotationDHW: {3, 2, 1},
		RotationDWH: {3, 1, 2},
		RotationWDH: {1, 3, 2},
	}
	for rt, d := range want {
		if got := it.DimensionAs(rt); got != d {
			t.Errorf("%v: expected %v, got %v", rt, d, got)
		}
	}
}

func TestItemsThatTouchDoNotIntersect(t *testing.T) {
	a, _ := NewItem("A", 2, 2, 2, 1)
	b, _ := NewItem("B", 2, 2, 2, 1)
	b.Position = Pivot{2, 0, 0}

	if a.Intersects(b) || b.Intersects(a) {
		t.Error("face-touching items must not intersect")
	}
}

func TestItemsThatOverlapIntersect(t *testing.T) {
	a, _ := NewItem("A", 2, 2, 2, 1)
	b, _ := NewItem("B", 2, 2, 2, 1)
	b.Position = Pivot{1, 1, 1}

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("overlapping items must intersect")
	}
}

func TestItemsSeparatedOnOneAxisDoNotIntersect(t *testing.T) {
	a, _ := NewItem("A", 2, 2, 2, 1)
	b, _ := NewItem("B", 2, 2, 2, 1)
	b.Position = Pivot{0, 0, 5}

	if a.Intersects(b) {
		t.Error("items apart along depth must not intersect")
	}
}

func TestItemString(t *testing.T) {
	it, _ := NewItem("Box", 2, 3, 4, 1.5)
	it.Position = Pivot{1, 0, 0}
	want := "Box(2x3x4, weight: 1.5) pos([1 0 0]) rt(RotationType_WHD (w,h,d))"
	if got := it.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
