package geometry_test

import (
	"math"
	"testing"

	"github.com/ja-he/foldcal/internal/geometry"
)

func TestSplitDelta(t *testing.T) {

	t.Run("proportional", func(t *testing.T) {
		top, bottom, changed := geometry.SplitDelta(-40, 100, 150, 0, 0)
		if top != -16 || bottom != -24 {
			t.Errorf("expected (-16,-24), got (%f,%f)", top, bottom)
		}
		if !changed {
			t.Error("expected change")
		}
	})

	t.Run("clamped", func(t *testing.T) {
		top, bottom, _ := geometry.SplitDelta(-300, 100, 150, 0, 0)
		if top != -100 || bottom != -150 {
			t.Errorf("expected (-100,-150), got (%f,%f)", top, bottom)
		}
		top, bottom, _ = geometry.SplitDelta(1e9, 100, 150, -50, -50)
		if top != 0 || bottom != 0 {
			t.Errorf("expected (0,0), got (%f,%f)", top, bottom)
		}
	})

	t.Run("no change at bound", func(t *testing.T) {
		_, _, changed := geometry.SplitDelta(10, 100, 150, 0, 0)
		if changed {
			t.Error("expanding an expanded page must not report a change")
		}
		_, _, changed = geometry.SplitDelta(-10, 100, 150, -100, -150)
		if changed {
			t.Error("folding a folded page must not report a change")
		}
	})

	t.Run("selection in last row", func(t *testing.T) {
		top, bottom, _ := geometry.SplitDelta(-50, 250, 0, 0, 0)
		if top != -50 || bottom != 0 || math.Signbit(bottom) {
			t.Errorf("expected (-50,0), got (%f,%f)", top, bottom)
		}
	})

	t.Run("selection in first row", func(t *testing.T) {
		top, bottom, _ := geometry.SplitDelta(-50, 0, 250, 0, 0)
		if top != 0 || bottom != -50 {
			t.Errorf("expected (0,-50), got (%f,%f)", top, bottom)
		}
	})

	t.Run("degenerate single row", func(t *testing.T) {
		top, bottom, changed := geometry.SplitDelta(-50, 0, 0, 0, 0)
		if math.IsNaN(top) || math.IsNaN(bottom) {
			t.Fatal("division by zero leaked into offsets")
		}
		if top != 0 || bottom != 0 || changed {
			t.Errorf("expected unchanged (0,0), got (%f,%f,%t)", top, bottom, changed)
		}
	})
}

func TestCellPlacement(t *testing.T) {
	m := geometry.Metrics{CellWidth: 5, CellHeight: 2}

	left, top := geometry.CellOrigin(16, m, -1.5)
	if left != 10 || top != 2.5 {
		t.Errorf("expected (10,2.5), got (%f,%f)", left, top)
	}

	t.Run("hit test", func(t *testing.T) {
		index, ok := geometry.CellAt(10.5, 2.6, m, -1.5)
		if !ok || index != 16 {
			t.Errorf("expected cell 16, got %d (%t)", index, ok)
		}
		if _, ok := geometry.CellAt(35, 0, m, 0); ok {
			t.Error("point right of the grid must not hit a cell")
		}
		if _, ok := geometry.CellAt(1, -0.5, m, 0); ok {
			t.Error("point above the grid must not hit a cell")
		}
	})
}

func TestRowCount(t *testing.T) {
	testcases := []struct {
		days, offset, expected int
	}{
		{28, 0, 4},
		{31, 0, 5},
		{30, 6, 6},
		{31, 5, 6},
		{29, 6, 5},
	}
	for _, tc := range testcases {
		if result := geometry.RowCount(tc.days, tc.offset); result != tc.expected {
			t.Errorf("rows for %d days at offset %d: expected %d, got %d", tc.days, tc.offset, tc.expected, result)
		}
	}
}

func TestDistances(t *testing.T) {
	top, bottom := geometry.Distances(16, 6, 50)
	if top != 100 || bottom != 150 {
		t.Errorf("expected (100,150), got (%f,%f)", top, bottom)
	}
	top, bottom = geometry.Distances(3, 1, 50)
	if top != 0 || bottom != 0 {
		t.Errorf("expected (0,0) for a single row, got (%f,%f)", top, bottom)
	}
}

func TestLerp(t *testing.T) {
	if geometry.Lerp(250, 100, 0.5) != 175 {
		t.Error("unexpected midpoint")
	}
	if geometry.Lerp(250, 100, 0) != 250 || geometry.Lerp(250, 100, 1) != 100 {
		t.Error("unexpected endpoints")
	}
}
