package calendar_test

import (
	"testing"

	"github.com/ja-he/foldcal/internal/calendar"
	"github.com/ja-he/foldcal/internal/fold"
	"github.com/ja-he/foldcal/internal/geometry"
	"github.com/ja-he/foldcal/internal/model"
)

type recordingPageHost struct {
	offsets  []float64
	settled  []bool
	selected []model.Date
}

func (h *recordingPageHost) PageOffsetChanged(p *calendar.Page, total float64) {
	h.offsets = append(h.offsets, total)
}
func (h *recordingPageHost) PageModeSettled(p *calendar.Page, expanded bool) {
	h.settled = append(h.settled, expanded)
}
func (h *recordingPageHost) PageDateSelected(p *calendar.Page, date model.Date) {
	h.selected = append(h.selected, date)
}

// October 2022 starts on a Saturday and spans six rows with Sunday as the
// first weekday; the 12th is in the third row.
var october12 = model.Date{Year: 2022, Month: 10, Day: 12}

func newBoundPage(expanded bool) (*calendar.Page, *recordingPageHost) {
	h := &recordingPageHost{}
	p := calendar.NewPage(&geometry.Metrics{CellWidth: 10, CellHeight: 50}, h)
	p.Rebind(october12, 0, false, expanded)
	return p, h
}

func TestRebind(t *testing.T) {
	p, _ := newBoundPage(true)

	if p.FirstDayOffset() != 6 {
		t.Error("expected first day offset 6, got", p.FirstDayOffset())
	}
	if p.DaysInMonth() != 31 {
		t.Error("expected 31 days, got", p.DaysInMonth())
	}
	if p.VisibleRows() != 6 {
		t.Error("expected 6 rows, got", p.VisibleRows())
	}
	if p.SelectedIndex() != 17 {
		t.Error("expected selected index 17, got", p.SelectedIndex())
	}
	if p.TopDistance() != 100 || p.BottomDistance() != 150 {
		t.Errorf("expected distances (100,150), got (%f,%f)", p.TopDistance(), p.BottomDistance())
	}
	if p.MeasuredHeight() != 300 {
		t.Error("expected measured height 300, got", p.MeasuredHeight())
	}

	t.Run("folded", func(t *testing.T) {
		p, _ := newBoundPage(false)
		if p.State() != fold.Folded {
			t.Error("expected folded, got", p.State().ToString())
		}
		if p.MeasuredHeight() != 50 {
			t.Error("expected measured height 50, got", p.MeasuredHeight())
		}
		_, y := p.CellOrigin(p.SelectedIndex())
		if y != 0 {
			t.Error("expected the selected row at the top of a folded page, got", y)
		}
	})

	t.Run("offsets are not carried over", func(t *testing.T) {
		p, _ := newBoundPage(true)
		p.Fold().BeginDrag()
		p.Fold().DragBy(-40)
		p.Rebind(model.Date{Year: 2022, Month: 11, Day: 3}, 1, false, true)
		top, bottom := p.Fold().Offsets()
		if top != 0 || bottom != 0 || p.State() != fold.Expanded {
			t.Errorf("expected fresh expanded page, got %s (%f,%f)", p.State().ToString(), top, bottom)
		}
		if p.Position() != 1 || p.VisibleRows() != 5 {
			t.Errorf("unexpected derived state: position %d, rows %d", p.Position(), p.VisibleRows())
		}
	})

	t.Run("monday first", func(t *testing.T) {
		p, _ := newBoundPage(true)
		p.Rebind(october12, 0, true, true)
		if p.FirstDayOffset() != 5 || p.SelectedIndex() != 16 {
			t.Errorf("expected offset 5 and index 16, got %d and %d", p.FirstDayOffset(), p.SelectedIndex())
		}
	})
}

func TestCells(t *testing.T) {
	p, _ := newBoundPage(true)

	testcases := []struct {
		index   int
		date    model.Date
		inMonth bool
	}{
		{0, model.Date{Year: 2022, Month: 9, Day: 25}, false},
		{6, model.Date{Year: 2022, Month: 10, Day: 1}, true},
		{36, model.Date{Year: 2022, Month: 10, Day: 31}, true},
		{37, model.Date{Year: 2022, Month: 11, Day: 1}, false},
	}
	for _, tc := range testcases {
		if date := p.CellDate(tc.index); date != tc.date {
			t.Errorf("cell %d: expected %s, got %s", tc.index, tc.date.ToString(), date.ToString())
		}
		if p.InMonth(tc.index) != tc.inMonth {
			t.Errorf("cell %d: expected in month %t", tc.index, tc.inMonth)
		}
	}

	t.Run("outside days only while folded", func(t *testing.T) {
		p, _ := newBoundPage(false)
		if !p.CellVisible(0) {
			t.Error("outside day hidden on folded page")
		}
		p.Fold().BeginDrag()
		if p.CellVisible(0) {
			t.Error("outside day visible while dragging")
		}
		if !p.CellVisible(6) {
			t.Error("month day hidden while dragging")
		}
		if p.CellVisible(42) {
			t.Error("cell beyond the grid visible")
		}
	})

	t.Run("hit test follows the fold", func(t *testing.T) {
		p, _ := newBoundPage(false)
		index, ok := p.CellAt(45, 10)
		if !ok || index != 18 {
			t.Errorf("expected cell 18, got %d (%t)", index, ok)
		}
		if _, ok := p.CellAt(45, 60); ok {
			t.Error("hit below the folded page")
		}
	})
}

func TestActivate(t *testing.T) {

	t.Run("selects other date", func(t *testing.T) {
		p, h := newBoundPage(true)
		if !p.Activate(25) {
			t.Fatal("activation did not select")
		}
		if len(h.selected) != 1 || h.selected[0] != (model.Date{Year: 2022, Month: 10, Day: 20}) {
			t.Error("unexpected selection", h.selected)
		}
	})

	t.Run("same date", func(t *testing.T) {
		p, h := newBoundPage(true)
		if p.Activate(p.SelectedIndex()) || len(h.selected) != 0 {
			t.Error("reselecting the reference date fired a selection")
		}
	})

	t.Run("suppressed while busy", func(t *testing.T) {
		p, h := newBoundPage(true)
		p.Fold().AnimateTo(fold.TowardFolded)
		if p.Activate(25) || len(h.selected) != 0 {
			t.Error("activation on an animating page fired a selection")
		}
	})

	t.Run("hidden cell", func(t *testing.T) {
		p, h := newBoundPage(true)
		if p.Activate(0) || len(h.selected) != 0 {
			t.Error("activation of a hidden cell fired a selection")
		}
	})
}

func TestPageFoldNotifications(t *testing.T) {
	p, h := newBoundPage(true)
	p.Fold().AnimateTo(fold.TowardFolded)
	for p.Fold().Tick() {
	}
	if len(h.settled) != 1 || h.settled[0] {
		t.Error("expected a single folded settle, got", h.settled)
	}
	if len(h.offsets) == 0 || h.offsets[len(h.offsets)-1] != -250 {
		t.Error("expected final offset -250, got", h.offsets)
	}
}
