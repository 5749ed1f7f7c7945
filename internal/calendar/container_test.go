package calendar_test

import (
	"testing"

	"github.com/ja-he/foldcal/internal/calendar"
	"github.com/ja-he/foldcal/internal/fold"
	"github.com/ja-he/foldcal/internal/gesture"
	"github.com/ja-he/foldcal/internal/model"
)

type recordingListener struct {
	selected []model.Date
	pages    []model.Date
	modes    []bool
}

func (l *recordingListener) DateSelected(d model.Date) { l.selected = append(l.selected, d) }
func (l *recordingListener) PageSelected(d model.Date) { l.pages = append(l.pages, d) }
func (l *recordingListener) ModeChanged(m bool)        { l.modes = append(l.modes, m) }

func newContainer() (*calendar.Container, *recordingListener) {
	l := &recordingListener{}
	c := calendar.NewContainer(october12, calendar.Options{
		MonthMode:  true,
		CellWidth:  10,
		CellHeight: 50,
	}, l)
	return c, l
}

func runTicks(t *testing.T, c *calendar.Container) {
	t.Helper()
	for i := 0; c.Tick(); i++ {
		if i > 100 {
			t.Fatal("container animation does not terminate")
		}
	}
}

func dispatch(c *calendar.Container, evs ...gesture.Pointer) {
	for _, ev := range evs {
		c.Dispatch(ev)
	}
}

func TestContainerWindow(t *testing.T) {
	c, _ := newContainer()
	expected := map[int]model.Date{
		-1: {Year: 2022, Month: 9, Day: 12},
		0:  {Year: 2022, Month: 10, Day: 12},
		1:  {Year: 2022, Month: 11, Day: 12},
	}
	for pos, date := range expected {
		p, ok := c.PageAt(pos)
		if !ok {
			t.Fatal("missing page at", pos)
		}
		if p.Date() != date {
			t.Errorf("position %d: expected %s, got %s", pos, date.ToString(), p.Date().ToString())
		}
	}
	if c.Pool().Created() != 3 {
		t.Error("expected 3 pages, got", c.Pool().Created())
	}
	if c.Height() != 300 {
		t.Error("expected height 300, got", c.Height())
	}
	if c.Animating() {
		t.Error("fresh container animating")
	}
}

func TestContainerVerticalDrag(t *testing.T) {
	c, l := newContainer()

	dispatch(c,
		pointer(gesture.Down, 35, 120),
		pointer(gesture.Move, 35, 90),
		pointer(gesture.Move, 35, 80),
	)
	top, bottom := c.Current().Fold().Offsets()
	if top != -16 || bottom != -24 {
		t.Fatalf("expected offsets (-16,-24), got (%f,%f)", top, bottom)
	}
	if c.Height() != 260 {
		t.Error("expected height 260, got", c.Height())
	}

	c.Dispatch(pointer(gesture.Up, 35, 80))
	if c.Current().State() != fold.Animating(fold.TowardFolded) {
		t.Fatal("expected fold animation, got", c.Current().State().ToString())
	}
	runTicks(t, c)

	if c.IsMonthMode() {
		t.Error("expected week mode")
	}
	if len(l.modes) != 1 || l.modes[0] {
		t.Error("expected a single mode change to week mode, got", l.modes)
	}
	if c.Height() != 50 {
		t.Error("expected height 50, got", c.Height())
	}
	prev, _ := c.PageAt(-1)
	if prev.Date() != (model.Date{Year: 2022, Month: 10, Day: 5}) || prev.State() != fold.Folded {
		t.Errorf("expected folded sibling at 2022-10-05, got %s %s", prev.State().ToString(), prev.Date().ToString())
	}
}

func TestContainerHorizontalPaging(t *testing.T) {
	c, l := newContainer()

	dispatch(c,
		pointer(gesture.Down, 60, 100),
		pointer(gesture.Move, 25, 100),
	)
	// October needs six rows, November five
	if c.Height() != 275 {
		t.Error("expected interpolated height 275, got", c.Height())
	}
	visible := c.VisiblePages()
	if len(visible) != 2 || visible[0].Shift != -35 || visible[1].Shift != 35 {
		t.Errorf("unexpected visible pages %+v", visible)
	}
	if c.Current().State() != fold.Expanded {
		t.Error("horizontal gesture changed fold state to", c.Current().State().ToString())
	}

	dispatch(c,
		pointer(gesture.Move, 10, 100),
		pointer(gesture.Up, 10, 100),
	)
	if !c.Animating() {
		t.Fatal("expected pager to settle")
	}
	runTicks(t, c)

	if c.CurrentPosition() != 1 || c.CurrentPageDate() != (model.Date{Year: 2022, Month: 11, Day: 12}) {
		t.Errorf("unexpected current page %d %s", c.CurrentPosition(), c.CurrentPageDate().ToString())
	}
	if len(l.pages) != 1 || l.pages[0] != c.CurrentPageDate() {
		t.Error("expected a single page selection, got", l.pages)
	}
	if c.Pool().Created() != 3 {
		t.Error("expected pages to be recycled, created", c.Pool().Created())
	}
	if _, ok := c.PageAt(-1); ok {
		t.Error("page outside the window kept")
	}
	if next, ok := c.PageAt(2); !ok || next.Date() != (model.Date{Year: 2022, Month: 12, Day: 12}) {
		t.Error("expected 2022-12-12 at position 2")
	}
	if c.Height() != 250 {
		t.Error("expected height 250, got", c.Height())
	}
}

func TestContainerHeightAtFullSwipe(t *testing.T) {
	c, _ := newContainer()

	dispatch(c,
		pointer(gesture.Down, 69, 100),
		pointer(gesture.Move, 34, 100),
	)
	if c.Height() != 275 {
		t.Error("expected interpolated height 275, got", c.Height())
	}
	c.Dispatch(pointer(gesture.Move, -1, 100))
	if c.CurrentPosition() != 0 {
		t.Fatal("page change committed while tracking")
	}
	if c.Height() != 250 {
		t.Error("expected the next page's height 250 at a full swipe, got", c.Height())
	}

	c.Dispatch(pointer(gesture.Up, -1, 100))
	runTicks(t, c)
	if c.CurrentPosition() != 1 {
		t.Fatal("expected the page change to be committed, at", c.CurrentPosition())
	}
	if c.Height() != 250 {
		t.Error("expected height 250 after committing, got", c.Height())
	}
}

func TestContainerTap(t *testing.T) {

	t.Run("selects date", func(t *testing.T) {
		c, l := newContainer()
		dispatch(c,
			pointer(gesture.Down, 45, 160),
			pointer(gesture.Up, 45, 160),
		)
		expected := model.Date{Year: 2022, Month: 10, Day: 20}
		if len(l.selected) != 1 || l.selected[0] != expected {
			t.Fatal("expected selection of 2022-10-20, got", l.selected)
		}
		if c.CurrentPageDate() != expected {
			t.Error("current page not rebased, got", c.CurrentPageDate().ToString())
		}
		prev, _ := c.PageAt(-1)
		if prev.Date() != (model.Date{Year: 2022, Month: 9, Day: 20}) {
			t.Error("sibling not rebound, got", prev.Date().ToString())
		}
	})

	t.Run("hidden day ignored", func(t *testing.T) {
		c, l := newContainer()
		dispatch(c,
			pointer(gesture.Down, 5, 10),
			pointer(gesture.Up, 5, 10),
		)
		if len(l.selected) != 0 {
			t.Error("tap on hidden day selected", l.selected)
		}
	})
}

func TestContainerBusySuppression(t *testing.T) {
	c, l := newContainer()
	c.FoldToWeekMode()
	c.Tick()

	dispatch(c,
		pointer(gesture.Down, 10, 10),
		pointer(gesture.Move, 60, 12),
	)
	if c.Current().State() != fold.Dragging {
		t.Fatal("expected interrupted page to be dragging, got", c.Current().State().ToString())
	}
	if visible := c.VisiblePages(); len(visible) != 1 || visible[0].Shift != 0 {
		t.Error("pager moved while the page was busy")
	}

	c.Dispatch(pointer(gesture.Up, 60, 12))
	if c.Current().State() != fold.Animating(fold.TowardFolded) {
		t.Fatal("expected the fold to resume, got", c.Current().State().ToString())
	}
	runTicks(t, c)
	if c.IsMonthMode() || len(l.pages) != 0 || len(l.selected) != 0 {
		t.Errorf("unexpected outcome: month mode %t, pages %v, selected %v", c.IsMonthMode(), l.pages, l.selected)
	}
}

func TestContainerCommands(t *testing.T) {

	t.Run("week paging", func(t *testing.T) {
		c, l := newContainer()
		c.FoldToWeekMode()
		runTicks(t, c)
		c.PageNext()
		runTicks(t, c)
		if c.CurrentPageDate() != (model.Date{Year: 2022, Month: 10, Day: 19}) {
			t.Error("expected 2022-10-19, got", c.CurrentPageDate().ToString())
		}
		if c.Current().State() != fold.Folded {
			t.Error("expected folded page after week paging, got", c.Current().State().ToString())
		}
		c.PagePrev()
		runTicks(t, c)
		if len(l.pages) != 2 || l.pages[1] != october12 {
			t.Error("expected to return to 2022-10-12, got", l.pages)
		}
	})

	t.Run("expand back", func(t *testing.T) {
		c, l := newContainer()
		c.ExpandToMonthMode()
		if c.Animating() {
			t.Error("expanding in month mode started an animation")
		}
		c.FoldToWeekMode()
		runTicks(t, c)
		c.ExpandToMonthMode()
		runTicks(t, c)
		if !c.IsMonthMode() || len(l.modes) != 2 {
			t.Errorf("expected month mode after two changes, got %t %v", c.IsMonthMode(), l.modes)
		}
	})

	t.Run("set month mode", func(t *testing.T) {
		c, l := newContainer()
		c.SetMonthMode(false)
		if c.IsMonthMode() || c.Current().State() != fold.Folded || c.Animating() {
			t.Error("expected immediate week mode")
		}
		next, _ := c.PageAt(1)
		if next.Date() != (model.Date{Year: 2022, Month: 10, Day: 19}) {
			t.Error("expected next week at position 1, got", next.Date().ToString())
		}
		if len(l.modes) != 0 {
			t.Error("direct mode switch notified", l.modes)
		}
	})

	t.Run("set date", func(t *testing.T) {
		c, _ := newContainer()
		c.SetDate(model.Date{Year: 2024, Month: 2, Day: 29})
		if c.CurrentPageDate() != (model.Date{Year: 2024, Month: 2, Day: 29}) {
			t.Error("unexpected date", c.CurrentPageDate().ToString())
		}
		next, _ := c.PageAt(1)
		if next.Date() != (model.Date{Year: 2024, Month: 3, Day: 29}) {
			t.Error("unexpected next date", next.Date().ToString())
		}
	})

	t.Run("first day", func(t *testing.T) {
		c, _ := newContainer()
		c.SetFirstDayMonday(true)
		for _, v := range c.VisiblePages() {
			if !v.Page.FirstDayMonday() {
				t.Error("page not rebound with monday first")
			}
		}
		if c.Current().FirstDayOffset() != 5 {
			t.Error("expected offset 5, got", c.Current().FirstDayOffset())
		}
	})

	t.Run("resize", func(t *testing.T) {
		c, _ := newContainer()
		c.FoldToWeekMode()
		runTicks(t, c)
		c.SetCellSize(4, 2)
		if c.Height() != 2 {
			t.Error("expected height 2 after resize, got", c.Height())
		}
		if c.Width() != 28 {
			t.Error("expected width 28, got", c.Width())
		}
	})
}
