// Package calendar hosts the month pages of the calendar: the page model with
// its fold controller, the date source mapping pager positions to dates, page
// pooling, horizontal paging and the container tying these together.
package calendar

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/foldcal/internal/fold"
	"github.com/ja-he/foldcal/internal/geometry"
	"github.com/ja-he/foldcal/internal/model"
)

// PageHost receives the notifications of a page.
type PageHost interface {
	// PageOffsetChanged is called whenever the page's measured height changed.
	PageOffsetChanged(p *Page, totalOffset float64)
	// PageModeSettled is called once per completed fold animation.
	PageModeSettled(p *Page, expanded bool)
	// PageDateSelected is called when a cell of a date other than the page's
	// reference date was activated.
	PageDateSelected(p *Page, date model.Date)
}

// Page is a single month grid of 6x7 cells, bound to a reference date and a
// pager position.
//
// The cell size is not owned by the page; it is read through the shared
// metrics on every computation.
type Page struct {
	metrics *geometry.Metrics
	host    PageHost
	fold    *fold.Controller

	date           model.Date
	position       int
	firstDayMonday bool

	daysInMonth    int
	firstDayOffset int
	selected       int
	visibleRows    int
}

// NewPage constructs an unbound page. It must be bound via Rebind before use.
func NewPage(metrics *geometry.Metrics, host PageHost) *Page {
	p := &Page{metrics: metrics, host: host}
	p.fold = fold.NewController(p, pageNotifier{p})
	return p
}

// Rebind binds the page to a new date and position, recomputing all derived
// state from scratch and forcing the given rest state.
func (p *Page) Rebind(date model.Date, position int, firstDayMonday bool, expanded bool) {
	p.date = date
	p.position = position
	p.firstDayMonday = firstDayMonday

	p.daysInMonth = date.DaysInMonth()
	p.firstDayOffset = model.WeekdayIndex(date.WeekdayOfFirst(), firstDayMonday)
	p.selected = p.firstDayOffset + date.Day - 1
	p.visibleRows = geometry.RowCount(p.daysInMonth, p.firstDayOffset)

	p.fold.Reset(expanded)

	log.Trace().
		Int("position", position).
		Str("date", date.ToString()).
		Bool("expanded", expanded).
		Msg("page bound")
}

// Reconcile re-derives the offsets after the shared cell size changed.
func (p *Page) Reconcile() { p.fold.Reconcile() }

// Fold returns the page's fold controller.
func (p *Page) Fold() *fold.Controller { return p.fold }

// State returns the page's fold state.
func (p *Page) State() fold.State { return p.fold.State() }

// IsBusy indicates whether the page is being dragged or animated.
func (p *Page) IsBusy() bool { return p.fold.IsBusy() }

// Date returns the selected date of the page.
func (p *Page) Date() model.Date { return p.date }

// Position returns the pager position the page is bound to.
func (p *Page) Position() int { return p.position }

// FirstDayMonday indicates whether weeks on this page start on Monday.
func (p *Page) FirstDayMonday() bool { return p.firstDayMonday }

// SelectedIndex returns the grid index of the selected date's cell.
func (p *Page) SelectedIndex() int { return p.selected }

// VisibleRows returns the number of grid rows the month occupies.
func (p *Page) VisibleRows() int { return p.visibleRows }

// FirstDayOffset returns the grid index of the first of the month.
func (p *Page) FirstDayOffset() int { return p.firstDayOffset }

// DaysInMonth returns the number of days in the page's month.
func (p *Page) DaysInMonth() int { return p.daysInMonth }

// TopDistance is the travel of the top edge when folding onto the selected
// row.
func (p *Page) TopDistance() float64 {
	top, _ := geometry.Distances(p.selected, p.visibleRows, p.metrics.CellHeight)
	return top
}

// BottomDistance is the travel of the bottom edge when folding onto the
// selected row.
func (p *Page) BottomDistance() float64 {
	_, bottom := geometry.Distances(p.selected, p.visibleRows, p.metrics.CellHeight)
	return bottom
}

// CellHeight returns the shared cell height.
func (p *Page) CellHeight() float64 { return p.metrics.CellHeight }

// ContentHeight is the height of all visible rows.
func (p *Page) ContentHeight() float64 {
	return float64(p.visibleRows) * p.metrics.CellHeight
}

// Width is the width of the grid.
func (p *Page) Width() float64 {
	return geometry.Columns * p.metrics.CellWidth
}

// MeasuredHeight is the height the page currently occupies.
func (p *Page) MeasuredHeight() float64 {
	return p.fold.MeasuredHeight(p.ContentHeight())
}

// CellDate returns the date shown in the cell at the given index, which for
// cells outside the month is a date of the previous or next month.
func (p *Page) CellDate(index int) model.Date {
	return p.date.GetFirstOfMonth().AddDays(index - p.firstDayOffset)
}

// InMonth indicates whether the cell shows a day of the page's month.
func (p *Page) InMonth(index int) bool {
	day := index - p.firstDayOffset + 1
	return day >= 1 && day <= p.daysInMonth
}

// CellVisible indicates whether the cell's content should be drawn.
// Days outside the month are shown only on a folded page, to complete its
// week row.
func (p *Page) CellVisible(index int) bool {
	if index < 0 || index >= p.visibleRows*geometry.Columns {
		return false
	}
	return p.InMonth(index) || p.fold.State() == fold.Folded
}

// CellOrigin returns the page-relative top left corner of a cell.
func (p *Page) CellOrigin(index int) (x, y float64) {
	return geometry.CellOrigin(index, *p.metrics, p.fold.TopOffset())
}

// CellAt returns the cell under the page-relative point (x, y).
func (p *Page) CellAt(x, y float64) (int, bool) {
	if y < 0 || y >= p.MeasuredHeight() {
		return 0, false
	}
	return geometry.CellAt(x, y, *p.metrics, p.fold.TopOffset())
}

// Activate handles a tap on the cell at the given index. It returns whether
// the tap selected a new date.
//
// Taps are suppressed while the page is busy and on cells that are not
// visible.
func (p *Page) Activate(index int) bool {
	if p.IsBusy() {
		log.Debug().Int("position", p.position).Str("state", p.State().ToString()).Msg("suppressing cell activation on busy page")
		return false
	}
	if !p.CellVisible(index) {
		return false
	}
	date := p.CellDate(index)
	if date == p.date {
		return false
	}
	if p.host != nil {
		p.host.PageDateSelected(p, date)
	}
	return true
}

type pageNotifier struct{ p *Page }

func (n pageNotifier) OffsetChanged(total float64) {
	if n.p.host != nil {
		n.p.host.PageOffsetChanged(n.p, total)
	}
}

func (n pageNotifier) ModeSettled(expanded bool) {
	if n.p.host != nil {
		n.p.host.PageModeSettled(n.p, expanded)
	}
}
