package calendar

import (
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/foldcal/internal/fold"
	"github.com/ja-he/foldcal/internal/geometry"
	"github.com/ja-he/foldcal/internal/gesture"
	"github.com/ja-he/foldcal/internal/model"
)

// Listener receives the container's notifications.
type Listener interface {
	// DateSelected is called when a cell tap selected a new date.
	DateSelected(date model.Date)
	// PageSelected is called when a page change completed.
	PageSelected(date model.Date)
	// ModeChanged is called when a fold animation left the container in a
	// different mode.
	ModeChanged(monthMode bool)
}

// Options configure a Container.
type Options struct {
	FirstDayMonday   bool
	MonthMode        bool
	CellWidth        float64
	CellHeight       float64
	ReleaseThreshold float64
	CommitRule       gesture.CommitRule
	SettleStep       float64
}

// VisiblePage is a page together with its horizontal shift relative to the
// container's left edge.
type VisiblePage struct {
	Page  *Page
	Shift float64
}

// Container is the month layout: it owns the pages around the current pager
// position and routes pointer input to the pager and to the fold controller
// of the current page.
type Container struct {
	metrics *geometry.Metrics
	source  *DateSource
	pool    *Pool
	pages   map[int]*Page
	current int

	firstDayMonday   bool
	releaseThreshold float64

	router  *gesture.Router
	pager   *Pager
	heights *HeightSynchronizer

	listener Listener
}

// NewContainer returns a container showing the given date.
// The listener may be nil.
func NewContainer(date model.Date, opts Options, listener Listener) *Container {
	c := &Container{
		metrics:          &geometry.Metrics{CellWidth: opts.CellWidth, CellHeight: opts.CellHeight},
		source:           NewDateSource(date, 0, opts.MonthMode),
		pages:            make(map[int]*Page),
		firstDayMonday:   opts.FirstDayMonday,
		releaseThreshold: opts.ReleaseThreshold,
		listener:         listener,
	}
	c.pool = NewPool(func() *Page {
		p := NewPage(c.metrics, c)
		if c.releaseThreshold > 0 {
			p.Fold().Threshold = c.releaseThreshold
		}
		return p
	})
	c.router = gesture.NewRouter(c, opts.CommitRule)
	c.pager = NewPager(c, geometry.Columns*opts.CellWidth)
	if opts.SettleStep > 0 {
		c.pager.SettleStep = opts.SettleStep
	}
	c.heights = NewHeightSynchronizer(c)

	c.fillWindow()
	return c
}

// Current returns the page at the current position.
func (c *Container) Current() *Page { return c.pages[c.current] }

// CurrentPosition returns the current pager position.
func (c *Container) CurrentPosition() int { return c.current }

// PageAt returns the bound page at a position, if any.
func (c *Container) PageAt(position int) (*Page, bool) {
	p, ok := c.pages[position]
	return p, ok
}

// CurrentPageDate returns the reference date of the current page.
func (c *Container) CurrentPageDate() model.Date { return c.source.DateAt(c.current) }

// IsMonthMode indicates whether the container pages by months.
func (c *Container) IsMonthMode() bool { return c.source.MonthMode() }

// FirstDayMonday indicates whether weeks start on Monday.
func (c *Container) FirstDayMonday() bool { return c.firstDayMonday }

// Metrics returns the shared cell size.
func (c *Container) Metrics() geometry.Metrics { return *c.metrics }

// Pool returns the page pool.
func (c *Container) Pool() *Pool { return c.pool }

// SetDate shows the given date on the current page.
func (c *Container) SetDate(date model.Date) {
	c.source.Rebase(date, c.current)
	c.rebindAll()
}

// SetMonthMode switches between month and week mode without animating.
func (c *Container) SetMonthMode(monthMode bool) {
	date := c.CurrentPageDate()
	c.source.SetMonthMode(monthMode)
	c.source.Rebase(date, c.current)
	c.rebindAll()
}

// ExpandToMonthMode animates the current page to the month grid.
func (c *Container) ExpandToMonthMode() { c.animateCurrent(fold.TowardExpanded) }

// FoldToWeekMode animates the current page to its week row.
func (c *Container) FoldToWeekMode() { c.animateCurrent(fold.TowardFolded) }

func (c *Container) animateCurrent(dir fold.Direction) {
	page := c.Current()
	if page == nil || page.IsBusy() || c.pager.Settling() || c.pager.Tracking() {
		return
	}
	page.Fold().AnimateTo(dir)
}

// SetFirstDayMonday changes the first weekday and rebinds every page.
func (c *Container) SetFirstDayMonday(monday bool) {
	if monday == c.firstDayMonday {
		return
	}
	c.firstDayMonday = monday
	c.rebindAll()
}

// SetCellSize changes the shared cell size, e.g. on a resize.
func (c *Container) SetCellSize(width, height float64) {
	c.metrics.CellWidth = width
	c.metrics.CellHeight = height
	c.pager.Width = geometry.Columns * width
	for _, p := range c.pages {
		p.Reconcile()
	}
}

// PageNext starts a settle toward the next page.
func (c *Container) PageNext() { c.page(1) }

// PagePrev starts a settle toward the previous page.
func (c *Container) PagePrev() { c.page(-1) }

func (c *Container) page(delta int) {
	if page := c.Current(); page != nil && page.IsBusy() {
		return
	}
	c.pager.Page(delta)
}

// Dispatch routes a pointer event in container coordinates and returns
// whether it was consumed.
//
// The gesture router gets the first look; events it does not consume are
// swallowed while the current page is busy and go to the pager otherwise.
func (c *Container) Dispatch(ev gesture.Pointer) bool {
	if c.Current() == nil {
		log.Warn().Int("position", c.current).Msg("dispatch without a current page")
		return false
	}
	if !c.pager.Settling() || c.router.InSession() {
		if c.router.Handle(ev) {
			if c.pager.Tracking() {
				c.pager.Cancel()
			}
			return true
		}
	}
	if c.Current().IsBusy() {
		return true
	}
	return c.pager.Handle(ev)
}

// Tick advances all animating pages and the pager by one frame. It returns
// whether further ticks are needed.
func (c *Container) Tick() bool {
	for _, p := range c.sortedPages() {
		if p.State().Phase == fold.PhaseAnimating {
			p.Fold().Tick()
		}
	}
	c.pager.Tick()
	return c.Animating()
}

// Animating indicates whether any page or the pager is animating, i.E.
// whether the host should keep delivering frame ticks.
func (c *Container) Animating() bool {
	if c.pager.Settling() {
		return true
	}
	for _, p := range c.pages {
		if p.State().Phase == fold.PhaseAnimating {
			return true
		}
	}
	return false
}

// Height returns the height the container should occupy.
func (c *Container) Height() float64 {
	if h, ok := c.heights.Height(); ok {
		return h
	}
	if page := c.Current(); page != nil {
		return page.MeasuredHeight()
	}
	return 0
}

// Width returns the width of a page.
func (c *Container) Width() float64 { return geometry.Columns * c.metrics.CellWidth }

// VisiblePages returns the pages intersecting the container, ordered by
// position.
func (c *Container) VisiblePages() []VisiblePage {
	width := c.Width()
	fraction := c.pager.Fraction()
	var result []VisiblePage
	for k := -1; k <= 1; k++ {
		p, ok := c.pages[c.current+k]
		if !ok {
			continue
		}
		shift := (float64(k) + fraction) * width
		if math.Abs(shift) >= width {
			continue
		}
		result = append(result, VisiblePage{Page: p, Shift: shift})
	}
	return result
}

// ActiveTarget implements gesture.Host.
func (c *Container) ActiveTarget() gesture.Target {
	page := c.Current()
	if page == nil {
		return nil
	}
	return page.Fold()
}

// MonthMode implements gesture.Host.
func (c *Container) MonthMode() bool { return c.IsMonthMode() }

// MeasuredHeightAt implements HeightSource.
func (c *Container) MeasuredHeightAt(position int) (float64, bool) {
	p, ok := c.pages[position]
	if !ok {
		return 0, false
	}
	return p.MeasuredHeight(), true
}

// PageOffsetChanged implements PageHost.
func (c *Container) PageOffsetChanged(p *Page, total float64) {
	log.Trace().Int("position", p.Position()).Float64("offset", total).Msg("page offset changed")
}

// PageModeSettled implements PageHost.
func (c *Container) PageModeSettled(p *Page, expanded bool) {
	changed := expanded != c.IsMonthMode()
	log.Debug().Int("position", p.Position()).Bool("expanded", expanded).Bool("changed", changed).Msg("page mode settled")

	c.source.SetMonthMode(expanded)
	c.source.Rebase(p.Date(), p.Position())
	for pos, sibling := range c.pages {
		if pos != p.Position() {
			c.bind(sibling, pos)
		}
	}
	if changed && c.listener != nil {
		c.listener.ModeChanged(expanded)
	}
}

// PageDateSelected implements PageHost.
func (c *Container) PageDateSelected(p *Page, date model.Date) {
	log.Debug().Int("position", p.Position()).Str("date", date.ToString()).Msg("date selected")
	c.source.Rebase(date, p.Position())
	c.rebindAll()
	if c.listener != nil {
		c.listener.DateSelected(date)
	}
}

// PageScrolled implements PagerListener.
func (c *Container) PageScrolled(fraction float64) {
	c.heights.PageScrolled(c.current, fraction)
}

// PageCommitted implements PagerListener.
func (c *Container) PageCommitted(delta int) {
	c.current += delta
	c.fillWindow()
	log.Debug().Int("position", c.current).Str("date", c.CurrentPageDate().ToString()).Msg("page selected")
	if c.listener != nil {
		c.listener.PageSelected(c.CurrentPageDate())
	}
}

// Tapped implements PagerListener.
func (c *Container) Tapped(x, y float64) {
	page := c.Current()
	if page == nil {
		return
	}
	if index, ok := page.CellAt(x, y); ok {
		page.Activate(index)
	}
}

// fillWindow makes sure exactly the positions around the current one are
// bound, recycling pages that fell out of the window.
func (c *Container) fillWindow() {
	for pos, p := range c.pages {
		if pos < c.current-1 || pos > c.current+1 {
			delete(c.pages, pos)
			c.pool.Release(p)
		}
	}
	for pos := c.current - 1; pos <= c.current+1; pos++ {
		if _, ok := c.pages[pos]; !ok {
			p := c.pool.Acquire()
			c.bind(p, pos)
			c.pages[pos] = p
		}
	}
}

func (c *Container) rebindAll() {
	for pos, p := range c.pages {
		c.bind(p, pos)
	}
}

func (c *Container) bind(p *Page, position int) {
	p.Rebind(c.source.DateAt(position), position, c.firstDayMonday, c.source.MonthMode())
}

func (c *Container) sortedPages() []*Page {
	positions := make([]int, 0, len(c.pages))
	for pos := range c.pages {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	pages := make([]*Page, 0, len(positions))
	for _, pos := range positions {
		pages = append(pages, c.pages[pos])
	}
	return pages
}
