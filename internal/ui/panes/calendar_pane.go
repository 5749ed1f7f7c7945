package panes

import (
	"fmt"
	"math"

	"github.com/ja-he/foldcal/internal/calendar"
	"github.com/ja-he/foldcal/internal/geometry"
	"github.com/ja-he/foldcal/internal/model"
	"github.com/ja-he/foldcal/internal/styling"
	"github.com/ja-he/foldcal/internal/ui"
	"github.com/ja-he/foldcal/internal/util"
)

// CalendarPane shows the weekday header and, below it, the container's pages,
// clipped to the container's current height.
type CalendarPane struct {
	ui.LeafPane

	container *calendar.Container
	today     func() model.Date
}

// Draw draws this pane.
func (p *CalendarPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	metrics := p.container.Metrics()
	cellW := int(metrics.CellWidth)
	cellH := int(metrics.CellHeight)
	gridW := geometry.Columns * cellW

	p.Renderer.DrawBox(x, y, gridW, 1, p.Stylesheet.Header)
	for col := 0; col < geometry.Columns; col++ {
		weekday := model.WeekdayAtIndex(col, p.container.FirstDayMonday())
		p.Renderer.DrawText(x+col*cellW, y, cellW, 1, p.Stylesheet.Header, util.PadCenter(weekday.String()[:3], cellW))
	}

	top := y + 1
	height := int(math.Round(p.container.Height()))
	if height > h-1 {
		height = h - 1
	}
	containerRenderer := ui.NewConstrainedRenderer(p.Renderer, func() (int, int, int, int) {
		return x, top, gridW, height
	})

	today := p.today()
	for _, visible := range p.container.VisiblePages() {
		page := visible.Page
		left := x + int(math.Round(visible.Shift))
		pageHeight := int(math.Round(page.MeasuredHeight()))
		r := ui.NewConstrainedRenderer(containerRenderer, func() (int, int, int, int) {
			return left, top, gridW, pageHeight
		})

		for i := 0; i < geometry.TotalCells; i++ {
			if !page.CellVisible(i) {
				continue
			}
			ox, oy := page.CellOrigin(i)
			cx := left + int(math.Round(ox))
			cy := top + int(math.Round(oy))
			date := page.CellDate(i)
			style := p.cellStyle(page, i, date, today)
			r.DrawBox(cx, cy, cellW, cellH, style)
			r.DrawText(cx, cy+(cellH-1)/2, cellW, 1, style, util.PadCenter(fmt.Sprint(date.Day), cellW))
		}
	}
}

func (p *CalendarPane) cellStyle(page *calendar.Page, index int, date, today model.Date) styling.DrawStyling {
	switch {
	case !page.InMonth(index):
		return p.Stylesheet.CellOutsideMonth
	case date == page.Date():
		return p.Stylesheet.CellSelected
	case date == today:
		return p.Stylesheet.CellToday
	default:
		return p.Stylesheet.Cell
	}
}

// ContainerOrigin returns the screen position of the container's top left
// corner, i.E. the origin of the coordinates pointer events are given in.
func (p *CalendarPane) ContainerOrigin() (x, y int) {
	x, y, _, _ = p.Dimensions()
	return x, y + 1
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *CalendarPane) GetPositionInfo(x, y int) ui.PositionInfo {
	ox, oy := p.ContainerOrigin()
	return &ui.CalendarPanePositionInfo{
		X:        float64(x - ox),
		Y:        float64(y - oy),
		InHeader: y < oy,
	}
}

// NewCalendarPane constructs and returns a new CalendarPane.
func NewCalendarPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	container *calendar.Container,
	today func() model.Date,
) *CalendarPane {
	return &CalendarPane{
		LeafPane:  ui.NewLeafPane(renderer, dimensions, stylesheet, nil),
		container: container,
		today:     today,
	}
}
