package panes

import (
	"fmt"
	"time"

	"github.com/ja-he/foldcal/internal/calendar"
	"github.com/ja-he/foldcal/internal/model"
	"github.com/ja-he/foldcal/internal/styling"
	"github.com/ja-he/foldcal/internal/ui"
	"github.com/ja-he/foldcal/internal/util"
)

// StatusPane is a status bar that displays the selected date, its weekday and
// sun times, the container's mode and the fold state of the current page.
type StatusPane struct {
	ui.LeafPane

	container  *calendar.Container
	suntimes   *model.SuntimesProvider
	renderTime util.MetricsGetter
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	dateWidth := 10 // 2020-02-12 is 10 wide

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()
	dateStyle := bgStyleEmph
	weekdayStyle := dateStyle.LightenedFG(60)

	date := p.container.Current().Date()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)
	// date box background
	p.Renderer.DrawBox(x, y, dateWidth, h, bgStyleEmph)
	// date string
	p.Renderer.DrawText(x, y, dateWidth, 1, dateStyle, date.ToString())
	// weekday string
	p.Renderer.DrawText(x, y+1, dateWidth, 1, weekdayStyle, util.TruncateAt(date.ToWeekday().String(), dateWidth))

	if p.suntimes != nil {
		sun := p.suntimes.Get(date, time.Local)
		p.Renderer.DrawText(x+dateWidth+1, y, 16, 1, bgStyle, fmt.Sprintf("sunrise %s", sun.Rise.ToString()))
		p.Renderer.DrawText(x+dateWidth+1, y+1, 16, 1, bgStyle, fmt.Sprintf("sunset  %s", sun.Set.ToString()))
	}

	// mode string
	modeStr := modeToString(p.container.IsMonthMode())
	p.Renderer.DrawText(x+w-len(modeStr)-2, y, len(modeStr), 1, bgStyleEmph.DarkenedBG(10).Italicized(), modeStr)

	stateStr := p.container.Current().State().ToString()
	if p.renderTime != nil {
		stateStr = fmt.Sprintf("%s  ~%dµs", stateStr, p.renderTime.Avg())
	}
	stateWidth := len([]rune(stateStr))
	p.Renderer.DrawText(x+w-stateWidth-2, y+h-1, stateWidth, 1, bgStyle.DefaultDimmed(), stateStr)
}

func modeToString(monthMode bool) string {
	if monthMode {
		return "-- MONTH --"
	}
	return "--  WEEK --"
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.StatusPanePositionInfo{}
}

// NewStatusPane constructs and returns a new StatusPane.
// The sun times provider and the render time getter are optional.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	container *calendar.Container,
	suntimes *model.SuntimesProvider,
	renderTime util.MetricsGetter,
) *StatusPane {
	return &StatusPane{
		LeafPane:   ui.NewLeafPane(renderer, dimensions, stylesheet, nil),
		container:  container,
		suntimes:   suntimes,
		renderTime: renderTime,
	}
}
