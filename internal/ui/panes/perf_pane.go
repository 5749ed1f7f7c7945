package panes

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/foldcal/internal/styling"
	"github.com/ja-he/foldcal/internal/ui"
	"github.com/ja-he/foldcal/internal/util"
)

// PerfPane is an ephemeral pane used for showing render and input timings,
// e.g. to check that fold animations keep up with the frame interval.
type PerfPane struct {
	ui.LeafPane

	renderTime          util.MetricsGetter
	eventProcessingTime util.MetricsGetter
}

// Draw draws this pane.
func (p *PerfPane) Draw() {
	if !p.IsVisible() {
		return
	}

	renderAvg := p.renderTime.Avg()
	renderLast := p.renderTime.GetLast()
	eventAvg := p.eventProcessingTime.Avg()
	eventLast := p.eventProcessingTime.GetLast()

	x, y, w, h := p.Dims()
	lastWidth := len(" render time: ....... xs ")
	avgWidth := w - lastWidth

	defaultStyle := styling.StyleFromColors(colorful.Hsl(0, 0, 0), colorful.Hsl(0, 0, 0.94))
	bad := colorful.Color{R: 1.0, G: 0.8, B: 0.8}
	hue, _, ltn := bad.Hsl()

	renderStyle := styling.StyleFromColors(
		colorful.Hsl(0, 0, 0), // black
		colorful.Hsl(hue, deviation(renderLast, renderAvg), ltn),
	)
	eventStyle := styling.StyleFromColors(
		colorful.Hsl(0, 0, 0), // black
		colorful.Hsl(hue, deviation(eventLast, eventAvg), ltn),
	)

	p.Renderer.DrawBox(x, y, w, h, defaultStyle)

	p.Renderer.DrawText(x, y, lastWidth, 1, renderStyle, fmt.Sprintf(" render time: % 7d µs ", renderLast))
	p.Renderer.DrawText(x, y+1, lastWidth, 1, eventStyle, fmt.Sprintf(" input  time: % 7d µs ", eventLast))

	p.Renderer.DrawText(x+lastWidth, y, avgWidth, 1, defaultStyle, fmt.Sprintf(" render avg ~ % 7d µs", renderAvg))
	p.Renderer.DrawText(x+lastWidth, y+1, avgWidth, 1, defaultStyle, fmt.Sprintf(" input  avg ~ % 7d µs", eventAvg))
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *PerfPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.NoPanePositionInfo{}
}

// deviation is how far last exceeds avg, relative to avg and capped at 1.
func deviation(last, avg uint64) float64 {
	if last <= avg || avg == 0 {
		return 0
	}
	return math.Min(float64(last-avg)/float64(avg), 1.0)
}

// NewPerfPane constructs and returns a new PerfPane.
func NewPerfPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	condition func() bool,
	renderTime util.MetricsGetter,
	eventProcessingTime util.MetricsGetter,
) *PerfPane {
	return &PerfPane{
		LeafPane:            ui.NewLeafPane(renderer, dimensions, nil, condition),
		renderTime:          renderTime,
		eventProcessingTime: eventProcessingTime,
	}
}
