package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/foldcal/internal/ui"
	"github.com/ja-he/foldcal/internal/util"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
type RootPane struct {
	ID ui.PaneID

	renderer ui.RenderOrchestratorControl

	dimensions func() (x, y, w, h int)

	calendarPane *CalendarPane
	statusPane   ui.Pane
	logPane      ui.Pane
	helpPane     ui.Pane

	performanceMetricsOverlay ui.Pane

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	active := p.getCurrentlyActivePanesInOrder()
	lastIdx := len(active) - 1

	// go through panes in reverse order (topmost drawn to bottommost drawn)
	for i := range active {
		if util.NewRect(active[lastIdx-i].Dimensions()).Contains(x, y) {
			return active[lastIdx-i].GetPositionInfo(x, y)
		}
	}

	return &ui.NoPanePositionInfo{}
}

func (p *RootPane) getCurrentlyActivePanesInOrder() []ui.Pane {
	active := []ui.Pane{p.calendarPane, p.statusPane}
	for _, pane := range []ui.Pane{p.logPane, p.helpPane} {
		if pane.IsVisible() {
			active = append(active, pane)
		}
	}
	return active
}

// IsVisible returns true, the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Identify returns the panes ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// CalendarPane returns the calendar pane.
func (p *RootPane) CalendarPane() *CalendarPane { return p.calendarPane }

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	for _, pane := range p.getCurrentlyActivePanesInOrder() {
		p.log.Trace().Msgf("drawing %d...", pane.Identify())
		pane.Draw()
	}

	if p.performanceMetricsOverlay.IsVisible() {
		p.performanceMetricsOverlay.Draw()
	}

	p.renderer.Show()
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	dimensions func() (x, y, w, h int),
	calendarPane *CalendarPane,
	statusPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	performanceMetricsOverlay ui.Pane,
) *RootPane {
	rootPane := &RootPane{
		ID:                        ui.GeneratePaneID(),
		renderer:                  renderer,
		dimensions:                dimensions,
		calendarPane:              calendarPane,
		statusPane:                statusPane,
		logPane:                   logPane,
		helpPane:                  helpPane,
		performanceMetricsOverlay: performanceMetricsOverlay,
		log:                       log.With().Str("component", "root-pane").Logger(),
	}
	rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())

	return rootPane
}
