package cli

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/foldcal/internal/calendar"
	"github.com/ja-he/foldcal/internal/config"
	"github.com/ja-he/foldcal/internal/control/action"
	"github.com/ja-he/foldcal/internal/gesture"
	"github.com/ja-he/foldcal/internal/input"
	"github.com/ja-he/foldcal/internal/model"
	"github.com/ja-he/foldcal/internal/potatolog"
	"github.com/ja-he/foldcal/internal/styling"
	"github.com/ja-he/foldcal/internal/tui"
	"github.com/ja-he/foldcal/internal/ui"
	"github.com/ja-he/foldcal/internal/ui/panes"
	"github.com/ja-he/foldcal/internal/util"
)

// Controller is the struct for the TUI controller.
//
// All calendar state is mutated on the goroutine executing Run; the screen is
// polled for events on a separate goroutine which only forwards them.
type Controller struct {
	container      *calendar.Container
	rootPane       *panes.RootPane
	calendarPane   *panes.CalendarPane
	inputTree      *input.Tree
	inputProcessor *input.ModalInputProcessor

	screen        screen
	events        tui.EventPollable
	frameInterval time.Duration
	cellWidth     float64
	cellHeight    float64

	logShown  bool
	helpShown bool
	perfShown bool
	quit      bool

	// A drag that started on the calendar keeps being forwarded to it until the
	// button is released, regardless of the pane under the cursor.
	pointerActive bool

	renderTimes          util.MetricsHandler
	eventProcessingTimes util.MetricsHandler
}

type screen interface {
	tui.ScreenSynchronizer
	ui.ConstrainedRenderer
	ui.RenderOrchestratorControl
	Fini()
}

// NewController creates a new Controller drawing to the given screen.
// suntimes may be nil, in which case no sun times are shown.
func NewController(
	date model.Date,
	cfg config.Config,
	stylesheet *styling.Stylesheet,
	screenHandler *tui.ScreenHandler,
	suntimes *model.SuntimesProvider,
) (*Controller, error) {
	frameInterval, err := cfg.Calendar.FrameIntervalDuration()
	if err != nil {
		return nil, err
	}
	commitRule, ok := gesture.ParseCommitRule(cfg.Calendar.CommitRule)
	if !ok {
		return nil, fmt.Errorf("unknown commit rule '%s'", cfg.Calendar.CommitRule)
	}

	c := &Controller{
		screen:        screenHandler,
		events:        screenHandler.GetEventPollable(),
		frameInterval: frameInterval,
		cellWidth:     float64(*cfg.Calendar.CellWidth),
		cellHeight:    float64(*cfg.Calendar.CellHeight),
	}

	opts := calendar.Options{
		FirstDayMonday: *cfg.Calendar.FirstDayMonday,
		MonthMode:      !*cfg.Calendar.StartInWeekMode,
		CellWidth:      c.cellWidth,
		CellHeight:     c.cellHeight,
		CommitRule:     commitRule,
	}
	if cfg.Calendar.ReleaseThreshold != nil {
		opts.ReleaseThreshold = *cfg.Calendar.ReleaseThreshold
	}
	if cfg.Calendar.PageSettleStep != nil {
		opts.SettleStep = *cfg.Calendar.PageSettleStep
	}
	c.container = calendar.NewContainer(date, opts, c)

	c.inputTree, err = input.ConstructInputTree(c.keyMappings(cfg.Keys))
	if err != nil {
		return nil, fmt.Errorf("could not construct input tree: %w", err)
	}
	c.inputProcessor = input.NewModalInputProcessor(c.inputTree)

	screenDimensions := screenHandler.Dimensions
	calendarDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		return 0, 0, w, h - 2
	}
	statusDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		return 0, h - 2, w, 2
	}
	helpDimensions := func() (x, y, w, h int) {
		_, _, screenW, screenH := screenDimensions()
		w, h = 50, len(c.inputTree.GetHelp())+2
		if h > screenH-2 {
			h = screenH - 2
		}
		return screenW/2 - w/2, 1, w, h
	}
	perfDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		return 0, h - 4, w, 2
	}

	c.calendarPane = panes.NewCalendarPane(screenHandler, calendarDimensions, stylesheet, c.container, model.Today)
	c.rootPane = panes.NewRootPane(
		screenHandler,
		screenDimensions,
		c.calendarPane,
		panes.NewStatusPane(screenHandler, statusDimensions, stylesheet, c.container, suntimes, &c.renderTimes),
		panes.NewLogPane(screenHandler, calendarDimensions, stylesheet, func() bool { return c.logShown },
			func() string { return "LOG" }, potatolog.GlobalMemoryLogReaderWriter),
		panes.NewHelpPane(screenHandler, helpDimensions, stylesheet, func() bool { return c.helpShown }, c.inputTree.GetHelp),
		panes.NewPerfPane(screenHandler, perfDimensions, func() bool { return c.perfShown }, &c.renderTimes, &c.eventProcessingTimes),
	)

	return c, nil
}

// Container returns the calendar container.
func (c *Controller) Container() *calendar.Container { return c.container }

// keyMappings maps the configured keyspecs to the actions named for them.
func (c *Controller) keyMappings(keys map[string]string) map[input.Keyspec]action.Action {
	actions := map[string]action.Action{
		config.ActionFold:   action.Static("fold to week mode", c.container.FoldToWeekMode),
		config.ActionExpand: action.Static("expand to month mode", c.container.ExpandToMonthMode),
		config.ActionToggleMode: action.NewSimple(
			func() string {
				if c.container.IsMonthMode() {
					return "switch to week mode"
				}
				return "switch to month mode"
			},
			func() {
				if c.container.IsMonthMode() {
					c.container.FoldToWeekMode()
				} else {
					c.container.ExpandToMonthMode()
				}
			},
		),
		config.ActionNextPage: action.Static("go to next page", c.container.PageNext),
		config.ActionPrevPage: action.Static("go to previous page", c.container.PagePrev),
		config.ActionToday:    action.Static("go to today", func() { c.container.SetDate(model.Today()) }),
		config.ActionToggleFirstDay: action.NewSimple(
			func() string {
				if c.container.FirstDayMonday() {
					return "start weeks on sunday"
				}
				return "start weeks on monday"
			},
			func() { c.container.SetFirstDayMonday(!c.container.FirstDayMonday()) },
		),
		config.ActionToggleLog:  action.Static("toggle log", func() { c.logShown = !c.logShown }),
		config.ActionToggleHelp: action.Static("toggle help", c.toggleHelp),
		config.ActionTogglePerf: action.Static("toggle performance info", func() { c.perfShown = !c.perfShown }),
		config.ActionQuit:       action.Static("exit program", func() { c.quit = true }),
	}

	result := make(map[input.Keyspec]action.Action, len(keys))
	for keyspec, name := range keys {
		result[input.Keyspec(keyspec)] = actions[name]
	}
	return result
}

func (c *Controller) toggleHelp() {
	if c.helpShown {
		c.helpShown = false
		if err := c.inputProcessor.PopModalOverlay(); err != nil {
			log.Warn().Err(err).Msg("could not remove help overlay")
		}
		return
	}

	c.helpShown = true
	closeHelp := action.Static("close help", c.toggleHelp)
	overlay, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"?":     closeHelp,
		"<esc>": closeHelp,
		"q":     closeHelp,
	})
	if err != nil {
		log.Error().Err(err).Msg("could not construct help overlay")
		return
	}
	c.inputProcessor.ApplyModalOverlay(overlay)
}

// HandleEvent processes a single screen event. It returns whether the
// program should exit.
func (c *Controller) HandleEvent(ev tcell.Event) (quit bool) {
	start := time.Now()
	defer func() {
		c.eventProcessingTimes.Add(uint64(time.Since(start).Microseconds()))
	}()

	switch e := ev.(type) {
	case *tcell.EventKey:
		key := input.KeyFromTcellEvent(e)
		if !c.inputProcessor.ProcessInput(key) {
			log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
		}

	case *tcell.EventMouse:
		c.handleMouse(e)

	case *tcell.EventResize:
		c.screen.NeedsSync()
		_, _, w, _ := c.screen.Dimensions()
		c.fitCells(w)
	}

	return c.quit
}

// handleMouse translates terminal mouse reports into the pointer sequence the
// calendar expects. Terminals only report button state, so presses and
// releases are derived from the previous state.
func (c *Controller) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	ox, oy := c.calendarPane.ContainerOrigin()
	pointer := gesture.Pointer{X: float64(x - ox), Y: float64(y - oy)}

	pressed := e.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !c.pointerActive:
		info, ok := c.rootPane.GetPositionInfo(x, y).(*ui.CalendarPanePositionInfo)
		if !ok || info.InHeader || c.logShown || c.helpShown {
			return
		}
		c.pointerActive = true
		pointer.Action = gesture.Down
	case pressed:
		pointer.Action = gesture.Move
	case c.pointerActive:
		c.pointerActive = false
		pointer.Action = gesture.Up
	default:
		return
	}

	consumed := c.container.Dispatch(pointer)
	log.Trace().Str("action", pointer.Action.ToString()).Float64("x", pointer.X).Float64("y", pointer.Y).Bool("consumed", consumed).Msg("dispatched pointer")
}

// fitCells narrows the cells if the configured width does not fit the screen.
func (c *Controller) fitCells(screenWidth int) {
	width := c.cellWidth
	if fit := float64(screenWidth / 7); fit < width {
		width = fit
	}
	if width < 3 {
		width = 3
	}
	if m := c.container.Metrics(); m.CellWidth != width {
		log.Debug().Float64("width", width).Msg("resizing cells")
		c.container.SetCellSize(width, c.cellHeight)
	}
}

// DateSelected implements calendar.Listener.
func (c *Controller) DateSelected(date model.Date) {
	log.Info().Str("date", date.ToString()).Msg("selected date")
}

// PageSelected implements calendar.Listener.
func (c *Controller) PageSelected(date model.Date) {
	log.Debug().Str("date", date.ToString()).Msg("changed page")
}

// ModeChanged implements calendar.Listener.
func (c *Controller) ModeChanged(monthMode bool) {
	log.Debug().Bool("month-mode", monthMode).Msg("changed mode")
}

// Draw renders the UI, tracking the time it takes.
func (c *Controller) Draw() {
	start := time.Now()
	c.rootPane.Draw()
	c.renderTimes.Add(uint64(time.Since(start).Microseconds()))
}

// Run runs the controller loop until the user quits or the screen stops
// delivering events.
//
// A frame ticker is armed only while the calendar animates.
func (c *Controller) Run() {
	log.Info().Msg("foldcal TUI started")
	defer c.screen.Fini()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := c.events.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	_, _, w, _ := c.screen.Dimensions()
	c.fitCells(w)

	var ticker *time.Ticker
	var frames <-chan time.Time
	armFrames := func() {
		animating := c.container.Animating()
		switch {
		case animating && ticker == nil:
			ticker = time.NewTicker(c.frameInterval)
			frames = ticker.C
		case !animating && ticker != nil:
			ticker.Stop()
			ticker, frames = nil, nil
		}
	}
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	c.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if c.HandleEvent(ev) {
				log.Info().Msg("exiting")
				return
			}
		case <-frames:
			c.container.Tick()
		}
		armFrames()
		c.Draw()
	}
}
