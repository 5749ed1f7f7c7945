package fold

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/foldcal/internal/geometry"
)

const (
	// DefaultReleaseThreshold is the net drag distance beyond which releasing a
	// drag commits to the direction of the drag.
	DefaultReleaseThreshold = 24.0

	// StepDivisor divides the cell height to get the per-tick animation step.
	StepDivisor = 5.0

	// snapEpsilon is the distance below which an animated offset is considered
	// to have reached its target.
	snapEpsilon = 1e-6
)

// Geometry is the read-only geometry of the page a Controller moves.
//
// The values are queried on every operation, so they must always reflect the
// page's current binding and the container's current cell size.
type Geometry interface {
	// TopDistance is how far the top of the page travels when folding.
	TopDistance() float64
	// BottomDistance is how far the bottom of the page travels when folding.
	BottomDistance() float64
	// CellHeight is the height of a single grid row.
	CellHeight() float64
}

// Notifier receives the notifications a Controller emits.
type Notifier interface {
	// OffsetChanged is called whenever the sum of the top and the bottom offset
	// changes, i.E. whenever the page's measured height changes.
	OffsetChanged(totalOffset float64)
	// ModeSettled is called once per completed animation, when the page comes
	// to rest expanded or folded.
	ModeSettled(expanded bool)
}

// Controller owns the top and bottom offsets of a page and drives its fold
// state.
//
// All operations are no-ops when called in a state they are not valid in.
// Callers are expected to gate on State/IsBusy themselves; the controller only
// guards against redundant calls corrupting its offsets.
type Controller struct {
	geom     Geometry
	notifier Notifier

	// Threshold is the release threshold used by EndDrag.
	Threshold float64

	state        State
	topOffset    float64
	bottomOffset float64

	// the direction of the last committed animation, kept across an
	// interruption so that a release without a clear direction resumes it
	committed Direction
}

// NewController constructs a controller in the Expanded state.
func NewController(geom Geometry, notifier Notifier) *Controller {
	return &Controller{
		geom:      geom,
		notifier:  notifier,
		Threshold: DefaultReleaseThreshold,
		state:     Expanded,
	}
}

// State returns the current fold state.
func (c *Controller) State() State { return c.state }

// IsBusy indicates whether the controller is dragging or animating.
func (c *Controller) IsBusy() bool { return c.state.Busy() }

// Offsets returns the current top and bottom offsets, both <= 0.
func (c *Controller) Offsets() (top, bottom float64) { return c.topOffset, c.bottomOffset }

// TopOffset returns the current top offset, by which every cell is shifted.
func (c *Controller) TopOffset() float64 { return c.topOffset }

// MeasuredHeight returns the height the page should be measured at given the
// height its full grid would take.
func (c *Controller) MeasuredHeight(totalContentHeight float64) float64 {
	return totalContentHeight + c.topOffset + c.bottomOffset
}

// Reset forces the controller into the requested rest state, recomputing the
// offsets from scratch and forgetting any committed direction.
func (c *Controller) Reset(expanded bool) {
	c.state = RestState(expanded)
	c.committed = NoDirection
	c.topOffset, c.bottomOffset = c.target(expanded)
}

// Reconcile re-derives the offsets after the geometry changed (e.g. on a
// resize). Rest states snap to their exact targets, transient states are
// clamped into the new bounds.
func (c *Controller) Reconcile() {
	switch c.state.Phase {
	case PhaseExpanded:
		c.topOffset, c.bottomOffset = c.target(true)
	case PhaseFolded:
		c.topOffset, c.bottomOffset = c.target(false)
	default:
		c.topOffset = geometry.Clamp(c.topOffset, -c.geom.TopDistance(), 0)
		c.bottomOffset = geometry.Clamp(c.bottomOffset, -c.geom.BottomDistance(), 0)
	}
}

// BeginDrag starts a drag from a rest state.
func (c *Controller) BeginDrag() {
	if !c.state.AtRest() {
		log.Trace().Str("state", c.state.ToString()).Msg("ignoring drag begin outside rest state")
		return
	}
	c.state = Dragging
}

// DragBy moves the offsets by dy, split proportionally between top and
// bottom. It returns whether the offsets changed, i.E. whether a relayout is
// needed.
func (c *Controller) DragBy(dy float64) bool {
	if c.state != Dragging {
		return false
	}
	return c.move(dy, NoDirection)
}

// EndDrag ends a drag, committing to a direction and starting the animation.
//
// If the net drag distance exceeds the threshold, its sign decides the
// direction. Otherwise a previously committed (and interrupted) direction is
// resumed, and failing that the container's current mode is restored.
func (c *Controller) EndDrag(totalDy float64, currentModeIsExpanded bool) {
	if c.state != Dragging {
		return
	}

	var dir Direction
	switch {
	case totalDy > c.Threshold:
		dir = TowardExpanded
	case totalDy < -c.Threshold:
		dir = TowardFolded
	case c.committed != NoDirection:
		dir = c.committed
	case currentModeIsExpanded:
		dir = TowardExpanded
	default:
		dir = TowardFolded
	}
	c.animate(dir)
}

// AnimateTo starts (or redirects) an animation toward the given direction.
// It does nothing if the page already rests in the requested state.
func (c *Controller) AnimateTo(dir Direction) {
	if dir == NoDirection ||
		(dir == TowardExpanded && c.state == Expanded) ||
		(dir == TowardFolded && c.state == Folded) {
		return
	}
	c.animate(dir)
}

// ForceStop interrupts a running animation, leaving the offsets where they
// are and handing control back to a drag.
func (c *Controller) ForceStop() {
	if c.state.Phase != PhaseAnimating {
		return
	}
	log.Debug().Str("dir", c.state.Dir.ToString()).Msg("animation interrupted")
	c.state = Dragging
}

// Tick advances a running animation by one step.
// It returns whether further ticks are needed; once the target is reached, the
// controller comes to rest, notifies ModeSettled and returns false.
func (c *Controller) Tick() bool {
	if c.state.Phase != PhaseAnimating {
		return false
	}
	dir := c.state.Dir

	if !c.atTarget(dir) {
		c.move(c.step(dir), dir)
	}

	if c.atTarget(dir) {
		expanded := dir == TowardExpanded
		c.state = RestState(expanded)
		c.committed = NoDirection
		log.Debug().Bool("expanded", expanded).Msg("fold animation settled")
		if c.notifier != nil {
			c.notifier.ModeSettled(expanded)
		}
		return false
	}
	return true
}

func (c *Controller) animate(dir Direction) {
	log.Trace().Str("from", c.state.ToString()).Str("dir", dir.ToString()).Msg("starting fold animation")
	c.state = Animating(dir)
	c.committed = dir
}

// step returns the signed per-tick distance.
// The nominal step is a fifth of a cell; it applies to the side with the
// longer travel, the other side follows proportionally.
func (c *Controller) step(dir Direction) float64 {
	top, bottom := c.geom.TopDistance(), c.geom.BottomDistance()
	step := float64(dir) * c.geom.CellHeight() / StepDivisor
	if longest := math.Max(top, bottom); longest > 0 {
		step *= (top + bottom) / longest
	}
	if step == 0 {
		// no usable cell height, finish in one step
		step = float64(dir) * (top + bottom)
	}
	return step
}

// move applies dy and, if snapDir is set, snaps offsets within rounding
// distance of that direction's target onto it.
func (c *Controller) move(dy float64, snapDir Direction) bool {
	top, bottom, _ := geometry.SplitDelta(dy, c.geom.TopDistance(), c.geom.BottomDistance(), c.topOffset, c.bottomOffset)
	if snapDir != NoDirection {
		targetTop, targetBottom := c.target(snapDir == TowardExpanded)
		if math.Abs(top-targetTop) < snapEpsilon {
			top = targetTop
		}
		if math.Abs(bottom-targetBottom) < snapEpsilon {
			bottom = targetBottom
		}
	}

	changed := top != c.topOffset || bottom != c.bottomOffset
	c.topOffset, c.bottomOffset = top, bottom
	if changed && c.notifier != nil {
		c.notifier.OffsetChanged(c.topOffset + c.bottomOffset)
	}
	return changed
}

func (c *Controller) target(expanded bool) (top, bottom float64) {
	if expanded {
		return 0, 0
	}
	return negated(c.geom.TopDistance()), negated(c.geom.BottomDistance())
}

// negated returns -d without producing a negative zero.
func negated(d float64) float64 {
	if d == 0 {
		return 0
	}
	return -d
}

func (c *Controller) atTarget(dir Direction) bool {
	top, bottom := c.target(dir == TowardExpanded)
	return c.topOffset == top && c.bottomOffset == bottom
}
