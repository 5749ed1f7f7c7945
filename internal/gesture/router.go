// Package gesture classifies pointer sessions into horizontal and vertical
// gestures and forwards vertical ones to the fold controller of the active
// page.
package gesture

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/foldcal/internal/fold"
)

// Action is the kind of a pointer event.
type Action int

const (
	_ Action = iota
	// Down starts a pointer session.
	Down
	// Move moves the pointer within a session.
	Move
	// Up ends a session normally.
	Up
	// Cancel aborts a session.
	Cancel
)

// ToString returns a short name for the action.
func (a Action) ToString() string {
	switch a {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Pointer is a single pointer event in container coordinates.
type Pointer struct {
	Action Action
	X, Y   float64
}

// Axis is the axis a pointer session has been locked to.
type Axis int

const (
	// AxisNone means the session has not been classified yet.
	AxisNone Axis = iota
	// AxisHorizontal sessions belong to the pager.
	AxisHorizontal
	// AxisVertical sessions fold or expand the active page.
	AxisVertical
)

// ToString returns a short name for the axis.
func (a Axis) ToString() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// lockSlope is the factor by which one axis' displacement has to exceed the
// other's for the session to lock onto it.
const lockSlope = 2.0

// CommitRule selects how a released vertical drag picks its direction.
type CommitRule int

const (
	// CommitThreshold lets the fold controller decide based on its release
	// threshold (see fold.Controller.EndDrag).
	CommitThreshold CommitRule = iota
	// CommitSign animates in the direction of the net displacement's sign.
	CommitSign
)

// ParseCommitRule returns the rule for a config name.
func ParseCommitRule(s string) (CommitRule, bool) {
	switch s {
	case "threshold", "":
		return CommitThreshold, true
	case "sign":
		return CommitSign, true
	default:
		return CommitThreshold, false
	}
}

// Target is what a vertical gesture drives, i.E. a page's fold controller.
type Target interface {
	State() fold.State
	BeginDrag()
	DragBy(dy float64) bool
	EndDrag(totalDy float64, currentModeIsExpanded bool)
	AnimateTo(dir fold.Direction)
	ForceStop()
}

// Host supplies the router with the page currently in view.
type Host interface {
	// ActiveTarget returns the active page's controller or nil if there is
	// none.
	ActiveTarget() Target
	// MonthMode indicates whether the container currently is in month mode.
	MonthMode() bool
}

// Router is the per-container gesture classifier.
//
// A session starts with Down and ends with Up or Cancel. Once a session's
// axis is locked it stays locked until the session ends.
type Router struct {
	host Host
	Rule CommitRule

	active       bool
	lock         Axis
	downX, downY float64
	lastY        float64
}

// NewRouter constructs a router for the given host.
func NewRouter(host Host, rule CommitRule) *Router {
	return &Router{host: host, Rule: rule}
}

// Lock returns the axis of the running session.
func (r *Router) Lock() Axis { return r.lock }

// InSession indicates whether a pointer session is running.
func (r *Router) InSession() bool { return r.active }

// Handle processes a pointer event and returns whether it was consumed.
// Unconsumed events are meant for the pager.
func (r *Router) Handle(p Pointer) bool {
	switch p.Action {

	case Down:
		r.active = true
		r.lock = AxisNone
		r.downX, r.downY = p.X, p.Y
		r.lastY = p.Y
		if target := r.host.ActiveTarget(); target != nil && target.State().Phase == fold.PhaseAnimating {
			target.ForceStop()
		}
		return false

	case Move:
		if !r.active {
			return false
		}
		if r.lock == AxisNone {
			r.lock = classify(p.X-r.downX, p.Y-r.downY)
			if r.lock == AxisVertical {
				log.Trace().Float64("dy", p.Y-r.downY).Msg("gesture locked vertical")
				if target := r.host.ActiveTarget(); target != nil {
					target.BeginDrag()
				}
			} else if r.lock == AxisHorizontal {
				log.Trace().Float64("dx", p.X-r.downX).Msg("gesture locked horizontal")
			}
		}
		if r.lock != AxisVertical {
			return false
		}
		dy := p.Y - r.lastY
		r.lastY = p.Y
		if target := r.host.ActiveTarget(); target != nil {
			target.DragBy(dy)
		}
		return true

	case Up, Cancel:
		if !r.active {
			return false
		}
		lock := r.lock
		r.active = false
		r.lock = AxisNone

		target := r.host.ActiveTarget()
		if lock == AxisVertical {
			total := r.lastY - r.downY
			if p.Action == Up {
				total = p.Y - r.downY
			}
			if target != nil {
				r.commit(target, total)
			}
			return true
		}
		// a session that interrupted an animation without turning into a vertical
		// drag hands the page back to the animation
		if target != nil && target.State() == fold.Dragging {
			target.EndDrag(0, r.host.MonthMode())
		}
		return false
	}
	return false
}

func (r *Router) commit(target Target, totalDy float64) {
	monthMode := r.host.MonthMode()
	if r.Rule == CommitThreshold {
		target.EndDrag(totalDy, monthMode)
		return
	}
	switch {
	case totalDy > 0:
		target.AnimateTo(fold.TowardExpanded)
	case totalDy < 0:
		target.AnimateTo(fold.TowardFolded)
	default:
		target.EndDrag(0, monthMode)
	}
}

func classify(dx, dy float64) Axis {
	switch {
	case math.Abs(dx) > lockSlope*math.Abs(dy):
		return AxisHorizontal
	case math.Abs(dy) > lockSlope*math.Abs(dx):
		return AxisVertical
	default:
		return AxisNone
	}
}
