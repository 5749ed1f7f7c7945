// Package fold implements the per-page fold/expand state machine: a page is
// either expanded to its full month grid, folded onto the row of its selected
// day, being dragged between the two, or animating toward one of them.
package fold

// Direction is the direction of a fold animation.
type Direction int

const (
	// NoDirection means no direction has been committed yet.
	NoDirection Direction = 0
	// TowardExpanded animates toward the full month grid.
	TowardExpanded Direction = 1
	// TowardFolded animates toward the single week row.
	TowardFolded Direction = -1
)

// ToString returns a short name for the direction, e.g. for logging.
func (d Direction) ToString() string {
	switch d {
	case TowardExpanded:
		return "expand"
	case TowardFolded:
		return "fold"
	default:
		return "none"
	}
}

// Phase enumerates the kinds of fold state.
type Phase int

const (
	_ Phase = iota
	// PhaseExpanded is the rest state showing the full grid.
	PhaseExpanded
	// PhaseFolded is the rest state showing only the selected row.
	PhaseFolded
	// PhaseDragging means a pointer is moving the offsets directly.
	PhaseDragging
	// PhaseAnimating means the offsets are being stepped toward a rest state.
	PhaseAnimating
)

// State is the fold state of a single page.
// Dir is only meaningful for PhaseAnimating.
type State struct {
	Phase Phase
	Dir   Direction
}

var (
	// Expanded is the expanded rest state.
	Expanded = State{Phase: PhaseExpanded}
	// Folded is the folded rest state.
	Folded = State{Phase: PhaseFolded}
	// Dragging is the state while a pointer drags the page.
	Dragging = State{Phase: PhaseDragging}
)

// Animating returns the animating state for the given direction.
func Animating(dir Direction) State {
	return State{Phase: PhaseAnimating, Dir: dir}
}

// RestState returns Expanded or Folded.
func RestState(expanded bool) State {
	if expanded {
		return Expanded
	}
	return Folded
}

// AtRest indicates whether this is one of the states a page can be bound in.
func (s State) AtRest() bool {
	return s.Phase == PhaseExpanded || s.Phase == PhaseFolded
}

// Busy indicates whether the page is in a transient state, during which it
// must not be interrupted by unrelated input.
func (s State) Busy() bool {
	return s.Phase == PhaseDragging || s.Phase == PhaseAnimating
}

// ToString returns a string representation of the state, e.g. for logging or
// a status display.
func (s State) ToString() string {
	switch s.Phase {
	case PhaseExpanded:
		return "expanded"
	case PhaseFolded:
		return "folded"
	case PhaseDragging:
		return "dragging"
	case PhaseAnimating:
		return "animating(" + s.Dir.ToString() + ")"
	}
	return "[unknown]"
}
