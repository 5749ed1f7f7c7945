package ui

// PositionInfo describes a position in the user interface.
//
// Retrievers should initially check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface{}

// NoPanePositionInfo is (no) information about no position.
type NoPanePositionInfo struct{}

// CalendarPanePositionInfo provides information on a position in the calendar
// pane.
type CalendarPanePositionInfo struct {
	// X and Y are relative to the container's top left corner, i.E. below the
	// weekday header.
	X, Y float64
	// InHeader indicates the position is on the weekday header.
	InHeader bool
}

// StatusPanePositionInfo provides information on a position in a status pane.
type StatusPanePositionInfo struct{}

// LogPanePositionInfo provides information on a position in a log pane.
type LogPanePositionInfo struct{}

// HelpPanePositionInfo provides information on a position in the help pane.
type HelpPanePositionInfo struct{}
