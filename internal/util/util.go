package util

import "strings"

// Rect is a rectangle on the screen.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the rectangle for the given dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains indicates whether the point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

// TruncateAt shortens the string to at most length runes, marking the cut
// with an ellipsis.
func TruncateAt(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}
	return string(append(r[:length-3], []rune("...")...))
}

// PadCenter centers the string within the given width, truncating it if it
// does not fit.
func PadCenter(s string, width int) string {
	s = TruncateAt(s, width)
	missing := width - len([]rune(s))
	if missing <= 0 {
		return s
	}
	left := missing / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", missing-left)
}
