// Package geometry holds the pure layout arithmetic of a calendar page: how
// cells are placed in the 6x7 grid and how a vertical drag distance is split
// between the top and the bottom of a page.
package geometry

import "math"

const (
	// Columns is the number of cells in a grid row (one per weekday).
	Columns = 7
	// Rows is the maximum number of rows a month grid can occupy.
	Rows = 6
	// TotalCells is the number of cells in a page, enough for any month.
	TotalCells = Rows * Columns
)

// Metrics are the cell dimensions shared by all pages of a container.
//
// Pages hold a pointer to their container's Metrics and read it on every
// computation, so a resize is visible to every page at once.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
}

// SplitDelta distributes a vertical distance dy between the top and the bottom
// offset of a page proportionally to the travel each side has available.
//
// Both resulting offsets are clamped to [-distance, 0] for their side. If
// neither side has any travel (a single-row grid), the ratio falls back to 0,
// i.E. all motion goes to the bottom, where it is clamped away.
// changed reports whether either offset differs from its input value.
func SplitDelta(dy, topDistance, bottomDistance, topOffset, bottomOffset float64) (newTop, newBottom float64, changed bool) {
	topRatio := 0.0
	if total := topDistance + bottomDistance; total != 0 {
		topRatio = topDistance / total
	}

	topDelta := dy * topRatio
	newTop = Clamp(topOffset+topDelta, -topDistance, 0)
	newBottom = Clamp(bottomOffset+(dy-topDelta), -bottomDistance, 0)

	return newTop, newBottom, newTop != topOffset || newBottom != bottomOffset
}

// Clamp returns v limited to [lo, hi]. A zero result is always +0.
func Clamp(v, lo, hi float64) float64 {
	r := math.Max(lo, math.Min(hi, v))
	if r == 0 {
		return 0
	}
	return r
}

// Lerp interpolates linearly between a and b, t being in [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Row returns the grid row of the cell at the given index.
func Row(index int) int { return index / Columns }

// Column returns the grid column of the cell at the given index.
func Column(index int) int { return index % Columns }

// CellOrigin returns the top left corner of the cell at the given index for a
// page whose cells are all shifted vertically by topOffset.
func CellOrigin(index int, m Metrics, topOffset float64) (left, top float64) {
	left = float64(Column(index)) * m.CellWidth
	top = float64(Row(index))*m.CellHeight + topOffset
	return left, top
}

// CellAt returns the index of the cell under the page-relative point (x, y),
// for a page whose cells are shifted by topOffset.
// ok is false if the point is outside the grid.
func CellAt(x, y float64, m Metrics, topOffset float64) (index int, ok bool) {
	if m.CellWidth <= 0 || m.CellHeight <= 0 || x < 0 {
		return 0, false
	}
	column := int(math.Floor(x / m.CellWidth))
	row := int(math.Floor((y - topOffset) / m.CellHeight))
	if column < 0 || column >= Columns || row < 0 || row >= Rows {
		return 0, false
	}
	return row*Columns + column, true
}

// RowCount returns the number of rows needed to show a month of daysInMonth
// days starting at the column firstDayOffset.
func RowCount(daysInMonth, firstDayOffset int) int {
	count := daysInMonth + firstDayOffset
	rows := count / Columns
	if count%Columns != 0 {
		rows++
	}
	return rows
}

// Distances returns how far the top and the bottom of a page can travel when
// folding onto the row of the selected cell.
func Distances(selectedIndex, visibleRows int, cellHeight float64) (top, bottom float64) {
	top = float64(Row(selectedIndex)) * cellHeight
	bottom = float64(visibleRows)*cellHeight - (top + cellHeight)
	return top, math.Max(bottom, 0)
}
