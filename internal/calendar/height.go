package calendar

import (
	"math"

	"github.com/ja-he/foldcal/internal/geometry"
)

// HeightSource provides the measured height of the page at a position.
type HeightSource interface {
	MeasuredHeightAt(position int) (float64, bool)
}

// HeightSynchronizer interpolates the container height between the current
// page and its neighbor while a horizontal page change is in progress.
type HeightSynchronizer struct {
	source   HeightSource
	position int
	fraction float64
}

// NewHeightSynchronizer returns a synchronizer reading from the given source.
func NewHeightSynchronizer(source HeightSource) *HeightSynchronizer {
	return &HeightSynchronizer{source: source}
}

// PageScrolled updates the paging progress. A negative fraction moves toward
// the next position, a positive one toward the previous.
func (h *HeightSynchronizer) PageScrolled(position int, fraction float64) {
	h.position = position
	h.fraction = geometry.Clamp(fraction, -1, 1)
}

// Overriding indicates whether the synchronizer is currently in charge of the
// container height, i.E. whether a page change is in progress. A fully
// scrolled page change that has not been committed yet still counts.
func (h *HeightSynchronizer) Overriding() bool {
	return h.fraction != 0
}

// Height returns the interpolated height; ok is false if the container should
// measure normally. At a full swipe the height is the adjacent page's.
func (h *HeightSynchronizer) Height() (height float64, ok bool) {
	if !h.Overriding() {
		return 0, false
	}
	current, ok := h.source.MeasuredHeightAt(h.position)
	if !ok {
		return 0, false
	}
	adjacentPosition := h.position - 1
	if h.fraction < 0 {
		adjacentPosition = h.position + 1
	}
	adjacent, ok := h.source.MeasuredHeightAt(adjacentPosition)
	if !ok {
		adjacent = current
	}
	return geometry.Lerp(current, adjacent, math.Abs(h.fraction)), true
}
