package ui

import (
	"github.com/ja-he/foldcal/internal/styling"
)

// LeafPane is a simple set of data and implementation of a "leaf pane", i.E. a
// pane that does not have subpanes but instead makes actual draw calls.
type LeafPane struct {
	BasePane
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet *styling.Stylesheet
}

// NewLeafPane returns a leaf pane with a fresh ID, drawing through a renderer
// constrained to its dimensions.
func NewLeafPane(
	renderer ConstrainedRenderer,
	dims func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	visible func() bool,
) LeafPane {
	return LeafPane{
		BasePane:   BasePane{ID: GeneratePaneID(), Visible: visible},
		Renderer:   NewConstrainedRenderer(renderer, dims),
		Dims:       dims,
		Stylesheet: stylesheet,
	}
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *LeafPane) Dimensions() (x, y, w, h int) {
	return p.Dims()
}
