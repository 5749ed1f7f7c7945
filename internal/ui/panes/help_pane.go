package panes

import (
	"sort"

	"github.com/ja-he/foldcal/internal/input"
	"github.com/ja-he/foldcal/internal/styling"
	"github.com/ja-he/foldcal/internal/ui"
)

// A HelpPane is a pane that displays a help popup.
// For example, it could display a list of key mappings and their actions.
type HelpPane struct {
	ui.LeafPane

	content func() input.Help
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *HelpPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.HelpPanePositionInfo{}
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	keysDrawn := 0
	const border = 1
	const maxKeyWidth = 12
	const pad = 1
	keyOffset := x + border
	descriptionOffset := keyOffset + maxKeyWidth + pad

	drawMapping := func(keys, description string) {
		p.Renderer.DrawText(keyOffset+maxKeyWidth-len([]rune(keys)), y+border+keysDrawn, len([]rune(keys)), 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), keys)
		p.Renderer.DrawText(descriptionOffset, y+border+keysDrawn, w-descriptionOffset+x, 1, p.Stylesheet.Help.Italicized(), description)
		keysDrawn++
	}

	for _, m := range sortedMappings(p.content()) {
		drawMapping(m.mapping, m.action)
	}
}

type mappingAndAction = struct {
	mapping string
	action  string
}

// sortedMappings orders by action, then mapping, so that keys bound to the
// same action are listed together.
func sortedMappings(help input.Help) []mappingAndAction {
	content := make([]mappingAndAction, 0, len(help))
	for mapping, action := range help {
		content = append(content, mappingAndAction{mapping: mapping, action: action})
	}
	sort.Slice(content, func(i, j int) bool {
		if content[i].action != content[j].action {
			return content[i].action < content[j].action
		}
		return content[i].mapping < content[j].mapping
	})
	return content
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	content func() input.Help,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.NewLeafPane(renderer, dimensions, stylesheet, condition),
		content:  content,
	}
}
