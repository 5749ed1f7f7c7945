package input

import "fmt"

// SimpleInputProcessor can process the input it is configured for and provide
// help information for that configuration.
type SimpleInputProcessor interface {
	CapturesInput() bool
	ProcessInput(key Key) bool
	GetHelp() Help
}

// ModalInputProcessor delegates input to the topmost of a stack of overlays or,
// with no overlays applied, to its base processor.
// An overlay is used e.g. while the help is shown, to close it again.
type ModalInputProcessor struct {
	base     SimpleInputProcessor
	overlays []SimpleInputProcessor
}

// NewModalInputProcessor returns a processor with the given base and no
// overlays.
func NewModalInputProcessor(base SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{base: base}
}

// CapturesInput returns whether the applicable processor captures input.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.applicable().CapturesInput()
}

// ProcessInput processes the key with the applicable processor.
func (p *ModalInputProcessor) ProcessInput(key Key) bool {
	return p.applicable().ProcessInput(key)
}

// GetHelp returns the help of the applicable processor.
func (p *ModalInputProcessor) GetHelp() Help {
	return p.applicable().GetHelp()
}

// ApplyModalOverlay pushes an overlay.
func (p *ModalInputProcessor) ApplyModalOverlay(overlay SimpleInputProcessor) {
	p.overlays = append(p.overlays, overlay)
}

// PopModalOverlay removes the topmost overlay.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.overlays) == 0 {
		return fmt.Errorf("attempt to pop from empty overlay stack")
	}
	p.overlays = p.overlays[:len(p.overlays)-1]
	return nil
}

// HasOverlay indicates whether any overlay is applied.
func (p *ModalInputProcessor) HasOverlay() bool { return len(p.overlays) > 0 }

func (p *ModalInputProcessor) applicable() SimpleInputProcessor {
	if n := len(p.overlays); n > 0 {
		return p.overlays[n-1]
	}
	return p.base
}
