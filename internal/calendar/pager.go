package calendar

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/foldcal/internal/geometry"
	"github.com/ja-he/foldcal/internal/gesture"
)

const (
	// DefaultSettleStep is the fraction of a page a settling pager moves per
	// tick.
	DefaultSettleStep = 0.25
	// DefaultTapSlop is the distance a pointer may move for a session to still
	// count as a tap.
	DefaultTapSlop = 1.0
)

// PagerListener receives the notifications of a Pager.
type PagerListener interface {
	// PageScrolled is called whenever the paging fraction changed.
	PageScrolled(fraction float64)
	// PageCommitted is called when a page change completed; delta is +1 for
	// the next and -1 for the previous page.
	PageCommitted(delta int)
	// Tapped is called for a session that did not move beyond the tap slop.
	Tapped(x, y float64)
}

// Pager tracks horizontal paging progress.
//
// The fraction is the current page's horizontal displacement relative to the
// page width: negative values reveal the next page, positive ones the previous.
type Pager struct {
	listener PagerListener

	Width      float64
	SettleStep float64
	TapSlop    float64

	tracking     bool
	moved        bool
	startX       float64
	startY       float64
	anchorX      float64
	fraction     float64
	settling     bool
	settleTarget float64
}

// NewPager returns a pager for pages of the given width.
func NewPager(listener PagerListener, width float64) *Pager {
	return &Pager{
		listener:   listener,
		Width:      width,
		SettleStep: DefaultSettleStep,
		TapSlop:    DefaultTapSlop,
	}
}

// Fraction returns the current paging fraction in [-1, 1].
func (p *Pager) Fraction() float64 { return p.fraction }

// Settling indicates whether the pager is animating toward a page boundary.
func (p *Pager) Settling() bool { return p.settling }

// Tracking indicates whether a pointer session is driving the pager.
func (p *Pager) Tracking() bool { return p.tracking }

// Handle processes a pointer event and returns whether it was consumed.
func (p *Pager) Handle(ev gesture.Pointer) bool {
	switch ev.Action {

	case gesture.Down:
		p.tracking = true
		p.moved = false
		p.startX, p.startY = ev.X, ev.Y
		// grabbing a settling pager continues from where it is
		p.anchorX = ev.X - p.fraction*p.Width
		if p.settling {
			p.settling = false
			p.moved = true
		}
		return true

	case gesture.Move:
		if !p.tracking {
			return false
		}
		if math.Abs(ev.X-p.startX) > p.TapSlop || math.Abs(ev.Y-p.startY) > p.TapSlop {
			p.moved = true
		}
		if p.Width <= 0 {
			return true
		}
		p.setFraction(geometry.Clamp((ev.X-p.anchorX)/p.Width, -1, 1))
		return true

	case gesture.Up:
		if !p.tracking {
			return false
		}
		p.tracking = false
		if !p.moved {
			p.setFraction(0)
			p.listener.Tapped(ev.X, ev.Y)
			return true
		}
		switch {
		case p.fraction <= -0.5:
			p.settleTo(-1)
		case p.fraction >= 0.5:
			p.settleTo(1)
		default:
			p.settleTo(0)
		}
		return true

	case gesture.Cancel:
		if !p.tracking {
			return false
		}
		p.Cancel()
		return true
	}
	return false
}

// Cancel stops tracking the running session and returns to the current page.
func (p *Pager) Cancel() {
	p.tracking = false
	p.settling = false
	p.setFraction(0)
}

// Page starts a settle toward the next (delta > 0) or previous (delta < 0)
// page. It is ignored while the pager is in motion.
func (p *Pager) Page(delta int) {
	if p.tracking || p.settling || delta == 0 {
		return
	}
	if delta > 0 {
		p.settleTo(-1)
	} else {
		p.settleTo(1)
	}
}

// Tick advances a settle by one step. It returns whether further ticks are
// needed.
func (p *Pager) Tick() bool {
	if !p.settling {
		return false
	}
	step := p.SettleStep
	if step <= 0 {
		step = 1
	}

	remaining := p.settleTarget - p.fraction
	if math.Abs(remaining) <= step {
		p.settling = false
		target := p.settleTarget
		if target == 0 {
			p.setFraction(0)
			return false
		}
		delta := -int(target)
		log.Debug().Int("delta", delta).Msg("page change committed")
		p.fraction = 0
		p.listener.PageCommitted(delta)
		p.listener.PageScrolled(0)
		return false
	}

	p.setFraction(p.fraction + math.Copysign(step, remaining))
	return true
}

func (p *Pager) settleTo(target float64) {
	p.settleTarget = target
	p.settling = true
}

func (p *Pager) setFraction(f float64) {
	if f == p.fraction {
		return
	}
	p.fraction = f
	p.listener.PageScrolled(f)
}
