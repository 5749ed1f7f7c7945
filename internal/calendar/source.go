package calendar

import "github.com/ja-he/foldcal/internal/model"

// DateSource maps pager positions to reference dates.
//
// Positions are relative to a base: in month mode every position step is a
// month, in week mode a week.
type DateSource struct {
	base         model.Date
	basePosition int
	monthMode    bool
}

// NewDateSource returns a source with the given date at the given position.
func NewDateSource(base model.Date, basePosition int, monthMode bool) *DateSource {
	return &DateSource{base: base, basePosition: basePosition, monthMode: monthMode}
}

// DateAt returns the reference date for a position.
func (s *DateSource) DateAt(position int) model.Date {
	delta := position - s.basePosition
	if s.monthMode {
		return s.base.AddMonths(delta)
	}
	return s.base.AddWeeks(delta)
}

// Rebase anchors the source at the given date and position.
func (s *DateSource) Rebase(date model.Date, position int) {
	s.base = date
	s.basePosition = position
}

// MonthMode indicates whether positions step by months.
func (s *DateSource) MonthMode() bool { return s.monthMode }

// SetMonthMode switches the step unit. The base is kept.
func (s *DateSource) SetMonthMode(monthMode bool) { s.monthMode = monthMode }

// Base returns the current base date and position.
func (s *DateSource) Base() (model.Date, int) { return s.base, s.basePosition }
