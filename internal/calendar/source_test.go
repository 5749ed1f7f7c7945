package calendar_test

import (
	"testing"

	"github.com/ja-he/foldcal/internal/calendar"
	"github.com/ja-he/foldcal/internal/model"
)

func TestDateSource(t *testing.T) {
	base := model.Date{Year: 2023, Month: 1, Day: 31}

	t.Run("month mode", func(t *testing.T) {
		s := calendar.NewDateSource(base, 10, true)
		testcases := map[int]model.Date{
			10: base,
			11: {Year: 2023, Month: 2, Day: 28},
			9:  {Year: 2022, Month: 12, Day: 31},
			22: {Year: 2024, Month: 1, Day: 31},
		}
		for pos, expected := range testcases {
			if result := s.DateAt(pos); result != expected {
				t.Errorf("position %d: expected %s, got %s", pos, expected.ToString(), result.ToString())
			}
		}
	})

	t.Run("week mode", func(t *testing.T) {
		s := calendar.NewDateSource(base, 0, false)
		if result := s.DateAt(-1); result != (model.Date{Year: 2023, Month: 1, Day: 24}) {
			t.Error("unexpected previous week", result.ToString())
		}
		if result := s.DateAt(1); result != (model.Date{Year: 2023, Month: 2, Day: 7}) {
			t.Error("unexpected next week", result.ToString())
		}
	})

	t.Run("rebase", func(t *testing.T) {
		s := calendar.NewDateSource(base, 0, true)
		s.Rebase(model.Date{Year: 2023, Month: 3, Day: 5}, 4)
		s.SetMonthMode(false)
		if result := s.DateAt(5); result != (model.Date{Year: 2023, Month: 3, Day: 12}) {
			t.Error("unexpected date after rebase", result.ToString())
		}
		if date, pos := s.Base(); pos != 4 || date.Day != 5 {
			t.Error("unexpected base", date.ToString(), pos)
		}
	})
}
