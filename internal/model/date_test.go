package model_test

import (
	"testing"
	"time"

	"github.com/ja-he/foldcal/internal/model"
)

func TestDaysInMonth(t *testing.T) {
	testcases := []struct {
		date     model.Date
		expected int
	}{
		{model.Date{Year: 2023, Month: 1, Day: 10}, 31},
		{model.Date{Year: 2023, Month: 2, Day: 10}, 28},
		{model.Date{Year: 2024, Month: 2, Day: 10}, 29},
		{model.Date{Year: 1900, Month: 2, Day: 10}, 28},
		{model.Date{Year: 2000, Month: 2, Day: 10}, 29},
		{model.Date{Year: 2023, Month: 4, Day: 30}, 30},
	}
	for _, tc := range testcases {
		if result := tc.date.DaysInMonth(); result != tc.expected {
			t.Errorf("days in month of %s: expected %d, got %d", tc.date.ToString(), tc.expected, result)
		}
	}
}

func TestWeekdayOfFirst(t *testing.T) {
	// 2019-03-01 was a Friday
	d := model.Date{Year: 2019, Month: 3, Day: 7}
	if d.WeekdayOfFirst() != time.Friday {
		t.Error("expected Friday, got", d.WeekdayOfFirst())
	}
}

func TestAddMonths(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		d := model.Date{Year: 2023, Month: 11, Day: 15}
		expected := model.Date{Year: 2024, Month: 2, Day: 15}
		if result := d.AddMonths(3); result != expected {
			t.Error("expected", expected, "got", result)
		}
	})
	t.Run("backward across year", func(t *testing.T) {
		d := model.Date{Year: 2023, Month: 2, Day: 15}
		expected := model.Date{Year: 2022, Month: 11, Day: 15}
		if result := d.AddMonths(-3); result != expected {
			t.Error("expected", expected, "got", result)
		}
	})
	t.Run("clamps day", func(t *testing.T) {
		d := model.Date{Year: 2023, Month: 1, Day: 31}
		expected := model.Date{Year: 2023, Month: 2, Day: 28}
		if result := d.AddMonths(1); result != expected {
			t.Error("expected", expected, "got", result)
		}
	})
	t.Run("zero", func(t *testing.T) {
		d := model.Date{Year: 2023, Month: 12, Day: 31}
		if result := d.AddMonths(0); result != d {
			t.Error("expected", d, "got", result)
		}
	})
}

func TestAddWeeksAndDays(t *testing.T) {
	d := model.Date{Year: 2023, Month: 12, Day: 28}
	if result := d.AddWeeks(1); result != (model.Date{Year: 2024, Month: 1, Day: 4}) {
		t.Error("unexpected date one week later:", result)
	}
	if result := d.AddDays(-28); result != (model.Date{Year: 2023, Month: 11, Day: 30}) {
		t.Error("unexpected date four weeks earlier:", result)
	}
	if d.Next() != d.AddDays(1) || d.Prev() != d.AddDays(-1) {
		t.Error("Next/Prev disagree with AddDays")
	}
}

func TestWeek(t *testing.T) {
	// 2023-03-08 is a Wednesday
	d := model.Date{Year: 2023, Month: 3, Day: 8}

	t.Run("monday first", func(t *testing.T) {
		first, last := d.Week(true)
		if first != (model.Date{Year: 2023, Month: 3, Day: 6}) || last != (model.Date{Year: 2023, Month: 3, Day: 12}) {
			t.Error("unexpected week bounds", first, last)
		}
	})
	t.Run("sunday first", func(t *testing.T) {
		first, last := d.Week(false)
		if first != (model.Date{Year: 2023, Month: 3, Day: 5}) || last != (model.Date{Year: 2023, Month: 3, Day: 11}) {
			t.Error("unexpected week bounds", first, last)
		}
	})
}

func TestWeekdayIndex(t *testing.T) {
	for i := 0; i < 7; i++ {
		for _, monday := range []bool{true, false} {
			if model.WeekdayIndex(model.WeekdayAtIndex(i, monday), monday) != i {
				t.Errorf("index %d (monday first: %t) does not round trip", i, monday)
			}
		}
	}
	if model.WeekdayIndex(time.Sunday, true) != 6 {
		t.Error("sunday should be last in a monday-first week")
	}
}

func TestFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := model.FromString("2024-02-29")
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if d != (model.Date{Year: 2024, Month: 2, Day: 29}) {
			t.Error("unexpected date", d)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "2023-2-1", "2023-02-29", "2023-13-01", "tomorrow"} {
			if _, err := model.FromString(s); err == nil {
				t.Errorf("expected error for '%s'", s)
			}
		}
	})
}

func TestIsAfterIsBefore(t *testing.T) {
	a := model.Date{Year: 2023, Month: 5, Day: 1}
	b := model.Date{Year: 2023, Month: 4, Day: 30}
	if !a.IsAfter(b) || a.IsBefore(b) {
		t.Error("a should be after b")
	}
	if a.IsAfter(a) || a.IsBefore(a) {
		t.Error("a date is neither before nor after itself")
	}
}
