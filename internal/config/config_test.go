package config_test

import (
	"testing"
	"time"

	"github.com/ja-he/foldcal/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte{})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		defaults := config.Default(config.Dark)
		if *c.Calendar.CellWidth != *defaults.Calendar.CellWidth || c.Calendar.CommitRule != "threshold" {
			t.Error("empty config did not yield defaults")
		}
		if c.Stylesheet.Cell.Fg != defaults.Stylesheet.Cell.Fg {
			t.Error("empty config changed stylesheet")
		}
	})

	t.Run("augment", func(t *testing.T) {
		data := `
calendar:
  first-day-monday: false
  cell-width: 8
  frame-interval: 40ms
  commit-rule: sign
stylesheet:
  cell-selected:
    fg: "#123456"
    bg: "#abcdef"
    style:
      italic: true
keys:
  x: quit
`
		c, err := config.ParseConfigAugmentDefaults(config.Light, []byte(data))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if *c.Calendar.FirstDayMonday {
			t.Error("explicit false not applied")
		}
		if *c.Calendar.CellWidth != 8 {
			t.Error("cell width not applied")
		}
		if *c.Calendar.CellHeight != *config.Default(config.Light).Calendar.CellHeight {
			t.Error("unset cell height not defaulted")
		}
		if d, _ := c.Calendar.FrameIntervalDuration(); d != 40*time.Millisecond {
			t.Error("unexpected frame interval", d)
		}
		if c.Calendar.CommitRule != "sign" {
			t.Error("commit rule not applied")
		}
		if c.Stylesheet.CellSelected.Fg != "#123456" || !c.Stylesheet.CellSelected.Style.Italic {
			t.Error("styling not applied")
		}
		if len(c.Keys) != 1 || c.Keys["x"] != config.ActionQuit {
			t.Error("keys not replaced", c.Keys)
		}
	})

	t.Run("defaults untouched by augmenting", func(t *testing.T) {
		data := "stylesheet:\n  cell:\n    fg: \"#111111\"\n    bg: \"#222222\"\n    style:\n      bold: true\n"
		if _, err := config.ParseConfigAugmentDefaults(config.Dark, []byte(data)); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if config.Default(config.Dark).Stylesheet.Cell.Style.Bold {
			t.Error("augmenting leaked into defaults")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		testcases := map[string]string{
			"bad yaml":           "calendar: [",
			"bad duration":       "calendar:\n  frame-interval: soon\n",
			"negative duration":  "calendar:\n  frame-interval: -5ms\n",
			"zero cell width":    "calendar:\n  cell-width: 0\n",
			"unknown rule":       "calendar:\n  commit-rule: velocity\n",
			"unknown action":     "keys:\n  x: explode\n",
			"settle step beyond": "calendar:\n  page-settle-step: 2\n",
		}
		for name, data := range testcases {
			t.Run(name, func(t *testing.T) {
				_, err := config.ParseConfigAugmentDefaults(config.Dark, []byte(data))
				if err == nil {
					t.Error("expected error")
				}
			})
		}
	})
}

func TestDefaultKeys(t *testing.T) {
	for _, theme := range []config.ColorschemeType{config.Dark, config.Light} {
		if err := config.Default(theme).Validate(); err != nil {
			t.Error("default config invalid:", err.Error())
		}
	}
}
