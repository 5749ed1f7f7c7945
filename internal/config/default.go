package config

// Default returns the default configuration with the colorscheme of the given
// type (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Calendar:   defaultCalendar(),
		Stylesheet: defaultStylesheet(colorschemeType),
		Keys:       defaultKeys(),
	}
}

func defaultCalendar() Calendar {
	monday := true
	weekMode := false
	cellWidth := 6
	cellHeight := 3
	threshold := 2.0
	settleStep := 0.25
	return Calendar{
		FirstDayMonday:   &monday,
		StartInWeekMode:  &weekMode,
		CellWidth:        &cellWidth,
		CellHeight:       &cellHeight,
		ReleaseThreshold: &threshold,
		FrameInterval:    "16ms",
		CommitRule:       "threshold",
		PageSettleStep:   &settleStep,
	}
}

func defaultKeys() map[string]string {
	return map[string]string{
		"k":       ActionFold,
		"j":       ActionExpand,
		"<space>": ActionToggleMode,
		"l":       ActionNextPage,
		"<right>": ActionNextPage,
		"h":       ActionPrevPage,
		"<left>":  ActionPrevPage,
		"t":       ActionToday,
		"M":       ActionToggleFirstDay,
		"W":       ActionToggleLog,
		"?":       ActionToggleHelp,
		"P":       ActionTogglePerf,
		"q":       ActionQuit,
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			Header:            Styling{Fg: "#c0c0c0", Bg: "#202020", Style: &FontStyle{Bold: true}},
			Cell:              Styling{Fg: "#f0f0f0", Bg: "#101010", Style: &FontStyle{}},
			CellOutsideMonth:  Styling{Fg: "#707070", Bg: "#101010", Style: &FontStyle{}},
			CellSelected:      Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			CellToday:         Styling{Fg: "#fff0cc", Bg: "#734700", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
		}
	} else {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Header:            Styling{Fg: "#404040", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			Cell:              Styling{Fg: "#000000", Bg: "#fafafa", Style: &FontStyle{}},
			CellOutsideMonth:  Styling{Fg: "#a0a0a0", Bg: "#fafafa", Style: &FontStyle{}},
			CellSelected:      Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			CellToday:         Styling{Fg: "#000000", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#f0f0f0", Bg: "#ffffff", Style: &FontStyle{}},
		}
	}
}
