package styling

import (
	"fmt"

	"github.com/ja-he/foldcal/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling
	Header DrawStyling

	Cell             DrawStyling
	CellOutsideMonth DrawStyling
	CellSelected     DrawStyling
	CellToday        DrawStyling

	Status DrawStyling
	Help   DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	entries := []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"normal", &stylesheet.Normal, c.Normal},
		{"header", &stylesheet.Header, c.Header},
		{"cell", &stylesheet.Cell, c.Cell},
		{"cell-outside-month", &stylesheet.CellOutsideMonth, c.CellOutsideMonth},
		{"cell-selected", &stylesheet.CellSelected, c.CellSelected},
		{"cell-today", &stylesheet.CellToday, c.CellToday},
		{"status", &stylesheet.Status, c.Status},
		{"help", &stylesheet.Help, c.Help},
		{"log-default", &stylesheet.LogDefault, c.LogDefault},
		{"log-title-box", &stylesheet.LogTitleBox, c.LogTitleBox},
		{"log-entry-type-error", &stylesheet.LogEntryTypeError, c.LogEntryTypeError},
		{"log-entry-type-warn", &stylesheet.LogEntryTypeWarn, c.LogEntryTypeWarn},
		{"log-entry-type-info", &stylesheet.LogEntryTypeInfo, c.LogEntryTypeInfo},
		{"log-entry-type-debug", &stylesheet.LogEntryTypeDebug, c.LogEntryTypeDebug},
		{"log-entry-type-trace", &stylesheet.LogEntryTypeTrace, c.LogEntryTypeTrace},
		{"log-entry-location", &stylesheet.LogEntryLocation, c.LogEntryLocation},
		{"log-entry-time", &stylesheet.LogEntryTime, c.LogEntryTime},
	}
	for _, e := range entries {
		style, err := StyleFromConfig(e.source)
		if err != nil {
			return nil, fmt.Errorf("stylesheet entry '%s': %w", e.name, err)
		}
		*e.target = style
	}

	return &stylesheet, nil
}

// StyleFromConfig constructs a DrawStyling from a config styling.
func StyleFromConfig(c config.Styling) (DrawStyling, error) {
	style, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		return nil, err
	}
	if c.Style != nil {
		style.bold = c.Style.Bold
		style.italic = c.Style.Italic
		style.underlined = c.Style.Underlined
	}
	return style, nil
}
