package panes

import (
	"fmt"
	"sort"

	"github.com/ja-he/foldcal/internal/potatolog"
	"github.com/ja-he/foldcal/internal/styling"
	"github.com/ja-he/foldcal/internal/ui"
	"github.com/ja-he/foldcal/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	row := 2

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.LogTitleBox, title)

	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]
		get := func(k string) string {
			v, ok := entry[k]
			if !ok {
				return ""
			}
			return fmt.Sprint(v)
		}

		levelLen := len(" error ")
		indent := x + levelLen + 1
		p.Renderer.DrawText(x, y+row, levelLen, 1, p.levelStyle(get("level")), util.PadCenter(get("level"), levelLen))

		col := indent
		message := get("message")
		p.Renderer.DrawText(col, y+row, w, 1, p.Stylesheet.LogDefault, message)
		col += len([]rune(message)) + 1

		caller := get("caller")
		p.Renderer.DrawText(col, y+row, w, 1, p.Stylesheet.LogEntryLocation, caller)
		col += len([]rune(caller)) + 1

		p.Renderer.DrawText(col, y+row, w, 1, p.Stylesheet.LogEntryTime, get("time"))
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "caller", "message", "time", "level":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			p.Renderer.DrawText(indent, y+row, w, 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(indent+len(k)+2, y+row, w, 1, p.Stylesheet.LogEntryLocation, get(k))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *LogPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.LogPanePositionInfo{}
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane:    ui.NewLeafPane(renderer, dimensions, stylesheet, condition),
		titleString: titleString,
		logReader:   logReader,
	}
}
