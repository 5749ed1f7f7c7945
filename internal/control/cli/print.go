package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/ja-he/foldcal/internal/calendar"
	"github.com/ja-he/foldcal/internal/geometry"
	"github.com/ja-he/foldcal/internal/model"
)

// PrintCommand is the `print` command, for `go-flags` to parse command line
// args into.
type PrintCommand struct {
	Day      string `short:"d" long:"day" description:"Specify the day to print the page for" value-name:"<YYYY-MM-DD>"`
	WeekMode bool   `short:"w" long:"week" description:"Print only the week of the day"`
	Monday   bool   `short:"m" long:"monday" description:"Start weeks on monday"`
	NoColor  bool   `long:"no-color" description:"Do not highlight the selected date and today"`
}

// PrintOptions configure PrintPage.
type PrintOptions struct {
	FirstDayMonday bool
	Expanded       bool
	// Today is highlighted, if colored.
	Today   model.Date
	Colored bool
}

// Execute prints the page.
func (command *PrintCommand) Execute(args []string) error {
	date, err := parseDay(command.Day)
	if err != nil {
		return err
	}
	return PrintPage(os.Stdout, date, PrintOptions{
		FirstDayMonday: command.Monday,
		Expanded:       !command.WeekMode,
		Today:          model.Today(),
		Colored:        !command.NoColor && !color.NoColor,
	})
}

// PrintPage writes the page for the given date as text, either the expanded
// month or the folded week of the date. The date itself is bracketed.
func PrintPage(w io.Writer, date model.Date, opts PrintOptions) error {
	firstDayMonday := opts.FirstDayMonday
	page := calendar.NewPage(&geometry.Metrics{CellWidth: 4, CellHeight: 1}, nil)
	page.Rebind(date, 0, firstDayMonday, opts.Expanded)

	selectedColor := color.New(color.Bold, color.FgCyan)
	todayColor := color.New(color.FgYellow)
	dimmedColor := color.New(color.Faint)
	for _, c := range []*color.Color{selectedColor, todayColor, dimmedColor} {
		if opts.Colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", date.ToGotime().Month(), date.Year)
	for col := 0; col < geometry.Columns; col++ {
		fmt.Fprintf(&b, " %s ", model.WeekdayAtIndex(col, firstDayMonday).String()[:2])
	}
	b.WriteString("\n")

	for row := 0; row < geometry.Rows; row++ {
		_, y := page.CellOrigin(row * geometry.Columns)
		if y < 0 || y >= page.MeasuredHeight() {
			continue
		}
		cells := make([]string, 0, geometry.Columns)
		for col := 0; col < geometry.Columns; col++ {
			index := row*geometry.Columns + col
			cellDate := page.CellDate(index)
			switch {
			case !page.CellVisible(index):
				cells = append(cells, "")
			case index == page.SelectedIndex():
				cells = append(cells, selectedColor.Sprintf("[%2d]", cellDate.Day))
			case cellDate == opts.Today:
				cells = append(cells, todayColor.Sprintf(" %2d ", cellDate.Day))
			case !page.InMonth(index):
				cells = append(cells, dimmedColor.Sprintf(" %2d ", cellDate.Day))
			default:
				cells = append(cells, fmt.Sprintf(" %2d ", cellDate.Day))
			}
		}
		b.WriteString(joinCells(cells) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// joinCells joins four-column cells, leaving hidden (empty) cells blank and
// dropping trailing blanks.
func joinCells(cells []string) string {
	last := len(cells) - 1
	for last >= 0 && cells[last] == "" {
		last--
	}
	var b strings.Builder
	for _, cell := range cells[:last+1] {
		if cell == "" {
			cell = "    "
		}
		b.WriteString(cell)
	}
	return strings.TrimRight(b.String(), " ")
}
