package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/foldcal/internal/config"
	"github.com/ja-he/foldcal/internal/model"
	"github.com/ja-he/foldcal/internal/potatolog"
	"github.com/ja-he/foldcal/internal/styling"
	"github.com/ja-he/foldcal/internal/tui"
)

// TuiCommand is the `tui` command, for `go-flags` to parse command line args
// into.
type TuiCommand struct {
	Day           string `short:"d" long:"day" description:"Specify the day to show initially" value-name:"<YYYY-MM-DD>"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme, detected from the terminal if omitted (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	WeekMode      bool   `short:"w" long:"week" description:"Start folded to the selected week"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute runs the TUI.
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging: %w", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	theme := themeFor(command.Theme)

	initialDay, err := parseDay(command.Day)
	if err != nil {
		return err
	}

	configData, err := readConfig(theme)
	if err != nil {
		return err
	}
	if command.WeekMode {
		weekMode := true
		configData.Calendar.StartInWeekMode = &weekMode
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		return fmt.Errorf("could not construct stylesheet: %w", err)
	}

	screenHandler, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}

	controller, err := NewController(initialDay, configData, stylesheet, screenHandler, suntimesFromEnv())
	if err != nil {
		screenHandler.Fini()
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}

// themeFor returns the theme of the given name or, if none is given, the one
// matching the terminal's background.
func themeFor(name string) config.ColorschemeType {
	switch name {
	case "light":
		return config.Light
	case "dark":
		return config.Dark
	}
	if termenv.HasDarkBackground() {
		return config.Dark
	}
	return config.Light
}

// foldcalHome returns the directory containing the config file.
func foldcalHome() string {
	foldcalHome := os.Getenv("FOLDCAL_HOME")
	if foldcalHome != "" {
		return strings.TrimRight(foldcalHome, "/")
	}
	home, err := homedir.Dir()
	if err != nil {
		log.Warn().Err(err).Msg("could not determine home directory")
		home = os.Getenv("HOME")
	}
	return home + "/.config/foldcal"
}

// readConfig reads the config file, if present, augmenting the defaults of the
// given theme.
func readConfig(theme config.ColorschemeType) (config.Config, error) {
	path := foldcalHome() + "/" + "config.yaml"
	yamlData, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return configData, fmt.Errorf("can't parse config file '%s': %w", path, err)
	}
	return configData, nil
}

// parseDay parses the given date or returns today's, if empty.
func parseDay(day string) (model.Date, error) {
	if day == "" {
		return model.Today(), nil
	}
	date, err := model.FromString(day)
	if err != nil {
		return date, fmt.Errorf("could not parse given date '%s': %w", day, err)
	}
	return date, nil
}

// suntimesFromEnv returns a sun times provider for the location given by the
// LATITUDE and LONGITUDE environment variables, or nil if they are not (or not
// validly) set.
func suntimesFromEnv() *model.SuntimesProvider {
	latStr, lonStr := os.Getenv("LATITUDE"), os.Getenv("LONGITUDE")
	if latStr == "" || lonStr == "" {
		return nil
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		log.Warn().Str("latitude", latStr).Str("longitude", lonStr).Msg("could not parse location, not showing sun times")
		return nil
	}
	return &model.SuntimesProvider{Latitude: lat, Longitude: lon}
}
