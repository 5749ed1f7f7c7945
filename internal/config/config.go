package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${FOLDCAL_HOME}/config.yaml'.
type Config struct {
	Calendar   Calendar          `yaml:"calendar"`
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Keys       map[string]string `yaml:"keys"`
}

// Calendar is the configuration of the calendar view's behavior.
//
// Pointer fields distinguish unset values from explicit zero values when
// augmenting defaults.
type Calendar struct {
	FirstDayMonday   *bool    `yaml:"first-day-monday"`
	StartInWeekMode  *bool    `yaml:"start-in-week-mode"`
	CellWidth        *int     `yaml:"cell-width"`
	CellHeight       *int     `yaml:"cell-height"`
	ReleaseThreshold *float64 `yaml:"release-threshold"`
	FrameInterval    string   `yaml:"frame-interval"`
	CommitRule       string   `yaml:"commit-rule"`
	PageSettleStep   *float64 `yaml:"page-settle-step"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	Header            Styling `yaml:"header"`
	Cell              Styling `yaml:"cell"`
	CellOutsideMonth  Styling `yaml:"cell-outside-month"`
	CellSelected      Styling `yaml:"cell-selected"`
	CellToday         Styling `yaml:"cell-today"`
	Status            Styling `yaml:"status"`
	Help              Styling `yaml:"help"`
	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// The actions keys can be mapped to.
const (
	ActionFold           = "fold"
	ActionExpand         = "expand"
	ActionToggleMode     = "toggle-mode"
	ActionNextPage       = "next-page"
	ActionPrevPage       = "prev-page"
	ActionToday          = "today"
	ActionToggleFirstDay = "toggle-first-day"
	ActionToggleLog      = "toggle-log"
	ActionToggleHelp     = "toggle-help"
	ActionTogglePerf     = "toggle-perf"
	ActionQuit           = "quit"
)

// KnownActions lists every action name a key can be mapped to.
var KnownActions = []string{
	ActionFold,
	ActionExpand,
	ActionToggleMode,
	ActionNextPage,
	ActionPrevPage,
	ActionToday,
	ActionToggleFirstDay,
	ActionToggleLog,
	ActionToggleHelp,
	ActionTogglePerf,
	ActionQuit,
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
// The result is validated.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml: %w", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	if err := result.Validate(); err != nil {
		return defaultConfig, fmt.Errorf("invalid configuration: %w", err)
	}

	return result, nil
}

// Validate checks the configuration for values that cannot be used.
func (c Config) Validate() error {
	cal := c.Calendar
	if cal.CellWidth == nil || *cal.CellWidth <= 0 {
		return fmt.Errorf("cell-width must be positive")
	}
	if cal.CellHeight == nil || *cal.CellHeight <= 0 {
		return fmt.Errorf("cell-height must be positive")
	}
	if cal.ReleaseThreshold != nil && *cal.ReleaseThreshold < 0 {
		return fmt.Errorf("release-threshold must not be negative")
	}
	if cal.PageSettleStep != nil && (*cal.PageSettleStep <= 0 || *cal.PageSettleStep > 1) {
		return fmt.Errorf("page-settle-step must be in (0,1]")
	}
	if _, err := cal.FrameIntervalDuration(); err != nil {
		return err
	}
	switch cal.CommitRule {
	case "threshold", "sign":
	default:
		return fmt.Errorf("unknown commit-rule '%s' (expected 'threshold' or 'sign')", cal.CommitRule)
	}
	for keyspec, actionName := range c.Keys {
		if !isKnownAction(actionName) {
			return fmt.Errorf("key '%s' mapped to unknown action '%s'", keyspec, actionName)
		}
	}
	return nil
}

// FrameIntervalDuration returns the parsed frame interval.
func (c Calendar) FrameIntervalDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.FrameInterval)
	if err != nil {
		return 0, fmt.Errorf("could not parse frame-interval '%s': %w", c.FrameInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("frame-interval must be positive, is %s", d)
	}
	return d, nil
}

func isKnownAction(name string) bool {
	for _, known := range KnownActions {
		if known == name {
			return true
		}
	}
	return false
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Calendar = base.Calendar.augmentWith(augment.Calendar)
	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if len(augment.Keys) > 0 {
		result.Keys = augment.Keys
	}

	return result
}

func (base Calendar) augmentWith(augment Calendar) Calendar {
	result := base

	if augment.FirstDayMonday != nil {
		result.FirstDayMonday = augment.FirstDayMonday
	}
	if augment.StartInWeekMode != nil {
		result.StartInWeekMode = augment.StartInWeekMode
	}
	if augment.CellWidth != nil {
		result.CellWidth = augment.CellWidth
	}
	if augment.CellHeight != nil {
		result.CellHeight = augment.CellHeight
	}
	if augment.ReleaseThreshold != nil {
		result.ReleaseThreshold = augment.ReleaseThreshold
	}
	if augment.FrameInterval != "" {
		result.FrameInterval = augment.FrameInterval
	}
	if augment.CommitRule != "" {
		result.CommitRule = augment.CommitRule
	}
	if augment.PageSettleStep != nil {
		result.PageSettleStep = augment.PageSettleStep
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Header.overwriteIfDefined(augment.Header)
	result.Cell.overwriteIfDefined(augment.Cell)
	result.CellOutsideMonth.overwriteIfDefined(augment.CellOutsideMonth)
	result.CellSelected.overwriteIfDefined(augment.CellSelected)
	result.CellToday.overwriteIfDefined(augment.CellToday)
	result.Status.overwriteIfDefined(augment.Status)
	result.Help.overwriteIfDefined(augment.Help)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		style := *augment.Style
		s.Style = &style
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
