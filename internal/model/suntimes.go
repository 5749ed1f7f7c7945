package model

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Timestamp is a time of day with minute granularity.
type Timestamp struct {
	Hour, Minute int
}

// NewTimestampFromGotime returns the time of day of the given time.
func NewTimestampFromGotime(t time.Time) Timestamp {
	return Timestamp{Hour: t.Hour(), Minute: t.Minute()}
}

func (t Timestamp) ToString() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// SuntimesProvider computes sun times for a fixed location.
type SuntimesProvider struct {
	Latitude  float64
	Longitude float64
}

// SunTimes represents the sunrise and sunset times of a date.
type SunTimes struct {
	Rise, Set Timestamp
}

// Get returns the sunrise and sunset times for the given date at the
// provider's location, in the given location's time zone.
func (p *SuntimesProvider) Get(d Date, loc *time.Location) SunTimes {

	// calculate sunrise sunset (UTC)
	sunriseTime, sunsetTime := sunrise.SunriseSunset(p.Latitude, p.Longitude, d.Year, time.Month(d.Month), d.Day)

	return SunTimes{
		Rise: NewTimestampFromGotime(sunriseTime.In(loc)),
		Set:  NewTimestampFromGotime(sunsetTime.In(loc)),
	}
}
