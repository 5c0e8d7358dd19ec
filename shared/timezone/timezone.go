package timezone

import (
	"hostel/config"
	"hostel/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const hoursPerDay = 24

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'Europe/Madrid'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.CalendarDateFormat, value, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(constant.CalendarDateFormat)
}

// Today returns the current calendar date in the application timezone, at midnight UTC.
func Today() time.Time {
	year, month, day := Now().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / hoursPerDay)
}
