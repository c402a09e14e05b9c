package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		// Calendar-day queries (today's check-ins, birthdays) follow the
		// hosting system's local clock unless told otherwise.
		appLocation = time.Local
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to the system local clock. Please use standard timezone names like 'Asia/Kolkata', 'UTC', 'America/New_York'")
		appLocation = time.Local
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
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using the system local clock")
		return time.Now()
	}
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using the system local clock")
		return t.Local()
	}
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning the system local location")
		return time.Local
	}
	return appLocation
}

// SameDay reports whether two instants fall on the same calendar day in
// the application timezone.
func SameDay(a, b time.Time) bool {
	a, b = ToAppTime(a), ToAppTime(b)

	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// SameMonthDay reports whether two instants share month and day of month,
// ignoring the year. Used for birthday matching.
func SameMonthDay(a, b time.Time) bool {
	a, b = ToAppTime(a), ToAppTime(b)

	return a.Month() == b.Month() && a.Day() == b.Day()
}

// Format formats a time using the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Parse parses a value in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}
