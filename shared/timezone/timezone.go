package timezone

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"fleetrental/config"
	"fleetrental/shared/constant"
)

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
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
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
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// DateOf strips the time-of-day from t, as observed in the application
// timezone, and normalizes the remaining calendar date to midnight in
// that same timezone. Two DateOf results compare and subtract as pure
// calendar dates, and normalizing an already-normalized date is a no-op.
func DateOf(t time.Time) time.Time {
	loc := GetLocation()
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// Today returns the current calendar date in the application timezone.
func Today() time.Time {
	return DateOf(Now())
}

// DaysBetween returns the number of whole days from one calendar date to
// another. Both arguments are normalized with DateOf first, so callers may
// pass arbitrary times. Rounding absorbs the odd-length days around DST
// transitions.
func DaysBetween(from, to time.Time) int {
	return int(math.Round(DateOf(to).Sub(DateOf(from)).Hours() / 24))
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD) as midnight in
// the application timezone, so FormatDate(ParseDate(v)) == v regardless
// of the configured location.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateFormat, value, GetLocation())
}

// FormatDate formats t as an ISO-8601 calendar date.
func FormatDate(t time.Time) string {
	return DateOf(t).Format(constant.DateFormat)
}
