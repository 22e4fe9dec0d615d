// Package timezone provides the application clock and calendar-date
// utilities.
//
// Bookings in this system are bounded by calendar dates with no
// time-of-day, so most helpers here deal in normalized dates:
//
//	today := timezone.Today()                    // current date, midnight in the app timezone
//	d := timezone.DateOf(someTime)               // strip time-of-day
//	days := timezone.DaysBetween(start, end)     // whole-day difference
//	t, err := timezone.ParseDate("2024-01-01")   // ISO-8601 date
//
// The application timezone decides which calendar date "now" falls on and
// is configured via the APP_TIMEZONE environment variable using standard
// IANA names ("UTC", "Asia/Jakarta", "America/New_York"). It is loaded
// when the package is imported.
package timezone
