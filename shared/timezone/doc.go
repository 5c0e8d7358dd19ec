// Package timezone provides the application clock and calendar-date helpers.
//
// Timestamps (audit metadata, report names) use the application timezone configured via
// APP_TIMEZONE:
//
//	now := timezone.Now()
//	formatted := timezone.Format(now, time.RFC3339)
//
// Calendar dates (check-in and check-out) carry no time component. They are parsed and
// kept at midnight UTC so that day arithmetic never crosses a DST boundary:
//
//	in, err := timezone.ParseDate("2023-07-01")
//	days := timezone.DaysBetween(in, out)
//	today := timezone.Today()
package timezone
