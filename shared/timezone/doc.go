// Package timezone pins every wall-clock computation to the gym's timezone
// (APP_TIMEZONE, Australia/Brisbane by default).
//
// Session dates and times are civil values in that zone. Code that needs
// "today" takes a Clock so tests can fix the instant:
//
//	clock := timezone.SystemClock()
//	today := timezone.Today(clock) // "2025-02-05"
package timezone
