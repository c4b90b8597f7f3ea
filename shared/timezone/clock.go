package timezone

import (
	"gymhub/shared/constant"
	"time"
)

// Clock yields the current instant. Components that compute "today" take a Clock
// so tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock reads the wall clock in the application timezone.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return Now()
}

type fixedClock struct {
	at time.Time
}

// FixedClock always returns at, converted to the application timezone.
func FixedClock(at time.Time) Clock {
	return fixedClock{at: at}
}

func (c fixedClock) Now() time.Time {
	return ToAppTime(c.at)
}

// Today returns the civil date of the clock's current instant as YYYY-MM-DD.
func Today(clock Clock) string {
	return ToAppTime(clock.Now()).Format(constant.CivilDateFormat)
}
