package weekly

import (
	"cmp"
	"slices"
	"time"

	"gymhub/shared/constant"
)

type FilterOptions struct {
	// OnlyPast keeps records strictly before Today. It wins over IncludePast.
	OnlyPast bool
	// IncludePast disables the default future-only cut.
	IncludePast bool
	StartDate   string
	EndDate     string
	// Today is the civil date at the application timezone, YYYY-MM-DD.
	Today string
}

// Keep reports whether a record dated date survives the options. Dates compare
// as YYYY-MM-DD strings, so reversed bounds keep nothing.
func (o FilterOptions) Keep(date string) bool {
	switch {
	case o.OnlyPast:
		if date >= o.Today {
			return false
		}
	case !o.IncludePast:
		if date < o.Today {
			return false
		}
	}

	if o.StartDate != constant.Empty && date < o.StartDate {
		return false
	}

	if o.EndDate != constant.Empty && date > o.EndDate {
		return false
	}

	return true
}

// Accessor reads the civil date and time of an item.
type Accessor[T any] struct {
	Date func(T) string
	Time func(T) string
}

// FilterAndSort keeps the items opts allows and orders them by (date, time).
// The sort is stable. Items with a malformed date or time go last.
func FilterAndSort[T any](items []T, at Accessor[T], opts FilterOptions) []T {
	kept := make([]T, 0, len(items))

	for _, item := range items {
		if opts.Keep(at.Date(item)) {
			kept = append(kept, item)
		}
	}

	SortChronologically(kept, at)

	return kept
}

// SortChronologically stably orders items by (date, time), malformed ones last.
func SortChronologically[T any](items []T, at Accessor[T]) {
	slices.SortStableFunc(items, func(a, b T) int {
		aValid := validSlot(at.Date(a), at.Time(a))
		bValid := validSlot(at.Date(b), at.Time(b))

		switch {
		case aValid && !bValid:
			return -1
		case !aValid && bValid:
			return 1
		case !aValid && !bValid:
			return 0
		}

		return cmp.Or(
			cmp.Compare(at.Date(a), at.Date(b)),
			cmp.Compare(at.Time(a), at.Time(b)),
		)
	})
}

func validSlot(date, clock string) bool {
	if _, err := time.Parse(constant.CivilDateFormat, date); err != nil {
		return false
	}

	_, err := time.Parse(constant.CivilTimeFormat, clock)

	return err == nil
}
