package weekly

import (
	"cmp"
	"slices"
)

type WeekGroup[T any] struct {
	Range WeekRange
	Items []T
}

// GroupByWeek buckets items by the Monday-first week of their date. Groups come
// back ordered by (Monday, Sunday) and are never empty. Items whose date does not
// parse are dropped; the second result counts them.
func GroupByWeek[T any](items []T, at Accessor[T]) ([]WeekGroup[T], int) {
	index := make(map[string]int)
	groups := make([]WeekGroup[T], 0)
	dropped := 0

	for _, item := range items {
		week, err := WeekRangeOf(at.Date(item))
		if err != nil {
			dropped++

			continue
		}

		position, ok := index[week.Key()]
		if !ok {
			position = len(groups)
			index[week.Key()] = position
			groups = append(groups, WeekGroup[T]{Range: week})
		}

		groups[position].Items = append(groups[position].Items, item)
	}

	slices.SortFunc(groups, func(a, b WeekGroup[T]) int {
		return cmp.Or(
			cmp.Compare(a.Range.StartISO(), b.Range.StartISO()),
			cmp.Compare(a.Range.EndISO(), b.Range.EndISO()),
		)
	})

	for _, group := range groups {
		SortChronologically(group.Items, at)
	}

	return groups, dropped
}
