package weekly_test

import (
	"testing"

	"gymhub/internal/domains/export/weekly"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekRangeOf(t *testing.T) {
	testCases := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
		wantLabel string
	}{
		{
			name:      "monday maps to itself",
			date:      "2025-02-03",
			wantStart: "2025-02-03",
			wantEnd:   "2025-02-09",
			wantLabel: "03/02/2025 - 09/02/2025",
		},
		{
			name:      "wednesday maps to the preceding monday",
			date:      "2025-02-05",
			wantStart: "2025-02-03",
			wantEnd:   "2025-02-09",
			wantLabel: "03/02/2025 - 09/02/2025",
		},
		{
			name:      "sunday belongs to the week ending on it",
			date:      "2025-02-09",
			wantStart: "2025-02-03",
			wantEnd:   "2025-02-09",
			wantLabel: "03/02/2025 - 09/02/2025",
		},
		{
			name:      "week spanning a month and year boundary",
			date:      "2025-01-01",
			wantStart: "2024-12-30",
			wantEnd:   "2025-01-05",
			wantLabel: "30/12/2024 - 05/01/2025",
		},
		{
			name:      "leap day",
			date:      "2024-02-29",
			wantStart: "2024-02-26",
			wantEnd:   "2024-03-03",
			wantLabel: "26/02/2024 - 03/03/2024",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			week, err := weekly.WeekRangeOf(tc.date)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStart, week.StartISO())
			assert.Equal(t, tc.wantEnd, week.EndISO())
			assert.Equal(t, tc.wantStart+"_"+tc.wantEnd, week.Key())
			assert.Equal(t, tc.wantLabel, week.Label())
			assert.Equal(t, week.Monday.AddDate(0, 0, 6), week.Sunday)
		})
	}
}

func TestWeekRangeOf_Invalid(t *testing.T) {
	for _, date := range []string{"", "2025-13-01", "05/02/2025", "2025-02-30"} {
		_, err := weekly.WeekRangeOf(date)
		assert.Error(t, err, date)
	}
}

func TestPeriodOf(t *testing.T) {
	first, err := weekly.WeekRangeOf("2025-02-05")
	require.NoError(t, err)

	last, err := weekly.WeekRangeOf("2025-02-12")
	require.NoError(t, err)

	groups := []weekly.WeekGroup[string]{
		{Range: first, Items: []string{"a"}},
		{Range: last, Items: []string{"b"}},
	}

	assert.Equal(t, weekly.Period{Start: "2025-02-03", End: "2025-02-16"}, weekly.PeriodOf(groups, "none"))
	assert.Equal(t, weekly.Period{Start: "none", End: "none"}, weekly.PeriodOf([]weekly.WeekGroup[string]{}, "none"))
}
