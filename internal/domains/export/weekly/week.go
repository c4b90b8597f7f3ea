package weekly

import (
	"fmt"
	"time"

	"gymhub/shared/constant"
)

const daysPerWeek = 7

// WeekRange is a Monday to Sunday span of civil dates.
type WeekRange struct {
	Monday time.Time
	Sunday time.Time
}

// WeekRangeOf returns the week holding date (YYYY-MM-DD). Weeks start on Monday,
// so a Sunday belongs to the week that ends on it.
func WeekRangeOf(date string) (WeekRange, error) {
	day, err := time.Parse(constant.CivilDateFormat, date)
	if err != nil {
		return WeekRange{}, fmt.Errorf("invalid civil date %q: %w", date, err)
	}

	offset := (int(day.Weekday()) + daysPerWeek - 1) % daysPerWeek
	monday := day.AddDate(0, 0, -offset)

	return WeekRange{
		Monday: monday,
		Sunday: monday.AddDate(0, 0, daysPerWeek-1),
	}, nil
}

func (w WeekRange) StartISO() string {
	return w.Monday.Format(constant.CivilDateFormat)
}

func (w WeekRange) EndISO() string {
	return w.Sunday.Format(constant.CivilDateFormat)
}

func (w WeekRange) Key() string {
	return w.StartISO() + "_" + w.EndISO()
}

// Label is the human form, DD/MM/YYYY - DD/MM/YYYY.
func (w WeekRange) Label() string {
	return w.Monday.Format(constant.HumanDateFormat) + " - " + w.Sunday.Format(constant.HumanDateFormat)
}

// Period is the inclusive span covered by an export.
type Period struct {
	Start string
	End   string
}

// PeriodOf spans the first group's Monday to the last group's Sunday, or carries
// empty on both ends when there are no groups.
func PeriodOf[T any](groups []WeekGroup[T], empty string) Period {
	if len(groups) == 0 {
		return Period{Start: empty, End: empty}
	}

	return Period{
		Start: groups[0].Range.StartISO(),
		End:   groups[len(groups)-1].Range.EndISO(),
	}
}
