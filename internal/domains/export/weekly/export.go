package weekly

import (
	"strconv"
	"strings"
	"time"

	"gymhub/internal/domains/export/model"
	"gymhub/shared/constant"
)

// WeeklyExportConfig describes one exporter built on the shared weekly pipeline.
type WeeklyExportConfig[T any] struct {
	RootElement string
	// DTD is the internal subset placed inside <!DOCTYPE root [ ... ]>.
	DTD              string
	Copyright        string
	Title            string
	CountElement     string
	PrincipalElement string
	// WeekLabelAttribute names the <week> attribute carrying the human label.
	WeekLabelAttribute string
	EmptyPeriod        string
	ItemDate           func(T) string
	ItemTime           func(T) string
	RenderItem         func(*Writer, T)
}

func (c WeeklyExportConfig[T]) accessor() Accessor[T] {
	return Accessor[T]{Date: c.ItemDate, Time: c.ItemTime}
}

// Result is a rendered export document.
type Result struct {
	Body    []byte
	Count   int
	Weeks   int
	Period  Period
	Dropped int
}

// Export runs filter, sort, grouping and emission over items for principal.
func Export[T any](cfg WeeklyExportConfig[T], principal model.Principal, items []T, opts FilterOptions, exportedAt time.Time) Result {
	kept := FilterAndSort(items, cfg.accessor(), opts)
	groups, dropped := GroupByWeek(kept, cfg.accessor())

	result := Emit(cfg, principal, groups, exportedAt)
	result.Dropped = dropped

	return result
}

// Emit serialises grouped items. exportedAt is printed as-is, so callers pass it
// already in the application timezone.
func Emit[T any](cfg WeeklyExportConfig[T], principal model.Principal, groups []WeekGroup[T], exportedAt time.Time) Result {
	count := 0
	for _, group := range groups {
		count += len(group.Items)
	}

	period := PeriodOf(groups, cfg.EmptyPeriod)

	var w Writer

	w.Raw(prolog)

	if strings.TrimSpace(cfg.Copyright) != constant.Empty {
		w.Comment(cfg.Copyright)
	}

	w.Raw("<!DOCTYPE " + cfg.RootElement + " [")
	w.Raw(strings.Trim(cfg.DTD, "\n"))
	w.Raw("]>")

	w.Open(cfg.RootElement)

	w.Open("header")
	w.Leaf("title", cfg.Title)
	w.Leaf("exported_at", exportedAt.Format(constant.TimestampFormat))
	w.Leaf(cfg.CountElement, strconv.Itoa(count))
	w.Open("period")
	w.Leaf("start", period.Start)
	w.Leaf("end", period.End)
	w.Close("period")
	w.Open(cfg.PrincipalElement)
	w.Leaf("name", principal.FullName())
	w.Leaf("email", principal.Email)
	w.Leaf("id", strconv.FormatInt(principal.ID, 10))
	w.Close(cfg.PrincipalElement)
	w.Close("header")

	for _, group := range groups {
		w.Open("week",
			Attr{Name: "start", Value: group.Range.StartISO()},
			Attr{Name: "end", Value: group.Range.EndISO()},
			Attr{Name: cfg.WeekLabelAttribute, Value: group.Range.Label()},
		)

		for _, item := range group.Items {
			cfg.RenderItem(&w, item)
		}

		w.Close("week")
	}

	w.Close(cfg.RootElement)

	return Result{
		Body:   w.Bytes(),
		Count:  count,
		Weeks:  len(groups),
		Period: period,
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == constant.Empty {
		return fallback
	}

	return value
}

// localISO joins a civil date and time as YYYY-MM-DDTHH:MM:SS shifted by offset.
// It returns empty when either part does not parse.
func localISO(date, clock string, offset time.Duration) string {
	at, err := time.Parse(constant.CivilDateFormat+" "+constant.CivilTimeFormat, date+" "+clock)
	if err != nil {
		return constant.Empty
	}

	return at.Add(offset).Format(constant.LocalISOFormat)
}
