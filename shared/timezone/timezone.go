package timezone

import (
	"fmt"
	"gymhub/config"
	"gymhub/shared/constant"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimezone = "Australia/Brisbane"

var (
	loadOnce sync.Once
	location atomic.Pointer[time.Location]
)

// GetLocation returns the gym's timezone, loading APP_TIMEZONE on first use.
// An unknown name falls back to UTC.
func GetLocation() *time.Location {
	loadOnce.Do(func() {
		if location.Load() != nil {
			return
		}

		name := config.Get().App.Timezone
		if name == "" {
			name = defaultTimezone
		}

		if err := SetLocation(name); err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")
			location.Store(time.UTC)

			return
		}

		log.Info().Str("timezone", name).Msg("Application timezone initialized")
	})

	return location.Load()
}

// SetLocation replaces the application timezone with the IANA zone name.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	location.Store(loc)

	return nil
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts t to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as wall-clock time in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(layout, value, GetLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %q: %w", value, err)
	}

	return parsed, nil
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseCivilDate parses a YYYY-MM-DD value as midnight in the application timezone.
func ParseCivilDate(value string) (time.Time, error) {
	return Parse(constant.CivilDateFormat, value)
}
