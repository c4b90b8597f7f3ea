package model

import (
	"database/sql/driver"
	"fmt"
	"gymhub/shared/constant"
	"time"
)

// CivilDate is a calendar date column (Postgres DATE) kept as YYYY-MM-DD.
type CivilDate string

// CivilTime is a wall clock column (Postgres TIME) kept as HH:MM:SS.
type CivilTime string

func (d *CivilDate) Scan(src any) error {
	value, err := scanCivil(src, constant.CivilDateFormat, constant.CivilDateFormat)
	if err != nil {
		return fmt.Errorf("scan civil date: %w", err)
	}

	*d = CivilDate(value)

	return nil
}

func (d CivilDate) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}

	return string(d), nil
}

func (t *CivilTime) Scan(src any) error {
	value, err := scanCivil(src, constant.CivilTimeFormat, constant.CivilTimeFormat, "15:04")
	if err != nil {
		return fmt.Errorf("scan civil time: %w", err)
	}

	*t = CivilTime(value)

	return nil
}

func (t CivilTime) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}

	return string(t), nil
}

func scanCivil(src any, format string, layouts ...string) (string, error) {
	switch value := src.(type) {
	case nil:
		return "", nil
	case time.Time:
		return value.Format(format), nil
	case []byte:
		return normalizeCivil(string(value), format, layouts)
	case string:
		return normalizeCivil(value, format, layouts)
	default:
		return "", fmt.Errorf("unsupported type %T", src)
	}
}

func normalizeCivil(value, format string, layouts []string) (string, error) {
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format(format), nil
		}
	}

	// Postgres may return a DATE as a full timestamp literal.
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.Format(format), nil
	}

	return "", fmt.Errorf("invalid value %q", value)
}
