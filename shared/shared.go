package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"gymhub/shared/cache"
	"gymhub/shared/constant"
	"gymhub/shared/dto"
	"gymhub/shared/failure"
	"gymhub/shared/timezone"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// ParseBoolParam accepts only "true" or "false" (any case). An empty value yields fallback.
func ParseBoolParam(name, value string, fallback bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case constant.Empty:
		return fallback, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return fallback, failure.BadRequestFromString(fmt.Sprintf("%s must be true or false", name)) //nolint:wrapcheck
	}
}

// ParseIDParam parses a positive integer identifier from a path or query value.
func ParseIDParam(name, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be a positive integer", name)) //nolint:wrapcheck
	}

	return id, nil
}

func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields maps the non-zero db-tagged fields of an update request to
// columns and stamps the modification audit columns.
func TransformFields(data any, modifiedBy string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	fields := make(map[string]any, typ.NumField()+2)

	for index := range typ.NumField() {
		column := typ.Field(index).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		if field := val.Field(index); !field.IsZero() {
			fields[column] = field.Interface()
		}
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = modifiedBy

	return fields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// NotDeleted matches live rows of table.
func NotDeleted(table string) dto.Filter {
	return dto.Filter{
		ArgName:  table + "_" + constant.FieldDeleted,
		Field:    constant.FieldDeleted,
		Value:    false,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	}
}

// ActiveByID matches the live row of table with the given id.
func ActiveByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
			NotDeleted(table),
		},
		Operator: dto.FilterGroupOperatorAnd,
	}
}

// WithNotDeleted narrows filter to live rows of table.
func WithNotDeleted(filter dto.FilterGroup, table string) dto.FilterGroup {
	if len(filter.Filters) == 0 {
		return dto.FilterGroup{Filters: []any{NotDeleted(table)}}
	}

	return dto.FilterGroup{
		Filters:  []any{filter, NotDeleted(table)},
		Operator: dto.FilterGroupOperatorAnd,
	}
}

func BuildCacheKey(prefix string, parts ...any) string {
	key := []string{prefix}
	for _, part := range parts {
		key = append(key, fmt.Sprint(part))
	}

	return strings.Join(key, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from the pagination params and the filter's
// rendered WHERE clause and arguments.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}

	slices.Sort(names)

	var builder strings.Builder

	fmt.Fprintf(&builder, "%d|%d|%s|%s|%s", params.Page, params.Limit, params.SortBy, params.SortDir, where)

	for _, name := range names {
		fmt.Fprintf(&builder, "|%s=%v", name, args[name])
	}

	sum := sha256.Sum256([]byte(builder.String()))

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:8]))
}

// InvalidateCaches removes every key stored under prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// IsUniqueViolation reports whether err carries a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
