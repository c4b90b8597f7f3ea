package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gymhub/shared/constant"
	"gymhub/shared/dto"
	"gymhub/shared/model"
	"gymhub/shared/timezone"
)

func TestMetadataFromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 6, 7, 30, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(48 * time.Hour)

	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "admin@gym.test",
		ModifiedBy: "ada@gym.test",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "admin@gym.test", metadata.CreatedBy)
	assert.Equal(t, "ada@gym.test", metadata.ModifiedBy)
}

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:   "all parameters",
			target: "/v1/sessions?page=2&limit=20&sort_by=Session_Date&sort_dir=desc",
			want:   dto.QueryParams{Page: 2, Limit: 20, SortBy: "session_date", SortDir: dto.SortDirDesc},
		},
		{
			name:         "defaults fill paging only",
			target:       "/v1/activities",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:   "no defaults leaves paging empty",
			target: "/v1/activities",
			want:   dto.QueryParams{},
		},
		{
			name:   "limit is capped",
			target: "/v1/bookings?limit=5000",
			want:   dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:         "malformed values fall back",
			target:       "/v1/bookings?page=-1&limit=ten&sort_dir=sideways",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dto.QueryParams{}
			got.FromRequest(httptest.NewRequest("GET", tt.target, nil), tt.withDefaults)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryParamsPaging(t *testing.T) {
	tests := []struct {
		name          string
		params        dto.QueryParams
		wantPaginated bool
		wantOffset    int
	}{
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 10}, wantPaginated: true, wantOffset: 0},
		{name: "third page", params: dto.QueryParams{Page: 3, Limit: 25}, wantPaginated: true, wantOffset: 50},
		{name: "limit without page", params: dto.QueryParams{Limit: 5}, wantPaginated: true, wantOffset: 0},
		{name: "unpaged", params: dto.QueryParams{}, wantPaginated: false, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPaginated, tt.params.Paginated())
			assert.Equal(t, tt.wantOffset, tt.params.Offset())
		})
	}
}

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "trainer_id", Value: int64(4), Operator: dto.FilterOperatorEq, Table: "sessions"},
			wantWhere: "sessions.trainer_id = :trainer_id",
			wantArgs:  map[string]any{"trainer_id": int64(4)},
		},
		{
			name:      "not equal with arg name",
			filter:    dto.Filter{ArgName: "self_id", Field: "id", Value: int64(2), Operator: dto.FilterOperatorNotEq},
			wantWhere: "id != :self_id",
			wantArgs:  map[string]any{"self_id": int64(2)},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "name", Value: "50%_off", Operator: dto.FilterOperatorLike, Table: "activities"},
			wantWhere: "LOWER(activities.name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": `%50\%\_off%`},
		},
		{
			name:      "in with a slice",
			filter:    dto.Filter{Field: "role", Value: []string{"trainer", "admin"}, Operator: dto.FilterOperatorIn, Table: "users"},
			wantWhere: "users.role IN (:role_0, :role_1)",
			wantArgs:  map[string]any{"role_0": "trainer", "role_1": "admin"},
		},
		{
			name:      "in with an empty slice matches nothing",
			filter:    dto.Filter{Field: "role", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with a scalar is still bound",
			filter:    dto.Filter{Field: "role", Value: "member", Operator: dto.FilterOperatorIn},
			wantWhere: "role = :role",
			wantArgs:  map[string]any{"role": "member"},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "role", Value: "member", Operator: "regex"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	date := dto.Filter{Field: "session_date", Value: "2025-02-05", Operator: dto.FilterOperatorEq}
	trainer := dto.Filter{Field: "trainer_id", Value: int64(4), Operator: dto.FilterOperatorEq}

	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "operator defaults to AND",
			group:     dto.FilterGroup{Filters: []any{date, trainer}},
			wantWhere: "(session_date = :session_date AND trainer_id = :trainer_id)",
			wantArgs:  map[string]any{"session_date": "2025-02-05", "trainer_id": int64(4)},
		},
		{
			name: "nested OR group",
			group: dto.FilterGroup{
				Filters:  []any{date, dto.FilterGroup{Filters: []any{trainer}, Operator: dto.FilterGroupOperatorOr}},
				Operator: dto.FilterGroupOperatorAnd,
			},
			wantWhere: "(session_date = :session_date AND (trainer_id = :trainer_id))",
			wantArgs:  map[string]any{"session_date": "2025-02-05", "trainer_id": int64(4)},
		},
		{
			name:      "empty clauses are skipped",
			group:     dto.FilterGroup{Filters: []any{dto.Filter{Operator: "regex"}, "not a filter", trainer}},
			wantWhere: "(trainer_id = :trainer_id)",
			wantArgs:  map[string]any{"trainer_id": int64(4)},
		},
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
