package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymhub/internal/domains/location/model"
	"gymhub/internal/domains/location/model/dto"
)

func TestCreateLocationRequest_ToModel(t *testing.T) {
	req := dto.CreateLocationRequest{Name: " Studio A ", Address: " 1 Queen St "}

	location := req.ToModel("admin@gym.test")

	assert.Equal(t, "Studio A", location.Name)
	assert.Equal(t, "1 Queen St", location.Address)
	assert.Equal(t, "admin@gym.test", location.ModifiedBy)
	assert.False(t, location.Deleted)
}

func TestGetLocationsResponse_FromModels(t *testing.T) {
	tests := []struct {
		name          string
		models        []model.Location
		total, limit  int
		wantTotalPage int
	}{
		{name: "empty", models: nil, total: 0, limit: 10, wantTotalPage: 1},
		{name: "single page", models: []model.Location{{ID: 1, Name: "Studio A"}}, total: 1, limit: 10, wantTotalPage: 1},
		{name: "partial last page", models: []model.Location{{ID: 1}, {ID: 2}}, total: 21, limit: 10, wantTotalPage: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var response dto.GetLocationsResponse
			response.FromModels(tt.models, tt.total, tt.limit)

			assert.Equal(t, tt.total, response.TotalData)
			assert.Equal(t, tt.wantTotalPage, response.TotalPage)
			assert.Len(t, response.Locations, len(tt.models))
		})
	}
}
