package dto_test

import (
	"testing"

	"gymhub/internal/domains/activity/model"
	"gymhub/internal/domains/activity/model/dto"
	gModel "gymhub/shared/model"
	"gymhub/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateActivityRequest_ToModel(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateActivityRequest
		wantDuration int
	}{
		{
			name:         "explicit duration",
			req:          dto.CreateActivityRequest{Name: " Yoga ", Description: "Stretch", DurationMinutes: 45},
			wantDuration: 45,
		},
		{
			name:         "default duration",
			req:          dto.CreateActivityRequest{Name: "Spin"},
			wantDuration: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity := tt.req.ToModel("admin@gym.test")

			assert.Zero(t, activity.ID)
			assert.NotContains(t, activity.Name, " ")
			assert.Equal(t, tt.wantDuration, activity.DurationMinutes)
			assert.Equal(t, "admin@gym.test", activity.CreatedBy)
			assert.False(t, activity.CreatedAt.IsZero(), "expected CreatedAt to be set")
		})
	}
}

func TestGetActivitiesResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	models := []model.Activity{
		{ID: 1, Name: "Yoga", DurationMinutes: 60, Metadata: gModel.Metadata{CreatedAt: now, ModifiedAt: now}},
		{ID: 2, Name: "Boxing", DurationMinutes: 90, Metadata: gModel.Metadata{CreatedAt: now, ModifiedAt: now}},
	}

	var response dto.GetActivitiesResponse
	response.FromModels(models, 12, 5)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Len(t, response.Activities, 2)
	assert.Equal(t, int64(2), response.Activities[1].ID)
	assert.Equal(t, "Boxing", response.Activities[1].Name)
	assert.NotEmpty(t, response.Activities[0].CreatedAt)
}
