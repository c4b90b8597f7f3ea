package dto

import (
	"gymhub/internal/domains/activity/model"
	"gymhub/shared"
	gDto "gymhub/shared/dto"
	gModel "gymhub/shared/model"
	"strings"
)

const defaultDurationMinutes = 60

type CreateActivityRequest struct {
	Name            string `json:"name"             validate:"required,max=255"`
	Description     string `json:"description"      validate:"omitempty,max=2000"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
}

func (c *CreateActivityRequest) ToModel(actor string) model.Activity {
	duration := c.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}

	return model.Activity{
		Name:            strings.TrimSpace(c.Name),
		Description:     strings.TrimSpace(c.Description),
		DurationMinutes: duration,
		Metadata:        gModel.NewMetadata(actor),
	}
}

type UpdateActivityRequest struct {
	Name            string `db:"name"             json:"name"             validate:"omitempty,max=255"`
	Description     string `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
}

type ActivityResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	gDto.Metadata
}

func (r *ActivityResponse) FromModel(model model.Activity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.DurationMinutes = model.DurationMinutes
	r.Metadata.FromModel(model.Metadata)
}

type GetActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetActivitiesResponse) FromModels(models []model.Activity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Activities = make([]ActivityResponse, len(models))
	for i, mod := range models {
		r.Activities[i].FromModel(mod)
	}
}
