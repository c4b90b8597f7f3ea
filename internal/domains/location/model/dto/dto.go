package dto

import (
	"gymhub/internal/domains/location/model"
	"gymhub/shared"
	gDto "gymhub/shared/dto"
	gModel "gymhub/shared/model"
	"strings"
)

type CreateLocationRequest struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Address string `json:"address" validate:"omitempty,max=512"`
}

func (c *CreateLocationRequest) ToModel(actor string) model.Location {
	return model.Location{
		Name:     strings.TrimSpace(c.Name),
		Address:  strings.TrimSpace(c.Address),
		Metadata: gModel.NewMetadata(actor),
	}
}

type UpdateLocationRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=255"`
	Address string `db:"address" json:"address" validate:"omitempty,max=512"`
}

type LocationResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	gDto.Metadata
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetLocationsResponse) FromModels(models []model.Location, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Locations = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Locations[i].FromModel(mod)
	}
}
