package dto

import (
	"gymhub/internal/domains/session/model"
	"gymhub/shared"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	gModel "gymhub/shared/model"
	"gymhub/shared/validator"
	"net/http"
	"time"
)

type CreateSessionRequest struct {
	ActivityID  int64  `json:"activity_id"  validate:"required,min=1"`
	LocationID  int64  `json:"location_id"  validate:"required,min=1"`
	TrainerID   int64  `json:"trainer_id"   validate:"omitempty,min=1"`
	SessionDate string `json:"session_date" validate:"required,civildate"`
	SessionTime string `json:"session_time" validate:"required,civiltime"`
}

func (c *CreateSessionRequest) ToModel(actor string) model.Session {
	return model.Session{
		ActivityID:  c.ActivityID,
		LocationID:  c.LocationID,
		TrainerID:   c.TrainerID,
		SessionDate: gModel.CivilDate(c.SessionDate),
		SessionTime: gModel.CivilTime(NormalizeClock(c.SessionTime)),
		Metadata:    gModel.NewMetadata(actor),
	}
}

type UpdateSessionRequest struct {
	ActivityID  int64  `db:"activity_id"  json:"activity_id"  validate:"omitempty,min=1"`
	LocationID  int64  `db:"location_id"  json:"location_id"  validate:"omitempty,min=1"`
	TrainerID   int64  `db:"trainer_id"   json:"trainer_id"   validate:"omitempty,min=1"`
	SessionDate string `db:"session_date" json:"session_date" validate:"omitempty,civildate"`
	SessionTime string `db:"session_time" json:"session_time" validate:"omitempty,civiltime"`
}

// NormalizeClock widens HH:MM to HH:MM:SS. Other values are returned unchanged.
func NormalizeClock(value string) string {
	if parsed, err := time.Parse("15:04", value); err == nil {
		return parsed.Format(constant.CivilTimeFormat)
	}

	return value
}

type SessionResponse struct {
	ID          int64  `json:"id"`
	ActivityID  int64  `json:"activity_id"`
	LocationID  int64  `json:"location_id"`
	TrainerID   int64  `json:"trainer_id"`
	SessionDate string `json:"session_date"`
	SessionTime string `json:"session_time"`
	gDto.Metadata
}

func (r *SessionResponse) FromModel(model model.Session) {
	r.ID = model.ID
	r.ActivityID = model.ActivityID
	r.LocationID = model.LocationID
	r.TrainerID = model.TrainerID
	r.SessionDate = string(model.SessionDate)
	r.SessionTime = string(model.SessionTime)
	r.Metadata.FromModel(model.Metadata)
}

type GetSessionsResponse struct {
	Sessions  []SessionResponse `json:"sessions"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSessionsResponse) FromModels(models []model.Session, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Sessions = make([]SessionResponse, len(models))
	for i, mod := range models {
		r.Sessions[i].FromModel(mod)
	}
}

// SessionFilter holds the optional list filters of GET /v1/sessions.
type SessionFilter struct {
	TrainerID   int64
	ActivityID  int64
	LocationID  int64
	SessionDate string `query:"session_date" validate:"omitempty,civildate"`
}

func (f *SessionFilter) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	for _, param := range f.idParams() {
		value := query.Get(param.field)
		if value == "" {
			continue
		}

		id, err := shared.ParseIDParam(param.field, value)
		if err != nil {
			return err
		}

		*param.target = id
	}

	f.SessionDate = query.Get(model.FieldSessionDate)

	return validator.ValidateStruct(f)
}

type idParam struct {
	field  string
	target *int64
}

func (f *SessionFilter) idParams() []idParam {
	return []idParam{
		{field: model.FieldTrainerID, target: &f.TrainerID},
		{field: model.FieldActivityID, target: &f.ActivityID},
		{field: model.FieldLocationID, target: &f.LocationID},
	}
}

func (f *SessionFilter) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, param := range f.idParams() {
		if *param.target == 0 {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    param.field,
			Operator: gDto.FilterOperatorEq,
			Value:    *param.target,
			Table:    model.TableName,
		})
	}

	if f.SessionDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSessionDate,
			Operator: gDto.FilterOperatorEq,
			Value:    f.SessionDate,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
