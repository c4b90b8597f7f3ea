package dto

import (
	"gymhub/internal/domains/booking/model"
	"gymhub/shared"
	gDto "gymhub/shared/dto"
	gModel "gymhub/shared/model"
	"net/http"
)

type CreateBookingRequest struct {
	SessionID int64 `json:"session_id" validate:"required,min=1"`
}

func (c *CreateBookingRequest) ToModel(userID int64, actor string) model.Booking {
	return model.Booking{
		UserID:    userID,
		SessionID: c.SessionID,
		Metadata:  gModel.NewMetadata(actor),
	}
}

type BookingResponse struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	SessionID int64 `json:"session_id"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.SessionID = model.SessionID
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingFilter holds the optional admin list filters of GET /v1/bookings.
type BookingFilter struct {
	UserID    int64
	SessionID int64
}

func (f *BookingFilter) FromRequest(r *http.Request) (err error) {
	query := r.URL.Query()

	if value := query.Get(model.FieldUserID); value != "" {
		if f.UserID, err = shared.ParseIDParam(model.FieldUserID, value); err != nil {
			return err
		}
	}

	if value := query.Get(model.FieldSessionID); value != "" {
		if f.SessionID, err = shared.ParseIDParam(model.FieldSessionID, value); err != nil {
			return err
		}
	}

	return nil
}

func (f *BookingFilter) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.UserID > 0 {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.UserID,
			Table:    model.TableName,
		})
	}

	if f.SessionID > 0 {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSessionID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.SessionID,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
