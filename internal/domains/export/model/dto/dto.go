package dto

import (
	"net/http"

	"gymhub/shared"
	"gymhub/shared/constant"
	"gymhub/shared/validator"
)

// BookingHistoryQuery holds the booking history export parameters.
// UserID is honoured for admins only.
type BookingHistoryQuery struct {
	OnlyPast bool
	UserID   int64
}

func (q *BookingHistoryQuery) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	onlyPast, err := shared.ParseBoolParam(constant.RequestParamOnlyPast, query.Get(constant.RequestParamOnlyPast), false)
	if err != nil {
		return err
	}

	q.OnlyPast = onlyPast

	return parseUserID(query.Get(constant.RequestParamUserID), &q.UserID)
}

// WeeklySessionsQuery holds the trainer schedule export parameters.
type WeeklySessionsQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,civildate"`
	EndDate   string `query:"endDate"   validate:"omitempty,civildate"`
	UserID    int64
}

func (q *WeeklySessionsQuery) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	q.StartDate = query.Get(constant.RequestParamStartDate)
	q.EndDate = query.Get(constant.RequestParamEndDate)

	if err := parseUserID(query.Get(constant.RequestParamUserID), &q.UserID); err != nil {
		return err
	}

	return validator.ValidateStruct(q)
}

func parseUserID(value string, target *int64) error {
	if value == constant.Empty {
		return nil
	}

	id, err := shared.ParseIDParam(constant.RequestParamUserID, value)
	if err != nil {
		return err
	}

	*target = id

	return nil
}

// Document is a rendered export ready to be sent as an attachment.
type Document struct {
	Filename string
	Body     []byte
	Count    int
}
