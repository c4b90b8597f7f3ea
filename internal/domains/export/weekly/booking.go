package weekly

import (
	"strconv"

	"gymhub/internal/domains/export/model"
)

const (
	BookingHistoryRoot  = "booking_history"
	BookingHistoryEmpty = "No bookings available"

	unknownActivity = "Unknown Activity"
	notAvailable    = "N/A"
)

const bookingHistoryDTD = `
  <!ELEMENT booking_history (header, week*)>
  <!ELEMENT header (title, exported_at, total_bookings, period, member)>
  <!ELEMENT title (#PCDATA)>
  <!ELEMENT exported_at (#PCDATA)>
  <!ELEMENT total_bookings (#PCDATA)>
  <!ELEMENT period (start, end)>
  <!ELEMENT start (#PCDATA)>
  <!ELEMENT end (#PCDATA)>
  <!ELEMENT member (name, email, id)>
  <!ELEMENT name (#PCDATA)>
  <!ELEMENT email (#PCDATA)>
  <!ELEMENT id (#PCDATA)>
  <!ELEMENT week (booking*)>
  <!ATTLIST week
    start CDATA #REQUIRED
    end CDATA #REQUIRED
    period_label CDATA #REQUIRED>
  <!ELEMENT booking (booking_date, booking_time, datetime, activity, location, trainer, booking_id, session_id)>
  <!ELEMENT booking_date (#PCDATA)>
  <!ELEMENT booking_time (#PCDATA)>
  <!ELEMENT datetime (#PCDATA)>
  <!ELEMENT activity (id, name, description)>
  <!ELEMENT description (#PCDATA)>
  <!ELEMENT location (id, name, address)>
  <!ELEMENT address (#PCDATA)>
  <!ELEMENT trainer (id, first_name, last_name, email)>
  <!ELEMENT first_name (#PCDATA)>
  <!ELEMENT last_name (#PCDATA)>
  <!ELEMENT booking_id (#PCDATA)>
  <!ELEMENT session_id (#PCDATA)>
`

// BookingHistory is the member booking history exporter.
func BookingHistory(copyright string) WeeklyExportConfig[model.EnrichedBooking] {
	return WeeklyExportConfig[model.EnrichedBooking]{
		RootElement:        BookingHistoryRoot,
		DTD:                bookingHistoryDTD,
		Copyright:          copyright,
		Title:              "Booking History",
		CountElement:       "total_bookings",
		PrincipalElement:   "member",
		WeekLabelAttribute: "period_label",
		EmptyPeriod:        BookingHistoryEmpty,
		ItemDate:           func(b model.EnrichedBooking) string { return b.Session.Date },
		ItemTime:           func(b model.EnrichedBooking) string { return b.Session.Time },
		RenderItem:         renderBooking,
	}
}

func renderBooking(w *Writer, b model.EnrichedBooking) {
	w.Open("booking")
	w.Leaf("booking_date", orDefault(b.Session.Date, notAvailable))
	w.Leaf("booking_time", b.Session.Time)
	w.Leaf("datetime", localISO(b.Session.Date, b.Session.Time, 0))

	w.Open("activity")
	w.Leaf("id", strconv.FormatInt(b.Activity.ID, 10))
	w.Leaf("name", orDefault(b.Activity.Name, unknownActivity))
	w.Leaf("description", b.Activity.Description)
	w.Close("activity")

	w.Open("location")
	w.Leaf("id", strconv.FormatInt(b.Location.ID, 10))
	w.Leaf("name", b.Location.Name)
	w.Leaf("address", b.Location.Address)
	w.Close("location")

	w.Open("trainer")
	w.Leaf("id", strconv.FormatInt(b.Trainer.ID, 10))
	w.Leaf("first_name", b.Trainer.FirstName)
	w.Leaf("last_name", b.Trainer.LastName)
	w.Leaf("email", b.Trainer.Email)
	w.Close("trainer")

	w.Leaf("booking_id", "booking_"+strconv.FormatInt(b.BookingID, 10))
	w.Leaf("session_id", "session_"+strconv.FormatInt(b.Session.ID, 10))
	w.Close("booking")
}
