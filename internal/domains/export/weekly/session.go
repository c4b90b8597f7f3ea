package weekly

import (
	"strconv"
	"time"

	"gymhub/internal/domains/export/model"
)

const (
	WeeklySessionsRoot  = "weekly_sessions"
	WeeklySessionsEmpty = "No sessions available"
)

const sessionLength = time.Hour

const weeklySessionsDTD = `
  <!ELEMENT weekly_sessions (header, week*)>
  <!ELEMENT header (title, exported_at, total_sessions, period, trainer)>
  <!ELEMENT title (#PCDATA)>
  <!ELEMENT exported_at (#PCDATA)>
  <!ELEMENT total_sessions (#PCDATA)>
  <!ELEMENT period (start, end)>
  <!ELEMENT start (#PCDATA)>
  <!ELEMENT end (#PCDATA)>
  <!ELEMENT trainer (name, email, id)>
  <!ELEMENT name (#PCDATA)>
  <!ELEMENT email (#PCDATA)>
  <!ELEMENT id (#PCDATA)>
  <!ELEMENT week (session*)>
  <!ATTLIST week
    start CDATA #REQUIRED
    end CDATA #REQUIRED
    label CDATA #REQUIRED>
  <!ELEMENT session (id, title, location, start, end, activity, location_details)>
  <!ELEMENT location (#PCDATA)>
  <!ELEMENT activity (id, name, description)>
  <!ELEMENT description (#PCDATA)>
  <!ELEMENT location_details (id, name, address)>
  <!ELEMENT address (#PCDATA)>
`

// WeeklySessions is the trainer schedule exporter.
func WeeklySessions(copyright string) WeeklyExportConfig[model.EnrichedSession] {
	return WeeklyExportConfig[model.EnrichedSession]{
		RootElement:        WeeklySessionsRoot,
		DTD:                weeklySessionsDTD,
		Copyright:          copyright,
		Title:              "Weekly Sessions",
		CountElement:       "total_sessions",
		PrincipalElement:   "trainer",
		WeekLabelAttribute: "label",
		EmptyPeriod:        WeeklySessionsEmpty,
		ItemDate:           func(s model.EnrichedSession) string { return s.Session.Date },
		ItemTime:           func(s model.EnrichedSession) string { return s.Session.Time },
		RenderItem:         renderSession,
	}
}

func renderSession(w *Writer, s model.EnrichedSession) {
	w.Open("session")
	w.Leaf("id", "session_"+strconv.FormatInt(s.Session.ID, 10))
	w.Leaf("title", orDefault(s.Activity.Name, unknownActivity))
	w.Leaf("location", s.Location.Name)
	w.Leaf("start", localISO(s.Session.Date, s.Session.Time, 0))
	w.Leaf("end", localISO(s.Session.Date, s.Session.Time, sessionLength))

	w.Open("activity")
	w.Leaf("id", strconv.FormatInt(s.Activity.ID, 10))
	w.Leaf("name", orDefault(s.Activity.Name, unknownActivity))
	w.Leaf("description", s.Activity.Description)
	w.Close("activity")

	w.Open("location_details")
	w.Leaf("id", strconv.FormatInt(s.Location.ID, 10))
	w.Leaf("name", s.Location.Name)
	w.Leaf("address", s.Location.Address)
	w.Close("location_details")
	w.Close("session")
}
