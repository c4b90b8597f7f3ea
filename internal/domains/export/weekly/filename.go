package weekly

import (
	"regexp"
	"strings"

	"gymhub/internal/domains/export/model"
	"gymhub/shared/constant"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChar    = regexp.MustCompile(`[^A-Za-z0-9._'-]`)
)

// SafeFilenamePart collapses whitespace runs to "-" and swaps any character that
// is unsafe on common filesystems for "-".
func SafeFilenamePart(part string) string {
	part = whitespaceRun.ReplaceAllString(strings.TrimSpace(part), "-")

	return unsafeChar.ReplaceAllString(part, "-")
}

func principalSlug(p model.Principal) string {
	return SafeFilenamePart(p.FirstName + " " + p.LastName)
}

// BookingHistoryFilename is booking-history-<given>-<family>.xml.
func BookingHistoryFilename(p model.Principal) string {
	return "booking-history-" + principalSlug(p) + ".xml"
}

// WeeklySessionsFilename is sessions-<given>-<family>.xml, with the requested range
// appended when either bound is set.
func WeeklySessionsFilename(p model.Principal, startDate, endDate string) string {
	name := "sessions-" + principalSlug(p)

	switch {
	case startDate != constant.Empty && endDate != constant.Empty:
		name += "-" + SafeFilenamePart(startDate) + "_to_" + SafeFilenamePart(endDate)
	case startDate != constant.Empty:
		name += "-from-" + SafeFilenamePart(startDate)
	case endDate != constant.Empty:
		name += "-until-" + SafeFilenamePart(endDate)
	}

	return name + ".xml"
}
