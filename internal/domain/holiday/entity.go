package holiday

import (
	"strings"
	"time"
)

type HolidayType string

const (
	TypeNational  HolidayType = "national"
	TypeReligious HolidayType = "religious"
	TypeCompany   HolidayType = "company"
	TypeOther     HolidayType = "other"
)

func ValidType(t HolidayType) bool {
	switch t {
	case TypeNational, TypeReligious, TypeCompany, TypeOther:
		return true
	}
	return false
}

type Holiday struct {
	ID          string
	Name        string
	Date        time.Time // calendar day, stored as SQL DATE (UTC midnight when scanned)
	Type        HolidayType
	IsRecurring bool
	Description *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	CreatedByName *string
}

// SameCalendarDay reports whether the holiday falls on the calendar day of t,
// comparing (year, month, day) components only. The holiday date is read in
// UTC, where DATE columns surface as midnight instants; t is expected in the
// business timezone. Instant equality is deliberately ignored.
func (h *Holiday) SameCalendarDay(t time.Time) bool {
	hy, hm, hd := h.Date.UTC().Date()
	ty, tm, td := t.Date()
	return hy == ty && hm == tm && hd == td
}

// religiousKeywords classify imported holidays by name. Matching is
// case-insensitive substring search.
var religiousKeywords = []string{
	"idul", "natal", "nyepi", "waisak", "imlek", "kenaikan", "maulid", "isra", "mi'raj",
}

// ClassifyType guesses a holiday type from its name: religious on a keyword
// hit, national otherwise. Used by the feed import.
func ClassifyType(name string) HolidayType {
	lower := strings.ToLower(name)
	for _, keyword := range religiousKeywords {
		if strings.Contains(lower, keyword) {
			return TypeReligious
		}
	}
	return TypeNational
}
