package models

// DateLayout is the calendar-date format used everywhere a date string
// appears: appointment dates, block rules, holidays, cache keys.
// Lexicographic order equals chronological order, which the Mongo range
// queries rely on.
const DateLayout = "2006-01-02"

// operatingHours is the fixed ordered sequence of bookable time slots,
// shared across all regions.
var operatingHours = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

// OperatingHours returns a copy of the slot sequence so callers cannot
// reorder the shared backing array.
func OperatingHours() []string {
	out := make([]string, len(operatingHours))
	copy(out, operatingHours)
	return out
}

// IsOperatingHour reports whether the label is one of the fixed slots.
func IsOperatingHour(slot string) bool {
	for _, h := range operatingHours {
		if h == slot {
			return true
		}
	}
	return false
}

// DefaultHolidays returns the fixed holiday block list (exact date strings).
// Supplied as configuration; this is the seed set.
func DefaultHolidays() []string {
	return []string{
		"2026-01-01", // New Year's Day
		"2026-05-25", // Memorial Day
		"2026-07-03", // Independence Day (observed)
		"2026-09-07", // Labor Day
		"2026-11-26", // Thanksgiving
		"2026-11-27",
		"2026-12-24", // Christmas Eve
		"2026-12-25", // Christmas Day
	}
}
