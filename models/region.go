package models

import "time"

// StateRegion holds the fixed booking configuration for one state-level market.
type StateRegion struct {
	Code     string `bson:"code" json:"code" mapstructure:"code"`
	Capacity int    `bson:"capacity" json:"capacity" mapstructure:"capacity"` // max simultaneous bookings per (date, slot)
	Workdays []int  `bson:"workdays" json:"workdays" mapstructure:"workdays"` // 0=Sunday .. 6=Saturday
}

// WorksOn reports whether the region accepts bookings on the given weekday.
func (r StateRegion) WorksOn(day time.Weekday) bool {
	for _, d := range r.Workdays {
		if d == int(day) {
			return true
		}
	}
	return false
}

// RegionTable maps state codes to their booking configuration.
// It is loaded once at startup and never mutated afterwards.
type RegionTable map[string]StateRegion

// Get looks up a region by code. Unknown codes report ok=false; callers
// must treat that as "everything blocked", never as an error.
func (t RegionTable) Get(code string) (StateRegion, bool) {
	r, ok := t[code]
	return r, ok
}

// DefaultRegionTable returns the reference market configuration.
func DefaultRegionTable() RegionTable {
	weekdays := []int{1, 2, 3, 4, 5}
	return RegionTable{
		"GA": {Code: "GA", Capacity: 3, Workdays: weekdays},
		"TN": {Code: "TN", Capacity: 2, Workdays: weekdays},
		"AL": {Code: "AL", Capacity: 2, Workdays: weekdays},
		"SC": {Code: "SC", Capacity: 1, Workdays: weekdays},
	}
}
