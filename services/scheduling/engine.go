package scheduling

import (
	"time"

	"roofline/models"
)

// Snapshot is the locally held view of the booking index and block-rule
// store that availability decisions are computed against. It is fetched
// ahead of time and is not guaranteed fresh at the instant of booking;
// callers that are about to write re-check against a fresh one.
type Snapshot struct {
	Appointments []models.Appointment
	BlockRules   []models.BlockRule
}

// Engine is the pure availability decision core. It holds only fixed
// configuration; every decision is a total function of (config, snapshot,
// inputs) with no side effects. Invalid or missing inputs always resolve
// to the most restrictive answer, never to an error.
type Engine struct {
	regions  models.RegionTable
	hours    []string
	holidays map[string]struct{}
}

// NewEngine builds an engine from the externally supplied configuration.
func NewEngine(regions models.RegionTable, hours []string, holidays []string) *Engine {
	hset := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		hset[h] = struct{}{}
	}
	return &Engine{regions: regions, hours: hours, holidays: hset}
}

// Hours returns the operating-hour slot labels in display order.
func (e *Engine) Hours() []string {
	out := make([]string, len(e.hours))
	copy(out, e.hours)
	return out
}

// Regions returns the region configuration table.
func (e *Engine) Regions() models.RegionTable { return e.regions }

// SlotUnavailable reports whether a single (date, slot, region) triple can
// no longer be booked. The capacity check and the block-rule check are
// independent; either alone blocks the slot.
func (e *Engine) SlotUnavailable(snap Snapshot, date, slot, state string) bool {
	region, ok := e.regions.Get(state)
	if !ok {
		return true
	}

	booked := 0
	for _, a := range snap.Appointments {
		if a.Matches(date, slot, state) {
			booked++
		}
	}
	if booked >= region.Capacity {
		return true
	}

	for _, r := range snap.BlockRules {
		if r.Date == date && r.Time == slot && r.AppliesTo(state) {
			return true
		}
	}
	return false
}

// DateBlocked reports whether an entire calendar date is closed for the
// region. Checks run in a fixed order and short-circuit on the first hit:
//
//  1. no region selected
//  2. unknown region
//  3. date strictly before today (date-only; same-day is NOT blocked here)
//  4. weekday outside the region's workday set
//  5. holiday
//  6. whole-day block rule with matching scope
//  7. every operating-hour slot individually unavailable
func (e *Engine) DateBlocked(snap Snapshot, date, state string, today time.Time) bool {
	if state == "" {
		return true
	}
	region, ok := e.regions.Get(state)
	if !ok {
		return true
	}

	day, err := time.ParseInLocation(models.DateLayout, date, time.UTC)
	if err != nil {
		return true
	}
	// Strictly-past dates only. Same-day dates pass this check; the
	// "next-day only" policy quoted to customers is not enforced here.
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(todayDate) {
		return true
	}

	if !region.WorksOn(day.Weekday()) {
		return true
	}

	if _, holiday := e.holidays[date]; holiday {
		return true
	}

	for _, r := range snap.BlockRules {
		if r.Date == date && r.WholeDay() && r.AppliesTo(state) {
			return true
		}
	}

	for _, slot := range e.hours {
		if !e.SlotUnavailable(snap, date, slot, state) {
			return false
		}
	}
	return true
}

// RemainingCapacity returns how many more bookings the slot can take for
// the region. It can go negative only when concurrent clients overbooked
// a slot; unknown regions report zero.
func (e *Engine) RemainingCapacity(snap Snapshot, date, slot, state string) int {
	region, ok := e.regions.Get(state)
	if !ok {
		return 0
	}
	booked := 0
	for _, a := range snap.Appointments {
		if a.Matches(date, slot, state) {
			booked++
		}
	}
	return region.Capacity - booked
}
