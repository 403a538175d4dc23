package scheduling

import (
	"fmt"

	"github.com/google/uuid"

	"roofline/models"
)

// The bulk block editor works on a client-held copy of the whole-day rules
// for one scope (a single state code, or "" for all-regions rules). Days
// are toggled in that copy and the result is committed as a minimal batch
// of deletions and insertions. The helpers here are pure; the service's
// ReconcileBlockRules does the store writes.

// ToggleDay flips one date in the working copy. If a whole-day rule with
// the exact scope already covers the date it is removed; otherwise a new
// rule with a client-generated temporary id is appended.
//
// Scope matching is deliberately exact: toggling a date "open" for GA does
// not carve GA out of a global rule that covers the same date. The date
// simply stays blocked for GA through the global rule. Coarse, but it is
// the committed product behavior.
func ToggleDay(working []models.BlockRule, date, scope, reason string) []models.BlockRule {
	out := working[:0:0]
	removed := false
	for _, r := range working {
		if !removed && r.WholeDay() && r.Date == date && r.State == scope {
			removed = true
			continue
		}
		out = append(out, r)
	}
	if removed {
		return out
	}
	return append(out, models.BlockRule{
		ID:     models.TempIDPrefix + uuid.New().String(),
		Date:   date,
		State:  scope,
		Reason: reason,
	})
}

// DiffRules computes the minimal change set between the committed rules
// and the edited working copy: committed rules missing from the working
// copy are deleted, working rules still carrying temporary ids are
// inserted. Rules present in both are untouched.
func DiffRules(committed, working []models.BlockRule) (toDelete []models.BlockRule, toInsert []models.BlockRule) {
	keep := make(map[string]struct{}, len(working))
	for _, r := range working {
		if !r.HasTempID() {
			keep[r.ID] = struct{}{}
		}
	}
	for _, r := range committed {
		if _, ok := keep[r.ID]; !ok {
			toDelete = append(toDelete, r)
		}
	}
	for _, r := range working {
		if r.HasTempID() {
			toInsert = append(toInsert, r)
		}
	}
	return toDelete, toInsert
}

// validateWorkingSet rejects working copies that would commit rules
// outside the scope being edited, or malformed dates.
func validateWorkingSet(scope string, working []models.BlockRule) error {
	for _, r := range working {
		if r.State != scope {
			return fmt.Errorf("rule %s has scope %q, expected %q", r.ID, r.State, scope)
		}
		if r.Date == "" {
			return fmt.Errorf("rule %s has no date", r.ID)
		}
		if !r.WholeDay() && !models.IsOperatingHour(r.Time) {
			return fmt.Errorf("rule %s has unknown time slot %q", r.ID, r.Time)
		}
	}
	return nil
}
