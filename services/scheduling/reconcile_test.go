package scheduling

import (
	"testing"

	"roofline/models"
)

func rule(id, date, scope string) models.BlockRule {
	return models.BlockRule{ID: id, Date: date, State: scope}
}

func TestToggleDay_AddsTempRule(t *testing.T) {
	out := ToggleDay(nil, "2026-09-15", "GA", "crew off-site")
	if len(out) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(out))
	}
	r := out[0]
	if !r.HasTempID() {
		t.Errorf("new rule should carry a temp id, got %q", r.ID)
	}
	if r.Date != "2026-09-15" || r.State != "GA" || !r.WholeDay() {
		t.Errorf("unexpected rule contents: %+v", r)
	}
}

func TestToggleDay_RemovesExactMatch(t *testing.T) {
	working := []models.BlockRule{
		rule("a", "2026-09-15", "GA"),
		rule("b", "2026-09-16", "GA"),
	}
	out := ToggleDay(working, "2026-09-15", "GA", "")
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("expected only rule b left, got %+v", out)
	}
}

func TestToggleDay_DoubleToggleRoundTrips(t *testing.T) {
	working := []models.BlockRule{rule("a", "2026-09-16", "GA")}
	out := ToggleDay(working, "2026-09-15", "GA", "")
	out = ToggleDay(out, "2026-09-15", "GA", "")
	if len(out) != 1 || out[0].ID != "a" {
		t.Fatalf("toggle twice should restore the working copy, got %+v", out)
	}
}

// Toggling a date "open" for one state while a global rule covers the same
// date removes nothing: scope matching is exact, and no all-regions-except
// rule is synthesized. The date stays blocked for that state through the
// global rule. This coarse behavior is intentional and kept; see the open
// questions section in DESIGN.md.
func TestToggleDay_GlobalRuleNotCarvedUp(t *testing.T) {
	working := []models.BlockRule{rule("g", "2026-09-15", "")} // global
	out := ToggleDay(working, "2026-09-15", "GA", "")

	var globalKept bool
	for _, r := range out {
		if r.ID == "g" {
			globalKept = true
		}
	}
	if !globalKept {
		t.Fatal("global rule must survive a per-state toggle")
	}
	// The toggle added a GA rule instead of unblocking anything; the engine
	// still reports the date blocked for GA either way.
	e := testEngine()
	if !e.DateBlocked(Snapshot{BlockRules: out}, "2026-09-15", "GA", monday) {
		t.Error("date should remain blocked for GA via the global rule")
	}
}

func TestDiffRules(t *testing.T) {
	committed := []models.BlockRule{
		rule("a", "2026-09-15", "GA"),
		rule("b", "2026-09-16", "GA"),
	}
	working := []models.BlockRule{
		rule("a", "2026-09-15", "GA"),               // kept
		rule("tmp-1", "2026-09-17", "GA"),           // inserted
		{ID: "tmp-2", Date: "2026-09-18", State: "GA"}, // inserted
	}

	toDelete, toInsert := DiffRules(committed, working)
	if len(toDelete) != 1 || toDelete[0].ID != "b" {
		t.Errorf("toDelete = %+v, want just b", toDelete)
	}
	if len(toInsert) != 2 {
		t.Errorf("toInsert = %+v, want the two temp rules", toInsert)
	}
	for _, r := range toInsert {
		if !r.HasTempID() {
			t.Errorf("inserted rule %q should carry a temp id", r.ID)
		}
	}
}

func TestDiffRules_NoChanges(t *testing.T) {
	committed := []models.BlockRule{rule("a", "2026-09-15", "")}
	working := []models.BlockRule{rule("a", "2026-09-15", "")}
	toDelete, toInsert := DiffRules(committed, working)
	if len(toDelete) != 0 || len(toInsert) != 0 {
		t.Errorf("expected empty diff, got delete=%v insert=%v", toDelete, toInsert)
	}
}

func TestValidateWorkingSet(t *testing.T) {
	cases := []struct {
		name    string
		scope   string
		working []models.BlockRule
		wantErr bool
	}{
		{"clean", "GA", []models.BlockRule{rule("a", "2026-09-15", "GA")}, false},
		{"wrong scope", "GA", []models.BlockRule{rule("a", "2026-09-15", "TN")}, true},
		{"missing date", "GA", []models.BlockRule{{ID: "a", State: "GA"}}, true},
		{"bad slot", "GA", []models.BlockRule{{ID: "a", Date: "2026-09-15", State: "GA", Time: "8:00 AM"}}, true},
		{"slot rule ok", "GA", []models.BlockRule{{ID: "a", Date: "2026-09-15", State: "GA", Time: "2:00 PM"}}, false},
	}
	for _, tc := range cases {
		err := validateWorkingSet(tc.scope, tc.working)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: err=%v, wantErr=%v", tc.name, err, tc.wantErr)
		}
	}
}
