package models

import (
	"strings"
	"time"
)

// TempIDPrefix marks client-generated block-rule ids produced by the bulk
// calendar editor. Rules carrying one are inserted on commit and handed
// back with server-assigned ids.
const TempIDPrefix = "tmp-"

// BlockRule is an admin-authored availability override.
//
// An empty Time means the whole day is blocked; an empty State means the
// rule applies to every region.
type BlockRule struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time,omitempty" json:"time,omitempty"`
	State     string    `bson:"state,omitempty" json:"state,omitempty"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// WholeDay reports whether the rule blocks every operating-hour slot.
func (r BlockRule) WholeDay() bool { return r.Time == "" }

// AppliesTo reports whether the rule's region scope covers the given state.
func (r BlockRule) AppliesTo(state string) bool {
	return r.State == "" || r.State == state
}

// HasTempID reports whether the rule still carries a client-generated id.
func (r BlockRule) HasTempID() bool {
	return strings.HasPrefix(r.ID, TempIDPrefix)
}
