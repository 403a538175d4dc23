package models

import "time"

// Form-data keys the scheduling core depends on. The rest of the form is
// free-form customer data the core stores but never interprets.
const (
	FieldAppointmentDate = "appointmentDate"
	FieldAppointmentTime = "appointmentTime"
	FieldState           = "state"
)

// Appointment is one booked inspection visit.
//
// ClipboardSummary is rendered once at creation and stored verbatim; after
// that it is only ever edited as raw text, never re-derived from FormData.
type Appointment struct {
	ID               string            `bson:"id" json:"id"`
	CreatedAt        time.Time         `bson:"created_at" json:"createdAt"`
	FormData         map[string]string `bson:"form_data" json:"formData"`
	ClipboardSummary string            `bson:"clipboard_summary" json:"clipboardSummary"`
}

// Date returns the appointment's calendar date string.
func (a Appointment) Date() string { return a.FormData[FieldAppointmentDate] }

// Slot returns the appointment's time-slot label.
func (a Appointment) Slot() string { return a.FormData[FieldAppointmentTime] }

// State returns the appointment's region code.
func (a Appointment) State() string { return a.FormData[FieldState] }

// Matches reports whether the appointment occupies the given
// (date, slot, region) triple.
func (a Appointment) Matches(date, slot, state string) bool {
	return a.Date() == date && a.Slot() == slot && a.State() == state
}
