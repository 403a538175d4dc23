// File: services/scheduling/interface.go
package scheduling

import (
	"context"

	"roofline/models"
)

// DayStatus is one calendar cell: a date and whether it is bookable.
type DayStatus struct {
	Date    string `json:"date"`
	Blocked bool   `json:"blocked"`
}

// MonthGrid drives calendar rendering for one (month, region).
type MonthGrid struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	State string      `json:"state"`
	Days  []DayStatus `json:"days"`
}

// SlotStatus is one time-slot row in the picker.
type SlotStatus struct {
	Slot        string `json:"slot"`
	Unavailable bool   `json:"unavailable"`
	Remaining   int    `json:"remaining"`
}

// DaySlots drives the time-slot picker for one (date, region).
type DaySlots struct {
	Date  string       `json:"date"`
	State string       `json:"state"`
	Slots []SlotStatus `json:"slots"`
}

// ReconcileResult reports a committed bulk edit: how many rules were
// removed and the inserted rules with their server-assigned ids.
type ReconcileResult struct {
	Deleted  int                `json:"deleted"`
	Inserted []models.BlockRule `json:"inserted"`
}

// SchedulingService is the consumer-facing scheduling surface: the
// availability queries the calendar and slot picker need, the booking
// flow, and block-rule administration.
type SchedulingService interface {
	MonthAvailability(ctx context.Context, year, month int, state string) (*MonthGrid, error)
	DayAvailability(ctx context.Context, date, state string) (*DaySlots, error)

	BookAppointment(ctx context.Context, formData map[string]string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, state string) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	UpdateSummary(ctx context.Context, id, text string) (*models.Appointment, error)

	ListBlockRules(ctx context.Context, scope *string) ([]models.BlockRule, error)
	CreateBlockRule(ctx context.Context, rule models.BlockRule) (*models.BlockRule, error)
	DeleteBlockRule(ctx context.Context, id string) error
	ReconcileBlockRules(ctx context.Context, scope string, working []models.BlockRule) (*ReconcileResult, error)

	// InvalidateSnapshots drops every cached availability grid so the next
	// read refetches from the store. The resync worker calls this after
	// the post-delete delay.
	InvalidateSnapshots(ctx context.Context) error
}

// ResyncScheduler enqueues the single delayed cache resync that follows a
// deletion. Implemented on the asynq client; faked in tests.
type ResyncScheduler interface {
	ScheduleResync(ctx context.Context) error
}
