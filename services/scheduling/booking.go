// File: services/scheduling/booking.go
package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	appointmentRepo "roofline/database/repository/appointment"
	"roofline/models"
	"roofline/services/summary"
	"roofline/utils"
)

// BookAppointment validates the form locally, re-checks availability
// against fresh store state, renders the clipboard summary, and writes
// the appointment. Validation failures never reach the store.
//
// The pre-write re-check narrows the booking race but cannot close it:
// two clients can still pass the check concurrently and overbook a slot.
// Closing it for real needs an atomic insert-if-below-capacity constraint
// on the store side.
func (s *DefaultSchedulingService) BookAppointment(ctx context.Context, formData map[string]string) (*models.Appointment, error) {
	schema := summary.AppointmentSchema()

	problems := summary.Validate(schema, formData)
	date := formData[models.FieldAppointmentDate]
	slot := formData[models.FieldAppointmentTime]
	state := formData[models.FieldState]
	if slot != "" && !models.IsOperatingHour(slot) {
		problems[models.FieldAppointmentTime] = "Appointment time is not a bookable slot"
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}

	// Fresh snapshot for just this date; the one the rep browsed with may
	// be stale by now.
	snap, err := s.loadSnapshot(ctx, state, date, nextDate(date))
	if err != nil {
		return nil, err
	}
	if s.Engine.DateBlocked(snap, date, state, s.now()) ||
		s.Engine.SlotUnavailable(snap, date, slot, state) {
		return nil, &CapacityConflictError{Date: date, Slot: slot, State: state}
	}

	appt := &models.Appointment{
		CreatedAt:        time.Now().UTC(),
		FormData:         formData,
		ClipboardSummary: summary.Render(schema, formData),
	}
	if err := s.ApptRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.invalidate(ctx)
	utils.GetLogger().Info("appointment booked",
		zap.String("id", appt.ID),
		zap.String("date", date),
		zap.String("slot", slot),
		zap.String("state", state))
	return appt, nil
}

// ListAppointments returns bookings, optionally narrowed to one region.
func (s *DefaultSchedulingService) ListAppointments(ctx context.Context, state string) ([]models.Appointment, error) {
	return s.ApptRepo.List(ctx, appointmentRepo.Filter{State: state})
}

// GetAppointment returns one booking by id.
func (s *DefaultSchedulingService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return appt, err
}

// DeleteAppointment removes a booking and schedules the single delayed
// snapshot resync that papers over store read lag.
func (s *DefaultSchedulingService) DeleteAppointment(ctx context.Context, id string) error {
	if err := s.ApptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	s.invalidate(ctx)
	if s.Resync != nil {
		if err := s.Resync.ScheduleResync(ctx); err != nil {
			utils.GetLogger().Warn("failed to schedule post-delete resync", zap.Error(err))
		}
	}
	return nil
}

// UpdateSummary replaces the clipboard text with the given raw text. The
// summary is the rep's editable artifact; it is never re-rendered from
// the form data after creation.
func (s *DefaultSchedulingService) UpdateSummary(ctx context.Context, id, text string) (*models.Appointment, error) {
	if err := s.ApptRepo.UpdateSummary(ctx, id, text); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update summary: %w", err)
	}
	return s.GetAppointment(ctx, id)
}
