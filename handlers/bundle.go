package handlers

import (
	callbackRepo "roofline/database/repository/callback"
	"roofline/services/scheduling"
)

// HandlerBundle groups the handlers so route registration takes one
// argument instead of four.
type HandlerBundle struct {
	Schedule  *ScheduleHandler
	Appt      *AppointmentHandler
	BlockRule *BlockRuleHandler
	Callback  *CallbackHandler
}

// NewHandlerBundle wires every handler against the scheduling service
// and the callback repository.
func NewHandlerBundle(svc scheduling.SchedulingService, callbacks callbackRepo.CallbackRepository) *HandlerBundle {
	return &HandlerBundle{
		Schedule:  NewScheduleHandler(svc),
		Appt:      NewAppointmentHandler(svc),
		BlockRule: NewBlockRuleHandler(svc),
		Callback:  NewCallbackHandler(callbacks),
	}
}
