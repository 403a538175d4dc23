package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"roofline/services/scheduling"
	"roofline/utils"
)

// AppointmentHandler handles booking CRUD.
type AppointmentHandler struct {
	Svc scheduling.SchedulingService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// CreateAppointment handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var input struct {
		FormData map[string]string `json:"formData" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.BookAppointment(c.Request.Context(), input.FormData)
	if err != nil {
		var ve *scheduling.ValidationError
		if errors.As(err, &ve) {
			utils.JSONFieldErrors(c, "form is incomplete", ve.Fields)
			return
		}
		if scheduling.IsCapacityConflict(err) {
			utils.JSONError(c, http.StatusConflict, "slot no longer available", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to book appointment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointments handles GET /api/appointments?state=.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appts, err := h.Svc.ListAppointments(c.Request.Context(), c.Query("state"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointment handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to load appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointment handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Svc.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to delete appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// UpdateSummary handles PATCH /api/appointments/:id/summary. The body is
// the raw replacement text, not JSON: summaries are copied in and out of
// clipboards verbatim.
func (h *AppointmentHandler) UpdateSummary(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 64<<10))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read body", err.Error())
		return
	}

	appt, err := h.Svc.UpdateSummary(c.Request.Context(), c.Param("id"), string(body))
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to update summary", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}
