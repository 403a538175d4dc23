package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roofline/models"
	"roofline/services/scheduling"
	"roofline/utils"
)

// ScheduleHandler serves the availability queries behind the calendar
// and the time-slot picker.
type ScheduleHandler struct {
	Svc scheduling.SchedulingService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc scheduling.SchedulingService) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc}
}

// MonthAvailability handles GET /api/schedule/month?year=&month=&state=.
func (h *ScheduleHandler) MonthAvailability(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		utils.JSONError(c, http.StatusBadRequest, "invalid year", c.Query("year"))
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", c.Query("month"))
		return
	}
	state := c.Query("state")

	grid, err := h.Svc.MonthAvailability(c.Request.Context(), year, month, state)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, grid)
}

// DayAvailability handles GET /api/schedule/day?date=&state=.
func (h *ScheduleHandler) DayAvailability(c *gin.Context) {
	date := c.Query("date")
	state := c.Query("state")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date is required", "")
		return
	}

	day, err := h.Svc.DayAvailability(c.Request.Context(), date, state)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, day)
}

// OperatingHours handles GET /api/schedule/hours — the fixed slot labels
// in display order, for clients that render pickers without a date yet.
func (h *ScheduleHandler) OperatingHours(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hours": models.OperatingHours()})
}
