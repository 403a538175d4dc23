package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	callbackRepo "roofline/database/repository/callback"
	"roofline/models"
	"roofline/utils"
)

// CallbackHandler tracks "call this customer back" reminders for reps.
type CallbackHandler struct {
	Repo callbackRepo.CallbackRepository
}

// NewCallbackHandler creates a new CallbackHandler.
func NewCallbackHandler(repo callbackRepo.CallbackRepository) *CallbackHandler {
	return &CallbackHandler{Repo: repo}
}

// ListCallbacks handles GET /api/callbacks. status= filters to
// pending or done; missing or empty returns everything.
func (h *CallbackHandler) ListCallbacks(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != models.CallbackPending && status != models.CallbackDone {
		utils.JSONError(c, http.StatusBadRequest, "invalid status", status)
		return
	}
	callbacks, err := h.Repo.List(c.Request.Context(), status)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to list callbacks", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"callbacks": callbacks})
}

// CreateCallback handles POST /api/callbacks.
func (h *CallbackHandler) CreateCallback(c *gin.Context) {
	var cb models.Callback
	if err := c.ShouldBindJSON(&cb); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if cb.CustomerName == "" || cb.Phone == "" || cb.CallbackDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "customerName, phone and callbackDate are required")
		return
	}
	if err := h.Repo.Create(c.Request.Context(), &cb); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to create callback", err.Error())
		return
	}
	c.JSON(http.StatusCreated, cb)
}

// UpdateCallbackStatus handles PATCH /api/callbacks/:id/status.
func (h *CallbackHandler) UpdateCallbackStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Status != models.CallbackPending && input.Status != models.CallbackDone {
		utils.JSONError(c, http.StatusBadRequest, "invalid status", input.Status)
		return
	}
	if err := h.Repo.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		if errors.Is(err, callbackRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "callback not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to update callback", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteCallback handles DELETE /api/callbacks/:id.
func (h *CallbackHandler) DeleteCallback(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, callbackRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "callback not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to delete callback", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
