package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roofline/models"
	"roofline/services/scheduling"
	"roofline/utils"
)

// BlockRuleHandler handles the admin availability-override surface.
type BlockRuleHandler struct {
	Svc scheduling.SchedulingService
}

// NewBlockRuleHandler creates a new BlockRuleHandler.
func NewBlockRuleHandler(svc scheduling.SchedulingService) *BlockRuleHandler {
	return &BlockRuleHandler{Svc: svc}
}

// ListBlockRules handles GET /api/admin/block-rules. Without a scope
// param every rule is returned; scope= selects the all-regions rules and
// scope=GA the GA-scoped ones.
func (h *BlockRuleHandler) ListBlockRules(c *gin.Context) {
	var scope *string
	if raw, ok := c.GetQuery("scope"); ok {
		scope = &raw
	}
	rules, err := h.Svc.ListBlockRules(c.Request.Context(), scope)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to list block rules", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// CreateBlockRule handles POST /api/admin/block-rules.
func (h *BlockRuleHandler) CreateBlockRule(c *gin.Context) {
	var input struct {
		Date   string `json:"date" binding:"required"`
		Time   string `json:"time"`
		State  string `json:"state"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rule, err := h.Svc.CreateBlockRule(c.Request.Context(), models.BlockRule{
		Date:   input.Date,
		Time:   input.Time,
		State:  input.State,
		Reason: input.Reason,
	})
	if err != nil {
		var ve *scheduling.ValidationError
		if errors.As(err, &ve) {
			utils.JSONFieldErrors(c, "invalid block rule", ve.Fields)
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to create block rule", err.Error())
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// DeleteBlockRule handles DELETE /api/admin/block-rules/:id.
func (h *BlockRuleHandler) DeleteBlockRule(c *gin.Context) {
	if err := h.Svc.DeleteBlockRule(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "block rule not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to delete block rule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ReconcileBlockRules handles POST /api/admin/block-rules/reconcile: the
// bulk calendar editor commits its whole working copy for one scope.
func (h *BlockRuleHandler) ReconcileBlockRules(c *gin.Context) {
	var input struct {
		Scope string             `json:"scope"`
		Rules []models.BlockRule `json:"rules"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.ReconcileBlockRules(c.Request.Context(), input.Scope, input.Rules)
	if err != nil {
		var ve *scheduling.ValidationError
		if errors.As(err, &ve) {
			utils.JSONFieldErrors(c, "invalid working set", ve.Fields)
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to reconcile block rules", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
