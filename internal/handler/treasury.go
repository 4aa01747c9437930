package handler

import (
	"net/http"

	"orionpos/internal/dto"
	"orionpos/internal/service"

	"github.com/gin-gonic/gin"
)

// TreasuryHandler covers expenses and financial goals; admin-only routes.
type TreasuryHandler struct{ svc service.TreasuryService }

func NewTreasuryHandler(svc service.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{svc: svc}
}

// ── Expenses ─────────────────────────────────────────────────────────────────

func (h *TreasuryHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateExpense(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TreasuryHandler) ListExpenses(c *gin.Context) {
	resp, err := h.svc.ListExpenses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TreasuryHandler) UpdateExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateExpense(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TreasuryHandler) DeleteExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteExpense(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Financial goals ──────────────────────────────────────────────────────────

func (h *TreasuryHandler) CreateGoal(c *gin.Context) {
	var req dto.CreateGoalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateGoal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TreasuryHandler) ListGoals(c *gin.Context) {
	resp, err := h.svc.ListGoals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TreasuryHandler) UpdateGoal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateGoal(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TreasuryHandler) DeleteGoal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteGoal(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
