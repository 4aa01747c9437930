package handler

import (
	"net/http"

	"orionpos/internal/dto"
	"orionpos/internal/middleware"
	"orionpos/internal/service"

	"github.com/gin-gonic/gin"
)

// MovementsHandler exposes the stock ledger: the movement log, the manual
// movement endpoint and the quick-restock shortcut.
type MovementsHandler struct{ svc service.StockService }

func NewMovementsHandler(svc service.StockService) *MovementsHandler {
	return &MovementsHandler{svc: svc}
}

// Create godoc
// @Summary Record a manual stock movement (admin)
// @Tags stock
// @Accept json
// @Produce json
// @Param request body dto.CreateMovementRequest true "Movement"
// @Success 201 {object} dto.CreateMovementResponse
// @Failure 400 {object} apierror.APIError "insufficient_stock on uncovered exits"
// @Router /v1/stock-movements [post]
func (h *MovementsHandler) Create(c *gin.Context) {
	var req dto.CreateMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordMovement(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MovementsHandler) List(c *gin.Context) {
	var filter dto.MovementFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete reverses and removes a ledger row.
func (h *MovementsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteMovement(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddStock is the quick-restock shortcut: POST /v1/products/:id/add-stock.
func (h *MovementsHandler) AddStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AddStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddStock(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
