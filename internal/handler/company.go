package handler

import (
	"net/http"

	"orionpos/internal/dto"
	"orionpos/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler serves the company config singleton.
type CompanyHandler struct{ svc service.ConfigService }

func NewCompanyHandler(svc service.ConfigService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

func (h *CompanyHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.UpdateConfigRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
