package handler

import (
	"fmt"
	"time"

	"orionpos/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportsHandler streams CSV downloads for the back office.
type ExportsHandler struct{ svc service.ExportService }

func NewExportsHandler(svc service.ExportService) *ExportsHandler {
	return &ExportsHandler{svc: svc}
}

func (h *ExportsHandler) Products(c *gin.Context) {
	data, err := h.svc.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	sendCSV(c, "products", data)
}

func (h *ExportsHandler) Movements(c *gin.Context) {
	data, err := h.svc.Movements(c.Request.Context(), c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendCSV(c, "stock-movements", data)
}

func (h *ExportsHandler) Sales(c *gin.Context) {
	data, err := h.svc.Sales(c.Request.Context(), c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendCSV(c, "sales", data)
}

func (h *ExportsHandler) Clients(c *gin.Context) {
	data, err := h.svc.Clients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	sendCSV(c, "clients", data)
}

func sendCSV(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "text/csv; charset=utf-8", data)
}
