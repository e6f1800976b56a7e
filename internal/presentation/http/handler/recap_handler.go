package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/adiwignya/tembakau-api/internal/application/service"
	"github.com/adiwignya/tembakau-api/internal/domain/enum"
	"github.com/adiwignya/tembakau-api/internal/domain/recap"
	"github.com/adiwignya/tembakau-api/internal/presentation/http/dto/response"
)

// RecapHandler handles the recap view and its XLSX export
type RecapHandler struct {
	recapService  *service.RecapService
	exportService *service.ExportService
}

// NewRecapHandler creates a new recap handler
func NewRecapHandler(recapService *service.RecapService, exportService *service.ExportService) *RecapHandler {
	return &RecapHandler{
		recapService:  recapService,
		exportService: exportService,
	}
}

// filterFromQuery builds the recap filter, normalizing the kind the
// same way the transaction endpoints do (legacy Indonesian values
// included). It replies 400 and returns false on an unknown kind.
func filterFromQuery(c *gin.Context) (recap.Filter, bool) {
	f := recap.Filter{
		Kind:         recap.KindAll,
		NameContains: c.Query("name"),
		DateFrom:     c.Query("date_from"),
		DateTo:       c.Query("date_to"),
	}
	if kindStr := c.DefaultQuery("kind", recap.KindAll); kindStr != recap.KindAll {
		kind, err := enum.ParseTransactionKind(kindStr)
		if err != nil {
			response.BadRequest(c, "Unknown transaction kind")
			return recap.Filter{}, false
		}
		f.Kind = kind.String()
	}
	return f, true
}

// Get handles the filtered recap with purchase/sale totals
func (h *RecapHandler) Get(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	result, err := h.recapService.Recap(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recap retrieved successfully", result)
}

// ExportXLSX streams the filtered recap as an Excel workbook
func (h *RecapHandler) ExportXLSX(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	f, err := h.exportService.ExportRecapXLSX(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("recap-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// Headers are already sent; nothing left to do but log via gin.
		_ = c.Error(err)
	}
}
