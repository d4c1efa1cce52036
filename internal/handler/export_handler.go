package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tripforge/travel-planner-go/internal/models"
	"github.com/tripforge/travel-planner-go/internal/service"
	"github.com/tripforge/travel-planner-go/internal/storage"
	"github.com/tripforge/travel-planner-go/pkg/response"
)

// ExportHandler handles HTTP requests for PDF export
type ExportHandler struct {
	service *service.ExportService
	baseURL string // optional override for the public document URL
}

// NewExportHandler creates a new export handler
func NewExportHandler(service *service.ExportService, baseURL string) *ExportHandler {
	return &ExportHandler{service: service, baseURL: baseURL}
}

// ExportPDF handles POST /api/export/pdf
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Itinerary data is required.")
		return
	}

	doc, err := h.service.ExportPDF(req)
	if err != nil {
		response.InternalError(c, "Failed to generate PDF.")
		return
	}

	response.OK(c, gin.H{"url": h.documentURL(c, doc)})
}

// documentURL builds the retrievable URL for an exported document from
// the configured base URL, or from the request host when none is set.
func (h *ExportHandler) documentURL(c *gin.Context, doc storage.Document) string {
	if h.baseURL != "" {
		return h.baseURL + doc.PublicPath()
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + doc.PublicPath()
}
