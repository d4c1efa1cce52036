package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tripforge/travel-planner-go/internal/models"
	"github.com/tripforge/travel-planner-go/internal/service"
	"github.com/tripforge/travel-planner-go/pkg/response"
)

// GenerateHandler handles HTTP requests for itinerary generation
type GenerateHandler struct {
	service *service.PlannerService
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(service *service.PlannerService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// Generate handles POST /api/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "City, budget, and days are required.")
		return
	}

	it, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.InternalError(c, "Failed to generate itinerary.")
		return
	}

	response.OK(c, it)
}
