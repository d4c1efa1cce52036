package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tripforge/travel-planner-go/internal/itinerary"
	"github.com/tripforge/travel-planner-go/internal/models"
	"github.com/tripforge/travel-planner-go/internal/service"
	"github.com/tripforge/travel-planner-go/pkg/response"
)

// ItineraryHandler handles HTTP requests that operate on an existing
// itinerary value carried in the request body.
type ItineraryHandler struct {
	service *service.PlannerService
}

// NewItineraryHandler creates a new itinerary handler
func NewItineraryHandler(service *service.PlannerService) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

// Relocate handles POST /api/itinerary/relocate
func (h *ItineraryHandler) Relocate(c *gin.Context) {
	var req models.RelocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Itinerary and move positions are required.")
		return
	}
	if len(req.Itinerary.Itinerary) == 0 {
		response.BadRequest(c, "Itinerary data is required.")
		return
	}

	it, err := h.service.Relocate(req)
	if err != nil {
		if errors.Is(err, itinerary.ErrDayNotFound) || errors.Is(err, itinerary.ErrSourceIndexOutOfRange) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "Failed to relocate activity.")
		return
	}

	response.OK(c, it)
}
