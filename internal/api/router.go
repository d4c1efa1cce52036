package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tripforge/travel-planner-go/internal/config"
	"github.com/tripforge/travel-planner-go/internal/handler"
	"github.com/tripforge/travel-planner-go/internal/middleware"
	"github.com/tripforge/travel-planner-go/internal/service"
)

// SetupRouter wires middleware, handlers and static document serving.
func SetupRouter(cfg *config.Config, log *zap.Logger, planner *service.PlannerService, exporter *service.ExportService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Travel Planner API is running",
		})
	})

	// Previously exported documents are plain static files.
	r.Static("/exports", cfg.ExportDir)

	generateHandler := handler.NewGenerateHandler(planner)
	itineraryHandler := handler.NewItineraryHandler(planner)
	exportHandler := handler.NewExportHandler(exporter, cfg.PublicBaseURL)

	api := r.Group("/api")
	{
		api.POST("/generate", generateHandler.Generate)
		api.POST("/export/pdf", exportHandler.ExportPDF)
		api.POST("/itinerary/relocate", itineraryHandler.Relocate)
	}

	return r
}
