package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/tripforge/travel-planner-go/internal/generator"
	"github.com/tripforge/travel-planner-go/internal/itinerary"
	"github.com/tripforge/travel-planner-go/internal/models"
)

// surpriseBonus is the zero-cost activity appended when the preferences
// ask for a surprise.
var surpriseBonus = models.Activity{
	Place:       "Shakespeare and Company",
	Type:        models.ActivityAttraction,
	Description: "A famous independent bookstore with a rich history, opposite Notre-Dame.",
	Cost:        0,
	Lat:         48.8525,
	Lng:         2.3473,
}

// PlannerService owns itinerary generation and relocation. Generation
// runs the configured backend, applies the surprise rule, then assigns
// identifiers so the client can address every node stably.
type PlannerService struct {
	gen generator.Generator
	log *zap.Logger
}

func NewPlannerService(gen generator.Generator, log *zap.Logger) *PlannerService {
	return &PlannerService{gen: gen, log: log}
}

// Generate produces a fully identified itinerary for the request.
//
// When the preferences contain "surprise" (case-insensitive), exactly one
// bonus activity with cost 0 is appended to one uniformly random day. The
// rule lives here rather than in the backends so it holds for the mock
// and the LLM alike. summary.totalCost keeps its generation-time value.
func (s *PlannerService) Generate(ctx context.Context, req models.GenerateRequest) (models.Itinerary, error) {
	it, err := s.gen.Generate(ctx, req)
	if err != nil {
		s.log.Error("itinerary generation failed",
			zap.String("city", req.City),
			zap.Int("days", req.Days),
			zap.Error(err))
		return models.Itinerary{}, err
	}

	if wantsSurprise(req.Preferences) && len(it.Itinerary) > 0 {
		day := rand.IntN(len(it.Itinerary))
		it.Itinerary[day].Activities = append(it.Itinerary[day].Activities, surpriseBonus)
		s.log.Debug("surprise activity added", zap.Int("day", it.Itinerary[day].Day))
	}

	it = itinerary.AssignIdentifiers(it)
	s.log.Info("itinerary generated",
		zap.String("city", it.City),
		zap.Int("days", len(it.Itinerary)),
		zap.Float64("total_cost", it.Summary.TotalCost))
	return it, nil
}

// Relocate applies one drag-style activity move and returns the updated
// itinerary.
func (s *PlannerService) Relocate(req models.RelocateRequest) (models.Itinerary, error) {
	return itinerary.RelocateActivity(req.Itinerary,
		req.SourceDay, req.SourceIndex, req.DestDay, req.DestIndex)
}

func wantsSurprise(preferences string) bool {
	return strings.Contains(strings.ToLower(preferences), "surprise")
}
