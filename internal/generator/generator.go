// Package generator produces candidate itineraries for a trip request,
// either from the Gemini API or from a deterministic mock used when no
// API key is configured.
package generator

import (
	"context"
	"fmt"

	"github.com/tripforge/travel-planner-go/internal/models"
)

// Generator turns a trip request into a candidate itinerary. The result
// carries no identifiers; identity assignment happens in the service
// layer after generation returns.
type Generator interface {
	Generate(ctx context.Context, req models.GenerateRequest) (models.Itinerary, error)
}

// GenerationError reports an upstream generation failure: the API call
// itself, or a response that could not be parsed into the schema.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generator: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
