package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	genai "google.golang.org/genai"

	"github.com/tripforge/travel-planner-go/internal/models"
)

// ErrEmptyResponse is returned when the model answers with no candidates
// or no text part.
var ErrEmptyResponse = errors.New("empty model response")

// GeminiGenerator plans trips with the Gemini API. It asks for
// application/json and parses the answer strictly against the itinerary
// schema; anything the schema rejects is a generation failure.
type GeminiGenerator struct {
	cli   *genai.Client
	model string
}

// NewGeminiGenerator builds a generator over the official genai client.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("generator: gemini client: %w", err)
	}
	return &GeminiGenerator{cli: cli, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req models.GenerateRequest) (models.Itinerary, error) {
	prompt := BuildPrompt(req)
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return models.Itinerary{}, &GenerationError{Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.Itinerary{}, &GenerationError{Err: ErrEmptyResponse}
	}
	txt := resp.Candidates[0].Content.Parts[0].Text

	var it models.Itinerary
	if err := json.Unmarshal([]byte(txt), &it); err != nil {
		return models.Itinerary{}, &GenerationError{Err: fmt.Errorf("parse model output: %w", err)}
	}
	// The model is not trusted to echo the request back.
	it.City = req.City
	it.Budget = req.Budget
	it.Days = req.Days
	it.Preferences = req.Preferences
	it.CreatedAt = time.Now().UTC()
	if err := it.Validate(); err != nil {
		return models.Itinerary{}, &GenerationError{Err: fmt.Errorf("model output rejected: %w", err)}
	}
	return it, nil
}
