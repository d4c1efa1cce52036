package generator

import (
	"fmt"
	"strings"

	"github.com/tripforge/travel-planner-go/internal/models"
)

// BuildPrompt renders the generation prompt for one trip request. The
// model is instructed to answer with JSON only, in the exact wire shape
// the client consumes.
func BuildPrompt(req models.GenerateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Create a travel itinerary for the city: %s, with a budget of %.0f USD, for %d days, with preferences for: %s.\n",
		req.City, req.Budget, req.Days, req.Preferences)
	b.WriteString(`For each day, provide:
- A list of places to visit (like museums, parks, restaurants) with a short description, estimated cost, and geographic coordinates (latitude and longitude).
- Transportation methods between locations.
- A hotel suggestion with its price and coordinates.

Return the output in a valid JSON format. Do not include any text outside the JSON.
The JSON structure should be:
{
  "itinerary": [
    {
      "day": number,
      "activities": [
        { "place": "string", "type": "museum"|"restaurant"|"park"|"attraction", "description": "string", "cost": number, "lat": number, "lng": number }
      ],
      "transport": [
        { "from": "string", "to": "string", "mode": "walk"|"bus"|"train"|"taxi" }
      ],
      "hotel": { "name": "string", "price": number, "lat": number, "lng": number }
    }
  ],
  "summary": { "totalCost": number }
}
`)
	return b.String()
}
