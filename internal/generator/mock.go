package generator

import (
	"context"
	"time"

	"github.com/tripforge/travel-planner-go/internal/itinerary"
	"github.com/tripforge/travel-planner-go/internal/models"
	"github.com/tripforge/travel-planner-go/internal/spatial"
)

// catalog is the fixed pool of places the mock planner draws from. The
// entries are real Paris sights regardless of the requested city; the
// mock exists so the rest of the system can run without an API key, not
// to be geographically honest.
var catalog = []models.Activity{
	{Place: "Eiffel Tower", Type: models.ActivityAttraction, Description: "Iconic landmark of Paris.", Cost: 25, Lat: 48.8584, Lng: 2.2945},
	{Place: "Louvre Museum", Type: models.ActivityMuseum, Description: "Home to the Mona Lisa.", Cost: 17, Lat: 48.8606, Lng: 2.3376},
	{Place: "Cathédrale Notre-Dame de Paris", Type: models.ActivityAttraction, Description: "Famous medieval Catholic cathedral.", Cost: 0, Lat: 48.853, Lng: 2.3499},
	{Place: "Jardin du Luxembourg", Type: models.ActivityPark, Description: "Palace gardens with tree-lined promenades.", Cost: 0, Lat: 48.8462, Lng: 2.3372},
	{Place: "Musée d'Orsay", Type: models.ActivityMuseum, Description: "Impressionist masterpieces in a former railway station.", Cost: 16, Lat: 48.86, Lng: 2.3266},
	{Place: "Le Procope", Type: models.ActivityRestaurant, Description: "One of the oldest restaurants in the city.", Cost: 45, Lat: 48.8531, Lng: 2.3389},
	{Place: "Jardin des Tuileries", Type: models.ActivityPark, Description: "Formal garden between the Louvre and Place de la Concorde.", Cost: 0, Lat: 48.8634, Lng: 2.3275},
	{Place: "Sacré-Cœur", Type: models.ActivityAttraction, Description: "Basilica with a sweeping view from Montmartre.", Cost: 0, Lat: 48.8867, Lng: 2.3431},
}

var mockHotel = models.Hotel{
	Name:  "Hotel Lutetia",
	Price: 400,
	Lat:   48.8517,
	Lng:   2.3269,
}

const activitiesPerDay = 2

// MockGenerator is a deterministic planner used for development and
// tests. It honors the requested day count exactly and derives transport
// legs from the distance between consecutive stops.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator { return &MockGenerator{} }

func (m *MockGenerator) Generate(_ context.Context, req models.GenerateRequest) (models.Itinerary, error) {
	days := make([]models.DayPlan, req.Days)
	next := 0
	for i := range days {
		acts := make([]models.Activity, 0, activitiesPerDay)
		for range activitiesPerDay {
			acts = append(acts, catalog[next%len(catalog)])
			next++
		}
		legs := make([]models.Transport, 0, len(acts)-1)
		for j := 1; j < len(acts); j++ {
			d := spatial.ActivityDistance(acts[j-1], acts[j])
			legs = append(legs, models.Transport{
				From: acts[j-1].Place,
				To:   acts[j].Place,
				Mode: spatial.SuggestMode(d),
			})
		}
		hotel := mockHotel
		days[i] = models.DayPlan{
			Day:        i + 1,
			Activities: acts,
			Transport:  legs,
			Hotel:      &hotel,
		}
	}

	return models.Itinerary{
		City:        req.City,
		Budget:      req.Budget,
		Days:        req.Days,
		Preferences: req.Preferences,
		Itinerary:   days,
		Summary:     models.Summary{TotalCost: itinerary.ComputeTotalCost(days)},
		CreatedAt:   time.Now().UTC(),
	}, nil
}
