// Package itinerary holds the pure domain logic over a trip plan:
// identity assignment after generation and the activity reorder engine.
package itinerary

import (
	"github.com/google/uuid"

	"github.com/tripforge/travel-planner-go/internal/models"
)

// AssignIdentifiers stamps a freshly generated itinerary with new unique
// identifiers: the itinerary itself, every day plan, every activity and
// every hotel. Transport legs are purely descriptive and get none.
//
// The transform is pure: day and activity ordering is preserved exactly
// and the input value is not modified.
func AssignIdentifiers(it models.Itinerary) models.Itinerary {
	out := it
	out.ID = uuid.NewString()
	out.Itinerary = make([]models.DayPlan, len(it.Itinerary))
	for i, day := range it.Itinerary {
		d := day
		d.ID = uuid.NewString()
		d.Activities = make([]models.Activity, len(day.Activities))
		for j, act := range day.Activities {
			a := act
			a.ID = uuid.NewString()
			d.Activities[j] = a
		}
		if day.Hotel != nil {
			h := *day.Hotel
			h.ID = uuid.NewString()
			d.Hotel = &h
		}
		out.Itinerary[i] = d
	}
	return out
}
