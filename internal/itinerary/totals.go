package itinerary

import "github.com/tripforge/travel-planner-go/internal/models"

// ComputeTotalCost sums activity costs and hotel prices over a set of day
// plans. It is a generation-time total: relocations and bonus activities
// deliberately do not trigger a recompute, so the summary keeps reflecting
// the plan as generated.
func ComputeTotalCost(days []models.DayPlan) float64 {
	var total float64
	for _, d := range days {
		for _, a := range d.Activities {
			total += a.Cost
		}
		if d.Hotel != nil {
			total += d.Hotel.Price
		}
	}
	return total
}
