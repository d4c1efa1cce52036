// Package spatial provides the small amount of geometry the planner
// needs: great-circle distances between itinerary stops and a total
// mapping from leg distance to a suggested transport mode.
package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/tripforge/travel-planner-go/internal/models"
)

// EarthRadiusMeters is Earth's mean radius.
const EarthRadiusMeters = 6371000.0

// Distance bands for suggesting a transport mode between two stops.
const (
	maxWalkMeters = 1500.0
	maxBusMeters  = 6000.0
	maxTaxiMeters = 20000.0
)

// Distance returns the great-circle distance in meters between two
// coordinates.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// ActivityDistance returns the distance in meters between two activities.
func ActivityDistance(a, b models.Activity) float64 {
	return Distance(a.Lat, a.Lng, b.Lat, b.Lng)
}

// SuggestMode maps a leg distance to a transport mode. Short hops are
// walked, mid-range legs take the bus, longer ones a taxi, anything
// beyond taxi range the train. Every distance maps to a mode.
func SuggestMode(distanceMeters float64) models.TransportMode {
	switch {
	case distanceMeters <= maxWalkMeters:
		return models.ModeWalk
	case distanceMeters <= maxBusMeters:
		return models.ModeBus
	case distanceMeters <= maxTaxiMeters:
		return models.ModeTaxi
	default:
		return models.ModeTrain
	}
}
