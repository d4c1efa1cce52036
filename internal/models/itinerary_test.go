package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItinerary() Itinerary {
	return Itinerary{
		City: "Paris",
		Itinerary: []DayPlan{
			{
				Day: 1,
				Activities: []Activity{
					{Place: "Louvre Museum", Type: ActivityMuseum, Description: "Home to the Mona Lisa.", Cost: 17, Lat: 48.8606, Lng: 2.3376},
				},
				Transport: []Transport{},
				Hotel:     &Hotel{Name: "Hotel Lutetia", Price: 400, Lat: 48.8517, Lng: 2.3269},
			},
			{Day: 2, Activities: []Activity{}, Transport: []Transport{}},
		},
		Summary: Summary{TotalCost: 417},
	}
}

func TestItineraryValidate_OK(t *testing.T) {
	require.NoError(t, validItinerary().Validate())
}

func TestItineraryValidate_MissingCity(t *testing.T) {
	it := validItinerary()
	it.City = ""
	assert.ErrorContains(t, it.Validate(), "city")
}

func TestItineraryValidate_DuplicateDayNumbers(t *testing.T) {
	it := validItinerary()
	it.Itinerary[1].Day = 1
	assert.ErrorContains(t, it.Validate(), "duplicate day number")
}

func TestItineraryValidate_NonPositiveDay(t *testing.T) {
	it := validItinerary()
	it.Itinerary[0].Day = 0
	assert.ErrorContains(t, it.Validate(), "positive")
}

func TestActivityValidate(t *testing.T) {
	base := Activity{Place: "Louvre Museum", Type: ActivityMuseum, Cost: 17, Lat: 48.86, Lng: 2.33}
	require.NoError(t, base.Validate())

	bad := base
	bad.Type = "volcano"
	assert.ErrorContains(t, bad.Validate(), "unknown type")

	bad = base
	bad.Cost = -1
	assert.ErrorContains(t, bad.Validate(), "negative cost")

	bad = base
	bad.Lat = 91
	assert.ErrorContains(t, bad.Validate(), "out of range")

	bad = base
	bad.Lng = -181
	assert.ErrorContains(t, bad.Validate(), "out of range")

	bad = base
	bad.Place = ""
	assert.Error(t, bad.Validate())
}

func TestTransportValidate(t *testing.T) {
	require.NoError(t, Transport{From: "A", To: "B", Mode: ModeWalk}.Validate())
	assert.ErrorContains(t, Transport{From: "A", To: "B", Mode: "rocket"}.Validate(), "unknown mode")
}

func TestHotelValidate(t *testing.T) {
	require.NoError(t, Hotel{Name: "H", Price: 100, Lat: 0, Lng: 0}.Validate())
	assert.Error(t, Hotel{Name: "", Price: 100}.Validate())
	assert.Error(t, Hotel{Name: "H", Price: -5}.Validate())
	assert.Error(t, Hotel{Name: "H", Price: 5, Lat: 100}.Validate())
}

func TestClosedSets(t *testing.T) {
	for _, v := range []ActivityType{ActivityMuseum, ActivityRestaurant, ActivityPark, ActivityAttraction} {
		assert.True(t, v.Valid())
	}
	assert.False(t, ActivityType("spa").Valid())

	for _, v := range []TransportMode{ModeWalk, ModeBus, ModeTrain, ModeTaxi} {
		assert.True(t, v.Valid())
	}
	assert.False(t, TransportMode("boat").Valid())
}
