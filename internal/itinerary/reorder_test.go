package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripforge/travel-planner-go/internal/models"
)

func act(place string) models.Activity {
	return models.Activity{
		Place:       place,
		Type:        models.ActivityAttraction,
		Description: place + " description",
		Cost:        10,
		Lat:         48.85,
		Lng:         2.35,
	}
}

func day(num int, places ...string) models.DayPlan {
	acts := make([]models.Activity, len(places))
	for i, p := range places {
		acts[i] = act(p)
	}
	return models.DayPlan{Day: num, Activities: acts}
}

func plan(days ...models.DayPlan) models.Itinerary {
	return models.Itinerary{
		City:      "Paris",
		Itinerary: days,
		Summary:   models.Summary{TotalCost: 100},
	}
}

func places(d models.DayPlan) []string {
	out := make([]string, len(d.Activities))
	for i, a := range d.Activities {
		out[i] = a.Place
	}
	return out
}

func TestRelocateActivity_SameDayForward(t *testing.T) {
	it := plan(day(1, "A", "B", "C"))

	got, err := RelocateActivity(it, 1, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, places(got.Itinerary[0]))
}

func TestRelocateActivity_SameDayBackward(t *testing.T) {
	it := plan(day(1, "A", "B", "C"))

	got, err := RelocateActivity(it, 1, 2, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, places(got.Itinerary[0]))
}

func TestRelocateActivity_CrossDay(t *testing.T) {
	it := plan(day(1, "A", "B"), day(2, "C"))

	got, err := RelocateActivity(it, 1, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, places(got.Itinerary[0]))
	assert.Equal(t, []string{"C", "A"}, places(got.Itinerary[1]))
}

func TestRelocateActivity_ToEmptyDay(t *testing.T) {
	it := plan(day(1, "A"), day(2))

	got, err := RelocateActivity(it, 1, 0, 2, 0)
	require.NoError(t, err)
	assert.Empty(t, got.Itinerary[0].Activities)
	assert.Equal(t, []string{"A"}, places(got.Itinerary[1]))
}

func TestRelocateActivity_SingleActivityNoop(t *testing.T) {
	it := plan(day(1, "A"))

	got, err := RelocateActivity(it, 1, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, places(got.Itinerary[0]))
}

func TestRelocateActivity_DestIndexClamped(t *testing.T) {
	it := plan(day(1, "A", "B"), day(2, "C"))

	// Far past the end of day 2: clamps to an append.
	got, err := RelocateActivity(it, 1, 1, 2, 99)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, places(got.Itinerary[1]))

	// Negative destination clamps to the front.
	got, err = RelocateActivity(it, 1, 1, 2, -3)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, places(got.Itinerary[1]))
}

func TestRelocateActivity_AbsentDestinationIsNoop(t *testing.T) {
	it := plan(day(1, "A", "B"), day(2, "C"))

	got, err := RelocateActivity(it, 1, 0, 99, 0)
	require.NoError(t, err)
	assert.Equal(t, it, got)
}

func TestRelocateActivity_SourceErrors(t *testing.T) {
	it := plan(day(1, "A"), day(2, "C"))

	_, err := RelocateActivity(it, 99, 0, 2, 0)
	assert.ErrorIs(t, err, ErrDayNotFound)

	_, err = RelocateActivity(it, 1, 5, 2, 0)
	assert.ErrorIs(t, err, ErrSourceIndexOutOfRange)

	_, err = RelocateActivity(it, 1, -1, 2, 0)
	assert.ErrorIs(t, err, ErrSourceIndexOutOfRange)
}

func TestRelocateActivity_DoesNotMutateInput(t *testing.T) {
	it := plan(day(1, "A", "B", "C"), day(2, "D"))
	before := plan(day(1, "A", "B", "C"), day(2, "D"))

	got, err := RelocateActivity(it, 1, 0, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, before, it, "caller's itinerary must stay untouched")
	assert.Equal(t, []string{"D"}, places(it.Itinerary[1]))
	assert.Equal(t, []string{"A", "D"}, places(got.Itinerary[1]))
}

func TestRelocateActivity_PreservesEverythingElse(t *testing.T) {
	hotel := &models.Hotel{Name: "Hotel Lutetia", Price: 400, Lat: 48.85, Lng: 2.32}
	d1 := day(1, "A", "B")
	d1.Hotel = hotel
	d1.Transport = []models.Transport{{From: "A", To: "B", Mode: models.ModeWalk}}
	it := plan(d1, day(2, "C"))

	got, err := RelocateActivity(it, 1, 1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, hotel, got.Itinerary[0].Hotel)
	assert.Equal(t, d1.Transport, got.Itinerary[0].Transport)
	assert.Equal(t, 1, got.Itinerary[0].Day)
	assert.Equal(t, 2, got.Itinerary[1].Day)
	assert.Equal(t, it.Summary.TotalCost, got.Summary.TotalCost,
		"totalCost keeps its generation-time value")
}

func TestRelocateActivity_ConservesActivityCount(t *testing.T) {
	it := plan(day(1, "A", "B", "C"), day(2, "D"), day(3))

	moves := []struct{ sd, si, dd, di int }{
		{1, 0, 1, 2},
		{1, 2, 3, 0},
		{2, 0, 1, 0},
		{1, 1, 2, 5},
		{3, 0, 3, 0},
	}
	want := TotalActivities(it)
	cur := it
	for _, m := range moves {
		var err error
		cur, err = RelocateActivity(cur, m.sd, m.si, m.dd, m.di)
		require.NoError(t, err)
		assert.Equal(t, want, TotalActivities(cur))
	}
}
