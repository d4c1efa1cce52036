package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripforge/travel-planner-go/internal/models"
)

func exportFixture() models.ExportRequest {
	return models.ExportRequest{
		City:    "Paris",
		Summary: models.Summary{TotalCost: 842},
		Itinerary: []models.DayPlan{
			{
				Day: 1,
				Activities: []models.Activity{
					{Place: "Eiffel Tower", Type: models.ActivityAttraction, Description: "Iconic landmark of Paris.", Cost: 25, Lat: 48.8584, Lng: 2.2945},
					{Place: "Musée d'Orsay", Type: models.ActivityMuseum, Description: "Impressionist masterpieces.", Cost: 16, Lat: 48.86, Lng: 2.3266},
				},
				Transport: []models.Transport{
					{From: "Eiffel Tower", To: "Musée d'Orsay", Mode: models.ModeTaxi},
				},
				Hotel: &models.Hotel{Name: "Hotel Lutetia", Price: 400, Lat: 48.8517, Lng: 2.3269},
			},
			{
				Day: 2,
				Activities: []models.Activity{
					{Place: "Cathédrale Notre-Dame de Paris", Type: models.ActivityAttraction, Description: "Famous medieval Catholic cathedral.", Cost: 0, Lat: 48.853, Lng: 2.3499},
				},
				Transport: []models.Transport{},
			},
		},
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WritePDF(&buf, exportFixture()))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 1000)
}

func TestWritePDF_NoHotelDay(t *testing.T) {
	req := exportFixture()
	req.Itinerary = req.Itinerary[1:] // day without a hotel

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, req))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWritePDF_AccentedText(t *testing.T) {
	req := exportFixture()
	req.City = "Besançon"

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, req))
	assert.Greater(t, buf.Len(), 0)
}

func TestExportError_Unwrap(t *testing.T) {
	inner := assert.AnError
	err := &ExportError{Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "export:")
}
