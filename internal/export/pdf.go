// Package export renders an itinerary into a paginated PDF travel guide.
package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/tripforge/travel-planner-go/internal/models"
)

// ExportError reports a failed document export.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export: %v", e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// WritePDF renders the travel guide to w: a title header with the total
// estimated cost, then one block per day (hotel if present, activities,
// transport) followed by a page break after each day.
func WritePDF(w io.Writer, req models.ExportRequest) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	// Core fonts are cp1252; accented place names need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.MultiCell(0, 12, tr(fmt.Sprintf("Your Travel Guide to %s", req.City)), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(fmt.Sprintf("Total Estimated Cost: $%.0f", req.Summary.TotalCost)), "", "L", false)
	pdf.Ln(8)

	for _, day := range req.Itinerary {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 9, fmt.Sprintf("Day %d", day.Day), "", "L", false)
		pdf.Ln(3)

		if day.Hotel != nil {
			pdf.SetFont("Helvetica", "B", 14)
			pdf.MultiCell(0, 7, "Hotel:", "", "L", false)
			pdf.SetFont("Helvetica", "", 12)
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s - $%.0f", day.Hotel.Name, day.Hotel.Price)), "", "L", false)
			pdf.Ln(3)
		}

		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 7, "Activities:", "", "L", false)
		for _, a := range day.Activities {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s (%s) - $%.0f", a.Place, a.Type, a.Cost)), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(120, 120, 120)
			pdf.MultiCell(0, 5, tr(a.Description), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(2)
		}
		pdf.Ln(3)

		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 7, "Transport:", "", "L", false)
		pdf.SetFont("Helvetica", "", 12)
		for _, leg := range day.Transport {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s -> %s (%s)", leg.From, leg.To, leg.Mode)), "", "L", false)
		}

		pdf.AddPage()
	}

	if err := pdf.Output(w); err != nil {
		return &ExportError{Err: err}
	}
	return nil
}
