package models

// GenerateRequest is the body of POST /api/generate.
// City, budget and days are all required; a zero budget or day count is
// rejected the same way a missing field is.
type GenerateRequest struct {
	City        string  `json:"city" binding:"required"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
	Days        int     `json:"days" binding:"required,gt=0"`
	Preferences string  `json:"preferences"`
}

// ExportRequest is the body of POST /api/export/pdf. It mirrors the
// subset of the itinerary the PDF layout needs.
type ExportRequest struct {
	Itinerary []DayPlan `json:"itinerary" binding:"required"`
	City      string    `json:"city"`
	Summary   Summary   `json:"summary"`
}

// RelocateRequest is the body of POST /api/itinerary/relocate: one
// drag-style move of a single activity, addressed by day number and
// position within the day.
type RelocateRequest struct {
	Itinerary   Itinerary `json:"itinerary"`
	SourceDay   int       `json:"sourceDay"`
	SourceIndex int       `json:"sourceIndex"`
	DestDay     int       `json:"destDay"`
	DestIndex   int       `json:"destIndex"`
}
