package models

import (
	"fmt"
	"time"
)

// ActivityType is the closed set of activity categories the planner emits
type ActivityType string

const (
	ActivityMuseum     ActivityType = "museum"
	ActivityRestaurant ActivityType = "restaurant"
	ActivityPark       ActivityType = "park"
	ActivityAttraction ActivityType = "attraction"
)

// Valid reports whether t is one of the known activity categories
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityMuseum, ActivityRestaurant, ActivityPark, ActivityAttraction:
		return true
	}
	return false
}

// TransportMode is the closed set of transport modes between activities
type TransportMode string

const (
	ModeWalk  TransportMode = "walk"
	ModeBus   TransportMode = "bus"
	ModeTrain TransportMode = "train"
	ModeTaxi  TransportMode = "taxi"
)

// Valid reports whether m is one of the known transport modes
func (m TransportMode) Valid() bool {
	switch m {
	case ModeWalk, ModeBus, ModeTrain, ModeTaxi:
		return true
	}
	return false
}

// Itinerary is the full multi-day trip plan produced for one generation request.
// The JSON field names match the wire format consumed by the web client.
type Itinerary struct {
	ID          string    `json:"id,omitempty"`
	City        string    `json:"city"`
	Country     string    `json:"country,omitempty"`
	Budget      float64   `json:"budget,omitempty"`
	Days        int       `json:"days,omitempty"`
	Preferences string    `json:"preferences,omitempty"`
	Itinerary   []DayPlan `json:"itinerary"`
	Summary     Summary   `json:"summary"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// Summary holds generation-time aggregates for the whole trip
type Summary struct {
	TotalCost float64 `json:"totalCost"`
}

// DayPlan is one day's activities, transport legs and hotel.
// Day numbers are stable labels, not positions: relocating activities
// between days never renumbers them.
type DayPlan struct {
	ID         string      `json:"id,omitempty"`
	Day        int         `json:"day"`
	Activities []Activity  `json:"activities"`
	Transport  []Transport `json:"transport"`
	Hotel      *Hotel      `json:"hotel,omitempty"`
}

// Activity is a single visitable place with cost and coordinates
type Activity struct {
	ID          string       `json:"id,omitempty"`
	Place       string       `json:"place"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Cost        float64      `json:"cost"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
}

// Transport is a descriptive leg between two places. Legs carry no
// identifier: they are never addressed or reordered individually.
type Transport struct {
	From string        `json:"from"`
	To   string        `json:"to"`
	Mode TransportMode `json:"mode"`
}

// Hotel is a day's lodging suggestion
type Hotel struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// validCoords checks latitude/longitude ranges
func validCoords(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Validate checks the activity against the schema's closed sets and ranges
func (a Activity) Validate() error {
	if a.Place == "" {
		return fmt.Errorf("activity: place is required")
	}
	if !a.Type.Valid() {
		return fmt.Errorf("activity %q: unknown type %q", a.Place, a.Type)
	}
	if a.Cost < 0 {
		return fmt.Errorf("activity %q: negative cost", a.Place)
	}
	if !validCoords(a.Lat, a.Lng) {
		return fmt.Errorf("activity %q: coordinates out of range", a.Place)
	}
	return nil
}

// Validate checks a transport leg
func (t Transport) Validate() error {
	if !t.Mode.Valid() {
		return fmt.Errorf("transport %s -> %s: unknown mode %q", t.From, t.To, t.Mode)
	}
	return nil
}

// Validate checks a hotel suggestion
func (h Hotel) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("hotel: name is required")
	}
	if h.Price < 0 {
		return fmt.Errorf("hotel %q: negative price", h.Name)
	}
	if !validCoords(h.Lat, h.Lng) {
		return fmt.Errorf("hotel %q: coordinates out of range", h.Name)
	}
	return nil
}

// Validate checks one day plan and everything it owns
func (d DayPlan) Validate() error {
	if d.Day <= 0 {
		return fmt.Errorf("day plan: day number must be positive, got %d", d.Day)
	}
	for _, a := range d.Activities {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("day %d: %w", d.Day, err)
		}
	}
	for _, t := range d.Transport {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("day %d: %w", d.Day, err)
		}
	}
	if d.Hotel != nil {
		if err := d.Hotel.Validate(); err != nil {
			return fmt.Errorf("day %d: %w", d.Day, err)
		}
	}
	return nil
}

// Validate checks the whole itinerary tree. Day numbers must be unique:
// the reorder engine locates day plans by day number, so a duplicate
// would make that lookup ambiguous.
func (it Itinerary) Validate() error {
	if it.City == "" {
		return fmt.Errorf("itinerary: city is required")
	}
	if it.Summary.TotalCost < 0 {
		return fmt.Errorf("itinerary: negative total cost")
	}
	seen := make(map[int]bool, len(it.Itinerary))
	for _, d := range it.Itinerary {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.Day] {
			return fmt.Errorf("itinerary: duplicate day number %d", d.Day)
		}
		seen[d.Day] = true
	}
	return nil
}
