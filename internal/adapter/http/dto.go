package http

import (
	"github.com/doortodoor/journey-planner/internal/domain"
)

// AirportsDTO is the data transfer object for an airport lookup response.
type AirportsDTO struct {
	City     string   `json:"city"`
	Airports []string `json:"airports"`
}

// FlightResultsDTO is the data transfer object for a raw flight search
// response.
type FlightResultsDTO struct {
	Origin      string               `json:"origin"`
	Destination string               `json:"destination"`
	Date        string               `json:"date"`
	Flights     []FlightCandidateDTO `json:"flights"`
}

// FlightCandidateDTO is one raw one-way flight candidate as returned on the
// wire, with snake_case fields.
type FlightCandidateDTO struct {
	Price             string   `json:"price"`
	PriceRaw          float64  `json:"price_raw"`
	Origin            string   `json:"origin"`
	Destination       string   `json:"destination"`
	Departure         string   `json:"departure"`
	Arrival           string   `json:"arrival"`
	DurationMinutes   int      `json:"duration_mins"`
	MarketingCarriers []string `json:"marketing_carriers,omitempty"`
	OperatingCarriers []string `json:"operating_carriers,omitempty"`
	Stops             int      `json:"stops"`
}

// OptimizeResultDTO is the data transfer object for the optimize response.
type OptimizeResultDTO struct {
	// BestCombination is the winner of the balanced scoring pass
	BestCombination domain.JourneyCombination `json:"best_combination"`

	// CandidatesConsidered is the number of combinations submitted
	CandidatesConsidered int `json:"candidates_considered"`
}
