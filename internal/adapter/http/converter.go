// Package http provides the HTTP handler layer for the journey planning API.
package http

import (
	"strings"

	"github.com/doortodoor/journey-planner/internal/domain"
)

// ToDomainRequest converts a PlanJourneyRequest to domain.PlanningRequest.
func ToDomainRequest(req *PlanJourneyRequest) domain.PlanningRequest {
	return domain.PlanningRequest{
		SourceCity:      strings.TrimSpace(req.SourceCity),
		DestinationCity: strings.TrimSpace(req.DestinationCity),
		DepartDate:      req.DepartDate,
		ReturnDate:      req.ReturnDate,
		Preference:      domain.OptimizeFor(strings.ToLower(req.OptimizationPreference)),
		Budget:          req.Budget,
	}
}

// ToFlightResults converts raw flight candidates to the wire response shape.
func ToFlightResults(req *SearchFlightsRequest, candidates []domain.RawFlightCandidate) FlightResultsDTO {
	flights := make([]FlightCandidateDTO, 0, len(candidates))
	for _, c := range candidates {
		flights = append(flights, FlightCandidateDTO{
			Price:             c.PriceDisplay,
			PriceRaw:          c.PriceRaw,
			Origin:            c.Origin,
			Destination:       c.Destination,
			Departure:         c.Departure,
			Arrival:           c.Arrival,
			DurationMinutes:   c.DurationMinutes,
			MarketingCarriers: c.MarketingCarriers,
			OperatingCarriers: c.OperatingCarriers,
			Stops:             c.Stops,
		})
	}

	return FlightResultsDTO{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
		Flights:     flights,
	}
}
