// Package domain contains the core business entities and rules for the
// door-to-door journey planner. These entities are gateway-agnostic and form
// the foundation upon which all other components are built.
package domain

// TransportMode identifies the recommended mode for a ground segment.
type TransportMode string

// Supported ground transport modes.
const (
	ModeCab   TransportMode = "cab"
	ModeBus   TransportMode = "bus"
	ModeTrain TransportMode = "train"
)

// IsValid checks if the transport mode is a known value.
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeCab, ModeBus, ModeTrain:
		return true
	default:
		return false
	}
}

// FlightQuote is one normalized flight option, selected once per
// (origin, destination, date) from a batch of raw candidates.
// It is never mutated after creation.
type FlightQuote struct {
	// PriceDisplay is the gateway's currency-formatted price string
	// (e.g. "$1,234.56"). Parsed into a numeric amount during assembly.
	PriceDisplay string `json:"price"`

	// Origin is the departure airport code (e.g. "JFK")
	Origin string `json:"origin"`

	// Destination is the arrival airport code
	Destination string `json:"destination"`

	// Departure is the departure time display string as provided by the
	// gateway; not normalized to a single timezone.
	Departure string `json:"departure"`

	// Arrival is the arrival time display string
	Arrival string `json:"arrival"`

	// DurationMinutes is the flight leg duration in minutes
	DurationMinutes int `json:"duration_mins"`

	// Airline is the carrier name, "Unknown" when it cannot be resolved
	Airline string `json:"airline"`

	// Stops is the number of stops (0 = direct)
	Stops int `json:"stops"`
}

// GroundSegment is one ground-transport leg between a city and an airport
// (or between two cities).
type GroundSegment struct {
	// DurationMinutes is the travel time in minutes
	DurationMinutes int `json:"duration_mins"`

	// CostUSD is the estimated cost in US dollars
	CostUSD float64 `json:"cost_usd"`

	// RecommendedMode is one of cab, bus, train
	RecommendedMode TransportMode `json:"recommended_mode"`

	// Notes is free-text context about the recommendation
	Notes string `json:"notes"`

	// DepartureTime is the scheduled departure display string; only set when
	// the mode is bus/train and a real schedule was found.
	DepartureTime string `json:"departure_time,omitempty"`

	// ArrivalTime is the scheduled arrival display string
	ArrivalTime string `json:"arrival_time,omitempty"`
}

// HasSchedule reports whether the segment carries a real schedule.
func (g GroundSegment) HasSchedule() bool {
	return g.DepartureTime != "" && g.ArrivalTime != ""
}

// JourneySegment is one full direction of travel: ground to the departure
// airport, the flight itself, and ground from the arrival airport.
type JourneySegment struct {
	GroundToAirport   GroundSegment `json:"ground_to_airport"`
	Flight            FlightQuote   `json:"flight"`
	GroundFromAirport GroundSegment `json:"ground_from_airport"`

	// TotalSegmentTime is always the sum of the three legs' durations.
	TotalSegmentTime int `json:"total_segment_time"`
}

// NewJourneySegment builds a JourneySegment with its derived total time.
func NewJourneySegment(groundTo GroundSegment, flight FlightQuote, groundFrom GroundSegment) JourneySegment {
	return JourneySegment{
		GroundToAirport:   groundTo,
		Flight:            flight,
		GroundFromAirport: groundFrom,
		TotalSegmentTime:  groundTo.DurationMinutes + flight.DurationMinutes + groundFrom.DurationMinutes,
	}
}

// JourneyCombination is a complete round trip with aggregated totals.
// Created once per valid combinatorial candidate; immutable afterward; held
// only for the duration of one planning request.
type JourneyCombination struct {
	Outbound JourneySegment `json:"outbound"`
	Return   JourneySegment `json:"return_journey"`

	// TotalCost is always FlightCost + GroundCost
	TotalCost float64 `json:"total_cost"`

	// TotalTime is always Outbound.TotalSegmentTime + Return.TotalSegmentTime
	TotalTime int `json:"total_time"`

	FlightCost float64 `json:"flight_cost"`
	GroundCost float64 `json:"ground_cost"`
}

// NewJourneyCombination builds a JourneyCombination from both directions and
// the already-parsed flight prices. The aggregation invariants hold by
// construction.
func NewJourneyCombination(outbound, ret JourneySegment, outboundPrice, returnPrice float64) JourneyCombination {
	flightCost := outboundPrice + returnPrice
	groundCost := outbound.GroundToAirport.CostUSD +
		outbound.GroundFromAirport.CostUSD +
		ret.GroundToAirport.CostUSD +
		ret.GroundFromAirport.CostUSD

	return JourneyCombination{
		Outbound:   outbound,
		Return:     ret,
		TotalCost:  flightCost + groundCost,
		TotalTime:  outbound.TotalSegmentTime + ret.TotalSegmentTime,
		FlightCost: flightCost,
		GroundCost: groundCost,
	}
}

// FlightTime returns the combined duration of both flight legs in minutes.
func (jc JourneyCombination) FlightTime() int {
	return jc.Outbound.Flight.DurationMinutes + jc.Return.Flight.DurationMinutes
}

// UsesSameDestinationAirport reports whether the trip arrives at and departs
// from the same destination airport.
func (jc JourneyCombination) UsesSameDestinationAirport() bool {
	return jc.Outbound.Flight.Destination == jc.Return.Flight.Origin
}
