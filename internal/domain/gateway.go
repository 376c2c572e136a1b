package domain

import "context"

// RawFlightCandidate is one unnormalized itinerary record as returned by the
// flight gateway. The Segment Normalizer reduces a batch of these to a single
// FlightQuote.
type RawFlightCandidate struct {
	// PriceRaw is the numeric price used for cheapest-candidate selection
	PriceRaw float64

	// PriceDisplay is the currency-formatted price string (e.g. "$1,234.56")
	PriceDisplay string

	// Origin and Destination are airport display codes
	Origin      string
	Destination string

	// Departure and Arrival are schedule display strings
	Departure string
	Arrival   string

	// DurationMinutes is the leg duration in minutes
	DurationMinutes int

	// MarketingCarriers and OperatingCarriers are carrier names in gateway
	// order; either list may be empty.
	MarketingCarriers []string
	OperatingCarriers []string

	// Stops is the number of stops on the leg
	Stops int
}

// BusOption is one result row from the bus-search gateway.
type BusOption struct {
	// Provider is the operating bus company
	Provider string `json:"provider"`

	// DepartureTime and ArrivalTime are 12-hour clock display strings,
	// e.g. "8:30 AM"; arrival may carry a "(+1)" next-day marker.
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`

	// Price is the currency-formatted price string
	Price string `json:"price"`
}

// BusSortBy selects the result-set ordering requested from the bus gateway.
type BusSortBy string

// Bus result orderings.
const (
	BusSortCheapest BusSortBy = "cheapest"
	BusSortFastest  BusSortBy = "fastest"
	BusSortEarliest BusSortBy = "earliest"
	BusSortLatest   BusSortBy = "latest"
)

// AirportGateway resolves a city name to its major airport codes.
// An empty slice is a valid "not found" outcome, not an error.
type AirportGateway interface {
	MajorAirports(ctx context.Context, city string) ([]string, error)
}

// FlightGateway looks up one-way flight candidates for an airport pair and
// date. It returns ErrNoData when the route has no flights.
type FlightGateway interface {
	SearchFlights(ctx context.Context, origin, destination, date string) ([]RawFlightCandidate, error)
}

// GroundTransportGateway estimates a single ground leg. preferredTime is an
// optional scheduling hint (a flight arrival display string); pass "" for
// none. Returns ErrNoData when no estimate can be produced.
type GroundTransportGateway interface {
	Estimate(ctx context.Context, from, to, date, preferredTime string) (GroundSegment, error)
}

// BusGateway searches scheduled bus departures between two cities.
// preferredTime filters to departures usable after that time; pass "" for
// none. Returns ErrNoData when no service exists.
type BusGateway interface {
	SearchBuses(ctx context.Context, from, to, date, preferredTime string, sortBy BusSortBy) ([]BusOption, error)
}
