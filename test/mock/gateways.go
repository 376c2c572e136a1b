// Package mock provides configurable fake gateways for tests. Each fake
// delegates to an Fn field and counts invocations, so tests can both script
// behavior and assert on call volume (e.g. cache effectiveness).
package mock

import (
	"context"
	"sync/atomic"

	"github.com/doortodoor/journey-planner/internal/domain"
)

// AirportGateway is a scriptable domain.AirportGateway.
type AirportGateway struct {
	MajorAirportsFn func(ctx context.Context, city string) ([]string, error)
	calls           atomic.Int64
}

func (g *AirportGateway) MajorAirports(ctx context.Context, city string) ([]string, error) {
	g.calls.Add(1)
	return g.MajorAirportsFn(ctx, city)
}

// Calls reports how many times the gateway was invoked.
func (g *AirportGateway) Calls() int { return int(g.calls.Load()) }

// FixedAirports returns a gateway mapping city names to airport lists.
// Unknown cities resolve to no airports.
func FixedAirports(byCity map[string][]string) *AirportGateway {
	return &AirportGateway{
		MajorAirportsFn: func(_ context.Context, city string) ([]string, error) {
			return byCity[city], nil
		},
	}
}

// FlightGateway is a scriptable domain.FlightGateway.
type FlightGateway struct {
	SearchFlightsFn func(ctx context.Context, origin, destination, date string) ([]domain.RawFlightCandidate, error)
	calls           atomic.Int64
}

func (g *FlightGateway) SearchFlights(ctx context.Context, origin, destination, date string) ([]domain.RawFlightCandidate, error) {
	g.calls.Add(1)
	return g.SearchFlightsFn(ctx, origin, destination, date)
}

func (g *FlightGateway) Calls() int { return int(g.calls.Load()) }

// FixedFlights returns a gateway serving candidates keyed by
// "ORIGIN-DEST". Unknown routes return domain.ErrNoData.
func FixedFlights(byRoute map[string][]domain.RawFlightCandidate) *FlightGateway {
	return &FlightGateway{
		SearchFlightsFn: func(_ context.Context, origin, destination, _ string) ([]domain.RawFlightCandidate, error) {
			candidates, ok := byRoute[origin+"-"+destination]
			if !ok {
				return nil, domain.ErrNoData
			}
			return candidates, nil
		},
	}
}

// GroundGateway is a scriptable domain.GroundTransportGateway.
type GroundGateway struct {
	EstimateFn func(ctx context.Context, from, to, date, preferredTime string) (domain.GroundSegment, error)
	calls      atomic.Int64
}

func (g *GroundGateway) Estimate(ctx context.Context, from, to, date, preferredTime string) (domain.GroundSegment, error) {
	g.calls.Add(1)
	return g.EstimateFn(ctx, from, to, date, preferredTime)
}

func (g *GroundGateway) Calls() int { return int(g.calls.Load()) }

// ConstantGround returns a gateway answering every leg with the same
// segment.
func ConstantGround(segment domain.GroundSegment) *GroundGateway {
	return &GroundGateway{
		EstimateFn: func(_ context.Context, _, _, _, _ string) (domain.GroundSegment, error) {
			return segment, nil
		},
	}
}

// BusGateway is a scriptable domain.BusGateway.
type BusGateway struct {
	SearchBusesFn func(ctx context.Context, from, to, date, preferredTime string, sortBy domain.BusSortBy) ([]domain.BusOption, error)
	calls         atomic.Int64
}

func (g *BusGateway) SearchBuses(ctx context.Context, from, to, date, preferredTime string, sortBy domain.BusSortBy) ([]domain.BusOption, error) {
	g.calls.Add(1)
	return g.SearchBusesFn(ctx, from, to, date, preferredTime, sortBy)
}

func (g *BusGateway) Calls() int { return int(g.calls.Load()) }

// Interface conformance.
var (
	_ domain.AirportGateway         = (*AirportGateway)(nil)
	_ domain.FlightGateway          = (*FlightGateway)(nil)
	_ domain.GroundTransportGateway = (*GroundGateway)(nil)
	_ domain.BusGateway             = (*BusGateway)(nil)
)
