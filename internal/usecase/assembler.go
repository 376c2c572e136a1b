package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
)

// Gateways bundles the external data sources the planner depends on.
type Gateways struct {
	Airports domain.AirportGateway
	Flights  domain.FlightGateway
	Ground   domain.GroundTransportGateway
}

// Assembler builds every viable round-trip combination for a request by
// crossing source airports with destination airports in both directions.
type Assembler interface {
	// Assemble resolves airports for both cities and evaluates the full
	// cross product of (source airport, inbound destination airport,
	// outbound destination airport). Triples with any missing leg are
	// skipped rather than failing the whole request.
	//
	// Returns ErrNoAirportsFound when either city resolves to no airports,
	// including when the airport lookup itself fails, and
	// ErrNoCombinationsFound when every triple came up incomplete.
	Assemble(ctx context.Context, req domain.PlanningRequest) ([]domain.JourneyCombination, error)
}

type assembler struct {
	gws        Gateways
	log        *logger.Logger
	maxWorkers int
}

// NewAssembler creates an Assembler evaluating at most maxWorkers triples
// concurrently.
func NewAssembler(gws Gateways, log *logger.Logger, maxWorkers int) Assembler {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &assembler{gws: gws, log: log, maxWorkers: maxWorkers}
}

var _ Assembler = (*assembler)(nil)

// legCaches holds the per-request memoization for flight and ground lookups.
// Triples share routes, so without this the cross product would hit the same
// gateway endpoints many times over.
type legCaches struct {
	flights *requestCache[[]domain.RawFlightCandidate]
	ground  *requestCache[domain.GroundSegment]
}

func (a *assembler) Assemble(ctx context.Context, req domain.PlanningRequest) ([]domain.JourneyCombination, error) {
	srcAirports, err := a.resolveAirports(ctx, req.SourceCity)
	if err != nil {
		return nil, err
	}
	destAirports, err := a.resolveAirports(ctx, req.DestinationCity)
	if err != nil {
		return nil, err
	}
	if len(srcAirports) == 0 || len(destAirports) == 0 {
		a.log.Info().
			Str("source_city", req.SourceCity).
			Str("destination_city", req.DestinationCity).
			Int("source_airports", len(srcAirports)).
			Int("destination_airports", len(destAirports)).
			Msg("Airport resolution produced no candidates")
		return nil, domain.ErrNoAirportsFound
	}

	a.log.Info().
		Strs("source_airports", srcAirports).
		Strs("destination_airports", destAirports).
		Int("triples", len(srcAirports)*len(destAirports)*len(destAirports)).
		Msg("Assembling journey combinations")

	caches := legCaches{
		flights: newRequestCache[[]domain.RawFlightCandidate](),
		ground:  newRequestCache[domain.GroundSegment](),
	}

	p := pool.NewWithResults[*domain.JourneyCombination]().WithMaxGoroutines(a.maxWorkers)
	for _, src := range srcAirports {
		for _, destIn := range destAirports {
			for _, destOut := range destAirports {
				p.Go(func() *domain.JourneyCombination {
					return a.buildCombination(ctx, caches, req, src, destIn, destOut)
				})
			}
		}
	}
	results := p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	combos := make([]domain.JourneyCombination, 0, len(results))
	for _, r := range results {
		if r != nil {
			combos = append(combos, *r)
		}
	}
	if len(combos) == 0 {
		return nil, domain.ErrNoCombinationsFound
	}

	a.log.Info().
		Int("combinations", len(combos)).
		Int("flight_lookups", caches.flights.Len()).
		Int("ground_lookups", caches.ground.Len()).
		Msg("Assembly complete")
	return combos, nil
}

// resolveAirports looks up the major airports for a city. Both a gateway
// "no data" answer and a gateway failure are normalized to an empty list so
// the caller reports ErrNoAirportsFound instead of failing the request.
// Cancellation and deadline expiry still propagate.
func (a *assembler) resolveAirports(ctx context.Context, city string) ([]string, error) {
	airports, err := a.gws.Airports.MajorAirports(ctx, city)
	if err != nil {
		if cause := ctx.Err(); cause != nil {
			return nil, cause
		}
		if !domain.IsNoData(err) {
			a.log.Warn().
				Err(err).
				Str("city", city).
				Msg("Airport lookup failed, treating as no airports")
		}
		return nil, nil
	}
	return airports, nil
}

// buildCombination evaluates one (source, destination-in, destination-out)
// triple: two flight legs and four ground legs. Any missing or malformed
// leg disqualifies the triple and returns nil.
func (a *assembler) buildCombination(ctx context.Context, caches legCaches, req domain.PlanningRequest, src, destIn, destOut string) *domain.JourneyCombination {
	if ctx.Err() != nil {
		return nil
	}

	log := a.log.WithContext("triple", fmt.Sprintf("%s/%s/%s", src, destIn, destOut))

	outQuote, outPrice, ok := a.bestFlight(ctx, caches, log, src, destIn, req.DepartDate, req.Preference)
	if !ok {
		return nil
	}
	retQuote, retPrice, ok := a.bestFlight(ctx, caches, log, destOut, src, req.ReturnDate, req.Preference)
	if !ok {
		return nil
	}

	toSrcAirport, ok := a.groundLeg(ctx, caches, log, req.SourceCity, airportPlace(src), req.DepartDate, "")
	if !ok {
		return nil
	}
	fromDestAirport, ok := a.groundLeg(ctx, caches, log, airportPlace(destIn), req.DestinationCity, req.DepartDate, outQuote.Arrival)
	if !ok {
		return nil
	}
	toDestAirport, ok := a.groundLeg(ctx, caches, log, req.DestinationCity, airportPlace(destOut), req.ReturnDate, "")
	if !ok {
		return nil
	}
	fromSrcAirport, ok := a.groundLeg(ctx, caches, log, airportPlace(src), req.SourceCity, req.ReturnDate, retQuote.Arrival)
	if !ok {
		return nil
	}

	outbound := domain.NewJourneySegment(toSrcAirport, outQuote, fromDestAirport)
	ret := domain.NewJourneySegment(toDestAirport, retQuote, fromSrcAirport)
	combo := domain.NewJourneyCombination(outbound, ret, outPrice, retPrice)
	return &combo
}

// bestFlight fetches candidates for one flight leg through the cache and
// normalizes them to a single priced quote.
func (a *assembler) bestFlight(ctx context.Context, caches legCaches, log *logger.Logger, origin, destination, date string, pref domain.OptimizeFor) (domain.FlightQuote, float64, bool) {
	candidates, err := caches.flights.GetOrFetch(flightKey(origin, destination, date), func() ([]domain.RawFlightCandidate, error) {
		return a.gws.Flights.SearchFlights(ctx, origin, destination, date)
	})
	if err != nil {
		if !domain.IsNoData(err) {
			log.Warn().Err(err).
				Str("origin", origin).
				Str("destination", destination).
				Msg("Flight lookup failed, skipping triple")
		}
		return domain.FlightQuote{}, 0, false
	}

	quote, ok := BestQuote(candidates, pref, log)
	if !ok {
		return domain.FlightQuote{}, 0, false
	}

	price, err := domain.ParseDisplayPrice(quote.PriceDisplay)
	if err != nil {
		log.Warn().Err(err).
			Str("price", quote.PriceDisplay).
			Msg("Unparseable flight price, skipping triple")
		return domain.FlightQuote{}, 0, false
	}
	return quote, price, true
}

// groundLeg fetches one ground segment through the cache.
func (a *assembler) groundLeg(ctx context.Context, caches legCaches, log *logger.Logger, from, to, date, preferredTime string) (domain.GroundSegment, bool) {
	segment, err := caches.ground.GetOrFetch(groundKey(from, to, date, preferredTime), func() (domain.GroundSegment, error) {
		return a.gws.Ground.Estimate(ctx, from, to, date, preferredTime)
	})
	if err != nil {
		if !domain.IsNoData(err) {
			log.Warn().Err(err).
				Str("from", from).
				Str("to", to).
				Msg("Ground transport lookup failed, skipping triple")
		}
		return domain.GroundSegment{}, false
	}
	return segment, true
}

// airportPlace renders an airport code as a ground-transport place name.
func airportPlace(code string) string {
	return code + " Airport"
}
