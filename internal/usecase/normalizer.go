// Package usecase contains the business logic for journey planning:
// the combinatorial itinerary search, quote normalization, request-scoped
// caching, and multi-objective selection.
package usecase

import (
	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
)

// UnknownCarrier is the fallback airline name when no carrier can be
// resolved from a raw candidate.
const UnknownCarrier = "Unknown"

// BestQuote selects exactly one FlightQuote from a batch of raw candidates
// according to the optimization preference: minimum leg duration when
// optimizing for time, minimum raw price otherwise.
//
// It returns false when the batch is empty or no candidate carries the
// expected fields; that is a "no quote" outcome, not an error. Carrier
// extraction failures degrade to UnknownCarrier silently.
func BestQuote(candidates []domain.RawFlightCandidate, pref domain.OptimizeFor, log *logger.Logger) (domain.FlightQuote, bool) {
	best, ok := pickBest(candidates, pref)
	if !ok {
		return domain.FlightQuote{}, false
	}

	carrier := extractCarrier(best)
	if carrier == UnknownCarrier {
		log.Debug().
			Str("origin", best.Origin).
			Str("destination", best.Destination).
			Msg("Carrier could not be resolved, using fallback")
	}

	return domain.FlightQuote{
		PriceDisplay:    best.PriceDisplay,
		Origin:          best.Origin,
		Destination:     best.Destination,
		Departure:       best.Departure,
		Arrival:         best.Arrival,
		DurationMinutes: best.DurationMinutes,
		Airline:         carrier,
		Stops:           best.Stops,
	}, true
}

// pickBest finds the minimum candidate by the active objective, skipping
// candidates that are missing expected fields.
func pickBest(candidates []domain.RawFlightCandidate, pref domain.OptimizeFor) (domain.RawFlightCandidate, bool) {
	var best domain.RawFlightCandidate
	found := false

	for _, c := range candidates {
		if !isUsable(c) {
			continue
		}
		if !found || better(c, best, pref) {
			best = c
			found = true
		}
	}

	return best, found
}

// isUsable checks that a raw candidate carries the fields every quote needs.
func isUsable(c domain.RawFlightCandidate) bool {
	return c.Origin != "" && c.Destination != "" && c.PriceDisplay != "" && c.DurationMinutes > 0
}

// better reports whether a should be preferred over b.
func better(a, b domain.RawFlightCandidate, pref domain.OptimizeFor) bool {
	if pref == domain.OptimizeTime {
		return a.DurationMinutes < b.DurationMinutes
	}
	return a.PriceRaw < b.PriceRaw
}

// extractCarrier resolves the airline name: marketing carrier first, then
// operating carrier, else the UnknownCarrier fallback.
func extractCarrier(c domain.RawFlightCandidate) string {
	for _, name := range c.MarketingCarriers {
		if name != "" {
			return name
		}
	}
	for _, name := range c.OperatingCarriers {
		if name != "" {
			return name
		}
	}
	return UnknownCarrier
}
