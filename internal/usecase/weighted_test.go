package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doortodoor/journey-planner/internal/domain"
)

// balancedCombo builds a round trip with explicit flight/ground splits and
// destination airports, for exercising the individual score components.
func balancedCombo(flightCost float64, outMins, retMins int, groundMinsPerLeg int, groundCostPerLeg float64, destIn, destOut string) domain.JourneyCombination {
	ground := domain.GroundSegment{
		DurationMinutes: groundMinsPerLeg,
		CostUSD:         groundCostPerLeg,
		RecommendedMode: domain.ModeCab,
	}
	outbound := domain.NewJourneySegment(ground, domain.FlightQuote{
		Origin: "JFK", Destination: destIn, DurationMinutes: outMins, Airline: "Delta",
	}, ground)
	ret := domain.NewJourneySegment(ground, domain.FlightQuote{
		Origin: destOut, Destination: "JFK", DurationMinutes: retMins, Airline: "Delta",
	}, ground)
	return domain.NewJourneyCombination(outbound, ret, flightCost/2, flightCost/2)
}

func TestSelectBalanced_Empty(t *testing.T) {
	_, ok := SelectBalanced(nil)
	assert.False(t, ok)
}

func TestSelectBalanced_Single(t *testing.T) {
	c := balancedCombo(400, 150, 150, 30, 25, "ORD", "ORD")

	best, ok := SelectBalanced([]domain.JourneyCombination{c})

	require.True(t, ok)
	assert.Equal(t, c.TotalCost, best.TotalCost)
}

func TestSelectBalanced_DominantOptionWins(t *testing.T) {
	cheapFast := balancedCombo(400, 120, 120, 30, 25, "ORD", "ORD")
	dearSlow := balancedCombo(700, 150, 150, 45, 35, "ORD", "ORD")

	best, ok := SelectBalanced([]domain.JourneyCombination{dearSlow, cheapFast})

	require.True(t, ok)
	assert.Equal(t, cheapFast.TotalCost, best.TotalCost)
}

func TestSelectBalanced_SmallCostSpreadFavorsTime(t *testing.T) {
	// The faster trip costs 10% more. With the spread under 15%, time
	// carries more weight than cost and the faster trip wins.
	cheaper := balancedCombo(100, 250, 250, 0, 0, "ORD", "ORD")
	faster := balancedCombo(110, 200, 200, 0, 0, "ORD", "ORD")

	best, ok := SelectBalanced([]domain.JourneyCombination{cheaper, faster})

	require.True(t, ok)
	assert.Equal(t, faster.TotalTime, best.TotalTime)
}

func TestBalancedScore_AirportMismatchPenalty(t *testing.T) {
	same := balancedCombo(400, 150, 150, 30, 25, "ORD", "ORD")
	split := balancedCombo(400, 150, 150, 30, 25, "ORD", "MDW")

	sameScore := balancedScore(same, same.TotalCost, 1, same.TotalTime, 1, same.TotalTime, same.FlightTime())
	splitScore := balancedScore(split, split.TotalCost, 1, split.TotalTime, 1, split.TotalTime, split.FlightTime())

	assert.InDelta(t, airportMismatchPenalty, splitScore-sameScore, 1e-9)
}

func TestBalancedScore_MismatchForgivenForSignificantSaving(t *testing.T) {
	// Arriving and leaving via different airports is not penalized when the
	// trip saves more than 20% of the time spread.
	split := balancedCombo(400, 120, 120, 30, 25, "ORD", "MDW")

	// Spread of 200 minutes with this trip 100 minutes under the maximum.
	maxTime := split.TotalTime + 100
	minTime := split.TotalTime
	score := balancedScore(split, split.TotalCost, 1, minTime, 200, maxTime, split.FlightTime())
	assert.Less(t, score, airportMismatchPenalty)
}

func TestBalancedScore_FlightTimePenalty(t *testing.T) {
	c := balancedCombo(400, 200, 200, 0, 0, "ORD", "ORD")

	// Against a 200-minute shortest flight time, 400 minutes is 2x and
	// draws a penalty of (2 - 1.5) * 2 weighted at 0.2.
	withPenalty := balancedScore(c, c.TotalCost, 1, c.TotalTime, 1, c.TotalTime, 200)
	without := balancedScore(c, c.TotalCost, 1, c.TotalTime, 1, c.TotalTime, c.FlightTime())

	assert.InDelta(t, 0.2*1.0, withPenalty-without, 1e-9)
}

func TestBalancedScore_GroundSharePenalty(t *testing.T) {
	// Four 75-minute ground legs against 300 flight minutes puts ground at
	// half the trip, 10 points over the 40% tolerance.
	groundHeavy := balancedCombo(400, 150, 150, 75, 10, "ORD", "ORD")
	flightOnly := balancedCombo(400, 150, 150, 0, 10, "ORD", "ORD")

	heavyScore := balancedScore(groundHeavy, groundHeavy.TotalCost, 1, groundHeavy.TotalTime, 1, groundHeavy.TotalTime, groundHeavy.FlightTime())
	lightScore := balancedScore(flightOnly, flightOnly.TotalCost, 1, flightOnly.TotalTime, 1, flightOnly.TotalTime, flightOnly.FlightTime())

	assert.InDelta(t, 0.1*(0.5-groundShareTolerance)*2, heavyScore-lightScore, 1e-9)
}
