package usecase

import "github.com/doortodoor/journey-planner/internal/domain"

// Weighted-score tuning. Scores are penalties, so the lowest total wins.
const (
	// flightTimeTolerance is how much longer than the shortest flight time a
	// combination may be before the flight-time penalty kicks in.
	flightTimeTolerance = 1.5

	// groundShareTolerance is the ground-time share of total time above
	// which the ground penalty kicks in.
	groundShareTolerance = 0.4

	// airportMismatchPenalty is charged when the trip uses different
	// destination airports without a significant time saving.
	airportMismatchPenalty = 0.15

	// significantSavingShare is the fraction of the time spread that counts
	// as a significant saving.
	significantSavingShare = 0.2

	// smallCostSpread is the cost-difference ratio under which time is
	// weighted more heavily than cost.
	smallCostSpread = 0.15
)

// SelectBalanced scores every combination on a blend of cost, time, flight
// efficiency, airport consistency, and ground-transport share, and returns
// the one with the best (lowest) score. It is the policy behind the
// optimize endpoint and is independent of the preference-driven Select.
//
// Returns false when the input is empty.
func SelectBalanced(combos []domain.JourneyCombination) (domain.JourneyCombination, bool) {
	if len(combos) == 0 {
		return domain.JourneyCombination{}, false
	}

	minCost, maxCost := combos[0].TotalCost, combos[0].TotalCost
	minTime, maxTime := combos[0].TotalTime, combos[0].TotalTime
	minFlightTime := combos[0].FlightTime()
	for _, c := range combos[1:] {
		minCost = min(minCost, c.TotalCost)
		maxCost = max(maxCost, c.TotalCost)
		minTime = min(minTime, c.TotalTime)
		maxTime = max(maxTime, c.TotalTime)
		minFlightTime = min(minFlightTime, c.FlightTime())
	}

	costRange := maxCost - minCost
	if costRange == 0 {
		costRange = 1
	}
	timeRange := maxTime - minTime
	if timeRange == 0 {
		timeRange = 1
	}

	best := combos[0]
	bestScore := balancedScore(combos[0], minCost, costRange, minTime, timeRange, maxTime, minFlightTime)
	for _, c := range combos[1:] {
		if s := balancedScore(c, minCost, costRange, minTime, timeRange, maxTime, minFlightTime); s < bestScore {
			best = c
			bestScore = s
		}
	}
	return best, true
}

func balancedScore(c domain.JourneyCombination, minCost, costRange float64, minTime, timeRange, maxTime, minFlightTime int) float64 {
	costScore := (c.TotalCost - minCost) / costRange
	timeScore := float64(c.TotalTime-minTime) / float64(timeRange)

	flightTime := c.FlightTime()
	flightTimeRatio := 1.0
	if minFlightTime > 0 {
		flightTimeRatio = float64(flightTime) / float64(minFlightTime)
	}
	flightTimePenalty := 0.0
	if flightTimeRatio > flightTimeTolerance {
		flightTimePenalty = (flightTimeRatio - flightTimeTolerance) * 2
	}

	// Different destination airports are tolerated when they buy a
	// significant share of the time spread.
	timeSaving := maxTime - c.TotalTime
	significantSaving := float64(timeSaving) > float64(timeRange)*significantSavingShare
	airportPenalty := 0.0
	if !c.UsesSameDestinationAirport() && !significantSaving {
		airportPenalty = airportMismatchPenalty
	}

	groundPenalty := 0.0
	if c.TotalTime > 0 {
		groundShare := float64(c.TotalTime-flightTime) / float64(c.TotalTime)
		if groundShare > groundShareTolerance {
			groundPenalty = (groundShare - groundShareTolerance) * 2
		}
	}

	// When every option costs nearly the same, let time dominate.
	costWeight, timeWeight := 0.35, 0.35
	if minCost > 0 && (c.TotalCost-minCost)/minCost < smallCostSpread {
		costWeight, timeWeight = 0.25, 0.45
	}

	return costWeight*costScore +
		timeWeight*timeScore +
		0.2*flightTimePenalty +
		airportPenalty +
		0.1*groundPenalty
}
