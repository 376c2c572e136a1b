package usecase

import (
	"sort"

	"github.com/doortodoor/journey-planner/internal/domain"
)

// Trade-off thresholds for the balanced alternative.
const (
	// minTimeSavedMinutes is the minimum time a cost-path alternative must
	// save over the cheapest option.
	minTimeSavedMinutes = 90

	// maxCostPerMinuteSaved caps what a cost-path alternative may pay per
	// minute saved.
	maxCostPerMinuteSaved = 1.0

	// maxExtraTimeMinutes is the most a time-path alternative may be slower
	// than the fastest option.
	maxExtraTimeMinutes = 180

	// minCostSavedUSD is the minimum a time-path alternative must save over
	// the fastest option.
	minCostSavedUSD = 100.0

	// minSavingsPerExtraMinute is the least a time-path alternative must
	// save per extra minute of travel.
	minSavingsPerExtraMinute = 0.5
)

// Select picks the preferred combination and, when one qualifies, a balanced
// alternative that trades the primary objective for the secondary one.
//
// All combinations above the effective budget are discarded first; if none
// survive, ErrBudgetExceeded is returned. The preferred combination is the
// optimum of the surviving set by the active objective.
func Select(combos []domain.JourneyCombination, req domain.PlanningRequest) (domain.SelectionResult, error) {
	budget := req.EffectiveBudget()

	survivors := make([]domain.JourneyCombination, 0, len(combos))
	for _, c := range combos {
		if c.TotalCost <= budget {
			survivors = append(survivors, c)
		}
	}
	if len(survivors) == 0 {
		return domain.SelectionResult{}, domain.ErrBudgetExceeded
	}

	if req.Preference == domain.OptimizeTime {
		sort.SliceStable(survivors, func(i, j int) bool {
			return survivors[i].TotalTime < survivors[j].TotalTime
		})
	} else {
		sort.SliceStable(survivors, func(i, j int) bool {
			return survivors[i].TotalCost < survivors[j].TotalCost
		})
	}

	preferred := survivors[0]
	result := domain.SelectionResult{Preferred: preferred}

	if alt, ok := findAlternative(survivors[1:], preferred, req.Preference); ok {
		result.Alternative = &alt
	}
	return result, nil
}

// findAlternative scans the remaining budget survivors for the best balanced
// trade against the preferred combination. Returns false when none qualifies.
func findAlternative(rest []domain.JourneyCombination, preferred domain.JourneyCombination, pref domain.OptimizeFor) (domain.JourneyCombination, bool) {
	var best domain.JourneyCombination
	var bestRatio float64
	found := false

	for _, c := range rest {
		ratio, ok := tradeRatio(c, preferred, pref)
		if !ok {
			continue
		}
		if !found || betterRatio(ratio, bestRatio, pref) {
			best = c
			bestRatio = ratio
			found = true
		}
	}
	return best, found
}

// tradeRatio computes the trade-off ratio of candidate against preferred and
// reports whether the candidate qualifies as an alternative at all.
//
// Cost path: the candidate must save at least minTimeSavedMinutes and cost
// no more than maxCostPerMinuteSaved per minute saved; the ratio is extra
// dollars per minute saved (lower is better).
//
// Time path: the candidate must be at most maxExtraTimeMinutes slower and
// save at least minCostSavedUSD, yielding at least minSavingsPerExtraMinute
// per extra minute; the ratio is dollars saved per extra minute (higher is
// better). A candidate taking no extra time never qualifies.
func tradeRatio(candidate, preferred domain.JourneyCombination, pref domain.OptimizeFor) (float64, bool) {
	if pref == domain.OptimizeTime {
		extraTime := candidate.TotalTime - preferred.TotalTime
		if extraTime <= 0 || extraTime > maxExtraTimeMinutes {
			return 0, false
		}
		saved := preferred.TotalCost - candidate.TotalCost
		if saved < minCostSavedUSD {
			return 0, false
		}
		ratio := saved / float64(extraTime)
		if ratio < minSavingsPerExtraMinute {
			return 0, false
		}
		return ratio, true
	}

	timeSaved := preferred.TotalTime - candidate.TotalTime
	if timeSaved <= 0 || timeSaved < minTimeSavedMinutes {
		return 0, false
	}
	extraCost := candidate.TotalCost - preferred.TotalCost
	ratio := extraCost / float64(timeSaved)
	if ratio > maxCostPerMinuteSaved {
		return 0, false
	}
	return ratio, true
}

// betterRatio reports whether a beats b under the active objective: cost
// path wants the cheapest minute saved, time path the most dollars per
// extra minute.
func betterRatio(a, b float64, pref domain.OptimizeFor) bool {
	if pref == domain.OptimizeTime {
		return a > b
	}
	return a < b
}
