package domain

import (
	"fmt"
	"math"
	"time"
)

// OptimizeFor is the optimization preference for a planning request.
type OptimizeFor string

// Available optimization preferences.
const (
	// OptimizeCost selects the cheapest itinerary first
	OptimizeCost OptimizeFor = "cost"

	// OptimizeTime selects the fastest itinerary first
	OptimizeTime OptimizeFor = "time"
)

// IsValid checks if the preference is a valid value.
func (o OptimizeFor) IsValid() bool {
	return o == OptimizeCost || o == OptimizeTime
}

// DateFormat is the wire format for travel dates.
const DateFormat = "2006-01-02"

// PlanningRequest describes one round-trip planning request.
type PlanningRequest struct {
	// SourceCity is the home city name (e.g. "Ithaca")
	SourceCity string `json:"source_city"`

	// DestinationCity is the city to visit
	DestinationCity string `json:"destination_city"`

	// DepartDate is the outbound date in YYYY-MM-DD format
	DepartDate string `json:"depart_date"`

	// ReturnDate is the return date in YYYY-MM-DD format; must be strictly
	// after DepartDate.
	ReturnDate string `json:"return_date"`

	// Preference is the optimization preference: cost or time
	Preference OptimizeFor `json:"optimization_preference"`

	// Budget is the maximum total cost in USD. Required when optimizing for
	// cost; ignored by validation otherwise.
	Budget *float64 `json:"budget,omitempty"`
}

// Validate checks the request shape. Returns a wrapped sentinel error so
// callers can map failures with errors.Is.
func (r *PlanningRequest) Validate() error {
	if r.SourceCity == "" {
		return fmt.Errorf("%w: source city is required", ErrInvalidRequest)
	}
	if r.DestinationCity == "" {
		return fmt.Errorf("%w: destination city is required", ErrInvalidRequest)
	}
	if !r.Preference.IsValid() {
		return fmt.Errorf("%w: optimization preference must be cost or time, got %q", ErrInvalidRequest, r.Preference)
	}

	depart, err := time.Parse(DateFormat, r.DepartDate)
	if err != nil {
		return fmt.Errorf("%w: depart date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, r.DepartDate)
	}
	ret, err := time.Parse(DateFormat, r.ReturnDate)
	if err != nil {
		return fmt.Errorf("%w: return date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, r.ReturnDate)
	}
	if !ret.After(depart) {
		return fmt.Errorf("%w: return date must be after departure date", ErrInvalidDateRange)
	}

	if r.Preference == OptimizeCost && (r.Budget == nil || *r.Budget <= 0) {
		return fmt.Errorf("%w: budget is required when optimizing for cost", ErrMissingBudget)
	}

	return nil
}

// EffectiveBudget returns the budget ceiling applied during selection:
// the stated budget plus a $100 allowance, or +Inf when no budget was given.
func (r *PlanningRequest) EffectiveBudget() float64 {
	if r.Budget == nil {
		return math.Inf(1)
	}
	return *r.Budget + BudgetAllowanceUSD
}

// BudgetAllowanceUSD is the slack added on top of a stated budget before
// filtering combinations.
const BudgetAllowanceUSD = 100
