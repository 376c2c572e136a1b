// Package http provides the HTTP handler layer for the journey planning API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/doortodoor/journey-planner/internal/domain"
)

// PlanJourneyRequest represents the request body for round-trip planning.
type PlanJourneyRequest struct {
	// SourceCity is the home city name (e.g., "Ithaca")
	SourceCity string `json:"source_city"`

	// DestinationCity is the city to visit (e.g., "Chicago")
	DestinationCity string `json:"destination_city"`

	// DepartDate is the outbound travel date in YYYY-MM-DD format
	DepartDate string `json:"depart_date"`

	// ReturnDate is the return travel date in YYYY-MM-DD format
	ReturnDate string `json:"return_date"`

	// OptimizationPreference selects the ranking objective: cost or time
	OptimizationPreference string `json:"optimization_preference"`

	// Budget is the maximum total trip cost in USD; required when
	// optimizing for cost
	Budget *float64 `json:"budget,omitempty" example:"1000"`
}

// SearchFlightsRequest represents the request body for a raw one-way
// flight lookup.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "ORD")
	Destination string `json:"destination"`

	// Date is the travel date in YYYY-MM-DD format
	Date string `json:"date"`
}

// GroundTransportRequest represents the request body for a single
// ground-transport estimate.
type GroundTransportRequest struct {
	// From is the starting point: a city name or an airport name
	From string `json:"from"`

	// To is the ending point: a city name or an airport name
	To string `json:"to"`

	// Date is the travel date in YYYY-MM-DD format
	Date string `json:"date"`

	// PreferredTime is an optional earliest acceptable departure in
	// 12-hour clock format (e.g., "9:30 AM")
	PreferredTime string `json:"preferred_time,omitempty"`
}

// OptimizeRequest represents the request body for re-ranking precomputed
// journey combinations with the balanced scoring model.
type OptimizeRequest struct {
	// Combinations are the candidate round trips to rank
	Combinations []domain.JourneyCombination `json:"combinations"`

	// Budget is an optional cost ceiling in USD applied before ranking
	Budget *float64 `json:"budget,omitempty" example:"1000"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern       = regexp.MustCompile(`^\d{1,2}:\d{2}\s?(?i:AM|PM)$`)
)

// Valid optimization preferences.
var validPreferences = map[string]bool{
	"cost": true,
	"time": true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the planning request and returns any validation errors.
func (r *PlanJourneyRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateCities(errs)
	r.validateDates(errs)
	r.validatePreference(errs)
	r.validateBudget(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *PlanJourneyRequest) validateCities(errs *ValidationErrors) {
	r.SourceCity = strings.TrimSpace(r.SourceCity)
	r.DestinationCity = strings.TrimSpace(r.DestinationCity)

	if r.SourceCity == "" {
		errs.Add("source_city", "source_city is required")
	}
	if r.DestinationCity == "" {
		errs.Add("destination_city", "destination_city is required")
	}
	if r.SourceCity != "" && r.DestinationCity != "" &&
		strings.EqualFold(r.SourceCity, r.DestinationCity) {
		errs.Add("destination_city", "source_city and destination_city must be different")
	}
}

func (r *PlanJourneyRequest) validateDates(errs *ValidationErrors) {
	depart, departOK := validateDateField(errs, "depart_date", r.DepartDate)
	ret, returnOK := validateDateField(errs, "return_date", r.ReturnDate)

	if departOK && returnOK && !ret.After(depart) {
		errs.Add("return_date", "return_date must be after depart_date")
	}
}

func (r *PlanJourneyRequest) validatePreference(errs *ValidationErrors) {
	pref := strings.ToLower(r.OptimizationPreference)
	if !validPreferences[pref] {
		errs.Add("optimization_preference", "optimization_preference must be one of: cost, time")
		return
	}
	r.OptimizationPreference = pref // Normalize to lowercase
}

func (r *PlanJourneyRequest) validateBudget(errs *ValidationErrors) {
	if r.Budget != nil && *r.Budget <= 0 {
		errs.Add("budget", "budget must be a positive number")
		return
	}
	if strings.ToLower(r.OptimizationPreference) == "cost" && r.Budget == nil {
		errs.Add("budget", "budget is required when optimizing for cost")
	}
}

// Validate validates the flight search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	validateDateField(errs, "date", r.Date)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(r.Origin)
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin // Normalize to uppercase
}

func (r *SearchFlightsRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(r.Destination)
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest // Normalize to uppercase
}

func (r *SearchFlightsRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

// Validate validates the ground transport request and returns any validation errors.
func (r *GroundTransportRequest) Validate() error {
	errs := &ValidationErrors{}

	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)

	if r.From == "" {
		errs.Add("from", "from is required")
	}
	if r.To == "" {
		errs.Add("to", "to is required")
	}
	validateDateField(errs, "date", r.Date)

	if r.PreferredTime != "" && !clockPattern.MatchString(r.PreferredTime) {
		errs.Add("preferred_time", "preferred_time must be in 12-hour clock format (e.g., 9:30 AM)")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the optimize request and returns any validation errors.
func (r *OptimizeRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.Combinations) == 0 {
		errs.Add("combinations", "at least one combination is required")
	}
	if r.Budget != nil && *r.Budget <= 0 {
		errs.Add("budget", "budget must be a positive number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateDateField checks a date string against the wire format and returns
// the parsed date when valid.
func validateDateField(errs *ValidationErrors, field, value string) (time.Time, bool) {
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}, false
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}

	parsed, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return parsed, true
}
