// Package transit implements the ground-transport gateway. It layers
// heuristics over the cityinfo and bus gateways: short in-city hops get a
// flat cab estimate, cities with a major airport get an airport cab rate,
// and longer intercity legs prefer a scheduled bus with a distance-based
// cab fallback.
package transit

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
	"github.com/doortodoor/journey-planner/internal/infrastructure/timeutil"
)

// GatewayName identifies this gateway in errors and logs.
const GatewayName = "transit"

// Flat estimates for the heuristic tiers.
const (
	cityCabMinutes    = 30
	cityCabCost       = 25.0
	airportCabMinutes = 45
	airportCabCost    = 35.0
	defaultCabMinutes = 60
	defaultCabCost    = 45.0

	// Cab fare model for distance-based estimates.
	cabBaseFareUSD    = 3.0
	cabFarePerMileUSD = 2.5
)

// CityInfo is the subset of the cityinfo gateway the estimator needs.
type CityInfo interface {
	CityForAirport(ctx context.Context, code string) (string, error)
	HasMajorAirport(ctx context.Context, city string) (bool, error)
	EstimateDrive(ctx context.Context, from, to string) (miles float64, minutes int, err error)
}

// Estimator is a domain.GroundTransportGateway built on heuristics.
type Estimator struct {
	info    CityInfo
	buses   domain.BusGateway
	timeout time.Duration
	log     *logger.Logger
}

// NewEstimator creates a ground-transport estimator. Each estimate is
// bounded by timeout; when the clock runs out the conservative default
// cab rate is returned instead of an error.
func NewEstimator(info CityInfo, buses domain.BusGateway, timeout time.Duration, log *logger.Logger) *Estimator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Estimator{
		info:    info,
		buses:   buses,
		timeout: timeout,
		log:     log.WithGateway(GatewayName),
	}
}

var _ domain.GroundTransportGateway = (*Estimator)(nil)

// airportCodePattern matches a parenthesized IATA code, e.g. "(ORD)".
var airportCodePattern = regexp.MustCompile(`\(([A-Z]{3})\)`)

// parenthesizedPattern matches any parenthesized fragment.
var parenthesizedPattern = regexp.MustCompile(`\([^)]*\)`)

// airportSuffixPattern matches airport-size qualifiers in place names.
var airportSuffixPattern = regexp.MustCompile(`(?i)(international|regional|municipal)`)

// Estimate produces a single ground leg between two places. Gateway
// failures degrade tier by tier down to the default cab rate; only
// cancellation of the caller's context is surfaced as an error.
func (e *Estimator) Estimate(ctx context.Context, from, to, date, preferredTime string) (domain.GroundSegment, error) {
	fromIsAirport := strings.Contains(from, "Airport")
	toIsAirport := strings.Contains(to, "Airport")

	if !fromIsAirport && !toIsAirport {
		return cabSegment(cityCabMinutes, cityCabCost, "Direct cab service available"), nil
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	segment, err := e.estimateAirportLeg(ctx, from, to, date, preferredTime, fromIsAirport)
	if err != nil {
		if parentErr := parent.Err(); parentErr != nil {
			return domain.GroundSegment{}, parentErr
		}
		e.log.Warn().Err(err).
			Str("from", from).
			Str("to", to).
			Msg("Falling back to default cab estimate")
		return cabSegment(defaultCabMinutes, defaultCabCost, "Using cab service for this route"), nil
	}
	return segment, nil
}

func (e *Estimator) estimateAirportLeg(ctx context.Context, from, to, date, preferredTime string, fromIsAirport bool) (domain.GroundSegment, error) {
	fromCity := e.cityName(ctx, from)
	toCity := e.cityName(ctx, to)

	if strings.EqualFold(fromCity, toCity) {
		return cabSegment(cityCabMinutes, cityCabCost, "Same city, using cab service"), nil
	}

	// The city on the non-airport end decides the tier.
	city := toCity
	if !fromIsAirport {
		city = fromCity
	}
	hasMajor, err := e.info.HasMajorAirport(ctx, city)
	if err != nil {
		return domain.GroundSegment{}, err
	}
	if hasMajor {
		return cabSegment(airportCabMinutes, airportCabCost, "City has major airport, using cab service"), nil
	}

	if segment, ok := e.busLeg(ctx, fromCity, toCity, date, preferredTime); ok {
		return segment, nil
	}

	return e.driveLeg(ctx, fromCity, toCity)
}

// busLeg looks for a scheduled bus and converts the first usable option.
func (e *Estimator) busLeg(ctx context.Context, fromCity, toCity, date, preferredTime string) (domain.GroundSegment, bool) {
	sortBy := domain.BusSortCheapest
	if preferredTime != "" {
		sortBy = domain.BusSortFastest
	}

	options, err := e.buses.SearchBuses(ctx, fromCity, toCity, date, preferredTime, sortBy)
	if err != nil {
		if !domain.IsNoData(err) {
			e.log.Warn().Err(err).
				Str("from", fromCity).
				Str("to", toCity).
				Msg("Bus search failed")
		}
		return domain.GroundSegment{}, false
	}

	for _, opt := range options {
		duration, err := timeutil.ScheduleDuration(opt.DepartureTime, opt.ArrivalTime)
		if err != nil {
			continue
		}
		price, err := domain.ParseDisplayPrice(opt.Price)
		if err != nil {
			continue
		}
		return domain.GroundSegment{
			DurationMinutes: duration,
			CostUSD:         price,
			RecommendedMode: domain.ModeBus,
			Notes:           fmt.Sprintf("Service by %s", opt.Provider),
			DepartureTime:   opt.DepartureTime,
			ArrivalTime:     opt.ArrivalTime,
		}, true
	}
	return domain.GroundSegment{}, false
}

// driveLeg estimates a cab ride from the driving distance.
func (e *Estimator) driveLeg(ctx context.Context, fromCity, toCity string) (domain.GroundSegment, error) {
	miles, minutes, err := e.info.EstimateDrive(ctx, fromCity, toCity)
	if err != nil {
		return domain.GroundSegment{}, err
	}
	fare := math.Round((cabBaseFareUSD+cabFarePerMileUSD*miles)*100) / 100
	return cabSegment(minutes, fare, fmt.Sprintf("Using cab service for %.1f mile journey", miles)), nil
}

// cityName reduces a place string to a bare city name. Airport places
// resolve through the airport code when one is present, otherwise the text
// before "Airport" is cleaned up.
func (e *Estimator) cityName(ctx context.Context, place string) string {
	if strings.Contains(place, "Airport") {
		if m := airportCodePattern.FindStringSubmatch(place); m != nil {
			if city, err := e.info.CityForAirport(ctx, m[1]); err == nil {
				return city
			}
		}
		city := strings.TrimSpace(strings.SplitN(place, "Airport", 2)[0])
		city = parenthesizedPattern.ReplaceAllString(city, "")
		city = airportSuffixPattern.ReplaceAllString(city, "")
		return strings.TrimSpace(city)
	}

	city := parenthesizedPattern.ReplaceAllString(place, "")
	return strings.TrimSpace(strings.SplitN(city, ",", 2)[0])
}

func cabSegment(minutes int, cost float64, notes string) domain.GroundSegment {
	return domain.GroundSegment{
		DurationMinutes: minutes,
		CostUSD:         cost,
		RecommendedMode: domain.ModeCab,
		Notes:           notes,
	}
}
