package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
)

// Config holds the planner's tunables.
type Config struct {
	// GlobalTimeout bounds one full planning request end to end.
	GlobalTimeout time.Duration

	// MaxWorkers bounds how many combination triples are evaluated
	// concurrently.
	MaxWorkers int
}

// DefaultConfig returns the planner defaults.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: 5 * time.Minute,
		MaxWorkers:    4,
	}
}

// JourneyPlanner is the application-facing entry point for journey planning.
type JourneyPlanner interface {
	// PlanJourney runs the full pipeline: validation, airport resolution,
	// combinatorial assembly, and preference-driven selection. The whole
	// request is bounded by the configured global timeout.
	PlanJourney(ctx context.Context, req domain.PlanningRequest) (*domain.SelectionResult, error)

	// GetAirports resolves the major airports serving a city.
	// Returns ErrNoAirportsFound when the city has none.
	GetAirports(ctx context.Context, city string) ([]string, error)

	// SearchFlights exposes raw one-way flight candidates for a single
	// airport pair and date.
	SearchFlights(ctx context.Context, origin, destination, date string) ([]domain.RawFlightCandidate, error)

	// EstimateGround exposes a single ground-transport estimate.
	EstimateGround(ctx context.Context, from, to, date, preferredTime string) (domain.GroundSegment, error)

	// OptimizeCombinations picks the best of precomputed combinations using
	// the balanced weighted-scoring policy. A budget, when given, filters
	// combinations the same way planning does.
	OptimizeCombinations(ctx context.Context, combos []domain.JourneyCombination, budget *float64) (*domain.JourneyCombination, error)
}

type journeyPlanner struct {
	cfg       Config
	gws       Gateways
	assembler Assembler
	log       *logger.Logger
}

// NewJourneyPlanner creates the planner with its gateway bundle.
func NewJourneyPlanner(cfg Config, gws Gateways, log *logger.Logger) JourneyPlanner {
	if cfg.GlobalTimeout <= 0 {
		cfg.GlobalTimeout = DefaultConfig().GlobalTimeout
	}
	if cfg.MaxWorkers < 1 {
		cfg.MaxWorkers = DefaultConfig().MaxWorkers
	}
	return &journeyPlanner{
		cfg:       cfg,
		gws:       gws,
		assembler: NewAssembler(gws, log, cfg.MaxWorkers),
		log:       log,
	}
}

var _ JourneyPlanner = (*journeyPlanner)(nil)

func (p *journeyPlanner) PlanJourney(ctx context.Context, req domain.PlanningRequest) (*domain.SelectionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.GlobalTimeout)
	defer cancel()

	started := time.Now()
	p.log.Info().
		Str("source_city", req.SourceCity).
		Str("destination_city", req.DestinationCity).
		Str("depart_date", req.DepartDate).
		Str("return_date", req.ReturnDate).
		Str("preference", string(req.Preference)).
		Msg("Planning journey")

	combos, err := p.assembler.Assemble(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := Select(combos, req)
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Int("combinations", len(combos)).
		Float64("preferred_cost", result.Preferred.TotalCost).
		Int("preferred_time", result.Preferred.TotalTime).
		Bool("has_alternative", result.HasAlternative()).
		Dur("elapsed", time.Since(started)).
		Msg("Journey planned")
	return &result, nil
}

func (p *journeyPlanner) GetAirports(ctx context.Context, city string) ([]string, error) {
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", domain.ErrInvalidRequest)
	}

	airports, err := p.gws.Airports.MajorAirports(ctx, city)
	if err != nil {
		if cause := ctx.Err(); cause != nil {
			return nil, cause
		}
		if !domain.IsNoData(err) {
			p.log.Warn().
				Err(err).
				Str("city", city).
				Msg("Airport lookup failed, treating as no airports")
		}
		return nil, domain.ErrNoAirportsFound
	}
	if len(airports) == 0 {
		return nil, domain.ErrNoAirportsFound
	}
	return airports, nil
}

func (p *journeyPlanner) SearchFlights(ctx context.Context, origin, destination, date string) ([]domain.RawFlightCandidate, error) {
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", domain.ErrInvalidRequest)
	}
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", domain.ErrInvalidRequest, date)
	}
	return p.gws.Flights.SearchFlights(ctx, origin, destination, date)
}

func (p *journeyPlanner) EstimateGround(ctx context.Context, from, to, date, preferredTime string) (domain.GroundSegment, error) {
	if from == "" || to == "" {
		return domain.GroundSegment{}, fmt.Errorf("%w: from and to are required", domain.ErrInvalidRequest)
	}
	return p.gws.Ground.Estimate(ctx, from, to, date, preferredTime)
}

func (p *journeyPlanner) OptimizeCombinations(ctx context.Context, combos []domain.JourneyCombination, budget *float64) (*domain.JourneyCombination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(combos) == 0 {
		return nil, domain.ErrNoCombinationsFound
	}

	candidates := combos
	if budget != nil {
		ceiling := *budget + domain.BudgetAllowanceUSD
		candidates = make([]domain.JourneyCombination, 0, len(combos))
		for _, c := range combos {
			if c.TotalCost <= ceiling {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			return nil, domain.ErrBudgetExceeded
		}
	}

	best, ok := SelectBalanced(candidates)
	if !ok {
		return nil, domain.ErrNoCombinationsFound
	}
	return &best, nil
}
