// Package skyscanner implements the flight gateway against the Sky Scrapper
// API on RapidAPI.
package skyscanner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
	"github.com/doortodoor/journey-planner/internal/infrastructure/retry"
)

// GatewayName identifies this gateway in errors and logs.
const GatewayName = "skyscanner"

const searchOneWayPath = "/flights/search-one-way"

// Config holds the client settings.
type Config struct {
	// BaseURL is the API root, e.g. "https://sky-scanner3.p.rapidapi.com"
	BaseURL string

	// APIKey and Host are the RapidAPI credentials.
	APIKey string
	Host   string

	// AttemptTimeout bounds a single search attempt.
	AttemptTimeout time.Duration

	// RequestsPerSecond and Burst configure the client-side rate limit.
	RequestsPerSecond float64
	Burst             int
}

// Client is a domain.FlightGateway backed by the Sky Scrapper API.
// Lookups are rate limited and retried on transient failures.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewClient creates a flight gateway client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.AttemptTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		log:     log.WithGateway(GatewayName),
	}
}

var _ domain.FlightGateway = (*Client)(nil)

// SearchFlights looks up one-way candidates for an airport pair and date.
// Transient failures are retried three times with a one-second delay; a
// route with no itineraries returns domain.ErrNoData.
func (c *Client) SearchFlights(ctx context.Context, origin, destination, date string) ([]domain.RawFlightCandidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	cfg := retry.FlightSearchConfig.WithRetryIf(domain.IsRetryable)
	itineraries, err := retry.DoWithResult(ctx, func() ([]itinerary, error) {
		return c.searchOnce(ctx, origin, destination, date)
	}, cfg)
	if err != nil {
		return nil, err
	}

	if len(itineraries) == 0 {
		return nil, fmt.Errorf("no flights %s to %s on %s: %w", origin, destination, date, domain.ErrNoData)
	}

	candidates := make([]domain.RawFlightCandidate, 0, len(itineraries))
	for _, it := range itineraries {
		if len(it.Legs) == 0 {
			continue
		}
		candidates = append(candidates, toCandidate(it))
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no usable flights %s to %s: %w", origin, destination, domain.ErrNoData)
	}

	c.log.Debug().
		Str("origin", origin).
		Str("destination", destination).
		Str("date", date).
		Int("candidates", len(candidates)).
		Msg("Flight search complete")
	return candidates, nil
}

func (c *Client) searchOnce(ctx context.Context, origin, destination, date string) ([]itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.AttemptTimeout)
	defer cancel()

	query := url.Values{
		"fromEntityId": {origin},
		"toEntityId":   {destination},
		"departDate":   {date},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+searchOneWayPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, domain.NewGatewayError(GatewayName, err)
	}
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.Host)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.NewRetryableGatewayError(GatewayName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, domain.NewRetryableGatewayError(GatewayName, err)
		}
		return nil, domain.NewGatewayError(GatewayName, err)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewGatewayError(GatewayName, fmt.Errorf("decoding response: %w", err))
	}
	return payload.Data.Itineraries, nil
}

// searchResponse mirrors the Sky Scrapper one-way search payload, reduced to
// the fields the planner consumes.
type searchResponse struct {
	Data struct {
		Itineraries []itinerary `json:"itineraries"`
	} `json:"data"`
}

type itinerary struct {
	Price struct {
		Raw       float64 `json:"raw"`
		Formatted string  `json:"formatted"`
	} `json:"price"`
	Legs []leg `json:"legs"`
}

type leg struct {
	Origin            place  `json:"origin"`
	Destination       place  `json:"destination"`
	Departure         string `json:"departure"`
	Arrival           string `json:"arrival"`
	DurationInMinutes int    `json:"durationInMinutes"`
	StopCount         int    `json:"stopCount"`
	Carriers          struct {
		Marketing []carrier `json:"marketing"`
		Operating []carrier `json:"operating"`
	} `json:"carriers"`
}

type place struct {
	DisplayCode string `json:"displayCode"`
}

type carrier struct {
	Name string `json:"name"`
}

// toCandidate flattens an itinerary's first leg into the planner's raw
// candidate shape.
func toCandidate(it itinerary) domain.RawFlightCandidate {
	first := it.Legs[0]
	return domain.RawFlightCandidate{
		PriceRaw:          it.Price.Raw,
		PriceDisplay:      it.Price.Formatted,
		Origin:            first.Origin.DisplayCode,
		Destination:       first.Destination.DisplayCode,
		Departure:         first.Departure,
		Arrival:           first.Arrival,
		DurationMinutes:   first.DurationInMinutes,
		MarketingCarriers: carrierNames(first.Carriers.Marketing),
		OperatingCarriers: carrierNames(first.Carriers.Operating),
		Stops:             first.StopCount,
	}
}

func carrierNames(carriers []carrier) []string {
	if len(carriers) == 0 {
		return nil
	}
	names := make([]string, 0, len(carriers))
	for _, c := range carriers {
		names = append(names, c.Name)
	}
	return names
}
