// Package wanderu implements the bus-search gateway against a Wanderu-style
// trip search API.
package wanderu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
	"github.com/doortodoor/journey-planner/internal/infrastructure/timeutil"
)

// GatewayName identifies this gateway in errors and logs.
const GatewayName = "wanderu"

const searchPath = "/search"

// departureGraceMinutes is added to a preferred time before filtering, so a
// bus leaving right at a flight's arrival is never offered.
const departureGraceMinutes = 60

// maxResults caps how many options a search returns.
const maxResults = 10

// Config holds the client settings.
type Config struct {
	// BaseURL is the trip-search API root.
	BaseURL string

	// Timeout bounds a single search call.
	Timeout time.Duration
}

// Client is a domain.BusGateway backed by a trip-search API.
type Client struct {
	cfg  Config
	http *http.Client
	log  *logger.Logger
}

// NewClient creates a bus-search client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.WithGateway(GatewayName),
	}
}

var _ domain.BusGateway = (*Client)(nil)

// SearchBuses returns scheduled departures between two cities, in the
// requested ordering. When preferredTime is given, only departures at least
// an hour after it are returned. An empty result is domain.ErrNoData.
func (c *Client) SearchBuses(ctx context.Context, from, to, date, preferredTime string, sortBy domain.BusSortBy) ([]domain.BusOption, error) {
	query := url.Values{
		"from": {from},
		"to":   {to},
		"date": {date},
		"sort": {string(sortBy)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+searchPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, domain.NewGatewayError(GatewayName, err)
	}

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

	options := filterByDeparture(payload.Trips, preferredTime)
	if len(options) == 0 {
		return nil, fmt.Errorf("no buses %s to %s on %s: %w", from, to, date, domain.ErrNoData)
	}
	if len(options) > maxResults {
		options = options[:maxResults]
	}

	c.log.Debug().
		Str("from", from).
		Str("to", to).
		Str("sort", string(sortBy)).
		Int("options", len(options)).
		Msg("Bus search complete")
	return options, nil
}

type searchResponse struct {
	Trips []domain.BusOption `json:"trips"`
}

// filterByDeparture drops options leaving before the preferred time plus the
// grace period. Options without a parseable departure are dropped too; with
// no preferred time everything passes.
func filterByDeparture(trips []domain.BusOption, preferredTime string) []domain.BusOption {
	if preferredTime == "" {
		return trips
	}
	earliest, err := timeutil.ParseClockMinutes(preferredTime)
	if err != nil {
		return trips
	}
	earliest += departureGraceMinutes

	kept := make([]domain.BusOption, 0, len(trips))
	for _, t := range trips {
		dep, err := timeutil.ParseClockMinutes(t.DepartureTime)
		if err != nil {
			continue
		}
		if dep >= earliest {
			kept = append(kept, t)
		}
	}
	return kept
}
