// Package cityinfo implements the airport-knowledge gateway on top of an
// LLM chat-completions API. It answers questions no static dataset covers
// well: which major airports serve a city, whether a city has one at all,
// and rough driving estimates between places.
package cityinfo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
)

// GatewayName identifies this gateway in errors and logs.
const GatewayName = "cityinfo"

const completionsPath = "/chat/completions"

const airportsPrompt = `Given the location %q, return a JSON object:
- If the location has a major airport (international or large regional), return it.
- If the location only has a small municipal/private airport, return nearby major airports instead.
- Do not return small municipal or private airports.
- Limit results to a 4-5 hour drive.

Response format:
{"has_major_airport": true, "airport_codes": ["JFK", "ORD"]}`

const airportsSystemPrompt = "You are a travel assistant that provides only major airport codes in JSON format."

// Config holds the client settings.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.openai.com/v1"
	BaseURL string

	// APIKey is the bearer token.
	APIKey string

	// Model is the chat model to query.
	Model string

	// Timeout bounds a single completion call.
	Timeout time.Duration
}

// Client answers city and airport questions through a chat model.
type Client struct {
	cfg  Config
	http *http.Client
	log  *logger.Logger
}

// NewClient creates a cityinfo client.
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

var _ domain.AirportGateway = (*Client)(nil)

// MajorAirports resolves a city to the codes of major airports within
// reasonable driving range. Unusable model output degrades to ErrNoData
// rather than failing the caller.
func (c *Client) MajorAirports(ctx context.Context, city string) ([]string, error) {
	content, err := c.complete(ctx, airportsSystemPrompt, fmt.Sprintf(airportsPrompt, city))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		HasMajorAirport bool     `json:"has_major_airport"`
		AirportCodes    []string `json:"airport_codes"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err != nil {
		c.log.Warn().Err(err).Str("city", city).Msg("Unparseable airport answer")
		return nil, fmt.Errorf("airports for %q: %w", city, domain.ErrNoData)
	}
	if !parsed.HasMajorAirport || len(parsed.AirportCodes) == 0 {
		return nil, nil
	}
	return parsed.AirportCodes, nil
}

// CityForAirport resolves an IATA airport code to the city it serves.
func (c *Client) CityForAirport(ctx context.Context, code string) (string, error) {
	content, err := c.complete(ctx, "", fmt.Sprintf("What city is the airport code %s in? Just respond with the city name only.", code))
	if err != nil {
		return "", err
	}
	city := strings.TrimSpace(strings.SplitN(content, ",", 2)[0])
	if city == "" {
		return "", fmt.Errorf("city for airport %s: %w", code, domain.ErrNoData)
	}
	return city, nil
}

// HasMajorAirport answers whether a city is served by a major airport.
func (c *Client) HasMajorAirport(ctx context.Context, city string) (bool, error) {
	content, err := c.complete(ctx, "", fmt.Sprintf("Does %s have a major airport? Just respond with yes or no.", city))
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToLower(content), "yes"), nil
}

// EstimateDrive returns the approximate driving distance in miles and the
// typical driving time in minutes between two places.
func (c *Client) EstimateDrive(ctx context.Context, from, to string) (miles float64, minutes int, err error) {
	prompt := fmt.Sprintf(
		"What is the approximate driving distance in miles and typical driving time in minutes from %s to %s? Just respond with two numbers separated by a comma: distance,minutes",
		from, to)
	content, err := c.complete(ctx, "", prompt)
	if err != nil {
		return 0, 0, err
	}

	parts := strings.SplitN(strings.TrimSpace(content), ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("drive estimate %s to %s: %w", from, to, domain.ErrNoData)
	}
	miles, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	mins, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || miles < 0 || mins < 0 {
		return 0, 0, fmt.Errorf("drive estimate %s to %s: %w", from, to, domain.ErrNoData)
	}
	return miles, int(mins), nil
}

// complete runs one chat completion and returns the first choice's content.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: 0,
	})
	if err != nil {
		return "", domain.NewGatewayError(GatewayName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewGatewayError(GatewayName, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", domain.NewRetryableGatewayError(GatewayName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", domain.NewRetryableGatewayError(GatewayName, err)
		}
		return "", domain.NewGatewayError(GatewayName, err)
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", domain.NewGatewayError(GatewayName, fmt.Errorf("decoding response: %w", err))
	}
	if len(payload.Choices) == 0 {
		return "", domain.NewGatewayError(GatewayName, fmt.Errorf("response carried no choices"))
	}
	return strings.TrimSpace(payload.Choices[0].Message.Content), nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// stripCodeFence removes a surrounding markdown code fence, which chat
// models sometimes wrap JSON answers in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
