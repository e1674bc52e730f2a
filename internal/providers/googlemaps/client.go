package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"weather-skill/internal/providers/transport"
)

// API Docs: https://developers.google.com/maps/documentation/geocoding/requests-geocoding
// Sample request: https://maps.googleapis.com/maps/api/geocode/json?address=1600+Pennsylvania+Ave&key=KEY
const (
	BaseURL     = "https://maps.googleapis.com"
	geocodePath = "/maps/api/geocode/json"
)

type Client struct {
	transport *transport.Client
	baseURL   string
	apiKey    string
	logger    *slog.Logger
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		transport: transport.NewClient("googlemaps", httpClient, logger),
		baseURL:   baseURL,
		apiKey:    apiKey,
		logger:    logger.With("component", "googlemaps-client"),
	}
}

// Geocode looks up a free-text address. The response status is not
// interpreted here; callers decide what a non-OK status means.
func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = geocodePath
	q := u.Query()
	q.Set("address", address)
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	c.logger.Debug("geocoding address", "address", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch geocode", "error", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("geocode API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(resp.Body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(resp.Body))
	}

	var apiResp GeocodeAPIResponse
	if err := json.Unmarshal(resp.Body, &apiResp); err != nil {
		c.logger.Error("failed to decode geocode response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("geocode complete",
		"status", apiResp.Status,
		"result_count", len(apiResp.Results),
	)

	return &apiResp, nil
}
