package darksky

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"weather-skill/internal/providers/transport"
	"weather-skill/internal/types"
)

// API Docs: https://darksky.net/dev/docs
// Sample request: https://api.darksky.net/forecast/KEY/38.8976763,-77.0365298
const (
	BaseURL = "https://api.darksky.net"
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
		transport: transport.NewClient("darksky", httpClient, logger),
		baseURL:   baseURL,
		apiKey:    apiKey,
		logger:    logger.With("component", "darksky-client"),
	}
}

// GetForecast fetches the forecast for the given coordinates
func (c *Client) GetForecast(ctx context.Context, coords types.Coords) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u = u.JoinPath("forecast", c.apiKey, coords.String())

	c.logger.Debug("fetching forecast",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch forecast", "error", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("forecast API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(resp.Body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(resp.Body))
	}

	var apiResp ForecastAPIResponse
	if err := json.Unmarshal(resp.Body, &apiResp); err != nil {
		c.logger.Error("failed to decode forecast response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
