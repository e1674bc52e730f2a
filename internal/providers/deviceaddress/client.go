package deviceaddress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"weather-skill/internal/providers/transport"
)

// API Docs: https://developer.amazon.com/en-US/docs/alexa/device-address/device-address-api.html
// Sample request: GET https://api.amazonalexa.com/v1/devices/{deviceId}/settings/address
const (
	BaseURL = "https://api.amazonalexa.com"

	// endpointDomain is the only domain an event may redirect address lookups to
	endpointDomain = "amazonalexa.com"
)

var (
	// ErrUnauthorized means the consent token is missing, expired or lacks the address permission
	ErrUnauthorized = errors.New("device address permission not granted")
	// ErrNoAddress means the device has no address set
	ErrNoAddress = errors.New("device address not set")
)

type Client struct {
	transport *transport.Client
	baseURL   string
	logger    *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		transport: transport.NewClient("deviceaddress", httpClient, logger),
		baseURL:   baseURL,
		logger:    logger.With("component", "deviceaddress-client"),
	}
}

// GetAddress fetches the address registered for a device. apiEndpoint
// overrides the client's base URL when the event names a regional https
// endpoint under amazonalexa.com; any other endpoint is ignored.
func (c *Client) GetAddress(ctx context.Context, apiEndpoint, deviceID, consentToken string) (*Address, error) {
	if consentToken == "" {
		return nil, ErrUnauthorized
	}

	base := c.baseURL
	if apiEndpoint != "" {
		if trustedEndpoint(apiEndpoint) {
			base = apiEndpoint
		} else {
			c.logger.Warn("ignoring untrusted api endpoint", "api_endpoint", apiEndpoint)
		}
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath("v1", "devices", deviceID, "settings", "address")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+consentToken)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching device address", "device_id", deviceID)

	resp, err := c.transport.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch device address", "device_id", deviceID, "error", err)
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return nil, ErrNoAddress
	case http.StatusUnauthorized, http.StatusForbidden:
		c.logger.Warn("device address permission denied",
			"device_id", deviceID,
			"status_code", resp.StatusCode,
		)
		return nil, ErrUnauthorized
	default:
		c.logger.Error("device address API returned error",
			"device_id", deviceID,
			"status_code", resp.StatusCode,
		)
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	var address Address
	if err := json.Unmarshal(resp.Body, &address); err != nil {
		c.logger.Error("failed to decode device address response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &address, nil
}

// trustedEndpoint reports whether raw is an https URL on amazonalexa.com or one of its subdomains
func trustedEndpoint(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" || u.User != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == endpointDomain || strings.HasSuffix(host, "."+endpointDomain)
}
