package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"weather-skill/internal/config"
	"weather-skill/internal/providers/deviceaddress"
	"weather-skill/internal/providers/googlemaps"
	"weather-skill/internal/types"
)

var (
	ErrPermissionRequired = errors.New("device address permission required")
	ErrAddressNotSet      = errors.New("device address not set")
	ErrLocationNotFound   = errors.New("location not understood")
)

// Service resolves spoken locations and device addresses to places
type Service interface {
	// ResolveQuery geocodes a free-text address or city
	ResolveQuery(ctx context.Context, query string) (*types.Place, error)
	// ResolveDevice geocodes the address registered for a device
	ResolveDevice(ctx context.Context, device DeviceQuery) (*types.Place, error)
}

// DeviceQuery identifies a device and the credential granting access to its address
type DeviceQuery struct {
	DeviceID     string
	ConsentToken string
	APIEndpoint  string
}

// GeocodeProvider defines the interface for geocoding providers
type GeocodeProvider interface {
	Geocode(ctx context.Context, address string) (*googlemaps.GeocodeAPIResponse, error)
}

// DeviceAddressProvider defines the interface for device address providers
type DeviceAddressProvider interface {
	GetAddress(ctx context.Context, apiEndpoint, deviceID, consentToken string) (*deviceaddress.Address, error)
}

type locationService struct {
	geocodeProvider       GeocodeProvider
	deviceAddressProvider DeviceAddressProvider
	logger                *slog.Logger
}

// NewLocationService creates a new location service with real provider clients
func NewLocationService(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) Service {
	return NewLocationServiceWithProviders(
		googlemaps.NewClient(cfg.Maps.BaseURL, cfg.Maps.APIKey, httpClient, logger),
		deviceaddress.NewClient(cfg.Alexa.APIEndpoint, httpClient, logger),
		logger,
	)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	geocodeProvider GeocodeProvider,
	deviceAddressProvider DeviceAddressProvider,
	logger *slog.Logger,
) Service {
	return &locationService{
		geocodeProvider:       geocodeProvider,
		deviceAddressProvider: deviceAddressProvider,
		logger:                logger.With("component", "location-service"),
	}
}

func (s *locationService) ResolveQuery(ctx context.Context, query string) (*types.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrLocationNotFound
	}
	return s.geocode(ctx, query)
}

func (s *locationService) ResolveDevice(ctx context.Context, device DeviceQuery) (*types.Place, error) {
	address, err := s.deviceAddressProvider.GetAddress(ctx, device.APIEndpoint, device.DeviceID, device.ConsentToken)
	switch {
	case errors.Is(err, deviceaddress.ErrUnauthorized):
		return nil, fmt.Errorf("%w: %v", ErrPermissionRequired, err)
	case errors.Is(err, deviceaddress.ErrNoAddress):
		return nil, fmt.Errorf("%w: %v", ErrAddressNotSet, err)
	case err != nil:
		return nil, fmt.Errorf("failed to get device address: %w", err)
	}

	query := AddressString(address)
	if query == "" {
		return nil, ErrAddressNotSet
	}

	s.logger.Debug("resolved device address", "device_id", device.DeviceID, "address", query)

	return s.geocode(ctx, query)
}

func (s *locationService) geocode(ctx context.Context, query string) (*types.Place, error) {
	resp, err := s.geocodeProvider.Geocode(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode: %w", err)
	}

	return translatePlace(query, resp)
}

// translatePlace converts a geocode response to a Place. Only an OK status with
// at least one result counts as a match.
func translatePlace(query string, resp *googlemaps.GeocodeAPIResponse) (*types.Place, error) {
	if resp == nil {
		return nil, fmt.Errorf("geocode response is nil")
	}
	if resp.Status != googlemaps.StatusOK || len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: %q returned status %s", ErrLocationNotFound, query, resp.Status)
	}

	first := resp.Results[0]
	return &types.Place{
		Coordinates:      types.NewCoords(first.Geometry.Location.Lat, first.Geometry.Location.Lng),
		FormattedAddress: first.FormattedAddress,
	}, nil
}

// AddressString joins the non-empty address fields with ", " in the order
// line 1, line 2, line 3, city, region, country code, postal code
func AddressString(address *deviceaddress.Address) string {
	if address == nil {
		return ""
	}

	fields := []string{
		address.AddressLine1,
		address.AddressLine2,
		address.AddressLine3,
		address.City,
		address.StateOrRegion,
		address.CountryCode,
		address.PostalCode,
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, ", ")
}
