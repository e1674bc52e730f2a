package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"weather-skill/internal/alexa"
	"weather-skill/internal/config"
	"weather-skill/internal/imgix"
	"weather-skill/internal/location"
	"weather-skill/internal/storage"
	"weather-skill/internal/weather"
)

// Intent and handler names
const (
	HandlerLaunch          = alexa.RequestTypeLaunch
	IntentLocationForecast = "LocationForecastIntent"
	IntentEchoForecast     = "EchoForecastIntent"
	IntentStop             = "AMAZON.StopIntent"
	IntentCancel           = "AMAZON.CancelIntent"
	IntentHelp             = "AMAZON.HelpIntent"
	HandlerUnhandled       = "Unhandled"
)

const (
	slotCity    = "city"
	slotAddress = "address"
)

// ErrInvalidApplicationID is returned for requests addressed to a different skill
var ErrInvalidApplicationID = errors.New("invalid application ID")

// HandlerFunc handles one kind of request
type HandlerFunc func(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error)

// Skill routes voice requests to intent handlers
type Skill struct {
	appID           string
	locationService location.Service
	weatherService  weather.Service
	images          *weather.ImageSet
	tokens          storage.TokenStore
	handlers        map[string]HandlerFunc
	logger          *slog.Logger
}

// New creates a skill with real provider clients, token store and image set
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Skill, error) {
	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}

	tokens, err := storage.NewTokenStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create token store: %w", err)
	}

	var builder weather.URLBuilder
	if cfg.Images.ImgixDomain != "" {
		builder = imgix.NewURLBuilder(cfg.Images.ImgixDomain, cfg.Images.ImgixToken)
	}

	return NewWithServices(
		cfg.Alexa.AppID,
		location.NewLocationService(cfg, httpClient, logger),
		weather.NewWeatherService(cfg, httpClient, logger),
		weather.NewImageSet(cfg.Images.S3Bucket, builder),
		tokens,
		logger,
	), nil
}

// NewWithServices creates a skill with custom services
// This is useful for testing with mock services
func NewWithServices(
	appID string,
	locationService location.Service,
	weatherService weather.Service,
	images *weather.ImageSet,
	tokens storage.TokenStore,
	logger *slog.Logger,
) *Skill {
	s := &Skill{
		appID:           appID,
		locationService: locationService,
		weatherService:  weatherService,
		images:          images,
		tokens:          tokens,
		logger:          logger.With("component", "skill"),
	}

	s.handlers = map[string]HandlerFunc{
		HandlerLaunch:          s.handleLaunch,
		IntentLocationForecast: s.handleLocationForecast,
		IntentEchoForecast:     s.handleEchoForecast,
		IntentStop:             s.handleStop,
		IntentCancel:           s.handleStop,
		IntentHelp:             s.handleHelp,
		HandlerUnhandled:       s.handleUnhandled,
	}

	return s
}

// Handle verifies and routes a request
func (s *Skill) Handle(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	if req == nil {
		return nil, fmt.Errorf("request is nil")
	}

	if s.appID != "" && req.ApplicationID() != s.appID {
		s.logger.Warn("rejected request for another application",
			"application_id", req.ApplicationID(),
			"request_id", req.Request.RequestID,
		)
		return nil, fmt.Errorf("%w: %q", ErrInvalidApplicationID, req.ApplicationID())
	}

	name := s.route(req)
	s.logger.Debug("handling request",
		"request_id", req.Request.RequestID,
		"request_type", req.Request.Type,
		"handler", name,
	)

	if name == "" {
		return alexa.Empty(), nil
	}
	return s.handlers[name](ctx, req)
}

// route picks the handler name, empty for requests that need no reply
func (s *Skill) route(req *alexa.RequestEnvelope) string {
	switch req.Request.Type {
	case alexa.RequestTypeLaunch:
		return HandlerLaunch
	case alexa.RequestTypeSessionEnded:
		return ""
	case alexa.RequestTypeIntent:
		if _, ok := s.handlers[req.IntentName()]; ok && req.IntentName() != HandlerLaunch && req.IntentName() != HandlerUnhandled {
			return req.IntentName()
		}
	}
	return HandlerUnhandled
}
