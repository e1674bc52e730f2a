package skill

import (
	"context"
	"errors"

	"weather-skill/internal/alexa"
	"weather-skill/internal/location"
	"weather-skill/internal/storage"
	"weather-skill/internal/types"
	"weather-skill/internal/weather"
)

// handleLaunch records the launch's consent token, overwriting any earlier one
// so a revoked grant is not replayed later
func (s *Skill) handleLaunch(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	if err := s.tokens.SaveConsentToken(ctx, req.UserID(), req.ConsentToken()); err != nil {
		s.logger.Warn("failed to store consent token", "error", err)
	}
	return alexa.Ask(msgLaunch, msgLaunchReprompt), nil
}

// handleLocationForecast answers "what's the weather in DC" or "... at 1600 pennsylvania avenue".
// Without a spoken location it falls back to the device address.
func (s *Skill) handleLocationForecast(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	query := req.SlotValue(slotCity)
	if query == "" {
		query = req.SlotValue(slotAddress)
	}
	if query == "" {
		return s.handleEchoForecast(ctx, req)
	}

	place, err := s.locationService.ResolveQuery(ctx, query)
	if err != nil {
		return s.failure(err), nil
	}
	return s.forecast(ctx, place), nil
}

// handleEchoForecast answers "what's the weather" for the address set on the device
func (s *Skill) handleEchoForecast(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	token := req.ConsentToken()
	if token == "" {
		stored, err := s.tokens.GetConsentToken(ctx, req.UserID())
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to load consent token", "error", err)
		}
		token = stored
	}

	place, err := s.locationService.ResolveDevice(ctx, location.DeviceQuery{
		DeviceID:     req.DeviceID(),
		ConsentToken: token,
		APIEndpoint:  req.APIEndpoint(),
	})
	if err != nil {
		return s.failure(err), nil
	}
	return s.forecast(ctx, place), nil
}

func (s *Skill) handleStop(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	return alexa.Tell(msgOkay), nil
}

func (s *Skill) handleHelp(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	return alexa.Ask(msgHelp, ""), nil
}

func (s *Skill) handleUnhandled(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	return alexa.Ask(msgUnhandled, ""), nil
}

func (s *Skill) forecast(ctx context.Context, place *types.Place) *alexa.ResponseEnvelope {
	f, err := s.weatherService.GetForecast(ctx, *place)
	if err != nil {
		return s.failure(err)
	}

	title := cardTitle
	if hl := f.Next24Hours.HighLow(); hl != "" {
		title += " (" + hl + ")"
	}

	var image *alexa.Image
	if img := s.images.Image(f); img != nil {
		image = &alexa.Image{SmallImageURL: img.SmallURL, LargeImageURL: img.LargeURL}
	}

	return alexa.TellWithCard(weather.SSML(f), title, weather.Plain(f), image)
}

// failure turns a pipeline error into a spoken message
func (s *Skill) failure(err error) *alexa.ResponseEnvelope {
	switch {
	case errors.Is(err, location.ErrPermissionRequired):
		s.logger.Info("device address permission required", "error", err)
		return alexa.AskForPermission(msgPermissionRequired, alexa.PermissionDeviceAddress)
	case errors.Is(err, location.ErrAddressNotSet):
		s.logger.Info("device address not set", "error", err)
		return alexa.Tell(msgAddressNotSet)
	case errors.Is(err, location.ErrLocationNotFound):
		s.logger.Info("location not understood", "error", err)
		return alexa.Tell(msgLocationNotFound)
	case errors.Is(err, weather.ErrForecastUnavailable):
		s.logger.Info("no forecast available", "error", err)
		return alexa.Tell(msgNoForecast)
	default:
		s.logger.Error("forecast request failed", "error", err)
		return alexa.Tell(msgFailure)
	}
}
