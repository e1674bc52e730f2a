package main

import (
	"context"
	"log"
	"log/slog"

	"weather-skill/internal/alexa"
	"weather-skill/internal/config"
	"weather-skill/internal/skill"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	s, err := skill.New(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create skill: %v", err)
	}

	logger.Info("starting lambda handler")
	lambda.Start(func(ctx context.Context, req alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
		return s.Handle(ctx, &req)
	})
}
