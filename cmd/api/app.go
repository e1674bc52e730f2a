package main

import (
	"context"
	"fmt"
	"log/slog"

	"weather-skill/internal/alexa"
	"weather-skill/internal/config"
	"weather-skill/internal/skill"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	_ "weather-skill/docs" // Ensure docs are imported
)

const requestIDHeader = "X-Request-ID"

// requestHandler answers voice requests
type requestHandler interface {
	Handle(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error)
}

// App encapsulates application dependencies
type App struct {
	router *gin.Engine
	logger *slog.Logger
	skill  requestHandler
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	s, err := skill.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return newApp(s, logger), nil
}

func newApp(handler requestHandler, logger *slog.Logger) *App {
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())

	app := &App{
		router: router,
		logger: logger.With("component", "api"),
		skill:  handler,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// requestID tags every request with an ID, reusing the caller's when present
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
