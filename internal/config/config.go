package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the skill
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Alexa   AlexaConfig
	Maps    MapsConfig
	DarkSky DarkSkyConfig
	Images  ImagesConfig
	Storage StorageConfig
	HTTP    HTTPConfig
}

// ServerConfig holds configuration for the HTTPS endpoint server
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AlexaConfig holds voice platform settings
type AlexaConfig struct {
	AppID       string // empty disables application ID verification
	APIEndpoint string // used when the event carries no apiEndpoint
}

// MapsConfig holds geocoding settings
type MapsConfig struct {
	APIKey  string `validate:"required"`
	BaseURL string `validate:"required,url"`
}

// DarkSkyConfig holds forecast settings
type DarkSkyConfig struct {
	APIKey  string `validate:"required"`
	BaseURL string `validate:"required,url"`
}

// ImagesConfig holds settings for the forecast card icons
type ImagesConfig struct {
	S3Bucket    string
	ImgixDomain string
	ImgixToken  string
}

// StorageConfig holds consent token storage settings
type StorageConfig struct {
	DynamoDBTable string // empty selects the in-memory store
	Region        string
}

// HTTPConfig holds outbound HTTP settings
type HTTPConfig struct {
	Timeout time.Duration
}

// legacyEnv maps config keys to the environment variable names used by older deployments
var legacyEnv = map[string]string{
	"alexa.appid":           "ALEXA_APP_ID",
	"storage.dynamodbtable": "DYNAMODB_TABLE",
	"storage.region":        "AWS_REGION",
	"maps.apikey":           "MAPS_API_KEY",
	"darksky.apikey":        "DARKSKY_API_KEY",
	"images.s3bucket":       "S3_BUCKET",
	"images.imgixdomain":    "IMGIX_DOMAIN",
	"images.imgixtoken":     "IMGIX_TOKEN",
}

// Load reads configuration from an optional .env file, a config file and environment variables
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-skill")

	setDefaults(v)

	v.SetEnvPrefix("WEATHER_SKILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("alexa.appid", "")
	v.SetDefault("alexa.apiendpoint", "https://api.amazonalexa.com")
	v.SetDefault("maps.apikey", "")
	v.SetDefault("maps.baseurl", "https://maps.googleapis.com")
	v.SetDefault("darksky.apikey", "")
	v.SetDefault("darksky.baseurl", "https://api.darksky.net")
	v.SetDefault("images.s3bucket", "")
	v.SetDefault("images.imgixdomain", "")
	v.SetDefault("images.imgixtoken", "")
	v.SetDefault("storage.dynamodbtable", "")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("http.timeout", "10s")
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
