package storage

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"weather-skill/internal/config"
)

// NewTokenStore returns a DynamoDB store when a table is configured, otherwise an in-memory store
func NewTokenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (TokenStore, error) {
	if cfg.Storage.DynamoDBTable == "" {
		logger.Warn("no DynamoDB table configured, consent tokens kept in memory")
		return NewMemoryStore(), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewDynamoDBStore(dynamodb.NewFromConfig(awsCfg), cfg.Storage.DynamoDBTable, logger), nil
}
