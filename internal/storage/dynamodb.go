package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of the DynamoDB client used by DynamoDBStore
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type consentItem struct {
	UserID       string `dynamodbav:"userId"`
	ConsentToken string `dynamodbav:"consentToken"`
	UpdatedAt    string `dynamodbav:"updatedAt"`
}

// DynamoDBStore is a TokenStore backed by a DynamoDB table keyed by userId
type DynamoDBStore struct {
	client    DynamoDBAPI
	tableName string
	logger    *slog.Logger
	now       func() time.Time
}

func NewDynamoDBStore(client DynamoDBAPI, tableName string, logger *slog.Logger) *DynamoDBStore {
	return &DynamoDBStore{
		client:    client,
		tableName: tableName,
		logger:    logger.With("component", "dynamodb-store"),
		now:       time.Now,
	}
}

func (s *DynamoDBStore) SaveConsentToken(ctx context.Context, userID, token string) error {
	item, err := attributevalue.MarshalMap(consentItem{
		UserID:       userID,
		ConsentToken: token,
		UpdatedAt:    s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal consent token: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		s.logger.Error("failed to save consent token", "table", s.tableName, "error", err)
		return fmt.Errorf("failed to save consent token to DynamoDB: %w", err)
	}

	s.logger.Debug("consent token saved", "table", s.tableName)
	return nil
}

func (s *DynamoDBStore) GetConsentToken(ctx context.Context, userID string) (string, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]dynamodbtypes.AttributeValue{
			"userId": &dynamodbtypes.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		s.logger.Error("failed to get consent token", "table", s.tableName, "error", err)
		return "", fmt.Errorf("failed to get consent token: %w", err)
	}

	if result.Item == nil {
		return "", ErrNotFound
	}

	var item consentItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return "", fmt.Errorf("failed to unmarshal consent token: %w", err)
	}
	if item.ConsentToken == "" {
		return "", ErrNotFound
	}

	return item.ConsentToken, nil
}
