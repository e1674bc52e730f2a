package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no consent token is stored for a user
var ErrNotFound = errors.New("consent token not found")

// TokenStore keeps a user's device address consent token between requests.
// Saving an empty token clears the stored one.
type TokenStore interface {
	SaveConsentToken(ctx context.Context, userID, token string) error
	GetConsentToken(ctx context.Context, userID string) (string, error)
}
