package ports

import (
	"context"

	"leetcode-daily-thread/internal/domain/model"
)

// ChallengeProvider gives access to the daily challenge through a CSRF-protected session.
// A token from Token must be passed to the fetch calls of the same provider.
type ChallengeProvider interface {
	Token(ctx context.Context) (string, error)
	FetchMetadata(ctx context.Context, token string) (*model.ChallengeMetadata, error)
	FetchContent(ctx context.Context, token, titleSlug string) (model.ChallengeContent, error)
}
