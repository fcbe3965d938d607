package ports

import (
	"context"

	"leetcode-daily-thread/internal/domain/model"
)

// Forum is a forum channel threads can be created in.
type Forum interface {
	ID() string
	AvailableTags() []model.Tag
	CreateThread(ctx context.Context, name, content string, tagIDs []string) (*model.Thread, error)
}

// ForumResolver looks up a forum channel by id. It returns an
// *errs.ChannelNotFoundError when the id does not name a forum channel.
type ForumResolver interface {
	Forum(ctx context.Context, channelID string) (Forum, error)
}

// Gateway is the long-lived chat platform connection.
// Open connects and invokes onReady at most once, after the connection is ready.
type Gateway interface {
	Open(ctx context.Context, onReady func(ctx context.Context)) error
	Close() error
}
