package usecase

import (
	"context"
	"fmt"
	"time"

	"leetcode-daily-thread/internal/domain/model"
	"leetcode-daily-thread/internal/domain/ports"
)

// DailyThread fetches today's challenge, converts it and publishes it as a forum thread.
type DailyThread struct {
	forums    ports.ForumResolver
	provider  ports.ChallengeProvider
	converter ports.MarkupConverter
	publisher *ThreadPublisher
	logger    ports.Logger
	channelID string
}

// DailyThreadConfig identifies where the thread is published.
type DailyThreadConfig struct {
	ChannelID string
}

// NewDailyThread constructs a DailyThread use case.
func NewDailyThread(
	forums ports.ForumResolver,
	provider ports.ChallengeProvider,
	converter ports.MarkupConverter,
	publisher *ThreadPublisher,
	logger ports.Logger,
	cfg DailyThreadConfig,
) *DailyThread {
	return &DailyThread{
		forums:    forums,
		provider:  provider,
		converter: converter,
		publisher: publisher,
		logger:    logger,
		channelID: cfg.ChannelID,
	}
}

// Run executes the workflow once. The channel is resolved before the provider
// is contacted, so a misconfigured channel costs no provider requests.
func (d *DailyThread) Run(ctx context.Context) error {
	start := time.Now()
	d.logger.Info(ctx, "starting daily thread", "channel_id", d.channelID)

	forum, err := d.forums.Forum(ctx, d.channelID)
	if err != nil {
		d.logger.Error(ctx, "failed to resolve forum channel", "channel_id", d.channelID, "error", err)
		return err
	}

	metadata, content, err := d.fetch(ctx)
	if err != nil {
		d.logger.Error(ctx, "failed to fetch daily challenge", "error", err)
		return err
	}

	body, err := d.converter.Convert(content, metadata.Link)
	if err != nil {
		d.logger.Error(ctx, "failed to convert question body", "slug", metadata.TitleSlug, "error", err)
		return err
	}

	thread, err := d.publisher.Publish(ctx, forum, metadata, body)
	if err != nil {
		d.logger.Error(ctx, "failed to publish thread", "slug", metadata.TitleSlug, "error", err)
		return err
	}

	d.logger.Info(ctx, "daily thread completed", "thread_id", thread.ID, "duration", time.Since(start))
	return nil
}

func (d *DailyThread) fetch(ctx context.Context) (*model.ChallengeMetadata, model.ChallengeContent, error) {
	token, err := d.provider.Token(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("obtain csrf token: %w", err)
	}

	metadata, err := d.provider.FetchMetadata(ctx, token)
	if err != nil {
		return nil, "", err
	}
	d.logger.Info(ctx, "fetched daily challenge", "slug", metadata.TitleSlug, "difficulty", metadata.Difficulty)

	content, err := d.provider.FetchContent(ctx, token, metadata.TitleSlug)
	if err != nil {
		return nil, "", err
	}

	return metadata, content, nil
}
