package usecase

import (
	"context"
	"fmt"
	"sort"

	"leetcode-daily-thread/internal/domain/errs"
	"leetcode-daily-thread/internal/domain/model"
	"leetcode-daily-thread/internal/domain/ports"
)

const titleDateLayout = "January 02 2006"

// TagCatalog maps tag names to the tags of one forum channel.
type TagCatalog map[string]model.Tag

// NewTagCatalog indexes tags by name. A later tag wins over an earlier one with the same name.
func NewTagCatalog(tags []model.Tag) TagCatalog {
	catalog := make(TagCatalog, len(tags))
	for _, tag := range tags {
		catalog[tag.Name] = tag
	}
	return catalog
}

// Resolve returns the tag named name or an *errs.UnknownTagError.
func (c TagCatalog) Resolve(name string) (model.Tag, error) {
	if tag, ok := c[name]; ok {
		return tag, nil
	}

	available := make([]string, 0, len(c))
	for n := range c {
		available = append(available, n)
	}
	sort.Strings(available)

	return model.Tag{}, &errs.UnknownTagError{Tag: name, Available: available}
}

// FormatTitle renders a thread title such as "March 05 2024 - 42. Two Sum".
func FormatTitle(metadata *model.ChallengeMetadata) string {
	return fmt.Sprintf("%s - %d. %s", metadata.Date.Format(titleDateLayout), metadata.ID, metadata.Title)
}

// ThreadPublisher creates the daily thread on a forum channel.
type ThreadPublisher struct {
	logger ports.Logger
}

// NewThreadPublisher constructs a ThreadPublisher.
func NewThreadPublisher(logger ports.Logger) *ThreadPublisher {
	return &ThreadPublisher{logger: logger}
}

// Publish creates one thread tagged with the challenge difficulty. The tag
// catalog is read from the forum on every call.
func (p *ThreadPublisher) Publish(ctx context.Context, forum ports.Forum, metadata *model.ChallengeMetadata, body model.ConvertedBody) (*model.Thread, error) {
	tag, err := NewTagCatalog(forum.AvailableTags()).Resolve(metadata.Difficulty.String())
	if err != nil {
		return nil, err
	}

	title := FormatTitle(metadata)
	thread, err := forum.CreateThread(ctx, title, string(body), []string{tag.ID})
	if err != nil {
		return nil, fmt.Errorf("create thread %q: %w", title, err)
	}

	p.logger.Info(ctx, "thread created", "channel_id", forum.ID(), "thread_id", thread.ID, "title", title, "tag", tag.Name)
	return thread, nil
}
