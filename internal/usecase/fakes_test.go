package usecase

import (
	"context"
	"errors"
	"time"

	"leetcode-daily-thread/internal/domain/errs"
	"leetcode-daily-thread/internal/domain/model"
	"leetcode-daily-thread/internal/domain/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type createdThread struct {
	name    string
	content string
	tagIDs  []string
}

type fakeForum struct {
	id        string
	tags      []model.Tag
	createErr error
	created   []createdThread
}

func (f *fakeForum) ID() string { return f.id }

func (f *fakeForum) AvailableTags() []model.Tag { return f.tags }

func (f *fakeForum) CreateThread(_ context.Context, name, content string, tagIDs []string) (*model.Thread, error) {
	f.created = append(f.created, createdThread{name: name, content: content, tagIDs: tagIDs})
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Thread{ID: "thread-1", ChannelID: f.id, Name: name, TagIDs: tagIDs}, nil
}

type fakeResolver struct {
	forum *fakeForum
	calls int
}

func (r *fakeResolver) Forum(_ context.Context, channelID string) (ports.Forum, error) {
	r.calls++
	if r.forum == nil || r.forum.id != channelID {
		return nil, &errs.ChannelNotFoundError{ChannelID: channelID}
	}
	return r.forum, nil
}

type fakeProvider struct {
	tokenErr    error
	metadata    *model.ChallengeMetadata
	metadataErr error
	content     model.ChallengeContent
	contentErr  error
	calls       []string
}

func (p *fakeProvider) Token(context.Context) (string, error) {
	p.calls = append(p.calls, "token")
	if p.tokenErr != nil {
		return "", p.tokenErr
	}
	return "tok", nil
}

func (p *fakeProvider) FetchMetadata(_ context.Context, token string) (*model.ChallengeMetadata, error) {
	p.calls = append(p.calls, "metadata:"+token)
	if p.metadataErr != nil {
		return nil, p.metadataErr
	}
	return p.metadata, nil
}

func (p *fakeProvider) FetchContent(_ context.Context, token, slug string) (model.ChallengeContent, error) {
	p.calls = append(p.calls, "content:"+token+":"+slug)
	if p.contentErr != nil {
		return "", p.contentErr
	}
	return p.content, nil
}

type fakeConverter struct {
	calls []string
	err   error
}

func (c *fakeConverter) Convert(content model.ChallengeContent, linkPath string) (model.ConvertedBody, error) {
	c.calls = append(c.calls, linkPath)
	if c.err != nil {
		return "", c.err
	}
	return model.ConvertedBody("[Question link](https://leetcode.com" + linkPath + ")\n\n" + string(content)), nil
}

var errBoom = errors.New("boom")

func sampleMetadata() *model.ChallengeMetadata {
	return &model.ChallengeMetadata{
		Date:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Link:       "/problems/two-sum-variant/",
		Difficulty: model.DifficultyMedium,
		ID:         42,
		Title:      "Two Sum Variant",
		TitleSlug:  "two-sum-variant",
	}
}

func difficultyTags() []model.Tag {
	return []model.Tag{
		{ID: "t-easy", Name: "Easy"},
		{ID: "t-medium", Name: "Medium"},
		{ID: "t-hard", Name: "Hard"},
	}
}
