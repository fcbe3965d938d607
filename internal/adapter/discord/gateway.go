package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"leetcode-daily-thread/internal/domain/errs"
	"leetcode-daily-thread/internal/domain/model"
	"leetcode-daily-thread/internal/domain/ports"
)

const (
	maxThreadNameLength = 100
	maxMessageLength    = 2000
)

// Gateway is a discordgo session used as the bot connection. It also
// resolves forum channels through the session's state cache and REST API.
type Gateway struct {
	session *discordgo.Session
	logger  ports.Logger
}

var (
	_ ports.Gateway       = (*Gateway)(nil)
	_ ports.ForumResolver = (*Gateway)(nil)
)

// NewGateway creates a session authenticated with botToken.
func NewGateway(botToken string, logger ports.Logger) (*Gateway, error) {
	if !strings.HasPrefix(botToken, "Bot ") {
		botToken = "Bot " + botToken
	}

	session, err := discordgo.New(botToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	return &Gateway{session: session, logger: logger}, nil
}

// Open registers onReady for the first Ready event and connects the gateway.
func (g *Gateway) Open(ctx context.Context, onReady func(ctx context.Context)) error {
	g.session.AddHandlerOnce(func(s *discordgo.Session, r *discordgo.Ready) {
		if r.User != nil {
			g.logger.Info(ctx, "logged in", "user", r.User.Username, "bot_id", r.User.ID)
		}
		onReady(ctx)
	})

	if err := g.session.Open(); err != nil {
		return &errs.NetworkError{Op: "open discord gateway", Err: err}
	}
	return nil
}

// Close disconnects the gateway.
func (g *Gateway) Close() error {
	return g.session.Close()
}

// Forum resolves channelID to a forum channel.
func (g *Gateway) Forum(ctx context.Context, channelID string) (ports.Forum, error) {
	channel, err := g.session.State.Channel(channelID)
	if err != nil {
		channel, err = g.session.Channel(channelID, discordgo.WithContext(ctx))
	}
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil {
			switch restErr.Response.StatusCode {
			case http.StatusNotFound, http.StatusForbidden:
				return nil, &errs.ChannelNotFoundError{ChannelID: channelID, Err: err}
			}
		}
		return nil, &errs.NetworkError{Op: "get discord channel", Err: err}
	}

	if channel.Type != discordgo.ChannelTypeGuildForum {
		return nil, &errs.ChannelNotFoundError{
			ChannelID: channelID,
			Err:       fmt.Errorf("channel type %d is not a forum", channel.Type),
		}
	}

	return &Forum{session: g.session, channel: channel, logger: g.logger}, nil
}

// Forum is a Discord forum channel.
type Forum struct {
	session *discordgo.Session
	channel *discordgo.Channel
	logger  ports.Logger
}

var _ ports.Forum = (*Forum)(nil)

// ID returns the channel id.
func (f *Forum) ID() string {
	return f.channel.ID
}

// AvailableTags returns the tags configured on the forum.
func (f *Forum) AvailableTags() []model.Tag {
	return convertTags(f.channel.AvailableTags)
}

// CreateThread starts a forum thread whose opening message is content.
func (f *Forum) CreateThread(ctx context.Context, name, content string, tagIDs []string) (*model.Thread, error) {
	message := truncate(content, maxMessageLength)
	if message != content {
		f.logger.Warn(ctx, "opening message truncated",
			"original_length", utf8.RuneCountInString(content),
			"truncated_length", utf8.RuneCountInString(message),
		)
	}

	thread, err := f.session.ForumThreadStartComplex(
		f.channel.ID,
		&discordgo.ThreadStart{
			Name:        truncate(name, maxThreadNameLength),
			AppliedTags: tagIDs,
		},
		&discordgo.MessageSend{
			Content: message,
		},
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return nil, &errs.NetworkError{Op: "create forum thread", Err: err}
	}

	return &model.Thread{
		ID:        thread.ID,
		ChannelID: f.channel.ID,
		Name:      thread.Name,
		TagIDs:    thread.AppliedTags,
	}, nil
}

func convertTags(tags []discordgo.ForumTag) []model.Tag {
	if len(tags) == 0 {
		return nil
	}

	result := make([]model.Tag, 0, len(tags))
	for _, tag := range tags {
		result = append(result, model.Tag{ID: tag.ID, Name: tag.Name})
	}
	return result
}

// truncate cuts value to at most limit runes, ending with "..." when cut.
func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
