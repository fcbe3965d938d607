//go:build wireinject

package di

import (
	"os"

	"github.com/google/uuid"
	"github.com/google/wire"

	"leetcode-daily-thread/internal/adapter/discord"
	"leetcode-daily-thread/internal/adapter/leetcode"
	"leetcode-daily-thread/internal/adapter/logging"
	"leetcode-daily-thread/internal/adapter/markdown"
	"leetcode-daily-thread/internal/app"
	"leetcode-daily-thread/internal/config"
	"leetcode-daily-thread/internal/domain/ports"
	"leetcode-daily-thread/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		provideLogger,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideGateway,
		wire.Bind(new(ports.Gateway), new(*discord.Gateway)),
		wire.Bind(new(ports.ForumResolver), new(*discord.Gateway)),
		provideChallengeProvider,
		wire.Bind(new(ports.ChallengeProvider), new(*leetcode.Client)),
		provideConverter,
		wire.Bind(new(ports.MarkupConverter), new(*markdown.Converter)),
		usecase.NewThreadPublisher,
		usecase.NewDailyThread,
		provideDailyThreadConfig,
		wire.Bind(new(app.Runner), new(*usecase.DailyThread)),
		app.New,
		provideSchedule,
	)
	return nil, nil
}

func provideLogger(cfg *config.Config) (*logging.SLogger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.NewJSONLogger(os.Stdout, level)).With("run_id", uuid.NewString()), nil
}

func provideGateway(cfg *config.Config, logger ports.Logger) (*discord.Gateway, error) {
	return discord.NewGateway(cfg.BotToken, logger)
}

func provideChallengeProvider(cfg *config.Config, logger ports.Logger) (*leetcode.Client, error) {
	return leetcode.New(cfg.BaseURL, cfg.RequestTimeout, logger)
}

func provideConverter(cfg *config.Config) *markdown.Converter {
	return markdown.New(cfg.BaseURL)
}

func provideDailyThreadConfig(cfg *config.Config) usecase.DailyThreadConfig {
	return usecase.DailyThreadConfig{ChannelID: cfg.ChannelID}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.StartSchedule
}
