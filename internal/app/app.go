package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"leetcode-daily-thread/internal/domain/ports"
)

// Runner is the one-shot workflow executed once the gateway is ready.
type Runner interface {
	Run(ctx context.Context) error
}

// App manages the lifecycle of a single daily thread run.
type App struct {
	gateway  ports.Gateway
	runner   Runner
	logger   ports.Logger
	schedule cron.Schedule
	now      func() time.Time
}

// New constructs an App instance. An empty schedule starts the run immediately.
func New(gateway ports.Gateway, runner Runner, logger ports.Logger, schedule string) (*App, error) {
	a := &App{
		gateway: gateway,
		runner:  runner,
		logger:  logger,
		now:     time.Now,
	}

	if schedule != "" {
		parsed, err := cron.ParseStandard(schedule)
		if err != nil {
			return nil, fmt.Errorf("parse start schedule %q: %w", schedule, err)
		}
		a.schedule = parsed
	}

	return a, nil
}

// Run waits for the start schedule, connects the gateway and executes the
// runner exactly once when the connection is ready. The gateway is closed
// before Run returns.
func (a *App) Run(ctx context.Context) error {
	if err := a.waitForStart(ctx); err != nil {
		return err
	}

	var once sync.Once
	done := make(chan error, 1)

	a.logger.Info(ctx, "connecting to gateway")
	err := a.gateway.Open(ctx, func(ctx context.Context) {
		once.Do(func() {
			done <- a.runner.Run(ctx)
		})
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := a.gateway.Close(); err != nil {
			a.logger.Warn(context.Background(), "failed to close gateway", "error", err)
		}
		a.logger.Info(context.Background(), "gateway closed")
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *App) waitForStart(ctx context.Context) error {
	if a.schedule == nil {
		return nil
	}

	now := a.now()
	next := a.schedule.Next(now)
	a.logger.Info(ctx, "waiting for start schedule", "start_at", next)

	timer := time.NewTimer(next.Sub(now))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
