package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

// fakeGateway fires the ready callback readyEvents times from its own goroutine.
type fakeGateway struct {
	readyEvents int
	openErr     error

	mu     sync.Mutex
	opened int
	closed int
}

func (g *fakeGateway) Open(ctx context.Context, onReady func(ctx context.Context)) error {
	g.mu.Lock()
	g.opened++
	g.mu.Unlock()
	if g.openErr != nil {
		return g.openErr
	}
	go func() {
		for i := 0; i < g.readyEvents; i++ {
			onReady(ctx)
		}
	}()
	return nil
}

func (g *fakeGateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed++
	return nil
}

type countingRunner struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *countingRunner) Run(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func (r *countingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestApp_RunsOnceOnReady(t *testing.T) {
	gateway := &fakeGateway{readyEvents: 3}
	runner := &countingRunner{}
	a, err := New(gateway, runner, nopLogger{}, "")
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 1, runner.count())
	assert.Equal(t, 1, gateway.closed)
}

func TestApp_PropagatesRunnerError(t *testing.T) {
	boom := errors.New("boom")
	gateway := &fakeGateway{readyEvents: 1}
	a, err := New(gateway, &countingRunner{err: boom}, nopLogger{}, "")
	require.NoError(t, err)

	assert.ErrorIs(t, a.Run(context.Background()), boom)
	assert.Equal(t, 1, gateway.closed)
}

func TestApp_OpenFailure(t *testing.T) {
	openErr := errors.New("gateway down")
	gateway := &fakeGateway{openErr: openErr}
	runner := &countingRunner{}
	a, err := New(gateway, runner, nopLogger{}, "")
	require.NoError(t, err)

	assert.ErrorIs(t, a.Run(context.Background()), openErr)
	assert.Zero(t, runner.count())
	assert.Zero(t, gateway.closed)
}

func TestApp_CancelledBeforeReady(t *testing.T) {
	gateway := &fakeGateway{}
	runner := &countingRunner{}
	a, err := New(gateway, runner, nopLogger{}, "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, a.Run(ctx), context.DeadlineExceeded)
	assert.Zero(t, runner.count())
	assert.Equal(t, 1, gateway.closed)
}

func TestApp_WaitsForSchedule(t *testing.T) {
	gateway := &fakeGateway{readyEvents: 1}
	runner := &countingRunner{}
	a, err := New(gateway, runner, nopLogger{}, "30 9 * * *")
	require.NoError(t, err)

	// One second before the scheduled minute.
	a.now = func() time.Time { return time.Date(2024, time.March, 5, 9, 29, 59, 0, time.Local) }

	start := time.Now()
	require.NoError(t, a.Run(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)
	assert.Equal(t, 1, runner.count())
}

func TestApp_ScheduleCancelled(t *testing.T) {
	gateway := &fakeGateway{readyEvents: 1}
	runner := &countingRunner{}
	a, err := New(gateway, runner, nopLogger{}, "@yearly")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, a.Run(ctx), context.Canceled)
	assert.Zero(t, gateway.opened)
	assert.Zero(t, runner.count())
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New(&fakeGateway{}, &countingRunner{}, nopLogger{}, "not a schedule")
	assert.Error(t, err)
}
