package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(maxRetries int) Config {
	return Config{MaxRetries: maxRetries, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Multiplier: 2}
}

func TestExecute_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := New("dial", fastConfig(3)).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_GivesUp(t *testing.T) {
	calls := 0
	boom := errors.New("connection refused")
	err := New("dial", fastConfig(2)).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "dial failed after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestExecute_PermanentErrorStops(t *testing.T) {
	cfg := fastConfig(5)
	cfg.Retryable = NotPermanent
	bad := errors.New("bad credentials")

	calls := 0
	err := New("dial", cfg).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return &Permanent{Err: bad}
	})
	assert.ErrorIs(t, err, bad)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := New("dial", fastConfig(3)).Execute(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestDelay(t *testing.T) {
	r := New("dial", Config{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2})

	assert.Equal(t, 100*time.Millisecond, r.delay(0))
	assert.Equal(t, 400*time.Millisecond, r.delay(2))
	assert.Equal(t, time.Second, r.delay(10))

	jittered := New("dial", Config{BaseDelay: 100 * time.Millisecond, Multiplier: 1, Jitter: true}).delay(0)
	assert.GreaterOrEqual(t, jittered, 100*time.Millisecond)
	assert.LessOrEqual(t, jittered, 110*time.Millisecond)
}
