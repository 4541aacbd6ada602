package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testLogger() *logger.ZapLogger {
	core, _ := observer.New(zapcore.DebugLevel)
	return logger.NewFromCore(core, "test")
}

func TestShutdownManager_ReverseOrderAndErrors(t *testing.T) {
	sm := NewShutdownManager(testLogger())
	var order []string

	sm.Register("postgres", func(ctx context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register("nats", func(ctx context.Context) error {
		order = append(order, "nats")
		return errors.New("drain timeout")
	})
	sm.Register("gateway", func(ctx context.Context) error {
		order = append(order, "gateway")
		return nil
	})

	err := sm.Shutdown(context.Background())

	assert.Equal(t, []string{"gateway", "nats", "postgres"}, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nats: drain timeout")
}

func TestShutdownManager_RunsOnce(t *testing.T) {
	sm := NewShutdownManager(testLogger())
	calls := 0
	sm.Register("gateway", func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, sm.Shutdown(context.Background()))
	assert.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestShutdownManager_ConcurrentRegister(t *testing.T) {
	sm := NewShutdownManager(testLogger())
	var wg sync.WaitGroup
	var mu sync.Mutex
	count := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Register("c", func(ctx context.Context) error {
				mu.Lock()
				count++
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, 10, count)
}

func TestGracefulServer_RunUntilCancelled(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	sm := NewShutdownManager(testLogger())
	closed := make(chan struct{})
	sm.Register("gateway", func(ctx context.Context) error {
		close(closed)
		return nil
	})

	gs := NewGracefulServer(e, testLogger(), "127.0.0.1", 0, time.Second, sm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool { return e.Listener != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-closed:
	default:
		t.Fatal("components were not shut down")
	}
}
