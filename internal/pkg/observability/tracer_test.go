package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestNewTracer(t *testing.T) {
	assert.IsType(t, &NoOpTracer{}, NewTracer(nil))
}

func TestNoOpTracer(t *testing.T) {
	tracer := NewNoOpTracer()
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")

	segCtx, end := tracer.StartSegment(ctx, UseCaseSegment("FindNearbyDrivers"))
	assert.Equal(t, "v", segCtx.Value(ctxKey{}))
	assert.NotPanics(t, end)

	txnCtx, txn := tracer.StartTransaction(ctx, "NATS/location.update")
	assert.Equal(t, ctx, txnCtx)
	assert.NotPanics(t, func() {
		txn.AddAttribute("subject", "location.update")
		txn.NoticeError(errors.New("boom"))
		txn.End()
	})
}

func TestNewRelicTracer_WithoutTransaction(t *testing.T) {
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("test"),
		newrelic.ConfigEnabled(false),
	)
	require.NoError(t, err)

	tracer := NewNewRelicTracer(app)
	ctx := context.Background()

	segCtx, end := tracer.StartSegment(ctx, RepositorySegment("redis", "Upsert"))
	assert.Equal(t, ctx, segCtx)
	assert.NotPanics(t, end)

	txnCtx, txn := tracer.StartTransaction(ctx, "NATS/trip.status.update")
	assert.NotNil(t, txnCtx)
	assert.NotPanics(t, func() {
		txn.AddAttribute("subject", "trip.status.update")
		txn.NoticeError(errors.New("boom"))
		txn.End()
	})
}

func TestSegmentNames(t *testing.T) {
	assert.Equal(t, "UseCase/GetHeatMap", UseCaseSegment("GetHeatMap"))
	assert.Equal(t, "Repository/memory/Snapshot", RepositorySegment("memory", "Snapshot"))
}
