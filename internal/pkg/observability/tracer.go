package observability

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// Tracer provides an abstraction for APM tracing
type Tracer interface {
	// StartTransaction begins a background transaction, used for work not driven by an HTTP request
	StartTransaction(ctx context.Context, name string) (context.Context, Transaction)
	StartSegment(ctx context.Context, name string) (context.Context, func())
}

// Transaction represents a traced transaction
type Transaction interface {
	End()
	NoticeError(error)
	AddAttribute(key string, value interface{})
}

// NoOpTracer is used when no APM agent is configured
type NoOpTracer struct{}

type noOpTransaction struct{}

// NewNoOpTracer creates a new no-operation tracer
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

func (t *NoOpTracer) StartTransaction(ctx context.Context, name string) (context.Context, Transaction) {
	return ctx, noOpTransaction{}
}

func (t *NoOpTracer) StartSegment(ctx context.Context, name string) (context.Context, func()) {
	return ctx, func() {}
}

func (noOpTransaction) End()                                       {}
func (noOpTransaction) NoticeError(error)                          {}
func (noOpTransaction) AddAttribute(key string, value interface{}) {}

// NewRelicTracer implements Tracer using New Relic
type NewRelicTracer struct {
	app *newrelic.Application
}

// NewNewRelicTracer creates a new New Relic tracer
func NewNewRelicTracer(app *newrelic.Application) *NewRelicTracer {
	return &NewRelicTracer{app: app}
}

// StartTransaction creates a New Relic background transaction and stores it in the returned context
func (t *NewRelicTracer) StartTransaction(ctx context.Context, name string) (context.Context, Transaction) {
	txn := t.app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), &newRelicTransaction{txn: txn}
}

// StartSegment creates a segment within the transaction carried by ctx, if any
func (t *NewRelicTracer) StartSegment(ctx context.Context, name string) (context.Context, func()) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		segment := txn.StartSegment(name)
		return ctx, segment.End
	}
	return ctx, func() {}
}

type newRelicTransaction struct {
	txn *newrelic.Transaction
}

func (t *newRelicTransaction) End() {
	if t.txn != nil {
		t.txn.End()
	}
}

func (t *newRelicTransaction) NoticeError(err error) {
	if t.txn != nil && err != nil {
		t.txn.NoticeError(err)
	}
}

func (t *newRelicTransaction) AddAttribute(key string, value interface{}) {
	if t.txn != nil {
		t.txn.AddAttribute(key, value)
	}
}

// NewTracer returns a New Relic tracer when an application is configured, a no-op tracer otherwise
func NewTracer(nrApp *newrelic.Application) Tracer {
	if nrApp != nil {
		return NewNewRelicTracer(nrApp)
	}
	return NewNoOpTracer()
}

// Segment names used across the services
func UseCaseSegment(name string) string {
	return "UseCase/" + name
}

func RepositorySegment(store, operation string) string {
	return "Repository/" + store + "/" + operation
}
