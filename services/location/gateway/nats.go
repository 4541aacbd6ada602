package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/cabdispatch/internal/pkg/circuitbreaker"
	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	natspkg "github.com/piresc/cabdispatch/internal/pkg/nats"
	"github.com/piresc/cabdispatch/services/location"
)

type locationGW struct {
	publisher natspkg.Publisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewLocationGW creates a new location gateway. A nil breaker publishes unguarded.
func NewLocationGW(publisher natspkg.Publisher, breaker *circuitbreaker.CircuitBreaker) location.LocationGW {
	return &locationGW{
		publisher: publisher,
		breaker:   breaker,
	}
}

// PublishDriverLocation publishes an accepted location push to NATS
func (g *locationGW) PublishDriverLocation(ctx context.Context, event models.DriverLocationEvent) error {
	publish := func(context.Context) error {
		return g.publisher.PublishJSON(constants.SubjectLocationUpdate, event)
	}

	var err error
	if g.breaker != nil {
		err = g.breaker.Execute(ctx, publish)
	} else {
		err = publish(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to publish driver location: %w", err)
	}
	return nil
}
