package location

import (
	"context"

	"github.com/piresc/cabdispatch/internal/pkg/models"
)

// LocationGW publishes location events to the message bus
type LocationGW interface {
	PublishDriverLocation(ctx context.Context, event models.DriverLocationEvent) error
}
