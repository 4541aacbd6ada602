package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/services/location"
)

type geofenceRegistry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Geofence
}

// NewGeofenceRegistry creates an empty registry
func NewGeofenceRegistry() location.GeofenceRepo {
	return &geofenceRegistry{byID: make(map[string]models.Geofence)}
}

// Register validates and appends a geofence. A zero surge multiplier defaults to 1.0.
func (r *geofenceRegistry) Register(g models.Geofence) error {
	if g.SurgeMultiplier == 0 {
		g.SurgeMultiplier = constants.DefaultSurgeMultiplier
	}
	if g.Type == "" {
		g.Type = models.GeofenceCustom
	}
	if g.PickupPoints == nil {
		g.PickupPoints = []models.PickupPoint{}
	}
	if err := g.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[g.ID]; exists {
		return fmt.Errorf("%w: %s", models.ErrDuplicateGeofence, g.ID)
	}
	r.order = append(r.order, g.ID)
	r.byID[g.ID] = g
	return nil
}

func (r *geofenceRegistry) Get(id string) (*models.Geofence, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &g, true
}

// List returns every geofence, active or not, in registration order
func (r *geofenceRegistry) List() []models.Geofence {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Geofence, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// LoadGeofences registers everything the sources return, in source order
func LoadGeofences(ctx context.Context, repo location.GeofenceRepo, sources ...location.GeofenceSource) (int, error) {
	total := 0
	for _, src := range sources {
		fences, err := src.Load(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to load geofences from %s: %w", src.Name(), err)
		}
		for _, g := range fences {
			if err := repo.Register(g); err != nil {
				return total, fmt.Errorf("failed to register geofence from %s: %w", src.Name(), err)
			}
			total++
		}
		logger.Info("Loaded geofences",
			logger.String("source", src.Name()),
			logger.Int("count", len(fences)))
	}
	return total, nil
}
