package repository

import (
	"context"
	"sync"

	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/services/location"
)

type memoryPresenceStore struct {
	mu      sync.RWMutex
	drivers map[string]models.DriverPresence
}

// NewMemoryPresenceStore creates a process-local presence store
func NewMemoryPresenceStore() location.PresenceStore {
	return &memoryPresenceStore{
		drivers: make(map[string]models.DriverPresence),
	}
}

// Upsert replaces the driver's record. LastUpdated never moves backwards.
func (s *memoryPresenceStore) Upsert(ctx context.Context, presence models.DriverPresence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.drivers[presence.DriverID]; ok && presence.LastUpdated.Before(prev.LastUpdated) {
		presence.LastUpdated = prev.LastUpdated
	}
	s.drivers[presence.DriverID] = presence
	return nil
}

func (s *memoryPresenceStore) Get(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	presence, ok := s.drivers[driverID]
	if !ok {
		return nil, nil
	}
	return &presence, nil
}

func (s *memoryPresenceStore) Snapshot(ctx context.Context) ([]models.DriverPresence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DriverPresence, 0, len(s.drivers))
	for _, p := range s.drivers {
		out = append(out, p)
	}
	return out, nil
}

func (s *memoryPresenceStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drivers), nil
}
