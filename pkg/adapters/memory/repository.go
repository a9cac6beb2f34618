// Package memory provides an in-memory FunnelRepository, used for tests
// and for running the builder without external services.
package memory

import (
	"context"
	"sync"

	"github.com/insyncinternational/funnelflow/pkg/domain"
)

// Repository implements ports.FunnelRepository in memory.
// Safe for concurrent use.
type Repository struct {
	data map[string]*domain.Funnel
	mu   sync.RWMutex
}

// NewRepository creates a new in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		data: make(map[string]*domain.Funnel),
	}
}

// Save persists a deep copy of the funnel, so later edits to the
// caller's value do not leak into the store.
func (r *Repository) Save(ctx context.Context, funnel *domain.Funnel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[funnel.ID] = funnel.Clone()
	return nil
}

// Load retrieves a copy of the funnel.
func (r *Repository) Load(ctx context.Context, id string) (*domain.Funnel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	funnel, ok := r.data[id]
	if !ok {
		return nil, domain.ErrFunnelNotFound
	}
	return funnel.Clone(), nil
}

// Delete removes the funnel.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
	return nil
}

// List returns stored funnel IDs.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.data))
	for id := range r.data {
		ids = append(ids, id)
	}
	return ids, nil
}
