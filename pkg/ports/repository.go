package ports

import (
	"context"

	"github.com/insyncinternational/funnelflow/pkg/domain"
)

// FunnelRepository defines the interface for persisting funnels.
// The builder core receives one by injection; it never reaches for
// ambient global storage.
type FunnelRepository interface {
	// Save persists the full funnel record, last write wins.
	Save(ctx context.Context, funnel *domain.Funnel) error

	// Load retrieves a funnel by ID.
	// Returns domain.ErrFunnelNotFound if no record exists.
	Load(ctx context.Context, id string) (*domain.Funnel, error)

	// Delete removes the funnel record.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored funnels.
	List(ctx context.Context) ([]string, error)
}
