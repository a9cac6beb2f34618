package ports

import (
	"context"
	"testing"
	"time"

	"github.com/insyncinternational/funnelflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunFunnelRepositoryContract runs a suite of tests verifying that a
// FunnelRepository implementation adheres to the interface contract.
// Adapters call this from their own tests.
func RunFunnelRepositoryContract(t *testing.T, repo FunnelRepository) {
	ctx := context.Background()
	id := "contract-funnel-" + time.Now().Format("20060102150405")

	funnel := &domain.Funnel{
		ID:     id,
		Name:   "Contract Funnel",
		Status: domain.StatusDraft,
		Steps: []domain.Step{
			{ID: "step-1", Type: domain.StepVideo, Title: "Welcome Video", Order: 1, X: 100, Y: 100, Config: map[string]any{"videoUrl": "https://example.com/v.mp4"}},
			{ID: "step-2", Type: domain.StepForm, Title: "Lead Capture", Order: 2, X: 400, Y: 100, Config: map[string]any{}},
		},
		Connections: []domain.Connection{
			{From: "step-1", To: "step-2", Condition: "default"},
		},
		LastModified: time.Now().UTC(),
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := repo.Save(ctx, funnel)
		require.NoError(t, err, "Save should not return error")

		loaded, err := repo.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.True(t, funnel.Equal(loaded), "loaded funnel should equal saved funnel (ignoring LastModified)")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := repo.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrFunnelNotFound)
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		updated := funnel.Clone()
		updated.Name = "Renamed"
		require.NoError(t, repo.Save(ctx, updated))

		loaded, err := repo.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", loaded.Name)
	})

	t.Run("List", func(t *testing.T) {
		id2 := id + "-2"
		other := funnel.Clone()
		other.ID = id2
		require.NoError(t, repo.Save(ctx, other))
		defer func() { _ = repo.Delete(ctx, id2) }()

		ids, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id)
		assert.Contains(t, ids, id2)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, id))

		_, err := repo.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrFunnelNotFound, "Load after Delete should return ErrFunnelNotFound")
	})
}
