package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insyncinternational/funnelflow/pkg/domain"
)

func TestSaveWritesAndBanners(t *testing.T) {
	e, repo := newTestEditor(t)
	e.AddStep(domain.StepVideo)

	require.NoError(t, e.Save(context.Background()))

	loaded, err := repo.Load(context.Background(), "funnel-1")
	require.NoError(t, err)
	assert.Len(t, loaded.Steps, 1)

	status := e.Status()
	require.NotNil(t, status)
	assert.Equal(t, "Saved successfully!", status.Text)
	assert.False(t, status.Warning)
}

func TestSaveAllowsEmptyFunnel(t *testing.T) {
	// unlike publish, explicit save has no minimum-step guard: clearing
	// the canvas and saving persists the empty graph
	e, repo := newTestEditor(t)

	require.NoError(t, e.Save(context.Background()))

	loaded, err := repo.Load(context.Background(), "funnel-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Steps)

	status := e.Status()
	require.NotNil(t, status)
	assert.False(t, status.Warning)
}

func TestStatusExpires(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e, _ := newTestEditor(t, WithClock(func() time.Time { return now }))
	e.AddStep(domain.StepVideo)
	require.NoError(t, e.Save(context.Background()))
	require.NotNil(t, e.Status())

	now = now.Add(4 * time.Second)
	assert.Nil(t, e.Status())
}

func TestPublishMintsPublicURL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e, repo := newTestEditor(t, WithClock(func() time.Time { return now }))
	e.AddStep(domain.StepVideo)

	require.NoError(t, e.Publish(context.Background()))

	f := e.Funnel()
	assert.Equal(t, domain.StatusPublished, f.Status)
	require.NotNil(t, f.PublishedAt)
	assert.Equal(t, now, *f.PublishedAt)
	assert.Equal(t, "https://funnelflow.ai/funnel/funnel-1", f.PublicURL)

	loaded, err := repo.Load(context.Background(), "funnel-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, loaded.Status)

	status := e.Status()
	require.NotNil(t, status)
	assert.Contains(t, status.Text, f.PublicURL)
}

func TestPublishRequiresAtLeastOneStep(t *testing.T) {
	e, _ := newTestEditor(t)

	require.NoError(t, e.Publish(context.Background()))

	f := e.Funnel()
	assert.Equal(t, domain.StatusDraft, f.Status)
	assert.Empty(t, f.PublicURL)

	status := e.Status()
	require.NotNil(t, status)
	assert.True(t, status.Warning)
}

func TestPublishHonorsCustomBaseURL(t *testing.T) {
	e, _ := newTestEditor(t, WithPublicBaseURL("https://staging.funnelflow.dev"))
	e.AddStep(domain.StepVideo)

	require.NoError(t, e.Publish(context.Background()))
	assert.Equal(t, "https://staging.funnelflow.dev/funnel/funnel-1", e.Funnel().PublicURL)
}

func TestCanPreview(t *testing.T) {
	e, _ := newTestEditor(t)
	assert.False(t, e.CanPreview())
	e.AddStep(domain.StepVideo)
	assert.True(t, e.CanPreview())
}
