package funnelflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	funnelflow "github.com/insyncinternational/funnelflow"
	"github.com/insyncinternational/funnelflow/pkg/domain"
)

func TestCreateSeedsDefaultFunnel(t *testing.T) {
	engine := funnelflow.New(funnelflow.WithAutosaveInterval(0))
	defer engine.Close(context.Background())

	f, err := engine.Create(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.Len(t, f.Steps, 3)
	assert.Equal(t, domain.StatusDraft, f.Status)

	loaded, err := engine.Get(context.Background(), f.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Equal(f))
}

func TestCreateFromTemplate(t *testing.T) {
	engine := funnelflow.New(funnelflow.WithAutosaveInterval(0))
	defer engine.Close(context.Background())

	f, err := engine.Create(context.Background(), "Shop Launch", "ecommerce")
	require.NoError(t, err)
	assert.Equal(t, "Shop Launch", f.Name)
	assert.NotEmpty(t, f.Steps)
	assert.NotEmpty(t, f.Connections)
}

func TestCreateUnknownTemplateFallsBack(t *testing.T) {
	engine := funnelflow.New(funnelflow.WithAutosaveInterval(0))
	defer engine.Close(context.Background())

	f, err := engine.Create(context.Background(), "", "no-such-template")
	require.NoError(t, err)
	assert.NotEmpty(t, f.Steps)
}

func TestEditSessionRoundTrip(t *testing.T) {
	engine := funnelflow.New(funnelflow.WithAutosaveInterval(0))
	defer engine.Close(context.Background())

	f, err := engine.Create(context.Background(), "", "")
	require.NoError(t, err)

	editor, err := engine.Edit(context.Background(), f.ID)
	require.NoError(t, err)
	added := editor.AddStep(domain.StepPricing)

	loaded, err := engine.Get(context.Background(), f.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Step(added.ID))
}

func TestListAndDelete(t *testing.T) {
	engine := funnelflow.New(funnelflow.WithAutosaveInterval(0))
	defer engine.Close(context.Background())

	a, err := engine.Create(context.Background(), "", "")
	require.NoError(t, err)
	b, err := engine.Create(context.Background(), "", "")
	require.NoError(t, err)

	ids, err := engine.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)

	require.NoError(t, engine.Delete(context.Background(), a.ID))
	_, err = engine.Get(context.Background(), a.ID)
	assert.ErrorIs(t, err, domain.ErrFunnelNotFound)
}

func TestCustomIDGenerator(t *testing.T) {
	engine := funnelflow.New(
		funnelflow.WithAutosaveInterval(0),
		funnelflow.WithIDGenerator(func() string { return "fixed-id" }),
	)
	defer engine.Close(context.Background())

	f, err := engine.Create(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", f.ID)
}
