package templates_test

import (
	"testing"

	"github.com/insyncinternational/funnelflow/pkg/domain"
	"github.com/insyncinternational/funnelflow/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Deterministic(t *testing.T) {
	for _, name := range templates.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			steps1, conns1 := templates.Load(name)
			steps2, conns2 := templates.Load(name)
			assert.Equal(t, steps1, steps2, "two loads of %q must produce identical steps", name)
			assert.Equal(t, conns1, conns2, "two loads of %q must produce identical connections", name)
		})
	}
}

func TestLoad_OrdersAreDense(t *testing.T) {
	for _, name := range templates.Names() {
		steps, _ := templates.Load(name)
		require.NotEmpty(t, steps, "template %q has no steps", name)
		for i, s := range steps {
			assert.Equal(t, i+1, s.Order, "template %q: order must be dense 1..N", name)
			assert.NotNil(t, s.Config, "template %q: config must never be nil", name)
			assert.True(t, s.Type.Valid(), "template %q: step type %q must be known", name, s.Type)
		}
	}
}

func TestLoad_ConnectionsResolve(t *testing.T) {
	for _, name := range templates.Names() {
		steps, conns := templates.Load(name)
		ids := map[string]bool{domain.EndStepID: true}
		for _, s := range steps {
			ids[s.ID] = true
		}
		for _, c := range conns {
			assert.True(t, ids[c.From] && c.From != domain.EndStepID, "template %q: from %q must be a real step", name, c.From)
			assert.True(t, ids[c.To], "template %q: to %q must be a step or the terminal", name, c.To)
			assert.NotEqual(t, c.From, c.To, "template %q: no self-loops", name)
		}
	}
}

func TestLoad_DatingBranches(t *testing.T) {
	_, conns := templates.Load("dating")

	assert.Contains(t, conns, domain.Connection{From: "step-2", To: "step-3", Condition: "yes"})
	assert.Contains(t, conns, domain.Connection{From: "step-2", To: domain.EndStepID, Condition: "no"})
}

func TestLoad_UnknownFallsBackToDating(t *testing.T) {
	wantSteps, wantConns := templates.Load("dating")
	gotSteps, gotConns := templates.Load("definitely-not-a-template")

	assert.Equal(t, wantSteps, gotSteps)
	assert.Equal(t, wantConns, gotConns)
}

func TestLoad_Aliases(t *testing.T) {
	aSteps, _ := templates.Load("matchify")
	bSteps, _ := templates.Load("dating")
	assert.Equal(t, bSteps, aSteps)

	cSteps, _ := templates.Load("realestate")
	dSteps, _ := templates.Load("real-estate")
	assert.Equal(t, dSteps, cSteps)
}

func TestSeed(t *testing.T) {
	f := templates.Seed("fn-1")

	assert.Equal(t, "fn-1", f.ID)
	assert.Equal(t, domain.StatusDraft, f.Status)
	require.Len(t, f.Steps, 3)
	assert.Equal(t, []float64{100, 400, 700}, []float64{f.Steps[0].X, f.Steps[1].X, f.Steps[2].X})
	require.Len(t, f.Connections, 3)
}

func TestFallback_MinimalOneStep(t *testing.T) {
	f := templates.Fallback("fn-2")

	require.Len(t, f.Steps, 1)
	assert.Empty(t, f.Connections)
	assert.Equal(t, domain.StepVideo, f.Steps[0].Type)
}

func TestCatalog(t *testing.T) {
	infos := templates.Catalog()
	require.Len(t, infos, 7)
	assert.Equal(t, "dating", infos[0].Name)
	assert.Equal(t, templates.Names()[0], infos[0].Name)
}
