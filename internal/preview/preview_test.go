package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insyncinternational/funnelflow/pkg/domain"
	"github.com/insyncinternational/funnelflow/pkg/templates"
)

func linearFunnel() *domain.Funnel {
	f := &domain.Funnel{
		ID: "f1",
		Steps: []domain.Step{
			{ID: "a", Type: domain.StepVideo, Order: 1},
			{ID: "b", Type: domain.StepForm, Order: 2},
		},
		Connections: []domain.Connection{
			{From: "a", To: "b", Condition: "default"},
			{From: "b", To: domain.EndStepID, Condition: "default"},
		},
	}
	f.Normalize()
	return f
}

func TestWalkerStartsAtLowestOrder(t *testing.T) {
	f := linearFunnel()
	// storage order differs from sequence order
	f.Steps[0], f.Steps[1] = f.Steps[1], f.Steps[0]

	w := New(f)
	require.NotNil(t, w.Current())
	assert.Equal(t, "a", w.Current().ID)
}

func TestWalkerFollowsDefaultChain(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Path(linearFunnel()))
}

func TestWalkerEndsAtSentinel(t *testing.T) {
	w := New(linearFunnel())
	w.Advance("")
	w.Advance("")
	assert.True(t, w.Done())
	assert.Nil(t, w.Current())
	// advancing past the end stays done
	w.Advance("")
	assert.True(t, w.Done())
}

func TestWalkerBranchesOnCondition(t *testing.T) {
	f := &domain.Funnel{
		ID: "f1",
		Steps: []domain.Step{
			{ID: "q", Type: domain.StepQuestion, Order: 1},
			{ID: "yes-path", Type: domain.StepForm, Order: 2},
			{ID: "no-path", Type: domain.StepRedirect, Order: 3},
		},
		Connections: []domain.Connection{
			{From: "q", To: "yes-path", Condition: "yes"},
			{From: "q", To: "no-path", Condition: "no"},
		},
	}
	f.Normalize()

	assert.Equal(t, []string{"q", "yes-path"}, Path(f, "yes"))
	assert.Equal(t, []string{"q", "no-path"}, Path(f, "no"))
}

func TestWalkerPrefersQuestionOptionTarget(t *testing.T) {
	// options carry label and next only, the shape the builder and the
	// templates produce
	f := &domain.Funnel{
		ID: "f1",
		Steps: []domain.Step{
			{ID: "q", Type: domain.StepQuestion, Order: 1, Config: map[string]any{
				"options": []any{
					map[string]any{"label": "Yes", "next": "special"},
				},
			}},
			{ID: "fallthrough", Type: domain.StepForm, Order: 2},
			{ID: "special", Type: domain.StepPricing, Order: 3},
		},
		Connections: []domain.Connection{
			{From: "q", To: "fallthrough", Condition: "default"},
		},
	}
	f.Normalize()

	// the clicked option's label routes to its next target, beating the
	// default connection
	assert.Equal(t, []string{"q", "special"}, Path(f, "Yes"))
	// an unmatched answer falls back to the default edge
	assert.Equal(t, []string{"q", "fallthrough"}, Path(f, "maybe"))
}

func TestWalkerHonorsOptionValueAlias(t *testing.T) {
	f := &domain.Funnel{
		ID: "f1",
		Steps: []domain.Step{
			{ID: "q", Type: domain.StepQuestion, Order: 1, Config: map[string]any{
				"options": []any{
					map[string]any{"label": "Sounds good", "value": "yes", "next": "target"},
				},
			}},
			{ID: "target", Type: domain.StepForm, Order: 2},
		},
	}
	f.Normalize()

	assert.Equal(t, []string{"q", "target"}, Path(f, "yes"))
	assert.Equal(t, []string{"q", "target"}, Path(f, "Sounds good"))
}

func TestSeedFunnelOptionRouting(t *testing.T) {
	f := templates.Seed("seed")

	// the age gate's "No" option points straight at the end sentinel
	assert.Equal(t, []string{"step-1", "step-2"}, Path(f, "Get Started", "No"))
	// "Yes" continues to lead capture
	assert.Equal(t, []string{"step-1", "step-2", "step-3"}, Path(f, "Get Started", "Yes"))
}

func TestWalkerStopsOnMissingTarget(t *testing.T) {
	f := linearFunnel()
	f.Connections[0].To = "deleted-step"

	assert.Equal(t, []string{"a"}, Path(f))
}

func TestWalkerNoOutgoingEdgesTerminates(t *testing.T) {
	f := &domain.Funnel{
		ID:    "f1",
		Steps: []domain.Step{{ID: "only", Type: domain.StepVideo, Order: 1}},
	}
	f.Normalize()

	assert.Equal(t, []string{"only"}, Path(f))
}

func TestEmptyFunnelIsDone(t *testing.T) {
	f := &domain.Funnel{ID: "empty"}
	f.Normalize()

	w := New(f)
	assert.True(t, w.Done())
	assert.Nil(t, w.Current())
}

func TestTemplateFlowsWalkToEnd(t *testing.T) {
	for _, name := range templates.Names() {
		t.Run(name, func(t *testing.T) {
			steps, conns := templates.Load(name)
			f := &domain.Funnel{ID: "t", Steps: steps, Connections: conns}
			f.Normalize()

			visited := Path(f, "yes")
			assert.NotEmpty(t, visited)
			assert.Equal(t, steps[0].ID, visited[0])
		})
	}
}
