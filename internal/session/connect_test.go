package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insyncinternational/funnelflow/pkg/canvas"
	"github.com/insyncinternational/funnelflow/pkg/domain"
)

func TestConnectionMachineHappyPath(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)
	b := e.AddStep(domain.StepForm)

	e.SetConnectionMode(true)
	e.StartConnection(a.ID)
	assert.Equal(t, a.ID, e.ConnectingFrom())

	e.CompleteConnection(b.ID)

	f := e.Funnel()
	require.Len(t, f.Connections, 1)
	assert.Equal(t, domain.Connection{From: a.ID, To: b.ID, Condition: "default"}, f.Connections[0])
	assert.Empty(t, e.ConnectingFrom())
	assert.False(t, e.ConnectionMode())
}

func TestSelfTargetKeepsAwaitingTarget(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)
	b := e.AddStep(domain.StepForm)

	e.SetConnectionMode(true)
	e.StartConnection(a.ID)
	e.CompleteConnection(a.ID)

	// the click on the source is swallowed; the machine keeps waiting
	assert.Empty(t, e.Funnel().Connections)
	assert.Equal(t, a.ID, e.ConnectingFrom())
	assert.True(t, e.ConnectionMode())

	// and a later valid target still completes
	e.CompleteConnection(b.ID)
	assert.Len(t, e.Funnel().Connections, 1)
}

func TestStartConnectionRequiresModeAndStep(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)

	e.StartConnection(a.ID)
	assert.Empty(t, e.ConnectingFrom(), "mode off")

	e.SetConnectionMode(true)
	e.StartConnection("ghost")
	assert.Empty(t, e.ConnectingFrom(), "unknown step")
}

func TestCancelConnectionDiscardsPending(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)

	e.SetConnectionMode(true)
	e.StartConnection(a.ID)
	e.CancelConnection()

	assert.Empty(t, e.ConnectingFrom())
	assert.False(t, e.ConnectionMode())
	assert.Empty(t, e.Funnel().Connections)
}

func TestDisablingModeDiscardsPending(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)

	e.SetConnectionMode(true)
	e.StartConnection(a.ID)
	e.SetConnectionMode(false)

	assert.Empty(t, e.ConnectingFrom())
}

func TestAddConnectionRejectsSelfLoop(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)

	assert.ErrorIs(t, e.AddConnection(a.ID, a.ID), domain.ErrSelfConnection)
	assert.Empty(t, e.Funnel().Connections)
}

func TestAddConnectionValidatesEndpoints(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)

	assert.ErrorIs(t, e.AddConnection("ghost", a.ID), domain.ErrStepNotFound)
	assert.ErrorIs(t, e.AddConnection(a.ID, "ghost"), domain.ErrStepNotFound)
}

func TestEndSentinelIsValidTarget(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)

	require.NoError(t, e.AddConnection(a.ID, domain.EndStepID))
	require.Len(t, e.Funnel().Connections, 1)
	// terminal edges are never rendered
	assert.Empty(t, e.Edges())
}

func TestDuplicateConnectionsPermitted(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)
	b := e.AddStep(domain.StepForm)

	require.NoError(t, e.AddConnection(a.ID, b.ID))
	require.NoError(t, e.AddConnection(a.ID, b.ID))
	assert.Len(t, e.Funnel().Connections, 2)
}

func TestConditionalConnection(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepQuestion)
	b := e.AddStep(domain.StepForm)

	require.NoError(t, e.AddConditionalConnection(a.ID, b.ID, "yes"))
	assert.Equal(t, "yes", e.Funnel().Connections[0].Condition)
}

func TestRemoveConnectionIgnoresCondition(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepQuestion)
	b := e.AddStep(domain.StepForm)
	c := e.AddStep(domain.StepRedirect)
	require.NoError(t, e.AddConditionalConnection(a.ID, b.ID, "yes"))
	require.NoError(t, e.AddConditionalConnection(a.ID, b.ID, "no"))
	require.NoError(t, e.AddConnection(a.ID, c.ID))

	e.RemoveConnection(a.ID, b.ID)

	f := e.Funnel()
	require.Len(t, f.Connections, 1)
	assert.Equal(t, c.ID, f.Connections[0].To)
}

func TestEdgesSkipDanglingEndpoints(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)
	b := e.AddStep(domain.StepForm)
	c := e.AddStep(domain.StepRedirect)
	require.NoError(t, e.AddConnection(a.ID, b.ID))
	require.NoError(t, e.AddConnection(b.ID, c.ID))

	e.DeleteStep(c.ID)

	edges := e.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, canvas.EdgeAnchor(canvas.Point{X: a.X, Y: a.Y}), edges[0].From)
}

func TestDanglingEdgeResurrectsWithStepID(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)
	b := e.AddStep(domain.StepForm)
	require.NoError(t, e.AddConnection(a.ID, b.ID))

	e.DeleteStep(b.ID)
	require.Empty(t, e.Edges())

	// re-adding a step under the same ID brings the edge back
	e.funnel.Steps = append(e.funnel.Steps, domain.Step{
		ID: b.ID, Type: domain.StepForm, Title: "Form Step", Order: 2, X: 400, Y: 100,
	})
	assert.Len(t, e.Edges(), 1)
}

func TestConnectionPreviewFollowsPointer(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddStep(domain.StepVideo)

	_, ok := e.ConnectionPreview(canvas.Point{X: 500, Y: 300})
	assert.False(t, ok, "no pending source")

	e.SetConnectionMode(true)
	e.StartConnection(a.ID)

	curve, ok := e.ConnectionPreview(canvas.Point{X: 500, Y: 300})
	require.True(t, ok)
	assert.Equal(t, canvas.EdgeAnchor(canvas.Point{X: a.X, Y: a.Y}), curve.From)
	// default viewport: screen space is graph space
	assert.Equal(t, canvas.Point{X: 500, Y: 300}, curve.To)
}
