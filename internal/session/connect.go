package session

import (
	"github.com/insyncinternational/funnelflow/pkg/canvas"
	"github.com/insyncinternational/funnelflow/pkg/domain"
)

// The connection editor is a two-state machine: Idle, and
// AwaitingTarget once an output point has been activated while
// connection mode is on. Hover-linking during a node drag is the second
// entry path; both converge on addConnection, which is the single place
// the no-self-loop rule lives.

// ConnectionMode reports whether the explicit connect-steps mode is on.
func (e *Editor) ConnectionMode() bool { return e.connectionMode }

// SetConnectionMode toggles the explicit connection mode. Turning it
// off discards any pending source.
func (e *Editor) SetConnectionMode(on bool) {
	e.connectionMode = on
	if !on {
		e.connectingFrom = ""
	}
}

// ConnectingFrom returns the pending source step ID while awaiting a
// target, or "".
func (e *Editor) ConnectingFrom() string { return e.connectingFrom }

// StartConnection arms the machine with a source step. It only fires
// when connection mode is on and the step exists; anything else leaves
// the machine alone.
func (e *Editor) StartConnection(id string) {
	if !e.connectionMode || !e.funnel.HasStep(id) {
		return
	}
	e.connectingFrom = id
}

// CompleteConnection finishes the pending connection onto a target. A
// click on the source itself is ignored and the machine keeps waiting;
// any other target appends an edge and returns the machine to idle.
func (e *Editor) CompleteConnection(targetID string) {
	if e.connectingFrom == "" {
		return
	}
	if targetID == e.connectingFrom {
		return
	}
	_ = e.addConnection(e.connectingFrom, targetID, "default")
	e.connectingFrom = ""
	e.connectionMode = false
}

// CancelConnection discards the pending source with no mutation.
func (e *Editor) CancelConnection() {
	e.connectingFrom = ""
	e.connectionMode = false
}

// AddConnection is the hover-link entry path: a node dragged over
// another while connection mode is off links the two directly.
func (e *Editor) AddConnection(from, to string) error {
	return e.addConnection(from, to, "default")
}

// AddConditionalConnection appends an edge with an explicit branch
// label ("yes", "no", or a custom string).
func (e *Editor) AddConditionalConnection(from, to, condition string) error {
	return e.addConnection(from, to, condition)
}

// addConnection is the one place edge-creation invariants are enforced.
// Duplicates are permitted; there is no dedup check.
func (e *Editor) addConnection(from, to, condition string) error {
	if from == to {
		return domain.ErrSelfConnection
	}
	if !e.funnel.HasStep(from) {
		return domain.ErrStepNotFound
	}
	if to != domain.EndStepID && !e.funnel.HasStep(to) {
		return domain.ErrStepNotFound
	}
	e.funnel.Connections = append(e.funnel.Connections, domain.Connection{
		From:      from,
		To:        to,
		Condition: condition,
	})
	e.autosave()
	return nil
}

// RemoveConnection deletes every connection matching both endpoints
// exactly, regardless of condition.
func (e *Editor) RemoveConnection(from, to string) {
	conns := e.funnel.Connections[:0]
	for _, c := range e.funnel.Connections {
		if !(c.From == from && c.To == to) {
			conns = append(conns, c)
		}
	}
	e.funnel.Connections = conns
	e.autosave()
}

// Edges computes the rendered curve for every connection whose endpoints
// both resolve to live steps. Dangling edges (a deleted endpoint, or the
// "end" terminal) are skipped, not repaired: re-adding a step with the
// same ID resurrects them.
func (e *Editor) Edges() []canvas.EdgeCurve {
	curves := make([]canvas.EdgeCurve, 0, len(e.funnel.Connections))
	for _, c := range e.funnel.Connections {
		from := e.funnel.Step(c.From)
		to := e.funnel.Step(c.To)
		if from == nil || to == nil {
			continue
		}
		curves = append(curves, canvas.CurveBetween(
			canvas.Point{X: from.X, Y: from.Y},
			canvas.Point{X: to.X, Y: to.Y},
			c.Condition,
		))
	}
	return curves
}

// ConnectionPreview returns the live curve from the pending source to
// the pointer while the machine is awaiting a target, converting the
// pointer from screen to graph space. Second return is false when no
// preview should render.
func (e *Editor) ConnectionPreview(pointer canvas.Point) (canvas.EdgeCurve, bool) {
	if e.connectingFrom == "" {
		return canvas.EdgeCurve{}, false
	}
	source := e.funnel.Step(e.connectingFrom)
	if source == nil {
		return canvas.EdgeCurve{}, false
	}
	from := canvas.EdgeAnchor(canvas.Point{X: source.X, Y: source.Y})
	to := e.viewport.ScreenToGraph(pointer)
	return canvas.EdgeCurve{
		From:    from,
		Control: canvas.Point{X: (from.X + to.X) / 2, Y: from.Y - 50},
		To:      to,
	}, true
}
