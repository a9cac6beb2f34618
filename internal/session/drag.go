package session

import (
	"github.com/insyncinternational/funnelflow/pkg/canvas"
)

// Two drag semantics share one pointer pipeline but must never be
// conflated: a free-position drag mutates X/Y, a list drag mutates
// order. The decoder below inspects which affordance was grabbed and
// dispatches exactly one command type per gesture.

// HitKind identifies what the pointer-down landed on.
type HitKind int

const (
	// HitCanvas is the empty canvas background; engages panning.
	HitCanvas HitKind = iota
	// HitNode is a step card body; engages a free-position drag.
	HitNode
	// HitListItem is a sidebar sequence row; engages an order drag.
	HitListItem
)

// Hit describes the pointer-down target.
type Hit struct {
	Kind   HitKind
	StepID string
	// Index is the list position for HitListItem.
	Index int
	// Offset is the pointer offset within the card for HitNode, so the
	// card does not jump to the cursor.
	Offset canvas.Point
}

// Command is one decoded drag outcome. Exactly one command type is
// produced per gesture.
type Command interface{ isCommand() }

// MovePosition repositions a step on the canvas.
type MovePosition struct {
	StepID string
	To     canvas.Point
}

// ReorderSteps moves a step from one list index to another.
type ReorderSteps struct {
	From, To int
}

func (MovePosition) isCommand() {}
func (ReorderSteps) isCommand() {}

type nodeDrag struct {
	stepID string
	offset canvas.Point
	moved  bool
}

// PointerDown decodes a press. Background presses engage panning; node
// presses engage a position drag, unless connection mode is on, in
// which case clicks are connection-point activity and no drag starts.
func (e *Editor) PointerDown(hit Hit, pointer canvas.Point) {
	e.pointer = pointer
	switch hit.Kind {
	case HitCanvas:
		e.viewport.BeginPan(pointer)
	case HitNode:
		if e.connectionMode {
			return
		}
		if !e.funnel.HasStep(hit.StepID) {
			return
		}
		e.drag = &nodeDrag{stepID: hit.StepID, offset: hit.Offset}
	}
}

// PointerMove routes motion to whichever gesture is engaged. Node moves
// update only the in-memory position; nothing is persisted until
// release.
func (e *Editor) PointerMove(pointer canvas.Point) {
	e.pointer = pointer
	if e.viewport.Panning() {
		e.viewport.UpdatePan(pointer)
		return
	}
	if e.drag != nil {
		e.moveDraggedNode(pointer)
	}
}

// PointerUp ends the engaged gesture. A finished node drag persists the
// final position exactly once.
func (e *Editor) PointerUp() {
	e.viewport.EndPan()
	if e.drag != nil {
		moved := e.drag.moved
		e.drag = nil
		if moved {
			e.autosave()
		}
	}
}

// Dragging returns the step being position-dragged, or "".
func (e *Editor) Dragging() string {
	if e.drag == nil {
		return ""
	}
	return e.drag.stepID
}

func (e *Editor) moveDraggedNode(pointer canvas.Point) {
	step := e.funnel.Step(e.drag.stepID)
	if step == nil {
		e.drag = nil
		return
	}
	pos := canvas.ClampToCanvas(canvas.Point{
		X: pointer.X - e.drag.offset.X,
		Y: pointer.Y - e.drag.offset.Y,
	}, e.canvasSize)
	step.X = pos.X
	step.Y = pos.Y
	e.drag.moved = true
}

// DragOver handles the dragged node passing over another card. With
// connection mode off this is the hover-link gesture and creates an
// edge; with it on, the gesture is reserved for the state machine and
// nothing happens here. The two paths are mutually exclusive per
// gesture.
func (e *Editor) DragOver(targetID string) {
	if e.drag == nil || e.connectionMode {
		return
	}
	if targetID == e.drag.stepID {
		return
	}
	_ = e.AddConnection(e.drag.stepID, targetID)
}

// Apply executes a decoded drag command against the store.
func (e *Editor) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case MovePosition:
		pos := canvas.ClampToCanvas(c.To, e.canvasSize)
		e.UpdateStep(c.StepID, StepPatch{X: &pos.X, Y: &pos.Y})
		return nil
	case ReorderSteps:
		return e.ReorderStep(c.From, c.To)
	default:
		return nil
	}
}
