package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/insyncinternational/funnelflow/pkg/canvas"
	"github.com/insyncinternational/funnelflow/pkg/domain"
	"github.com/insyncinternational/funnelflow/pkg/ports"
	"github.com/insyncinternational/funnelflow/pkg/templates"
)

// DefaultCanvasSize is the unscaled canvas-container rectangle used for
// drag clamping when the host does not report its own.
var DefaultCanvasSize = canvas.Size{Width: 3000, Height: 2000}

// Editor is the sole owner of a funnel's steps and connections during an
// editing session. Every mutation goes through it, and every mutation
// enqueues a debounced write to the injected repository.
type Editor struct {
	funnel *domain.Funnel
	saver  *Saver
	logger *slog.Logger

	viewport   *canvas.Viewport
	canvasSize canvas.Size

	clock  func() time.Time
	rand   func() float64
	nextID func() string

	// ephemeral interaction state, never persisted
	selected       string
	hovered        string
	connectionMode bool
	connectingFrom string
	drag           *nodeDrag
	pointer        canvas.Point

	status         *StatusMessage
	saveLatency    time.Duration
	publishLatency time.Duration
	publicBaseURL  string
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets a structured logger; a no-op logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// WithClock injects the time source (tests pin it).
func WithClock(clock func() time.Time) Option {
	return func(e *Editor) { e.clock = clock }
}

// WithRandom injects the [0,1) source used to jitter new-step Y positions.
func WithRandom(r func() float64) Option {
	return func(e *Editor) { e.rand = r }
}

// WithIDGenerator overrides the time-based step ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Editor) { e.nextID = gen }
}

// WithCanvasSize sets the unscaled canvas rect used for drag clamping.
func WithCanvasSize(size canvas.Size) Option {
	return func(e *Editor) { e.canvasSize = size }
}

// WithSaver shares an autosave writer across editors.
func WithSaver(s *Saver) Option {
	return func(e *Editor) { e.saver = s }
}

// WithActionLatency sets the simulated latency of the explicit save and
// publish actions. Zero for tests.
func WithActionLatency(save, publish time.Duration) Option {
	return func(e *Editor) {
		e.saveLatency = save
		e.publishLatency = publish
	}
}

// WithPublicBaseURL sets the base of the synthetic public URL written on
// publish.
func WithPublicBaseURL(base string) Option {
	return func(e *Editor) { e.publicBaseURL = base }
}

// Open loads the funnel with the given ID into a new editor. An absent
// or malformed record falls back to the minimal seed funnel: load
// failures are logged, never fatal: the builder always stays
// interactive.
func Open(ctx context.Context, repo ports.FunnelRepository, id string, opts ...Option) (*Editor, error) {
	e := newEditor(repo, opts...)

	funnel, err := repo.Load(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrFunnelNotFound) {
			e.logger.Warn("failed to load funnel, falling back to seed", "funnel", id, "err", err)
		}
		funnel = templates.Fallback(id)
	}
	funnel.Normalize()
	e.funnel = funnel
	e.logger = e.logger.With("funnel", id)
	return e, nil
}

// NewFunnel creates an editor over the default seed funnel for a fresh
// ID and persists the initial record.
func NewFunnel(ctx context.Context, repo ports.FunnelRepository, id string, opts ...Option) (*Editor, error) {
	e := newEditor(repo, opts...)
	e.funnel = templates.Seed(id)
	e.logger = e.logger.With("funnel", id)

	e.funnel.LastModified = e.clock()
	if err := repo.Save(ctx, e.funnel); err != nil {
		return nil, fmt.Errorf("failed to persist new funnel: %w", err)
	}
	return e, nil
}

func newEditor(repo ports.FunnelRepository, opts ...Option) *Editor {
	e := &Editor{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		viewport:       canvas.NewViewport(),
		canvasSize:     DefaultCanvasSize,
		clock:          time.Now,
		rand:           rand.Float64,
		saveLatency:    2 * time.Second,
		publishLatency: 3 * time.Second,
		publicBaseURL:  "https://funnelflow.ai",
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.saver == nil {
		e.saver = NewSaver(repo, DefaultAutosaveInterval, e.logger)
	}
	if e.nextID == nil {
		e.nextID = stepIDGenerator(e.clock)
	}
	return e
}

// stepIDGenerator mints "step-<unix-ms>" IDs. Rapid successive adds in
// the same millisecond bump the counter so IDs stay unique.
func stepIDGenerator(clock func() time.Time) func() string {
	var last int64
	return func() string {
		ms := clock().UnixMilli()
		if ms <= last {
			ms = last + 1
		}
		last = ms
		return fmt.Sprintf("step-%d", ms)
	}
}

// Funnel returns a snapshot of the edited funnel.
func (e *Editor) Funnel() *domain.Funnel { return e.funnel.Clone() }

// Viewport exposes the canvas viewport for zoom/pan input.
func (e *Editor) Viewport() *canvas.Viewport { return e.viewport }

// CanvasSize returns the unscaled canvas rect used for clamping.
func (e *Editor) CanvasSize() canvas.Size { return e.canvasSize }

// Saver exposes the autosave writer (hosts flush it on shutdown).
func (e *Editor) Saver() *Saver { return e.saver }

// Selected returns the currently selected step ID, or "".
func (e *Editor) Selected() string { return e.selected }

// Select marks a step as selected; unknown IDs clear the selection.
func (e *Editor) Select(id string) {
	if id != "" && !e.funnel.HasStep(id) {
		id = ""
	}
	e.selected = id
}

// Hovered returns the currently hovered step ID, or "".
func (e *Editor) Hovered() string { return e.hovered }

// SetHovered tracks the step under the pointer.
func (e *Editor) SetHovered(id string) { e.hovered = id }

// AddStep appends a new step of the given kind: time-based ID, default
// title, next dense order, and a position offset horizontally from the
// previous step with a vertical jitter so fresh cards do not stack.
func (e *Editor) AddStep(t domain.StepType) domain.Step {
	n := len(e.funnel.Steps)
	step := domain.Step{
		ID:     e.nextID(),
		Type:   t,
		Title:  t.DefaultTitle(),
		Order:  n + 1,
		X:      100 + float64(n)*300,
		Y:      100 + e.rand()*200,
		Config: map[string]any{},
	}
	e.funnel.Steps = append(e.funnel.Steps, step)
	e.logger.Debug("step added", "step", step.ID, "type", t)
	e.autosave()
	return step
}

// StepPatch carries the fields UpdateStep may shallow-merge.
type StepPatch struct {
	Title  *string
	Config map[string]any
	X      *float64
	Y      *float64
}

// UpdateStep shallow-merges the patch into the matching step. A missing
// ID is a silent no-op, matching the panel's fire-and-forget updates.
func (e *Editor) UpdateStep(id string, patch StepPatch) {
	step := e.funnel.Step(id)
	if step == nil {
		return
	}
	if patch.Title != nil {
		step.Title = *patch.Title
	}
	if patch.Config != nil {
		step.Config = domain.NormalizeConfig(patch.Config)
	}
	if patch.X != nil {
		step.X = *patch.X
	}
	if patch.Y != nil {
		step.Y = *patch.Y
	}
	e.autosave()
}

// DeleteStep removes the step and clears the selection if it pointed at
// it. Connections referencing the step are deliberately retained;
// rendering skips edges whose endpoints no longer resolve.
func (e *Editor) DeleteStep(id string) {
	steps := e.funnel.Steps[:0]
	for _, s := range e.funnel.Steps {
		if s.ID != id {
			steps = append(steps, s)
		}
	}
	e.funnel.Steps = steps
	if e.selected == id {
		e.selected = ""
	}
	e.autosave()
}

// ReorderStep removes the step at from and reinserts it at to, then
// renumbers every order to match array position. This is the sidebar's
// sequencing gesture; it never touches X/Y.
func (e *Editor) ReorderStep(from, to int) error {
	n := len(e.funnel.Steps)
	if from < 0 || from >= n || to < 0 || to >= n {
		return domain.ErrInvalidIndex
	}
	if from != to {
		step := e.funnel.Steps[from]
		rest := append(e.funnel.Steps[:from], e.funnel.Steps[from+1:]...)
		e.funnel.Steps = append(rest[:to], append([]domain.Step{step}, rest[to:]...)...)
	}
	for i := range e.funnel.Steps {
		e.funnel.Steps[i].Order = i + 1
	}
	e.autosave()
	return nil
}

// ClearAll empties steps, connections and all interaction state.
func (e *Editor) ClearAll() {
	e.funnel.Steps = []domain.Step{}
	e.funnel.Connections = []domain.Connection{}
	e.selected = ""
	e.hovered = ""
	e.connectionMode = false
	e.connectingFrom = ""
	e.drag = nil
	e.autosave()
}

// ApplyTemplate replaces the graph wholesale with a named template and
// resets selection and connection mode. It is never a merge.
func (e *Editor) ApplyTemplate(name string) {
	steps, conns := templates.Load(name)
	e.funnel.Steps = steps
	e.funnel.Connections = conns
	e.selected = ""
	e.connectionMode = false
	e.connectingFrom = ""
	e.autosave()
}

// Replace swaps in a whole new funnel record and resets all interaction
// state. Identity is kept: the incoming record's ID wins only if set.
func (e *Editor) Replace(funnel *domain.Funnel) {
	next := funnel.Clone()
	next.Normalize()
	if next.ID == "" {
		next.ID = e.funnel.ID
	}
	e.funnel = next
	e.selected = ""
	e.hovered = ""
	e.connectionMode = false
	e.connectingFrom = ""
	e.drag = nil
}

// autosave enqueues a debounced write of the full current graph. There
// is no diffing: the record format is small enough that last-write-wins
// on the whole funnel is the contract.
func (e *Editor) autosave() {
	e.funnel.LastModified = e.clock()
	e.saver.Enqueue(e.funnel)
}
