package funnelflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/insyncinternational/funnelflow/internal/logging"
	"github.com/insyncinternational/funnelflow/internal/session"
	"github.com/insyncinternational/funnelflow/pkg/adapters/memory"
	"github.com/insyncinternational/funnelflow/pkg/canvas"
	"github.com/insyncinternational/funnelflow/pkg/domain"
	"github.com/insyncinternational/funnelflow/pkg/ports"
	"github.com/insyncinternational/funnelflow/pkg/templates"
)

// Builder is the high-level entry point for the funnel builder engine.
// It wraps the repository and the shared autosave writer and hands out
// editing sessions per funnel.
type Builder struct {
	repo          ports.FunnelRepository
	saver         *session.Saver
	logger        *slog.Logger
	canvasSize    canvas.Size
	interval      time.Duration
	publicBaseURL string
	observer      session.SaveObserver
	newID         func() string
}

// Option defines a functional option for configuring the Builder.
type Option func(*Builder)

// WithRepository injects a persistence backend. The in-memory adapter
// is used when none is given.
func WithRepository(repo ports.FunnelRepository) Option {
	return func(b *Builder) { b.repo = repo }
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// WithAutosaveInterval tunes the debounce window for background writes.
func WithAutosaveInterval(d time.Duration) Option {
	return func(b *Builder) { b.interval = d }
}

// WithCanvasSize sets the unscaled canvas rect for all sessions.
func WithCanvasSize(size canvas.Size) Option {
	return func(b *Builder) { b.canvasSize = size }
}

// WithPublicBaseURL sets the origin used to mint published funnel URLs.
func WithPublicBaseURL(base string) Option {
	return func(b *Builder) { b.publicBaseURL = base }
}

// WithSaveObserver registers a metrics hook on the autosave writer.
func WithSaveObserver(obs session.SaveObserver) Option {
	return func(b *Builder) { b.observer = obs }
}

// WithIDGenerator overrides funnel ID minting (default: random UUID).
func WithIDGenerator(gen func() string) Option {
	return func(b *Builder) { b.newID = gen }
}

// New initializes the builder engine.
func New(opts ...Option) *Builder {
	b := &Builder{
		logger:        logging.NewNop(),
		canvasSize:    session.DefaultCanvasSize,
		interval:      session.DefaultAutosaveInterval,
		publicBaseURL: "https://funnelflow.ai",
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.repo == nil {
		b.repo = memory.NewRepository()
	}
	saverOpts := []session.SaverOption{}
	if b.observer != nil {
		saverOpts = append(saverOpts, session.WithSaveObserver(b.observer))
	}
	b.saver = session.NewSaver(b.repo, b.interval, b.logger, saverOpts...)
	return b
}

// Repository exposes the persistence backend for read paths.
func (b *Builder) Repository() ports.FunnelRepository { return b.repo }

// Create mints a new funnel from a template name ("" or "blank" means
// the default three-step seed), persists it, and returns the record.
func (b *Builder) Create(ctx context.Context, name, template string) (*domain.Funnel, error) {
	id := b.newID()

	var funnel *domain.Funnel
	if template == "" || template == "blank" {
		funnel = templates.Seed(id)
	} else {
		steps, conns := templates.Load(template)
		funnel = &domain.Funnel{ID: id, Name: "New Funnel", Steps: steps, Connections: conns}
		funnel.Normalize()
	}
	if name != "" {
		funnel.Name = name
	}
	funnel.LastModified = time.Now()

	if err := b.repo.Save(ctx, funnel); err != nil {
		return nil, fmt.Errorf("failed to persist new funnel: %w", err)
	}
	b.logger.Info("funnel created", "funnel", id, "template", template)
	return funnel, nil
}

// Edit opens an editing session over an existing funnel. The session
// shares the builder's debounced writer.
func (b *Builder) Edit(ctx context.Context, id string) (*session.Editor, error) {
	return session.Open(ctx, b.repo, id,
		session.WithLogger(b.logger),
		session.WithSaver(b.saver),
		session.WithCanvasSize(b.canvasSize),
		session.WithPublicBaseURL(b.publicBaseURL),
		// the simulated click-to-banner latency is an interactive-host
		// affordance; engine-driven sessions act immediately
		session.WithActionLatency(0, 0),
	)
}

// Get loads a funnel record.
func (b *Builder) Get(ctx context.Context, id string) (*domain.Funnel, error) {
	return b.repo.Load(ctx, id)
}

// List returns all stored funnel IDs.
func (b *Builder) List(ctx context.Context) ([]string, error) {
	return b.repo.List(ctx)
}

// Delete removes a funnel record.
func (b *Builder) Delete(ctx context.Context, id string) error {
	return b.repo.Delete(ctx, id)
}

// Close flushes pending autosaves.
func (b *Builder) Close(ctx context.Context) error {
	return b.saver.Close(ctx)
}
