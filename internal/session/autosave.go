package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/insyncinternational/funnelflow/pkg/domain"
	"github.com/insyncinternational/funnelflow/pkg/ports"
)

// DefaultAutosaveInterval is the trailing-edge debounce window. The
// source product wrote one record per keystroke-level mutation, which
// races overlapping writes against each other; coalescing to the latest
// value per funnel removes the lost-update window without changing the
// last-write-wins contract.
const DefaultAutosaveInterval = 400 * time.Millisecond

// saveTimeout bounds a single background write.
const saveTimeout = 10 * time.Second

// SaveObserver receives autosave lifecycle notifications (metrics hook).
type SaveObserver interface {
	AutosavePending(n int)
	AutosaveDone(id string, err error)
}

// Saver is the debounced persistence bridge: at most one pending write
// per funnel ID, latest value wins, cancel-and-replace on every
// enqueue. Writes are fire-and-forget; failures are logged, never
// surfaced to the editing loop.
type Saver struct {
	repo     ports.FunnelRepository
	interval time.Duration
	logger   *slog.Logger
	observer SaveObserver

	mu      sync.Mutex
	pending map[string]*pendingSave
	wg      sync.WaitGroup
	closed  bool
}

type pendingSave struct {
	timer  *time.Timer
	funnel *domain.Funnel
}

// SaverOption configures a Saver.
type SaverOption func(*Saver)

// WithSaveObserver registers a metrics hook.
func WithSaveObserver(obs SaveObserver) SaverOption {
	return func(s *Saver) { s.observer = obs }
}

// NewSaver creates a debounced writer over the repository. An interval
// of zero writes synchronously on every enqueue (useful in tests).
func NewSaver(repo ports.FunnelRepository, interval time.Duration, logger *slog.Logger, opts ...SaverOption) *Saver {
	s := &Saver{
		repo:     repo,
		interval: interval,
		logger:   logger,
		pending:  make(map[string]*pendingSave),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enqueue schedules a write of the funnel snapshot. An already-pending
// write for the same ID is replaced and its timer restarted, so a burst
// of edits produces exactly one write of the final state.
func (s *Saver) Enqueue(funnel *domain.Funnel) {
	snapshot := funnel.Clone()

	if s.interval <= 0 {
		s.write(snapshot)
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if p, ok := s.pending[snapshot.ID]; ok {
		p.funnel = snapshot
		p.timer.Reset(s.interval)
		s.mu.Unlock()
		return
	}
	id := snapshot.ID
	p := &pendingSave{funnel: snapshot}
	p.timer = time.AfterFunc(s.interval, func() { s.fire(id) })
	s.pending[id] = p
	s.notifyPending()
	s.mu.Unlock()
}

// fire pops the pending snapshot and writes it.
func (s *Saver) fire(id string) {
	s.mu.Lock()
	p, ok := s.pending[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.pending, id)
	s.notifyPending()
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	s.write(p.funnel)
}

func (s *Saver) write(funnel *domain.Funnel) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	err := s.repo.Save(ctx, funnel)
	if err != nil {
		s.logger.Error("autosave failed", "funnel", funnel.ID, "err", err)
	}
	if s.observer != nil {
		s.observer.AutosaveDone(funnel.ID, err)
	}
}

// Flush writes every pending snapshot immediately and waits for
// in-flight writes to finish.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	snapshots := make([]*domain.Funnel, 0, len(s.pending))
	for id, p := range s.pending {
		p.timer.Stop()
		snapshots = append(snapshots, p.funnel)
		delete(s.pending, id)
	}
	s.notifyPending()
	s.mu.Unlock()

	for _, f := range snapshots {
		err := s.repo.Save(ctx, f)
		if err != nil {
			s.logger.Error("flush failed", "funnel", f.ID, "err", err)
		}
		if s.observer != nil {
			s.observer.AutosaveDone(f.ID, err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes and stops accepting new work.
func (s *Saver) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.Flush(ctx)
}

// notifyPending is called with s.mu held.
func (s *Saver) notifyPending() {
	if s.observer != nil {
		s.observer.AutosavePending(len(s.pending))
	}
}
