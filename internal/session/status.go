package session

import (
	"context"
	"time"

	"github.com/insyncinternational/funnelflow/pkg/domain"
)

// StatusMessage is a transient banner shown after an explicit action.
type StatusMessage struct {
	Text    string
	Warning bool
	expires time.Time
}

func (e *Editor) setStatus(text string, warning bool, ttl time.Duration) {
	e.status = &StatusMessage{Text: text, Warning: warning, expires: e.clock().Add(ttl)}
}

// Status returns the current banner, or nil once it has expired.
func (e *Editor) Status() *StatusMessage {
	if e.status == nil {
		return nil
	}
	if e.clock().After(e.status.expires) {
		e.status = nil
		return nil
	}
	return e.status
}

// Save writes the funnel synchronously, bypassing the debounce. The
// explicit action carries a small simulated latency so the banner
// sequencing matches the hosted product.
func (e *Editor) Save(ctx context.Context) error {
	if e.saveLatency > 0 {
		select {
		case <-time.After(e.saveLatency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	e.funnel.LastModified = e.clock()
	if err := e.saver.repo.Save(ctx, e.funnel); err != nil {
		e.logger.Error("save failed", "err", err)
		e.setStatus("Failed to save funnel", true, 3*time.Second)
		return err
	}
	e.logger.Info("funnel saved", "steps", len(e.funnel.Steps))
	e.setStatus("Saved successfully!", false, 3*time.Second)
	return nil
}

// Publish marks the funnel live and mints its public URL. A funnel with
// no steps cannot be published; the guard surfaces a warning banner
// instead of an error because the gesture is recoverable in place.
func (e *Editor) Publish(ctx context.Context) error {
	if len(e.funnel.Steps) == 0 {
		e.setStatus("Add at least one step before publishing", true, 3*time.Second)
		return nil
	}
	if e.publishLatency > 0 {
		select {
		case <-time.After(e.publishLatency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	now := e.clock()
	e.funnel.Status = domain.StatusPublished
	e.funnel.PublishedAt = &now
	e.funnel.PublicURL = e.publicBaseURL + "/funnel/" + e.funnel.ID
	e.funnel.LastModified = now
	if err := e.saver.repo.Save(ctx, e.funnel); err != nil {
		e.logger.Error("publish failed", "err", err)
		e.setStatus("Failed to publish funnel", true, 5*time.Second)
		return err
	}
	e.logger.Info("funnel published", "url", e.funnel.PublicURL)
	e.setStatus("Published! Your funnel is live at "+e.funnel.PublicURL, false, 5*time.Second)
	return nil
}

// CanPreview reports whether there is anything to walk through.
func (e *Editor) CanPreview() bool { return len(e.funnel.Steps) > 0 }
