package domain

import "time"

// EndStepID is the reserved sentinel used as a connection target to mark
// the terminal of a funnel. No real step may use it as an ID.
const EndStepID = "end"

// FunnelStatus is the lifecycle state of a funnel.
type FunnelStatus string

const (
	StatusDraft     FunnelStatus = "draft"
	StatusPublished FunnelStatus = "published"
)

// Step is a single stage in the funnel graph.
//
// X and Y are graph-space coordinates (not screen space); Order is the
// intended traversal position, independent of where the card sits on the
// canvas. Both are mutated through different drag gestures, never the
// same one.
type Step struct {
	ID    string   `json:"id"`
	Type  StepType `json:"type"`
	Title string   `json:"title"`
	Order int      `json:"order"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`

	// Config holds type-specific options. It is normalized to an empty
	// map when absent; it is never nil on a step that went through the
	// store or the codec.
	Config map[string]any `json:"config"`
}

// Connection is a directed edge between two steps. To may be EndStepID.
// Condition labels parallel edges out of the same source ("default",
// "yes", "no", or a custom string); it is not required to be unique.
type Connection struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Condition string `json:"condition"`
}

// Funnel is the aggregate the builder edits and the repository persists.
type Funnel struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Status      FunnelStatus `json:"status"`

	Steps       []Step       `json:"steps"`
	Connections []Connection `json:"connections"`

	LastModified time.Time  `json:"lastModified"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	PublicURL    string     `json:"publicUrl,omitempty"`
}

// Step returns a pointer to the step with the given ID, or nil.
func (f *Funnel) Step(id string) *Step {
	for i := range f.Steps {
		if f.Steps[i].ID == id {
			return &f.Steps[i]
		}
	}
	return nil
}

// HasStep reports whether a step with the given ID exists.
func (f *Funnel) HasStep(id string) bool {
	return f.Step(id) != nil
}

// Normalize repairs the parts of a funnel that tolerate malformed input:
// nil step configs become empty maps and nil slices become empty slices.
// It does not touch orders or connections; dangling connection endpoints
// are deliberately retained (rendering skips them).
func (f *Funnel) Normalize() {
	if f.Steps == nil {
		f.Steps = []Step{}
	}
	if f.Connections == nil {
		f.Connections = []Connection{}
	}
	for i := range f.Steps {
		if f.Steps[i].Config == nil {
			f.Steps[i].Config = map[string]any{}
		}
	}
	if f.Status == "" {
		f.Status = StatusDraft
	}
}

// Clone returns a deep copy, so stores can hand out snapshots without
// aliasing the editor's in-memory state.
func (f *Funnel) Clone() *Funnel {
	out := *f
	out.Steps = make([]Step, len(f.Steps))
	for i, s := range f.Steps {
		cs := s
		cs.Config = make(map[string]any, len(s.Config))
		for k, v := range s.Config {
			cs.Config[k] = v
		}
		out.Steps[i] = cs
	}
	out.Connections = make([]Connection, len(f.Connections))
	copy(out.Connections, f.Connections)
	if f.PublishedAt != nil {
		t := *f.PublishedAt
		out.PublishedAt = &t
	}
	return &out
}

// Equal compares two funnels ignoring LastModified, which changes on
// every save. Step configs are compared structurally.
func (f *Funnel) Equal(other *Funnel) bool {
	if other == nil {
		return false
	}
	if f.ID != other.ID || f.Name != other.Name || f.Description != other.Description || f.Status != other.Status {
		return false
	}
	if len(f.Steps) != len(other.Steps) || len(f.Connections) != len(other.Connections) {
		return false
	}
	for i := range f.Steps {
		if !stepEqual(f.Steps[i], other.Steps[i]) {
			return false
		}
	}
	for i := range f.Connections {
		if f.Connections[i] != other.Connections[i] {
			return false
		}
	}
	return true
}

func stepEqual(a, b Step) bool {
	if a.ID != b.ID || a.Type != b.Type || a.Title != b.Title || a.Order != b.Order || a.X != b.X || a.Y != b.Y {
		return false
	}
	if len(a.Config) != len(b.Config) {
		return false
	}
	for k, v := range a.Config {
		if !valueEqual(v, b.Config[k]) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if !valueEqual(v, bv[k]) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
