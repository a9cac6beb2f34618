package templates

import "github.com/insyncinternational/funnelflow/pkg/domain"

// Builder assembles a template graph. Step order is assigned from
// insertion order (1-based), which keeps hand-authored templates dense
// by construction.
type Builder struct {
	steps []domain.Step
	conns []domain.Connection
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Step appends a step at the given canvas position with its config.
func (b *Builder) Step(id string, t domain.StepType, title string, x, y float64, config map[string]any) *Builder {
	b.steps = append(b.steps, domain.Step{
		ID:     id,
		Type:   t,
		Title:  title,
		Order:  len(b.steps) + 1,
		X:      x,
		Y:      y,
		Config: domain.NormalizeConfig(config),
	})
	return b
}

// Connect appends a single labeled connection.
func (b *Builder) Connect(from, to, condition string) *Builder {
	b.conns = append(b.conns, domain.Connection{From: from, To: to, Condition: condition})
	return b
}

// Chain appends default connections along a linear sequence of step IDs.
func (b *Builder) Chain(ids ...string) *Builder {
	for i := 0; i+1 < len(ids); i++ {
		b.Connect(ids[i], ids[i+1], "default")
	}
	return b
}

// Build returns the assembled steps and connections.
func (b *Builder) Build() ([]domain.Step, []domain.Connection) {
	return b.steps, b.conns
}
