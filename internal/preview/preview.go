// Package preview walks a funnel the way a visitor would see it: start
// at the first step in sequence order, follow connections (and question
// option routing) on each answer, stop at the end terminal.
package preview

import (
	"sort"

	"github.com/insyncinternational/funnelflow/pkg/domain"
)

// Walker steps through a funnel graph one answer at a time. It holds an
// immutable snapshot; editing the funnel requires a fresh walker.
type Walker struct {
	funnel  *domain.Funnel
	current string
	done    bool
}

// New builds a walker positioned at the funnel's first step (lowest
// order). A funnel with no steps is immediately done.
func New(funnel *domain.Funnel) *Walker {
	w := &Walker{funnel: funnel.Clone()}
	if len(w.funnel.Steps) == 0 {
		w.done = true
		return w
	}
	steps := make([]domain.Step, len(w.funnel.Steps))
	copy(steps, w.funnel.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })
	w.current = steps[0].ID
	return w
}

// Current returns the step the visitor is on, or nil once the walk has
// reached the end.
func (w *Walker) Current() *domain.Step {
	if w.done {
		return nil
	}
	return w.funnel.Step(w.current)
}

// Done reports whether the walk has terminated.
func (w *Walker) Done() bool { return w.done }

// Advance moves to the next step given the visitor's answer. Routing
// precedence: a question option whose value matches the answer and
// carries an explicit next target, then a connection whose condition
// matches the answer, then the default connection, then the first
// outgoing connection. No route terminates the walk, as does reaching
// the end sentinel or a target that no longer exists.
func (w *Walker) Advance(answer string) {
	if w.done {
		return
	}
	next, ok := w.route(answer)
	if !ok || next == domain.EndStepID || !w.funnel.HasStep(next) {
		w.done = true
		w.current = ""
		return
	}
	w.current = next
}

func (w *Walker) route(answer string) (string, bool) {
	step := w.funnel.Step(w.current)
	if step == nil {
		return "", false
	}
	if next, ok := optionTarget(step, answer); ok {
		return next, true
	}

	var first, fallback string
	haveFirst, haveFallback := false, false
	for _, c := range w.funnel.Connections {
		if c.From != w.current {
			continue
		}
		if c.Condition == answer && answer != "" {
			return c.To, true
		}
		if c.Condition == "default" && !haveFallback {
			fallback = c.To
			haveFallback = true
		}
		if !haveFirst {
			first = c.To
			haveFirst = true
		}
	}
	if haveFallback {
		return fallback, true
	}
	if haveFirst {
		return first, true
	}
	return "", false
}

// optionTarget inspects a question step's configured options for one
// matching the answer with an explicit next target. Options are keyed
// by their label (the text the visitor clicks); a "value" key is
// honored as an alias when present.
func optionTarget(step *domain.Step, answer string) (string, bool) {
	raw, ok := step.Config["options"]
	if !ok {
		return "", false
	}
	options, ok := raw.([]any)
	if !ok {
		return "", false
	}
	for _, o := range options {
		opt, ok := o.(map[string]any)
		if !ok {
			continue
		}
		label, _ := opt["label"].(string)
		value, _ := opt["value"].(string)
		if answer != label && (value == "" || answer != value) {
			continue
		}
		if next, ok := opt["next"].(string); ok && next != "" {
			return next, true
		}
	}
	return "", false
}

// Path replays a full answer sequence from the start and returns the
// visited step IDs in order. Handy for asserting template flows.
func Path(funnel *domain.Funnel, answers ...string) []string {
	w := New(funnel)
	visited := []string{}
	for i := 0; !w.Done(); i++ {
		step := w.Current()
		if step == nil {
			break
		}
		visited = append(visited, step.ID)
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		w.Advance(answer)
		if len(visited) > len(funnel.Steps)+len(funnel.Connections) {
			// cycle guard
			break
		}
	}
	return visited
}
