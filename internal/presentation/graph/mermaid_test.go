package graph_test

import (
	"strings"
	"testing"

	"github.com/insyncinternational/funnelflow/internal/presentation/graph"
	"github.com/insyncinternational/funnelflow/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		funnel   *domain.Funnel
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Step Shapes",
			funnel: &domain.Funnel{
				Steps: []domain.Step{
					{ID: "v1", Type: domain.StepVideo, Title: "Intro", Order: 1},
					{ID: "q1", Type: domain.StepQuestion, Title: "Interested?", Order: 2},
					{ID: "r1", Type: domain.StepRedirect, Title: "Go", Order: 3},
					{ID: "t1", Type: domain.StepTimer, Title: "Hurry", Order: 4},
				},
			},
			contains: []string{
				`v1[["Intro"]]`,
				`q1[/"Interested?"/]`,
				`r1(("Go"))`,
				`t1["Hurry"]`,
			},
		},
		{
			name: "Condition Labels",
			funnel: &domain.Funnel{
				Steps: []domain.Step{
					{ID: "q", Type: domain.StepQuestion, Title: "Q", Order: 1},
					{ID: "a", Type: domain.StepForm, Title: "A", Order: 2},
					{ID: "b", Type: domain.StepForm, Title: "B", Order: 3},
				},
				Connections: []domain.Connection{
					{From: "q", To: "a", Condition: "yes"},
					{From: "q", To: "b", Condition: "default"},
				},
			},
			contains: []string{
				`q -- "yes" --> a`,
				`q --> b`,
			},
		},
		{
			name: "Dangling Connections Skipped",
			funnel: &domain.Funnel{
				Steps: []domain.Step{
					{ID: "a", Type: domain.StepVideo, Title: "A", Order: 1},
				},
				Connections: []domain.Connection{
					{From: "a", To: "deleted", Condition: "default"},
					{From: "ghost", To: "a", Condition: "default"},
				},
			},
			excludes: []string{"deleted", "ghost"},
		},
		{
			name: "End Sentinel Terminal",
			funnel: &domain.Funnel{
				Steps: []domain.Step{
					{ID: "last", Type: domain.StepForm, Title: "Last", Order: 1},
				},
				Connections: []domain.Connection{
					{From: "last", To: domain.EndStepID, Condition: "default"},
				},
			},
			contains: []string{
				`last --> end_`,
				`end_(("End"))`,
			},
		},
		{
			name: "ID Sanitization",
			funnel: &domain.Funnel{
				Steps: []domain.Step{
					{ID: "step-1700000000000", Type: domain.StepVideo, Title: "V", Order: 1},
				},
			},
			contains: []string{`step_1700000000000[["V"]]`},
		},
		{
			name: "Label Escaping",
			funnel: &domain.Funnel{
				Steps: []domain.Step{
					{ID: "a", Type: domain.StepTimer, Title: `Say "hi"`, Order: 1},
				},
			},
			contains: []string{`a["Say 'hi'"]`},
		},
		{
			name: "Overlay Highlights",
			funnel: &domain.Funnel{
				Steps: []domain.Step{
					{ID: "a", Type: domain.StepVideo, Title: "A", Order: 1},
					{ID: "b", Type: domain.StepForm, Title: "B", Order: 2},
				},
			},
			overlay: &graph.Overlay{VisitedSteps: []string{"a", "a"}, CurrentStep: "b"},
			contains: []string{
				"class a visited;",
				"class b current;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.funnel.Normalize()
			got := graph.GenerateMermaid(tt.funnel, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, not := range tt.excludes {
				if strings.Contains(got, not) {
					t.Errorf("GenerateMermaid() = \n%v\nUnwanted substring: %v", got, not)
				}
			}
		})
	}
}

func TestOverlayVisitedDeduplicated(t *testing.T) {
	f := &domain.Funnel{Steps: []domain.Step{{ID: "a", Type: domain.StepVideo, Title: "A", Order: 1}}}
	f.Normalize()
	got := graph.GenerateMermaid(f, &graph.Overlay{VisitedSteps: []string{"a", "a", "a"}})
	if strings.Count(got, "class a visited;") != 1 {
		t.Errorf("visited style emitted more than once:\n%v", got)
	}
}
