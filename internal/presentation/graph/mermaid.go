// Package graph renders a funnel as a Mermaid flowchart for sharing and
// docs embedding.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/insyncinternational/funnelflow/pkg/domain"
)

// Overlay carries dynamic walk state to highlight on the diagram.
type Overlay struct {
	VisitedSteps []string
	CurrentStep  string
}

// GenerateMermaid produces Mermaid flowchart syntax from a funnel.
// Semantic shapes:
// - Media (video): [[Subroutine]]
// - Input (question, quiz, survey, form): [/Parallelogram/]
// - Redirect: ((Circle))
// - Default: [Rectangle]
// Connections whose endpoints no longer resolve are left out, matching
// what the canvas renders. The end sentinel draws as a terminal circle.
func GenerateMermaid(funnel *domain.Funnel, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	steps := make([]domain.Step, len(funnel.Steps))
	copy(steps, funnel.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })

	for _, step := range steps {
		safeID := sanitizeMermaidID(step.ID)

		opener, closer := "[", "]"
		switch step.Type {
		case domain.StepVideo:
			opener, closer = "[[", "]]"
		case domain.StepQuestion, domain.StepQuiz, domain.StepSurvey, domain.StepForm:
			opener, closer = "[/", "/]"
		case domain.StepRedirect:
			opener, closer = "((", "))"
		}

		label := step.Title
		if label == "" {
			label = step.ID
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeMermaidLabel(label), closer))
	}

	needEnd := false
	for _, c := range funnel.Connections {
		if funnel.Step(c.From) == nil {
			continue
		}
		if c.To == domain.EndStepID {
			needEnd = true
		} else if funnel.Step(c.To) == nil {
			continue
		}

		arrow := "-->"
		if c.Condition != "" && c.Condition != "default" {
			arrow = fmt.Sprintf("-- \"%s\" -->", escapeMermaidLabel(c.Condition))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(c.From), arrow, sanitizeMermaidID(c.To)))
	}

	if needEnd {
		sb.WriteString("    end_((\"End\"))\n")
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedSteps {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
		if overlay.CurrentStep != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentStep)))
		}
	}

	return sb.String()
}

// sanitizeMermaidID makes a step ID safe as a Mermaid node identifier.
// "end" is a reserved Mermaid keyword, hence the trailing underscore.
func sanitizeMermaidID(id string) string {
	if id == domain.EndStepID {
		return "end_"
	}
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
