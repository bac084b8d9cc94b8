package graph

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/formlang/pkg/domain"
)

// AutomatonOverlay highlights a run of the automaton over some input.
type AutomatonOverlay struct {
	Visited []int
	Current int
	// Rejected marks the run as having hit an undefined transition or a
	// non-final state.
	Rejected bool
}

// GenerateMermaid produces a Mermaid flowchart (graph LR) of a DFA.
// It applies semantic styling:
// - Initial: an invisible entry point with an arrow into the start state
// - Final: ((Double circle))
// - Default: (Circle)
// Parallel edges between the same pair of states are merged into one edge
// labelled with every symbol, sorted.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(a domain.Automaton, overlay *AutomatonOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString("    start_ [ ] --> " + stateID(a.Initial) + "\n")

	for _, s := range a.States {
		opener, closer := "((", "))"
		if a.IsFinal(s) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%d\"%s\n", stateID(s), opener, s, closer))
	}

	for _, s := range a.States {
		row := a.Transitions[s]
		if len(row) == 0 {
			continue
		}
		labels := make(map[int][]string)
		for sym, next := range row {
			labels[next] = append(labels[next], escapeLabel(sym))
		}
		targets := make([]int, 0, len(labels))
		for next := range labels {
			targets = append(targets, next)
		}
		slices.Sort(targets)
		for _, next := range targets {
			syms := labels[next]
			slices.Sort(syms)
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", stateID(s), strings.Join(syms, ", "), stateID(next)))
		}
	}

	sb.WriteString("    style start_ fill:none,stroke:none\n")

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef rejected fill:#ffcdd2,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		seen := make(map[int]bool)
		for _, s := range overlay.Visited {
			if !seen[s] {
				seen[s] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", stateID(s)))
			}
		}

		class := "current"
		if overlay.Rejected {
			class = "rejected"
		}
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", stateID(overlay.Current), class))
	}

	return sb.String()
}

// Trace runs w through a and returns the overlay of the run.
func Trace(a domain.Automaton, w string) *AutomatonOverlay {
	state := a.Initial
	overlay := &AutomatonOverlay{Visited: []int{state}}
	for _, r := range w {
		next, ok := a.Step(state, domain.SymbolOf(r))
		if !ok {
			overlay.Current = state
			overlay.Rejected = true
			return overlay
		}
		state = next
		overlay.Visited = append(overlay.Visited, state)
	}
	overlay.Current = state
	overlay.Rejected = !a.IsFinal(state)
	return overlay
}

func stateID(s int) string {
	return "q" + strconv.Itoa(s)
}

// escapeLabel keeps Mermaid edge labels parseable.
func escapeLabel(s domain.Symbol) string {
	switch s {
	case "\"":
		return "#quot;"
	case " ":
		return "␣"
	}
	return string(s)
}
