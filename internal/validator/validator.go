package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/formlang/pkg/domain"
)

// ValidateAutomaton checks a DFA read from outside (a file, a cache entry)
// for dangling references and unreachable states, crawling from the initial state.
// With tree set, it also requires every non-initial state to have exactly one
// incoming transition and the initial state none, as synthesized tries do.
func ValidateAutomaton(a domain.Automaton, tree bool) error {
	var errors []string

	states := make(map[int]bool, len(a.States))
	for _, s := range a.States {
		if states[s] {
			errors = append(errors, fmt.Sprintf("Duplicate state: %d", s))
		}
		states[s] = true
	}
	alphabet := make(map[domain.Symbol]bool, len(a.Alphabet))
	for _, sym := range a.Alphabet {
		alphabet[sym] = true
	}

	if !states[a.Initial] {
		errors = append(errors, fmt.Sprintf("Initial state %d is not a state", a.Initial))
	}
	for _, f := range a.Finals {
		if !states[f] {
			errors = append(errors, fmt.Sprintf("Final state %d is not a state", f))
		}
	}

	incoming := make(map[int]int)
	for _, from := range sortedKeys(a.Transitions) {
		if !states[from] {
			errors = append(errors, fmt.Sprintf("Transitions leave unknown state %d", from))
		}
		row := a.Transitions[from]
		for _, sym := range sortedKeys(row) {
			to := row[sym]
			if !alphabet[sym] {
				errors = append(errors, fmt.Sprintf("Symbol %q of δ(%d) is not in the alphabet", sym, from))
			}
			if !states[to] {
				errors = append(errors, fmt.Sprintf("Dead link: δ(%d, %q) = %d", from, sym, to))
			}
			incoming[to]++
		}
	}

	// Crawler
	visited := make(map[int]bool)
	queue := []int{a.Initial}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, sym := range sortedKeys(a.Transitions[current]) {
			if next := a.Transitions[current][sym]; !visited[next] {
				queue = append(queue, next)
			}
		}
	}
	for _, s := range a.States {
		if !visited[s] {
			errors = append(errors, fmt.Sprintf("Unreachable state: %d", s))
		}
	}

	if tree {
		for _, s := range a.States {
			want := 1
			if s == a.Initial {
				want = 0
			}
			if incoming[s] != want {
				errors = append(errors, fmt.Sprintf("State %d has %d incoming transitions, want %d", s, incoming[s], want))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

func sortedKeys[K int | domain.Symbol, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
