package domain

// Automaton is a deterministic finite automaton description.
//
// Transitions is a partial function: a missing (state, symbol) entry means
// the input is rejected. The initial state is always InitialState.
type Automaton struct {
	States      []int                  `json:"states" yaml:"states"`
	Alphabet    []Symbol               `json:"alphabet" yaml:"alphabet"`
	Initial     int                    `json:"initial" yaml:"initial"`
	Finals      []int                  `json:"finals" yaml:"finals"`
	Transitions map[int]map[Symbol]int `json:"transitions" yaml:"transitions"`
}

// Step follows the transition for s out of state.
// The boolean is false when the transition is undefined.
func (a Automaton) Step(state int, s Symbol) (int, bool) {
	row, ok := a.Transitions[state]
	if !ok {
		return 0, false
	}
	next, ok := row[s]
	return next, ok
}

// IsFinal reports whether state is accepting.
func (a Automaton) IsFinal(state int) bool {
	for _, f := range a.Finals {
		if f == state {
			return true
		}
	}
	return false
}

// Accepts runs the automaton over w from the initial state.
func (a Automaton) Accepts(w string) bool {
	state := a.Initial
	for _, r := range w {
		next, ok := a.Step(state, SymbolOf(r))
		if !ok {
			return false
		}
		state = next
	}
	return a.IsFinal(state)
}

// NumTransitions returns the number of defined (state, symbol) entries.
func (a Automaton) NumTransitions() int {
	n := 0
	for _, row := range a.Transitions {
		n += len(row)
	}
	return n
}

// Depth returns the length of the longest path from the initial state.
// The automaton must be acyclic; for a trie this is the length of the
// longest accepted word.
func (a Automaton) Depth() int {
	var walk func(state int) int
	walk = func(state int) int {
		deepest := 0
		for _, next := range a.Transitions[state] {
			if d := walk(next) + 1; d > deepest {
				deepest = d
			}
		}
		return deepest
	}
	return walk(a.Initial)
}
