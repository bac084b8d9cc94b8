package automaton

import (
	"github.com/aretw0/formlang/pkg/domain"
)

// Synthesize builds the trie automaton for words, consumed in slice order.
//
// Duplicate words add no states. An empty or nil slice yields the single,
// non-accepting state 0 with an empty alphabet and no transitions; the empty
// word makes state 0 final.
func Synthesize(words []string) domain.Automaton {
	t := newTrie()
	for _, w := range words {
		t.insert(w)
	}
	return t.automaton()
}

// SynthesizeLanguage builds the automaton for l, enumerating its words in
// sorted order so that the numbering is reproducible.
func SynthesizeLanguage(l domain.Language) domain.Automaton {
	return Synthesize(l.Words())
}
