package formlang

import (
	"context"

	"github.com/aretw0/formlang/pkg/automaton"
	"github.com/aretw0/formlang/pkg/domain"
)

// OpSynthesize names automaton synthesis in hooks, metrics and cache keys.
const OpSynthesize = "synthesize"

// Synthesize builds the trie DFA accepting exactly words. State ids follow
// the order of words; see automaton.Synthesize.
func (e *Engine) Synthesize(ctx context.Context, words []string) (domain.Automaton, error) {
	if words == nil {
		words = []string{}
	}
	return cached(ctx, e, OpSynthesize, words, func() (domain.Automaton, error) {
		return automaton.Synthesize(words), nil
	})
}
