/*
Package formlang is a formal-language algebra and automaton-synthesis library.

It offers pure, composable operations over strings and finite languages, and
builds the deterministic finite automaton (DFA) that recognizes exactly a
given finite language.

# Layers

The algorithms live in small, dependency-free packages:

  - pkg/word: operations on individual strings (power, reverse, affixes, ...).
  - pkg/language: set algebra over finite languages (concatenation, union,
    intersection, difference, power, reversal, bounded closures).
  - pkg/automaton: trie-based DFA synthesis.

The Engine in this package is a stateless service object over those packages.
It adds what a hosting application usually wants around them: context
checks, a result-size budget, an optional concurrency-safe result cache,
structured logging and lifecycle hooks for metrics. The CLI, the HTTP API and
the MCP server are all thin callers of the Engine.

# Usage

	eng, err := formlang.New(formlang.WithMaxPower(3))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	l := domain.NewLanguage("a", "b")

	sq, _ := eng.Power(ctx, l, 2)
	fmt.Println(sq) // {"aa", "ab", "ba", "bb"}

	dfa, _ := eng.Synthesize(ctx, []string{"ab", "a", "b"})
	fmt.Println(dfa.Finals) // [1 2 3]

# Closures

Kleene and positive closures are truncated at an explicit maximum exponent.
The default (domain.DefaultMaxPower, 3) is exposed through Engine.MaxPower and
can be changed with WithMaxPower; every closure method still takes the
exponent as an argument.
*/
package formlang
