package automaton_test

import (
	"testing"

	"github.com/aretw0/formlang/pkg/automaton"
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_TrieNumbering(t *testing.T) {
	a := automaton.Synthesize([]string{"ab", "a", "b"})

	assert.Equal(t, []int{0, 1, 2, 3}, a.States)
	assert.Equal(t, []domain.Symbol{"a", "b"}, a.Alphabet)
	assert.Equal(t, 0, a.Initial)
	assert.Equal(t, []int{1, 2, 3}, a.Finals)
	assert.Equal(t, map[int]map[domain.Symbol]int{
		0: {"a": 1, "b": 3},
		1: {"b": 2},
	}, a.Transitions)
}

func TestSynthesize_OrderOnlyAffectsNumbering(t *testing.T) {
	forward := automaton.Synthesize([]string{"ab", "a", "b"})
	backward := automaton.Synthesize([]string{"b", "a", "ab"})

	assert.Equal(t, map[int]map[domain.Symbol]int{
		0: {"b": 1, "a": 2},
		2: {"b": 3},
	}, backward.Transitions)

	for _, w := range []string{"", "a", "b", "ab", "ba", "aa", "bb", "abb"} {
		assert.Equal(t, forward.Accepts(w), backward.Accepts(w), "w=%q", w)
	}
}

func TestSynthesize_Empty(t *testing.T) {
	for _, words := range [][]string{nil, {}} {
		a := automaton.Synthesize(words)
		assert.Equal(t, []int{0}, a.States)
		assert.Empty(t, a.Alphabet)
		assert.NotNil(t, a.Alphabet)
		assert.Equal(t, 0, a.Initial)
		assert.Empty(t, a.Finals)
		assert.NotNil(t, a.Finals)
		assert.Empty(t, a.Transitions)
		assert.False(t, a.Accepts(""))
	}
}

func TestSynthesize_EmptyWord(t *testing.T) {
	a := automaton.Synthesize([]string{""})
	assert.Equal(t, []int{0}, a.States)
	assert.Equal(t, []int{0}, a.Finals)
	assert.Empty(t, a.Transitions)
	assert.True(t, a.Accepts(""))
	assert.False(t, a.Accepts("a"))
}

func TestSynthesize_Duplicates(t *testing.T) {
	a := automaton.Synthesize([]string{"ab", "ab", "a", "ab"})
	assert.Equal(t, []int{0, 1, 2}, a.States)
	assert.Equal(t, []int{1, 2}, a.Finals)
}

func TestSynthesize_MultibyteSymbols(t *testing.T) {
	a := automaton.Synthesize([]string{"ñu", "ña"})
	assert.Equal(t, []domain.Symbol{"a", "u", "ñ"}, a.Alphabet)
	assert.True(t, a.Accepts("ñu"))
	assert.True(t, a.Accepts("ña"))
	assert.False(t, a.Accepts("ñ"))
	assert.Equal(t, 2, a.Depth())
}

// enumerate returns every string over alphabet of length at most n.
func enumerate(alphabet []rune, n int) []string {
	out := []string{""}
	frontier := []string{""}
	for range n {
		var next []string
		for _, p := range frontier {
			for _, r := range alphabet {
				next = append(next, p+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func TestSynthesize_AcceptsExactlyTheLanguage(t *testing.T) {
	languages := [][]string{
		{"a"},
		{"", "a", "aa"},
		{"abc", "ab", "b", "cab"},
		{"ba", "ab", "ba", "bb", "c"},
		{"", "cc", "abca"},
	}
	alphabet := []rune{'a', 'b', 'c'}

	for _, words := range languages {
		l := domain.NewLanguage(words...)
		a := automaton.Synthesize(words)

		require.Equal(t, l.MaxLen(), a.Depth(), "depth equals the longest word for %v", l)

		for _, w := range enumerate(alphabet, l.MaxLen()) {
			assert.Equal(t, l.Contains(w), a.Accepts(w), "L=%v w=%q", l, w)
		}
	}
}

func TestSynthesize_IsDeterministicTree(t *testing.T) {
	a := automaton.Synthesize([]string{"abc", "abd", "b", "bd", "cab"})

	// Every state but the root has exactly one incoming edge.
	incoming := make(map[int]int)
	for _, row := range a.Transitions {
		for _, next := range row {
			incoming[next]++
		}
	}
	assert.Zero(t, incoming[0])
	for _, s := range a.States[1:] {
		assert.Equal(t, 1, incoming[s], "state %d", s)
	}
	assert.Equal(t, len(a.States)-1, a.NumTransitions())
}

func TestSynthesizeLanguage_SortedOrder(t *testing.T) {
	a := automaton.SynthesizeLanguage(domain.NewLanguage("b", "ab", "a"))
	b := automaton.Synthesize([]string{"a", "ab", "b"})
	assert.Equal(t, b, a)
}
