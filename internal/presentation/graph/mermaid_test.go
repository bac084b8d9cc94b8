package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/formlang/internal/presentation/graph"
	"github.com/aretw0/formlang/pkg/automaton"
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		contains []string
		excludes []string
	}{
		{
			name:  "Trie Shapes",
			words: []string{"ab", "a", "b"},
			contains: []string{
				"graph LR\n",
				`start_ [ ] --> q0`,
				`q0(("0"))`,
				`q1((("1")))`,
				`q2((("2")))`,
				`q3((("3")))`,
				`q0 -- "a" --> q1`,
				`q0 -- "b" --> q3`,
				`q1 -- "b" --> q2`,
			},
		},
		{
			name:     "Empty Language",
			words:    nil,
			contains: []string{`q0(("0"))`},
			excludes: []string{"-- \""},
		},
		{
			name:     "Accepting Root",
			words:    []string{""},
			contains: []string{`q0((("0")))`},
		},
		{
			name:     "Label Escaping",
			words:    []string{`"`, " "},
			contains: []string{`-- "#quot;" -->`, `-- "␣" -->`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(automaton.Synthesize(tt.words), nil)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, bad := range tt.excludes {
				assert.NotContains(t, got, bad)
			}
		})
	}
}

func TestGenerateMermaid_MergesParallelEdges(t *testing.T) {
	a := domain.Automaton{
		States:      []int{0, 1},
		Alphabet:    []domain.Symbol{"a", "b"},
		Finals:      []int{1},
		Transitions: map[int]map[domain.Symbol]int{0: {"b": 1, "a": 1}},
	}
	got := graph.GenerateMermaid(a, nil)
	assert.Contains(t, got, `q0 -- "a, b" --> q1`)
}

func TestTrace(t *testing.T) {
	a := automaton.Synthesize([]string{"ab", "a", "b"})

	accepted := graph.Trace(a, "ab")
	assert.Equal(t, []int{0, 1, 2}, accepted.Visited)
	assert.Equal(t, 2, accepted.Current)
	assert.False(t, accepted.Rejected)

	stuck := graph.Trace(a, "ba")
	assert.Equal(t, []int{0, 3}, stuck.Visited)
	assert.Equal(t, 3, stuck.Current)
	assert.True(t, stuck.Rejected)

	nonFinal := graph.Trace(a, "")
	assert.True(t, nonFinal.Rejected)

	out := graph.GenerateMermaid(a, stuck)
	assert.Contains(t, out, "class q0 visited;")
	assert.Contains(t, out, "class q3 rejected;")
}
