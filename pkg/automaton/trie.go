package automaton

import (
	"github.com/aretw0/formlang/pkg/domain"
)

// node is one arena slot. Its id is its index in trie.nodes.
type node struct {
	children  map[domain.Symbol]int
	accepting bool
}

// trie is an arena of nodes linked by id.
type trie struct {
	nodes    []node
	alphabet domain.SymbolSet
}

func newTrie() *trie {
	t := &trie{alphabet: make(domain.SymbolSet)}
	t.alloc()
	return t
}

// alloc appends a fresh node and returns its id.
func (t *trie) alloc() int {
	t.nodes = append(t.nodes, node{})
	return len(t.nodes) - 1
}

// child returns the id of the child of parent for s, creating it when absent.
func (t *trie) child(parent int, s domain.Symbol) int {
	if next, ok := t.nodes[parent].children[s]; ok {
		return next
	}
	id := t.alloc()
	// alloc may have moved the arena; index again.
	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[domain.Symbol]int)
	}
	p.children[s] = id
	return id
}

// insert walks w from the root, extending the trie as needed, and marks the
// node reached as accepting.
func (t *trie) insert(w string) {
	cur := domain.InitialState
	for _, r := range w {
		s := domain.SymbolOf(r)
		t.alphabet[s] = struct{}{}
		cur = t.child(cur, s)
	}
	t.nodes[cur].accepting = true
}

// automaton collects the arena into the output description.
func (t *trie) automaton() domain.Automaton {
	a := domain.Automaton{
		States:      make([]int, len(t.nodes)),
		Alphabet:    t.alphabet.Sorted(),
		Initial:     domain.InitialState,
		Finals:      []int{},
		Transitions: make(map[int]map[domain.Symbol]int),
	}
	for id, n := range t.nodes {
		a.States[id] = id
		if n.accepting {
			a.Finals = append(a.Finals, id)
		}
		if len(n.children) == 0 {
			continue
		}
		row := make(map[domain.Symbol]int, len(n.children))
		for s, next := range n.children {
			row[s] = next
		}
		a.Transitions[id] = row
	}
	return a
}
