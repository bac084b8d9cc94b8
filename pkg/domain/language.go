package domain

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Language is a finite set of strings.
//
// The zero value is the empty language. A Language is never mutated after it
// is built, so values can be shared between goroutines. Use a Builder to
// assemble one incrementally.
type Language struct {
	words map[string]struct{}
}

// NewLanguage returns the language containing the given words. Duplicates collapse.
func NewLanguage(words ...string) Language {
	b := NewBuilder(len(words))
	for _, w := range words {
		b.Add(w)
	}
	return b.Language()
}

// Epsilon returns {ε}, the identity of language concatenation.
func Epsilon() Language {
	return NewLanguage("")
}

// Len returns the number of words.
func (l Language) Len() int {
	return len(l.words)
}

// IsEmpty reports whether l is the empty language.
func (l Language) IsEmpty() bool {
	return len(l.words) == 0
}

// Contains reports whether w is a member of l.
func (l Language) Contains(w string) bool {
	_, ok := l.words[w]
	return ok
}

// Each calls fn for every word in unspecified order.
func (l Language) Each(fn func(w string)) {
	for w := range l.words {
		fn(w)
	}
}

// Words returns the members sorted in byte order.
func (l Language) Words() []string {
	out := make([]string, 0, len(l.words))
	for w := range l.words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

// Equal reports whether both languages contain exactly the same words.
func (l Language) Equal(other Language) bool {
	if l.Len() != other.Len() {
		return false
	}
	for w := range l.words {
		if !other.Contains(w) {
			return false
		}
	}
	return true
}

// MaxLen returns the length in symbols of the longest word, or 0 for the empty language.
func (l Language) MaxLen() int {
	longest := 0
	for w := range l.words {
		if n := len([]rune(w)); n > longest {
			longest = n
		}
	}
	return longest
}

// String formats l as a sorted set literal, e.g. {"", "a", "ab"}.
func (l Language) String() string {
	words := l.Words()
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = strconv.Quote(w)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

// MarshalJSON encodes l as a sorted JSON array.
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Words())
}

// UnmarshalJSON decodes a JSON array of strings.
func (l *Language) UnmarshalJSON(data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return err
	}
	*l = NewLanguage(words...)
	return nil
}

// MarshalYAML encodes l as a sorted YAML sequence.
func (l Language) MarshalYAML() (any, error) {
	return l.Words(), nil
}

// UnmarshalYAML decodes a YAML sequence of strings.
func (l *Language) UnmarshalYAML(unmarshal func(any) error) error {
	var words []string
	if err := unmarshal(&words); err != nil {
		return err
	}
	*l = NewLanguage(words...)
	return nil
}

// Builder accumulates words into a Language.
type Builder struct {
	words map[string]struct{}
}

// NewBuilder returns a Builder sized for roughly capacity words.
func NewBuilder(capacity int) *Builder {
	return &Builder{words: make(map[string]struct{}, capacity)}
}

// Add inserts w.
func (b *Builder) Add(w string) {
	b.words[w] = struct{}{}
}

// AddAll inserts every word of l.
func (b *Builder) AddAll(l Language) {
	for w := range l.words {
		b.words[w] = struct{}{}
	}
}

// Len returns the number of distinct words added so far.
func (b *Builder) Len() int {
	return len(b.words)
}

// Language returns the accumulated set. The Builder must not be used afterwards.
func (b *Builder) Language() Language {
	l := Language{words: b.words}
	b.words = nil
	return l
}
