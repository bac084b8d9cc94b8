package domain

import (
	"slices"
	"unicode/utf8"
)

// Symbol is a single Unicode code point, kept as a string so that it can be
// used directly as a JSON object key and compared with the natural ordering.
type Symbol string

// SymbolOf wraps a rune.
func SymbolOf(r rune) Symbol {
	return Symbol(string(r))
}

// Rune returns the code point held by s, or utf8.RuneError when s is not a
// single code point.
func (s Symbol) Rune() rune {
	r, size := utf8.DecodeRuneInString(string(s))
	if size != len(s) {
		return utf8.RuneError
	}
	return r
}

// SymbolSet is an unordered set of symbols.
type SymbolSet map[Symbol]struct{}

// AddString adds every code point of w.
func (set SymbolSet) AddString(w string) {
	for _, r := range w {
		set[SymbolOf(r)] = struct{}{}
	}
}

// Sorted returns the members in ascending code point order.
func (set SymbolSet) Sorted() []Symbol {
	out := make([]Symbol, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	// Byte order of UTF-8 encodings equals code point order.
	slices.Sort(out)
	return out
}
