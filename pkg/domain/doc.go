/*
Package domain contains the core value types shared by every formlang package.

The package is pure: no I/O, no logging and no process-wide state. Every value
is constructed fresh per operation and may be shared freely between goroutines
once built.

# Key Entities

  - Symbol: one Unicode code point of a string.
  - Language: a finite set of strings. Enumeration order is not significant.
  - Closure: a bounded (truncated) Kleene or positive closure of a language.
  - Automaton: the DFA produced by trie synthesis (states, alphabet, initial
    state, final states and a partial transition table).
*/
package domain
