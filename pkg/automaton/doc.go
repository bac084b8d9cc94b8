/*
Package automaton synthesizes a deterministic finite automaton that accepts
exactly a given finite language.

The construction is a prefix trie: one state per distinct prefix, the root
(state 0) standing for the empty prefix. State ids are handed out in creation
order while the words are consumed in the order the caller supplies, so the
same input order always yields the same numbering. The order never affects
which strings are accepted.

The result is acyclic, deterministic by construction and not minimized:
language-equivalent branches of the trie stay separate states.
*/
package automaton
