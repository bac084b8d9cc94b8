package domain

// DefaultMaxPower is the truncation depth applied by callers that do not pick
// one explicitly. Core closure functions never fall back to it on their own.
const DefaultMaxPower = 3

// InitialState is the id of the trie root, which is always the start state.
const InitialState = 0

// Field names used by the JSON, YAML and mapstructure encodings of results.
const (
	KeyStates      = "states"
	KeyAlphabet    = "alphabet"
	KeyInitial     = "initial"
	KeyFinals      = "finals"
	KeyTransitions = "transitions"
)
