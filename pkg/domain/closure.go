package domain

// ClosureKind distinguishes Kleene (i ≥ 0) from positive (i ≥ 1) closures.
type ClosureKind string

const (
	ClosureKleene   ClosureKind = "kleene"
	ClosurePositive ClosureKind = "positive"
)

// Closure is a closure truncated at MaxPower: the union of the powers
// X^i for i in [0, MaxPower] (Kleene) or [1, MaxPower] (positive).
//
// The true closure of a language containing a non-empty word is infinite, so
// Words is an approximation. Exact is true only when the truncation loses
// nothing, that is when every non-empty power contributes no new word.
type Closure struct {
	Kind     ClosureKind `json:"kind" yaml:"kind"`
	MaxPower int         `json:"max_power" yaml:"max_power"`
	Words    Language    `json:"words" yaml:"words"`
	Exact    bool        `json:"exact" yaml:"exact"`
}

// Truncated reports whether words of higher powers were left out.
func (c Closure) Truncated() bool {
	return !c.Exact
}
