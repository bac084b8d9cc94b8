package formlang

import (
	"context"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/aretw0/formlang/pkg/language"
	"github.com/aretw0/formlang/pkg/word"
)

// Pair holds the results of applying one operation to the strings w and x.
type Pair[T any] struct {
	W T `json:"w" yaml:"w"`
	X T `json:"x" yaml:"x"`
}

// Affixes lists the prefixes and suffixes of one string.
type Affixes struct {
	Prefixes []string `json:"prefixes" yaml:"prefixes"`
	Suffixes []string `json:"suffixes" yaml:"suffixes"`
}

// Operation names, used for hooks, metrics and cache keys.
const (
	OpStringConcat          = "string_concat"
	OpStringPower           = "string_power"
	OpStringReverse         = "string_reverse"
	OpStringLength          = "string_length"
	OpStringEqual           = "string_equal"
	OpStringAffixes         = "string_affixes"
	OpStringAlphabetUnion   = "string_alphabet_union"
	OpStringKleeneClosure   = "string_kleene_closure"
	OpStringPositiveClosure = "string_positive_closure"
)

// Concat returns w∘x.
func (e *Engine) Concat(ctx context.Context, w, x string) (string, error) {
	return run(ctx, e, OpStringConcat, func() (string, error) {
		return word.Concat(w, x), nil
	})
}

// PowerPair returns w^n and x^m.
func (e *Engine) PowerPair(ctx context.Context, w string, n int, x string, m int) (Pair[string], error) {
	return run(ctx, e, OpStringPower, func() (Pair[string], error) {
		if err := domain.CheckExponent("n", n); err != nil {
			return Pair[string]{}, err
		}
		if err := domain.CheckExponent("m", m); err != nil {
			return Pair[string]{}, err
		}
		if err := e.checkLength(OpStringPower, word.Len(w), n); err != nil {
			return Pair[string]{}, err
		}
		if err := e.checkLength(OpStringPower, word.Len(x), m); err != nil {
			return Pair[string]{}, err
		}
		wn, err := word.Power(w, n)
		if err != nil {
			return Pair[string]{}, err
		}
		xm, err := word.Power(x, m)
		if err != nil {
			return Pair[string]{}, err
		}
		return Pair[string]{W: wn, X: xm}, nil
	})
}

// ReversePair returns the reversals of w and x.
func (e *Engine) ReversePair(ctx context.Context, w, x string) (Pair[string], error) {
	return run(ctx, e, OpStringReverse, func() (Pair[string], error) {
		return Pair[string]{W: word.Reverse(w), X: word.Reverse(x)}, nil
	})
}

// LenPair returns |w| and |x| in symbols.
func (e *Engine) LenPair(ctx context.Context, w, x string) (Pair[int], error) {
	return run(ctx, e, OpStringLength, func() (Pair[int], error) {
		return Pair[int]{W: word.Len(w), X: word.Len(x)}, nil
	})
}

// Equal reports whether w and x are the same string.
func (e *Engine) Equal(ctx context.Context, w, x string) (bool, error) {
	return run(ctx, e, OpStringEqual, func() (bool, error) {
		return word.Equal(w, x), nil
	})
}

// AffixesPair returns the prefixes and suffixes of w and of x.
func (e *Engine) AffixesPair(ctx context.Context, w, x string) (Pair[Affixes], error) {
	return run(ctx, e, OpStringAffixes, func() (Pair[Affixes], error) {
		return Pair[Affixes]{W: affixes(w), X: affixes(x)}, nil
	})
}

func affixes(s string) Affixes {
	p, q := word.PrefixesAndSuffixes(s)
	return Affixes{Prefixes: p, Suffixes: q}
}

// AlphabetUnion returns the sorted set of symbols occurring in w or x.
// It unions alphabets, not languages; see word.AlphabetUnion.
func (e *Engine) AlphabetUnion(ctx context.Context, w, x string) ([]domain.Symbol, error) {
	return run(ctx, e, OpStringAlphabetUnion, func() ([]domain.Symbol, error) {
		return word.AlphabetUnion(w, x), nil
	})
}

// ClosurePair returns {s^i | 0 ≤ i ≤ maxPower} for s = w and s = x.
func (e *Engine) ClosurePair(ctx context.Context, w, x string, maxPower int) (Pair[domain.Closure], error) {
	return run(ctx, e, OpStringKleeneClosure, func() (Pair[domain.Closure], error) {
		return e.closurePair(OpStringKleeneClosure, w, x, domain.ClosureKleene, maxPower)
	})
}

// PositiveClosurePair returns {s^i | 1 ≤ i ≤ maxPower} for s = w and s = x.
func (e *Engine) PositiveClosurePair(ctx context.Context, w, x string, maxPower int) (Pair[domain.Closure], error) {
	return run(ctx, e, OpStringPositiveClosure, func() (Pair[domain.Closure], error) {
		return e.closurePair(OpStringPositiveClosure, w, x, domain.ClosurePositive, maxPower)
	})
}

func (e *Engine) closurePair(op, w, x string, kind domain.ClosureKind, maxPower int) (Pair[domain.Closure], error) {
	if err := domain.CheckExponent("maxPower", maxPower); err != nil {
		return Pair[domain.Closure]{}, err
	}
	from := 0
	if kind == domain.ClosurePositive {
		from = 1
	}
	for _, s := range []string{w, x} {
		if err := e.checkLength(op, word.Len(s), maxPower); err != nil {
			return Pair[domain.Closure]{}, err
		}
		if s != "" && e.maxWords > 0 {
			if err := e.checkBudget(op, language.ClosureSize(domain.NewLanguage(s), from, maxPower, e.maxWords+1)); err != nil {
				return Pair[domain.Closure]{}, err
			}
		}
	}
	cw, err := stringClosure(w, kind, maxPower)
	if err != nil {
		return Pair[domain.Closure]{}, err
	}
	cx, err := stringClosure(x, kind, maxPower)
	if err != nil {
		return Pair[domain.Closure]{}, err
	}
	return Pair[domain.Closure]{W: cw, X: cx}, nil
}

func stringClosure(s string, kind domain.ClosureKind, maxPower int) (domain.Closure, error) {
	closure := word.BoundedClosure
	if kind == domain.ClosurePositive {
		closure = word.BoundedPositiveClosure
	}
	words, err := closure(s, maxPower)
	if err != nil {
		return domain.Closure{}, err
	}
	return domain.Closure{
		Kind:     kind,
		MaxPower: maxPower,
		Words:    words,
		Exact:    s == "" && words.Len() > 0,
	}, nil
}
