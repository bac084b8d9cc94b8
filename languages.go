package formlang

import (
	"context"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/aretw0/formlang/pkg/language"
)

// Operation names of the language algebra.
const (
	OpLanguageConcat          = "language_concat"
	OpLanguageUnion           = "language_union"
	OpLanguageIntersect       = "language_intersect"
	OpLanguageDifference      = "language_difference"
	OpLanguagePower           = "language_power"
	OpLanguageReverse         = "language_reverse"
	OpLanguageKleeneClosure   = "language_kleene_closure"
	OpLanguagePositiveClosure = "language_positive_closure"
)

// Difference holds both one-sided differences of two languages.
type Difference struct {
	LeftOnly  domain.Language `json:"l1_minus_l2" yaml:"l1_minus_l2"`
	RightOnly domain.Language `json:"l2_minus_l1" yaml:"l2_minus_l1"`
}

// LanguageConcat returns {u∘v | u ∈ l1, v ∈ l2}.
func (e *Engine) LanguageConcat(ctx context.Context, l1, l2 domain.Language) (domain.Language, error) {
	return run(ctx, e, OpLanguageConcat, func() (domain.Language, error) {
		if err := e.checkBudget(OpLanguageConcat, l1.Len()*l2.Len()); err != nil {
			return domain.Language{}, err
		}
		return language.Concat(l1, l2), nil
	})
}

// Union returns l1 ∪ l2.
func (e *Engine) Union(ctx context.Context, l1, l2 domain.Language) (domain.Language, error) {
	return run(ctx, e, OpLanguageUnion, func() (domain.Language, error) {
		return language.Union(l1, l2), nil
	})
}

// Intersect returns l1 ∩ l2.
func (e *Engine) Intersect(ctx context.Context, l1, l2 domain.Language) (domain.Language, error) {
	return run(ctx, e, OpLanguageIntersect, func() (domain.Language, error) {
		return language.Intersect(l1, l2), nil
	})
}

// Difference returns l1−l2 and l2−l1.
func (e *Engine) Difference(ctx context.Context, l1, l2 domain.Language) (Difference, error) {
	return run(ctx, e, OpLanguageDifference, func() (Difference, error) {
		left, right := language.Difference(l1, l2)
		return Difference{LeftOnly: left, RightOnly: right}, nil
	})
}

// LanguageReverse returns the reversal of every word of l.
func (e *Engine) LanguageReverse(ctx context.Context, l domain.Language) (domain.Language, error) {
	return run(ctx, e, OpLanguageReverse, func() (domain.Language, error) {
		return language.Reverse(l), nil
	})
}

type powerInput struct {
	L domain.Language `json:"l"`
	N int             `json:"n"`
}

// Power returns l^n.
func (e *Engine) Power(ctx context.Context, l domain.Language, n int) (domain.Language, error) {
	return cached(ctx, e, OpLanguagePower, powerInput{L: l, N: n}, func() (domain.Language, error) {
		if err := domain.CheckExponent("n", n); err != nil {
			return domain.Language{}, err
		}
		if err := e.checkLength(OpLanguagePower, l.MaxLen(), n); err != nil {
			return domain.Language{}, err
		}
		if e.maxWords > 0 {
			if err := e.checkBudget(OpLanguagePower, language.PowerSize(l, n, e.maxWords+1)); err != nil {
				return domain.Language{}, err
			}
		}
		return language.Power(l, n)
	})
}

// KleeneClosure returns the union of l^i for 0 ≤ i ≤ maxPower.
// The result is a truncation of l*; see domain.Closure.
func (e *Engine) KleeneClosure(ctx context.Context, l domain.Language, maxPower int) (domain.Closure, error) {
	return e.closure(ctx, OpLanguageKleeneClosure, l, domain.ClosureKleene, maxPower)
}

// PositiveClosure returns the union of l^i for 1 ≤ i ≤ maxPower.
// The result is a truncation of l+; see domain.Closure.
func (e *Engine) PositiveClosure(ctx context.Context, l domain.Language, maxPower int) (domain.Closure, error) {
	return e.closure(ctx, OpLanguagePositiveClosure, l, domain.ClosurePositive, maxPower)
}

func (e *Engine) closure(ctx context.Context, op string, l domain.Language, kind domain.ClosureKind, maxPower int) (domain.Closure, error) {
	return cached(ctx, e, op, powerInput{L: l, N: maxPower}, func() (domain.Closure, error) {
		if err := domain.CheckExponent("maxPower", maxPower); err != nil {
			return domain.Closure{}, err
		}
		if err := e.checkLength(op, l.MaxLen(), maxPower); err != nil {
			return domain.Closure{}, err
		}
		if e.maxWords > 0 {
			from := 0
			if kind == domain.ClosurePositive {
				from = 1
			}
			if err := e.checkBudget(op, language.ClosureSize(l, from, maxPower, e.maxWords+1)); err != nil {
				return domain.Closure{}, err
			}
		}
		return language.Closure(l, kind, maxPower)
	})
}
