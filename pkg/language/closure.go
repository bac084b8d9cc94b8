package language

import (
	"github.com/aretw0/formlang/pkg/domain"
)

// BoundedKleeneClosure returns the union of l^i for 0 ≤ i ≤ maxPower.
// The result always contains ε. It truncates l*, which is infinite as soon
// as l holds a non-empty word.
func BoundedKleeneClosure(l domain.Language, maxPower int) (domain.Language, error) {
	return unionOfPowers(l, 0, maxPower)
}

// BoundedPositiveClosure returns the union of l^i for 1 ≤ i ≤ maxPower,
// a truncation of l+.
func BoundedPositiveClosure(l domain.Language, maxPower int) (domain.Language, error) {
	return unionOfPowers(l, 1, maxPower)
}

// Closure computes a bounded closure of the given kind and reports whether
// the truncation happens to be exact.
func Closure(l domain.Language, kind domain.ClosureKind, maxPower int) (domain.Closure, error) {
	from := 0
	if kind == domain.ClosurePositive {
		from = 1
	}
	words, err := unionOfPowers(l, from, maxPower)
	if err != nil {
		return domain.Closure{}, err
	}
	return domain.Closure{
		Kind:     kind,
		MaxPower: maxPower,
		Words:    words,
		Exact:    closureIsFinite(l) && !(from > maxPower && l.Contains("")),
	}, nil
}

// closureIsFinite reports whether l* is finite, which holds exactly when l
// has no non-empty word. Then every non-empty truncation equals the closure.
func closureIsFinite(l domain.Language) bool {
	finite := true
	l.Each(func(w string) {
		if w != "" {
			finite = false
		}
	})
	return finite
}

// unionOfPowers collects l^from .. l^maxPower, deriving each power from the
// previous one with the same round Power uses.
func unionOfPowers(l domain.Language, from, maxPower int) (domain.Language, error) {
	if err := domain.CheckExponent("maxPower", maxPower); err != nil {
		return domain.Language{}, err
	}
	b := domain.NewBuilder(0)
	power := domain.Epsilon()
	fixed := l.MaxLen() == 0
	for i := 0; i <= maxPower; i++ {
		if i > 0 {
			power = Concat(power, l)
		}
		if i >= from {
			b.AddAll(power)
			// Powers of ∅ and {ε} repeat from l^1 on.
			if fixed && i > 0 {
				break
			}
		}
	}
	return b.Language(), nil
}
