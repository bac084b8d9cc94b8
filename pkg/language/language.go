package language

import (
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/aretw0/formlang/pkg/word"
)

// Concat returns {u∘v | u ∈ l1, v ∈ l2}.
func Concat(l1, l2 domain.Language) domain.Language {
	b := domain.NewBuilder(l1.Len() * l2.Len())
	l1.Each(func(u string) {
		l2.Each(func(v string) {
			b.Add(u + v)
		})
	})
	return b.Language()
}

// Union returns l1 ∪ l2.
func Union(l1, l2 domain.Language) domain.Language {
	b := domain.NewBuilder(l1.Len() + l2.Len())
	b.AddAll(l1)
	b.AddAll(l2)
	return b.Language()
}

// Intersect returns l1 ∩ l2.
func Intersect(l1, l2 domain.Language) domain.Language {
	small, large := l1, l2
	if large.Len() < small.Len() {
		small, large = large, small
	}
	b := domain.NewBuilder(small.Len())
	small.Each(func(w string) {
		if large.Contains(w) {
			b.Add(w)
		}
	})
	return b.Language()
}

// Difference returns both one-sided differences, l1−l2 and l2−l1.
// The two results are disjoint from each other and from Intersect(l1, l2).
func Difference(l1, l2 domain.Language) (domain.Language, domain.Language) {
	return minus(l1, l2), minus(l2, l1)
}

func minus(l1, l2 domain.Language) domain.Language {
	b := domain.NewBuilder(l1.Len())
	l1.Each(func(w string) {
		if !l2.Contains(w) {
			b.Add(w)
		}
	})
	return b.Language()
}

// Reverse returns {reverse(w) | w ∈ l}.
func Reverse(l domain.Language) domain.Language {
	b := domain.NewBuilder(l.Len())
	l.Each(func(w string) {
		b.Add(word.Reverse(w))
	})
	return b.Language()
}

// Power returns l^n, the set of concatenations of n words of l.
//
// l^0 is {ε}. Starting from {ε}, each of the n rounds replaces the accumulator
// with its concatenation with l, so ∅^n is ∅ for every n ≥ 1.
func Power(l domain.Language, n int) (domain.Language, error) {
	if err := domain.CheckExponent("n", n); err != nil {
		return domain.Language{}, err
	}
	if n > 0 && l.MaxLen() == 0 {
		// ∅^n is ∅ and {ε}^n is {ε}.
		return l, nil
	}
	acc := domain.Epsilon()
	for range n {
		acc = Concat(acc, l)
	}
	return acc, nil
}

// PowerSize returns an upper bound on the size of l^n, saturating at limit.
// It lets callers reject an exponent before paying for Power, and runs in
// O(log limit) rounds whatever n is.
func PowerSize(l domain.Language, n, limit int) int {
	if n == 0 {
		return 1
	}
	if l.Len() <= 1 {
		// ∅^n is ∅ and {w}^n is {w^n}.
		return min(l.Len(), limit)
	}
	size := 1
	for range n {
		if size > limit/l.Len() {
			return limit
		}
		size *= l.Len()
		if size >= limit {
			return limit
		}
	}
	return size
}

// ClosureSize returns an upper bound on the size of the union of l^i for
// from ≤ i ≤ maxPower, saturating at limit.
func ClosureSize(l domain.Language, from, maxPower, limit int) int {
	if from > maxPower {
		return 0
	}
	if l.MaxLen() == 0 {
		// Every power of ∅ or {ε} is ∅ or {ε}.
		if from == 0 || l.Len() > 0 {
			return min(1, limit)
		}
		return 0
	}
	if l.Len() == 1 {
		if maxPower-from >= limit {
			return limit
		}
		return min(maxPower-from+1, limit)
	}
	total := 0
	for i := from; i <= maxPower; i++ {
		size := PowerSize(l, i, limit)
		if size >= limit-total {
			return limit
		}
		total += size
	}
	return total
}
