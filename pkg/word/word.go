package word

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/cockroachdb/errors"
)

// Concat returns w followed by x.
func Concat(w, x string) string {
	return w + x
}

// Power returns w repeated n times. Power(w, 0) is the empty string.
// It fails with domain.ErrTooLarge when w^n cannot be held in memory.
func Power(w string, n int) (string, error) {
	if err := domain.CheckExponent("n", n); err != nil {
		return "", err
	}
	if err := checkRepeat(w, n); err != nil {
		return "", err
	}
	return strings.Repeat(w, n), nil
}

func checkRepeat(w string, n int) error {
	if len(w) > 0 && n > math.MaxInt/len(w) {
		return errors.Wrapf(domain.ErrTooLarge, "%q repeated %d times overflows", w, n)
	}
	return nil
}

// Reverse returns w with its symbols in the opposite order.
func Reverse(w string) string {
	runes := []rune(w)
	slices.Reverse(runes)
	return string(runes)
}

// Len returns the number of symbols in w.
func Len(w string) int {
	return utf8.RuneCountInString(w)
}

// Equal reports whether w and x are the same sequence of symbols.
func Equal(w, x string) bool {
	return w == x
}

// PrefixesAndSuffixes returns every prefix of w by increasing length, from
// the empty string to w itself, and every suffix by decreasing length, from w
// to the empty string. Both slices have Len(w)+1 entries.
func PrefixesAndSuffixes(w string) (prefixes, suffixes []string) {
	n := Len(w)
	prefixes = make([]string, 0, n+1)
	suffixes = make([]string, 0, n+1)

	// Byte offsets of every symbol boundary, including both ends.
	cuts := make([]int, 0, n+1)
	for i := range w {
		cuts = append(cuts, i)
	}
	cuts = append(cuts, len(w))

	for _, c := range cuts {
		prefixes = append(prefixes, w[:c])
		suffixes = append(suffixes, w[c:])
	}
	return prefixes, suffixes
}

// AlphabetUnion returns the distinct symbols occurring in w or in x, sorted.
//
// This is a union of alphabets, not of languages: AlphabetUnion("ab", "bc")
// is [a b c], never {"ab", "bc"}. For single-symbol strings the two readings
// coincide.
func AlphabetUnion(w, x string) []domain.Symbol {
	set := make(domain.SymbolSet)
	set.AddString(w)
	set.AddString(x)
	return set.Sorted()
}

// BoundedClosure returns {w^i | 0 ≤ i ≤ maxPower}. It always contains the
// empty string and is a truncation of the infinite closure w*.
func BoundedClosure(w string, maxPower int) (domain.Language, error) {
	return powers(w, 0, maxPower)
}

// BoundedPositiveClosure returns {w^i | 1 ≤ i ≤ maxPower}, a truncation of w+.
func BoundedPositiveClosure(w string, maxPower int) (domain.Language, error) {
	return powers(w, 1, maxPower)
}

func powers(w string, from, maxPower int) (domain.Language, error) {
	if err := domain.CheckExponent("maxPower", maxPower); err != nil {
		return domain.Language{}, err
	}
	if err := checkRepeat(w, maxPower); err != nil {
		return domain.Language{}, err
	}
	if w == "" {
		if from == 0 || maxPower > 0 {
			return domain.Epsilon(), nil
		}
		return domain.NewLanguage(), nil
	}
	b := domain.NewBuilder(min(maxPower-from+1, 64))
	for i := from; i <= maxPower; i++ {
		b.Add(strings.Repeat(w, i))
	}
	return b.Language(), nil
}
