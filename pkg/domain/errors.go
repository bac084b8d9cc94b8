package domain

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument is returned when an exponent (n, m or maxPower) is negative.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTooLarge is returned when a result would exceed the configured budget
	// in words or in symbols per word, or could not be held in memory at all.
	ErrTooLarge = errors.New("result too large")

	// ErrCacheMiss is returned by result caches when a key is absent.
	ErrCacheMiss = errors.New("cache miss")
)

// NegativeExponent builds the error returned for a negative exponent argument.
// The result matches ErrInvalidArgument with errors.Is and carries a user hint.
func NegativeExponent(name string, value int) error {
	err := errors.Wrapf(ErrInvalidArgument, "%s must be non-negative, got %d", name, value)
	return errors.WithHint(err, "exponents start at 0; pass 0 for the identity power")
}

// CheckExponent returns NegativeExponent when value < 0.
func CheckExponent(name string, value int) error {
	if value < 0 {
		return NegativeExponent(name, value)
	}
	return nil
}

// Hint returns the user-facing hints attached to err, or an empty string.
func Hint(err error) string {
	return errors.FlattenHints(err)
}
