package cli

import (
	"context"
	"testing"

	"github.com/aretw0/formlang"
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWords(t *testing.T) {
	assert.Equal(t, []string{"", "ab", "c"}, ParseWords([]string{"ε", " ab ", "c"}))
	assert.Empty(t, ParseWords(nil))
}

func TestRunStringOp(t *testing.T) {
	eng, err := formlang.New()
	require.NoError(t, err)
	ctx := context.Background()
	p := Params{N: 2, M: 0, MaxPower: 1}

	tests := []struct {
		op   string
		want any
	}{
		{"concat", "abc"},
		{"power", formlang.Pair[string]{W: "abab", X: ""}},
		{"reverse", formlang.Pair[string]{W: "ba", X: "c"}},
		{"length", formlang.Pair[int]{W: 2, X: 1}},
		{"equal", false},
		{"alphabet-union", []domain.Symbol{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := RunStringOp(ctx, eng, tt.op, "ab", "c", p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := RunStringOp(ctx, eng, "kleene", "ab", "c", p)
	require.NoError(t, err)
	pair := got.(formlang.Pair[domain.Closure])
	assert.Equal(t, []string{"", "ab"}, pair.W.Words.Words())

	_, err = RunStringOp(ctx, eng, "shuffle", "a", "b", p)
	assert.ErrorContains(t, err, "unknown operation")
}

func TestRunLanguageOp(t *testing.T) {
	eng, err := formlang.New()
	require.NoError(t, err)
	ctx := context.Background()
	l1 := domain.NewLanguage("a", "b")
	l2 := domain.NewLanguage("b", "")

	got, err := RunLanguageOp(ctx, eng, "concat", l1, l2, Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "ab", "b", "bb"}, got.(domain.Language).Words())

	got, err = RunLanguageOp(ctx, eng, "difference", l1, l2, Params{})
	require.NoError(t, err)
	d := got.(formlang.Difference)
	assert.Equal(t, []string{"a"}, d.LeftOnly.Words())
	assert.Equal(t, []string{""}, d.RightOnly.Words())

	got, err = RunLanguageOp(ctx, eng, "power", l1, l2, Params{N: 0})
	require.NoError(t, err)
	assert.True(t, got.(domain.Language).Equal(domain.Epsilon()))

	got, err = RunLanguageOp(ctx, eng, "positive", l1, l2, Params{MaxPower: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.(domain.Closure).Words.Words())

	_, err = RunLanguageOp(ctx, eng, "power", l1, l2, Params{N: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = RunLanguageOp(ctx, eng, "xor", l1, l2, Params{})
	assert.Error(t, err)
}
