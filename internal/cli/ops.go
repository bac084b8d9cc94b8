package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/formlang"
	"github.com/aretw0/formlang/pkg/domain"
)

// EpsilonMarker spells the empty word on the command line.
const EpsilonMarker = "ε"

// StringOps lists the operations accepted by RunStringOp.
var StringOps = []string{
	"concat", "power", "reverse", "length", "equal", "affixes", "alphabet-union", "kleene", "positive",
}

// LanguageOps lists the operations accepted by RunLanguageOp.
var LanguageOps = []string{
	"concat", "union", "intersect", "difference", "power", "reverse", "kleene", "positive",
}

// Params carries the numeric arguments of the operations.
type Params struct {
	N        int
	M        int
	MaxPower int
}

// ParseWords maps EpsilonMarker to the empty word and trims surrounding blanks.
func ParseWords(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == EpsilonMarker {
			it = ""
		}
		out = append(out, it)
	}
	return out
}

// RunStringOp applies the named string operation to w and x.
func RunStringOp(ctx context.Context, eng *formlang.Engine, op, w, x string, p Params) (any, error) {
	switch op {
	case "concat":
		return eng.Concat(ctx, w, x)
	case "power":
		return eng.PowerPair(ctx, w, p.N, x, p.M)
	case "reverse":
		return eng.ReversePair(ctx, w, x)
	case "length":
		return eng.LenPair(ctx, w, x)
	case "equal":
		return eng.Equal(ctx, w, x)
	case "affixes":
		return eng.AffixesPair(ctx, w, x)
	case "alphabet-union":
		return eng.AlphabetUnion(ctx, w, x)
	case "kleene":
		return eng.ClosurePair(ctx, w, x, p.MaxPower)
	case "positive":
		return eng.PositiveClosurePair(ctx, w, x, p.MaxPower)
	}
	return nil, unknownOp(op, StringOps)
}

// RunLanguageOp applies the named language operation. Unary operations ignore l2.
func RunLanguageOp(ctx context.Context, eng *formlang.Engine, op string, l1, l2 domain.Language, p Params) (any, error) {
	switch op {
	case "concat":
		return eng.LanguageConcat(ctx, l1, l2)
	case "union":
		return eng.Union(ctx, l1, l2)
	case "intersect":
		return eng.Intersect(ctx, l1, l2)
	case "difference":
		return eng.Difference(ctx, l1, l2)
	case "power":
		return eng.Power(ctx, l1, p.N)
	case "reverse":
		return eng.LanguageReverse(ctx, l1)
	case "kleene":
		return eng.KleeneClosure(ctx, l1, p.MaxPower)
	case "positive":
		return eng.PositiveClosure(ctx, l1, p.MaxPower)
	}
	return nil, unknownOp(op, LanguageOps)
}

func unknownOp(op string, valid []string) error {
	return fmt.Errorf("unknown operation %q (want one of: %s)", op, strings.Join(valid, ", "))
}
