package http

import (
	"context"

	"github.com/aretw0/formlang/pkg/domain"
	"github.com/cockroachdb/errors"
)

type twoStringsRequest struct {
	W string `json:"w"`
	X string `json:"x"`
}

type stringPowerRequest struct {
	W string `json:"w"`
	X string `json:"x"`
	N *int   `json:"n"`
	M *int   `json:"m"`
}

type stringClosureRequest struct {
	W        string `json:"w"`
	X        string `json:"x"`
	MaxPower *int   `json:"max_power"`
}

type twoLanguagesRequest struct {
	L1 []string `json:"l1"`
	L2 []string `json:"l2"`
}

type languagePowerRequest struct {
	L1 []string `json:"l1"`
	N  *int     `json:"n"`
}

type languageRequest struct {
	L1       []string `json:"l1"`
	MaxPower *int     `json:"max_power"`
}

func required(name string, v *int) (int, error) {
	if v == nil {
		return 0, errors.Wrapf(domain.ErrInvalidArgument, "%s is required", name)
	}
	return *v, nil
}

func (s *Server) maxPower(v *int) int {
	if v == nil {
		return s.Engine.MaxPower()
	}
	return *v
}

func (s *Server) stringConcat(ctx context.Context, req twoStringsRequest) (any, error) {
	return s.Engine.Concat(ctx, req.W, req.X)
}

func (s *Server) stringPower(ctx context.Context, req stringPowerRequest) (any, error) {
	n, err := required("n", req.N)
	if err != nil {
		return nil, err
	}
	m, err := required("m", req.M)
	if err != nil {
		return nil, err
	}
	p, err := s.Engine.PowerPair(ctx, req.W, n, req.X, m)
	if err != nil {
		return nil, err
	}
	return map[string]string{"w^n": p.W, "x^m": p.X}, nil
}

func (s *Server) stringReverse(ctx context.Context, req twoStringsRequest) (any, error) {
	p, err := s.Engine.ReversePair(ctx, req.W, req.X)
	if err != nil {
		return nil, err
	}
	return map[string]string{"w^r": p.W, "x^r": p.X}, nil
}

func (s *Server) stringLength(ctx context.Context, req twoStringsRequest) (any, error) {
	p, err := s.Engine.LenPair(ctx, req.W, req.X)
	if err != nil {
		return nil, err
	}
	return map[string]int{"|w|": p.W, "|x|": p.X}, nil
}

func (s *Server) stringEqual(ctx context.Context, req twoStringsRequest) (any, error) {
	return s.Engine.Equal(ctx, req.W, req.X)
}

func (s *Server) stringAffixes(ctx context.Context, req twoStringsRequest) (any, error) {
	return s.Engine.AffixesPair(ctx, req.W, req.X)
}

func (s *Server) stringAlphabetUnion(ctx context.Context, req twoStringsRequest) (any, error) {
	return s.Engine.AlphabetUnion(ctx, req.W, req.X)
}

func (s *Server) stringClosure(kind domain.ClosureKind) func(context.Context, stringClosureRequest) (any, error) {
	return func(ctx context.Context, req stringClosureRequest) (any, error) {
		maxPower := s.maxPower(req.MaxPower)
		if kind == domain.ClosurePositive {
			p, err := s.Engine.PositiveClosurePair(ctx, req.W, req.X, maxPower)
			if err != nil {
				return nil, err
			}
			return map[string]domain.Closure{"w+": p.W, "x+": p.X}, nil
		}
		p, err := s.Engine.ClosurePair(ctx, req.W, req.X, maxPower)
		if err != nil {
			return nil, err
		}
		return map[string]domain.Closure{"w*": p.W, "x*": p.X}, nil
	}
}

func (s *Server) languageConcat(ctx context.Context, req twoLanguagesRequest) (any, error) {
	return s.Engine.LanguageConcat(ctx, domain.NewLanguage(req.L1...), domain.NewLanguage(req.L2...))
}

func (s *Server) languageUnion(ctx context.Context, req twoLanguagesRequest) (any, error) {
	return s.Engine.Union(ctx, domain.NewLanguage(req.L1...), domain.NewLanguage(req.L2...))
}

func (s *Server) languageIntersect(ctx context.Context, req twoLanguagesRequest) (any, error) {
	return s.Engine.Intersect(ctx, domain.NewLanguage(req.L1...), domain.NewLanguage(req.L2...))
}

func (s *Server) languageDifference(ctx context.Context, req twoLanguagesRequest) (any, error) {
	d, err := s.Engine.Difference(ctx, domain.NewLanguage(req.L1...), domain.NewLanguage(req.L2...))
	if err != nil {
		return nil, err
	}
	return map[string]domain.Language{"l1-l2": d.LeftOnly, "l2-l1": d.RightOnly}, nil
}

func (s *Server) languagePower(ctx context.Context, req languagePowerRequest) (any, error) {
	n, err := required("n", req.N)
	if err != nil {
		return nil, err
	}
	return s.Engine.Power(ctx, domain.NewLanguage(req.L1...), n)
}

func (s *Server) languageReverse(ctx context.Context, req languageRequest) (any, error) {
	return s.Engine.LanguageReverse(ctx, domain.NewLanguage(req.L1...))
}

func (s *Server) languageClosure(kind domain.ClosureKind) func(context.Context, languageRequest) (any, error) {
	return func(ctx context.Context, req languageRequest) (any, error) {
		l := domain.NewLanguage(req.L1...)
		if kind == domain.ClosurePositive {
			return s.Engine.PositiveClosure(ctx, l, s.maxPower(req.MaxPower))
		}
		return s.Engine.KleeneClosure(ctx, l, s.maxPower(req.MaxPower))
	}
}

func (s *Server) automaton(ctx context.Context, req languageRequest) (any, error) {
	return s.Engine.Synthesize(ctx, req.L1)
}
