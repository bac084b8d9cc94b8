package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/formlang"
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// Engine defines the operations served over HTTP. *formlang.Engine implements it.
type Engine interface {
	MaxPower() int

	Concat(ctx context.Context, w, x string) (string, error)
	PowerPair(ctx context.Context, w string, n int, x string, m int) (formlang.Pair[string], error)
	ReversePair(ctx context.Context, w, x string) (formlang.Pair[string], error)
	LenPair(ctx context.Context, w, x string) (formlang.Pair[int], error)
	Equal(ctx context.Context, w, x string) (bool, error)
	AffixesPair(ctx context.Context, w, x string) (formlang.Pair[formlang.Affixes], error)
	AlphabetUnion(ctx context.Context, w, x string) ([]domain.Symbol, error)
	ClosurePair(ctx context.Context, w, x string, maxPower int) (formlang.Pair[domain.Closure], error)
	PositiveClosurePair(ctx context.Context, w, x string, maxPower int) (formlang.Pair[domain.Closure], error)

	LanguageConcat(ctx context.Context, l1, l2 domain.Language) (domain.Language, error)
	Union(ctx context.Context, l1, l2 domain.Language) (domain.Language, error)
	Intersect(ctx context.Context, l1, l2 domain.Language) (domain.Language, error)
	Difference(ctx context.Context, l1, l2 domain.Language) (formlang.Difference, error)
	Power(ctx context.Context, l domain.Language, n int) (domain.Language, error)
	LanguageReverse(ctx context.Context, l domain.Language) (domain.Language, error)
	KleeneClosure(ctx context.Context, l domain.Language, maxPower int) (domain.Closure, error)
	PositiveClosure(ctx context.Context, l domain.Language, maxPower int) (domain.Closure, error)

	Synthesize(ctx context.Context, words []string) (domain.Automaton, error)
}

var _ Engine = (*formlang.Engine)(nil)

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the logger used for rejected and failed requests.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics serves the gatherer's metrics at /metrics.
func WithMetrics(gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

// Server serves the operation catalogue.
type Server struct {
	Engine   Engine
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		Engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/operations", func(r chi.Router) {
		r.Post("/string-concat", handle(s, s.stringConcat))
		r.Post("/string-power", handle(s, s.stringPower))
		r.Post("/string-reverse", handle(s, s.stringReverse))
		r.Post("/string-length", handle(s, s.stringLength))
		r.Post("/string-equal", handle(s, s.stringEqual))
		r.Post("/string-affixes", handle(s, s.stringAffixes))
		r.Post("/string-alphabet-union", handle(s, s.stringAlphabetUnion))
		r.Post("/string-kleene", handle(s, s.stringClosure(domain.ClosureKleene)))
		r.Post("/string-positive", handle(s, s.stringClosure(domain.ClosurePositive)))

		r.Post("/language-concat", handle(s, s.languageConcat))
		r.Post("/language-union", handle(s, s.languageUnion))
		r.Post("/language-intersect", handle(s, s.languageIntersect))
		r.Post("/language-difference", handle(s, s.languageDifference))
		r.Post("/language-power", handle(s, s.languagePower))
		r.Post("/language-reverse", handle(s, s.languageReverse))
		r.Post("/language-kleene", handle(s, s.languageClosure(domain.ClosureKleene)))
		r.Post("/language-positive", handle(s, s.languageClosure(domain.ClosurePositive)))

		r.Post("/automaton", handle(s, s.automaton))
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>formlang API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "formlang-http",
		"version":     strings.TrimSpace(formlang.Version),
		"api_version": apiVersion,
	})
}

// resultResponse wraps every operation result.
type resultResponse struct {
	Result any `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// handle decodes a JSON body into Req, runs op and writes {"result": ...}.
func handle[Req any](s *Server, op func(ctx context.Context, req Req) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			s.logger.Warn("invalid request body", "path", r.URL.Path, "err", err)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
			return
		}

		res, err := op(r.Context(), req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resultResponse{Result: res})
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("operation failed", "path", r.URL.Path, "err", err)
	} else {
		s.logger.Warn("operation rejected", "path", r.URL.Path, "status", status, "err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Hint: domain.Hint(err)})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}
