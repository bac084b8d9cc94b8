package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/formlang"
	"github.com/aretw0/formlang/internal/presentation/graph"
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Engine defines the operations exposed as MCP tools. *formlang.Engine implements it.
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

// LanguageResponse is the structured result of language-valued tools.
type LanguageResponse struct {
	Words []string `json:"words" jsonschema_description:"The words of the resulting language, sorted"`
}

// DifferenceResponse holds both one-sided differences.
type DifferenceResponse struct {
	L1MinusL2 []string `json:"l1_minus_l2" jsonschema_description:"Words of l1 not in l2"`
	L2MinusL1 []string `json:"l2_minus_l1" jsonschema_description:"Words of l2 not in l1"`
}

// ClosureResponse is a truncated closure.
type ClosureResponse struct {
	Kind     string   `json:"kind" jsonschema_description:"kleene or positive"`
	MaxPower int      `json:"max_power" jsonschema_description:"Highest power included"`
	Words    []string `json:"words" jsonschema_description:"Union of the included powers, sorted"`
	Exact    bool     `json:"exact" jsonschema_description:"True when no word of a higher power is missing"`
}

type powerArgs struct {
	Language string `json:"language"`
	N        int    `json:"n"`
}

type closureArgs struct {
	Language string `json:"language"`
	Kind     string `json:"kind"`
	MaxPower *int   `json:"max_power"`
}

type setOpArgs struct {
	Op string `json:"op"`
	L1 string `json:"l1"`
	L2 string `json:"l2"`
}

// Server wraps the formlang Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("formlang-mcp", strings.TrimSpace(formlang.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

const languageParam = "JSON array of words, e.g. [\"ab\",\"a\"]"

func (s *Server) registerTools() {
	// TOOL: language_power
	s.mcpServer.AddTool(mcp.NewTool("language_power",
		mcp.WithDescription("Compute L^n, every concatenation of n words of L."),
		mcp.WithString("language", mcp.Required(), mcp.Description(languageParam)),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("Non-negative exponent")),
		mcp.WithOutputSchema[LanguageResponse](),
	), mcp.NewStructuredToolHandler(s.handleLanguagePower))

	// TOOL: language_closure
	s.mcpServer.AddTool(mcp.NewTool("language_closure",
		mcp.WithDescription("Compute the Kleene (L*) or positive (L+) closure truncated at max_power."),
		mcp.WithString("language", mcp.Required(), mcp.Description(languageParam)),
		mcp.WithString("kind", mcp.Enum(string(domain.ClosureKleene), string(domain.ClosurePositive)),
			mcp.Description("Closure kind (default kleene)")),
		mcp.WithNumber("max_power", mcp.Description("Truncation depth (default from server configuration)")),
		mcp.WithOutputSchema[ClosureResponse](),
	), mcp.NewStructuredToolHandler(s.handleLanguageClosure))

	// TOOL: language_set_op
	s.mcpServer.AddTool(mcp.NewTool("language_set_op",
		mcp.WithDescription("Apply a binary language operation: concat, union, intersect or reverse (of l1 only)."),
		mcp.WithString("op", mcp.Required(), mcp.Enum("concat", "union", "intersect", "reverse")),
		mcp.WithString("l1", mcp.Required(), mcp.Description(languageParam)),
		mcp.WithString("l2", mcp.Description(languageParam)),
		mcp.WithOutputSchema[LanguageResponse](),
	), mcp.NewStructuredToolHandler(s.handleLanguageSetOp))

	// TOOL: language_difference
	s.mcpServer.AddTool(mcp.NewTool("language_difference",
		mcp.WithDescription("Compute both L1−L2 and L2−L1."),
		mcp.WithString("l1", mcp.Required(), mcp.Description(languageParam)),
		mcp.WithString("l2", mcp.Required(), mcp.Description(languageParam)),
		mcp.WithOutputSchema[DifferenceResponse](),
	), mcp.NewStructuredToolHandler(s.handleLanguageDifference))

	// TOOL: synthesize_dfa
	s.mcpServer.AddTool(mcp.NewTool("synthesize_dfa",
		mcp.WithDescription("Build the trie DFA accepting exactly the given words."),
		mcp.WithString("language", mcp.Required(), mcp.Description(languageParam)),
		mcp.WithString("format", mcp.Enum("json", "mermaid"), mcp.Description("Output format (default json)")),
	), s.handleSynthesize)

	// TOOL: string_ops
	s.mcpServer.AddTool(mcp.NewTool("string_ops",
		mcp.WithDescription("Apply a string operation to the pair (w, x)."),
		mcp.WithString("op", mcp.Required(), mcp.Enum(
			"concat", "power", "reverse", "length", "equal", "affixes", "alphabet_union", "kleene", "positive",
		)),
		mcp.WithString("w", mcp.Description("First string")),
		mcp.WithString("x", mcp.Description("Second string")),
		mcp.WithNumber("n", mcp.Description("Exponent of w (power)")),
		mcp.WithNumber("m", mcp.Description("Exponent of x (power)")),
		mcp.WithNumber("max_power", mcp.Description("Truncation depth (kleene, positive)")),
	), s.handleStringOps)
}

// parseLanguage decodes a JSON array of words. The empty string is the empty language.
func parseLanguage(name, raw string) (domain.Language, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.NewLanguage(), nil
	}
	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		return domain.Language{}, errors.Wrapf(domain.ErrInvalidArgument, "%s must be a JSON array of strings: %v", name, err)
	}
	return domain.NewLanguage(words...), nil
}

func (s *Server) handleLanguagePower(ctx context.Context, request mcp.CallToolRequest, args powerArgs) (LanguageResponse, error) {
	l, err := parseLanguage("language", args.Language)
	if err != nil {
		return LanguageResponse{}, err
	}
	res, err := s.engine.Power(ctx, l, args.N)
	if err != nil {
		return LanguageResponse{}, err
	}
	return LanguageResponse{Words: res.Words()}, nil
}

func (s *Server) handleLanguageClosure(ctx context.Context, request mcp.CallToolRequest, args closureArgs) (ClosureResponse, error) {
	l, err := parseLanguage("language", args.Language)
	if err != nil {
		return ClosureResponse{}, err
	}
	maxPower := s.engine.MaxPower()
	if args.MaxPower != nil {
		maxPower = *args.MaxPower
	}

	var c domain.Closure
	switch domain.ClosureKind(args.Kind) {
	case "", domain.ClosureKleene:
		c, err = s.engine.KleeneClosure(ctx, l, maxPower)
	case domain.ClosurePositive:
		c, err = s.engine.PositiveClosure(ctx, l, maxPower)
	default:
		err = errors.Wrapf(domain.ErrInvalidArgument, "unknown closure kind %q", args.Kind)
	}
	if err != nil {
		return ClosureResponse{}, err
	}
	return ClosureResponse{
		Kind:     string(c.Kind),
		MaxPower: c.MaxPower,
		Words:    c.Words.Words(),
		Exact:    c.Exact,
	}, nil
}

func (s *Server) handleLanguageSetOp(ctx context.Context, request mcp.CallToolRequest, args setOpArgs) (LanguageResponse, error) {
	l1, err := parseLanguage("l1", args.L1)
	if err != nil {
		return LanguageResponse{}, err
	}
	l2, err := parseLanguage("l2", args.L2)
	if err != nil {
		return LanguageResponse{}, err
	}

	var res domain.Language
	switch args.Op {
	case "concat":
		res, err = s.engine.LanguageConcat(ctx, l1, l2)
	case "union":
		res, err = s.engine.Union(ctx, l1, l2)
	case "intersect":
		res, err = s.engine.Intersect(ctx, l1, l2)
	case "reverse":
		res, err = s.engine.LanguageReverse(ctx, l1)
	default:
		err = errors.Wrapf(domain.ErrInvalidArgument, "unknown language operation %q", args.Op)
	}
	if err != nil {
		return LanguageResponse{}, err
	}
	return LanguageResponse{Words: res.Words()}, nil
}

func (s *Server) handleLanguageDifference(ctx context.Context, request mcp.CallToolRequest, args setOpArgs) (DifferenceResponse, error) {
	l1, err := parseLanguage("l1", args.L1)
	if err != nil {
		return DifferenceResponse{}, err
	}
	l2, err := parseLanguage("l2", args.L2)
	if err != nil {
		return DifferenceResponse{}, err
	}
	d, err := s.engine.Difference(ctx, l1, l2)
	if err != nil {
		return DifferenceResponse{}, err
	}
	return DifferenceResponse{L1MinusL2: d.LeftOnly.Words(), L2MinusL1: d.RightOnly.Words()}, nil
}

func (s *Server) handleSynthesize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("language")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("language must be a JSON array of strings: %v", err)), nil
	}

	a, err := s.engine.Synthesize(ctx, words)
	if err != nil {
		return toolError("synthesize", err), nil
	}
	if request.GetString("format", "json") == "mermaid" {
		return mcp.NewToolResultText(graph.GenerateMermaid(a, nil)), nil
	}
	return jsonResult(a)
}

func (s *Server) handleStringOps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	op, err := request.RequireString("op")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	w := request.GetString("w", "")
	x := request.GetString("x", "")
	maxPower := request.GetInt("max_power", s.engine.MaxPower())

	var res any
	switch op {
	case "concat":
		res, err = s.engine.Concat(ctx, w, x)
	case "power":
		res, err = s.engine.PowerPair(ctx, w, request.GetInt("n", 1), x, request.GetInt("m", 1))
	case "reverse":
		res, err = s.engine.ReversePair(ctx, w, x)
	case "length":
		res, err = s.engine.LenPair(ctx, w, x)
	case "equal":
		res, err = s.engine.Equal(ctx, w, x)
	case "affixes":
		res, err = s.engine.AffixesPair(ctx, w, x)
	case "alphabet_union":
		res, err = s.engine.AlphabetUnion(ctx, w, x)
	case "kleene":
		res, err = s.engine.ClosurePair(ctx, w, x, maxPower)
	case "positive":
		res, err = s.engine.PositiveClosurePair(ctx, w, x, maxPower)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown string operation %q", op)), nil
	}
	if err != nil {
		return toolError(op, err), nil
	}
	return jsonResult(res)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func toolError(op string, err error) *mcp.CallToolResult {
	msg := fmt.Sprintf("%s failed: %v", op, err)
	if hint := domain.Hint(err); hint != "" {
		msg += " (hint: " + hint + ")"
	}
	return mcp.NewToolResultError(msg)
}
