package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/formlang"
	"github.com/aretw0/formlang/internal/presentation/graph"
	"github.com/aretw0/formlang/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format selects how results are written.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatMermaid  Format = "mermaid"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatMarkdown, FormatMermaid:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, yaml, markdown or mermaid)", s)
	}
}

// Printer writes operation results to Out.
type Printer struct {
	Out    io.Writer
	Format Format
	// Render post-processes markdown, e.g. through glamour. Nil prints raw markdown.
	Render func(string) (string, error)
	// Overlay highlights a trace when printing automata as mermaid.
	Overlay *graph.AutomatonOverlay
}

// Print writes v in the configured format.
func (p *Printer) Print(v any) error {
	switch p.Format {
	case FormatYAML:
		enc := yaml.NewEncoder(p.Out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		md, err := Markdown(v)
		if err != nil {
			return err
		}
		if p.Render != nil {
			if md, err = p.Render(md); err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
		}
		_, err = io.WriteString(p.Out, md)
		return err
	case FormatMermaid:
		a, ok := v.(domain.Automaton)
		if !ok {
			return fmt.Errorf("mermaid output is only available for automata, got %T", v)
		}
		_, err := fmt.Fprintln(p.Out, graph.GenerateMermaid(a, p.Overlay))
		return err
	default:
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// Markdown describes a result as a markdown document.
func Markdown(v any) (string, error) {
	var b strings.Builder
	switch r := v.(type) {
	case domain.Language:
		writeLanguage(&b, r)
	case domain.Closure:
		writeClosure(&b, r)
	case formlang.Difference:
		b.WriteString("### L1 − L2\n\n")
		writeLanguage(&b, r.LeftOnly)
		b.WriteString("\n### L2 − L1\n\n")
		writeLanguage(&b, r.RightOnly)
	case formlang.Pair[domain.Closure]:
		b.WriteString("## w\n\n")
		writeClosure(&b, r.W)
		b.WriteString("\n## x\n\n")
		writeClosure(&b, r.X)
	case domain.Automaton:
		writeAutomaton(&b, r)
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode result: %w", err)
		}
		b.WriteString("```json\n")
		b.Write(data)
		b.WriteString("\n```\n")
	}
	return b.String(), nil
}

func writeLanguage(b *strings.Builder, l domain.Language) {
	if l.IsEmpty() {
		b.WriteString("_∅ (empty language)_\n")
		return
	}
	for _, w := range l.Words() {
		if w == "" {
			b.WriteString("- `ε`\n")
			continue
		}
		fmt.Fprintf(b, "- `%s`\n", w)
	}
}

func writeClosure(b *strings.Builder, c domain.Closure) {
	fmt.Fprintf(b, "**%s closure**, powers up to %d", c.Kind, c.MaxPower)
	if c.Exact {
		b.WriteString(" (exact)\n\n")
	} else {
		b.WriteString(" (truncated)\n\n")
	}
	writeLanguage(b, c.Words)
}

func writeAutomaton(b *strings.Builder, a domain.Automaton) {
	fmt.Fprintf(b, "## DFA\n\n")
	fmt.Fprintf(b, "- **States:** %d\n", len(a.States))
	fmt.Fprintf(b, "- **Initial:** q%d\n", a.Initial)
	finals := make([]string, len(a.Finals))
	for i, f := range a.Finals {
		finals[i] = "q" + strconv.Itoa(f)
	}
	fmt.Fprintf(b, "- **Finals:** %s\n", strings.Join(finals, ", "))
	alphabet := make([]string, len(a.Alphabet))
	for i, s := range a.Alphabet {
		alphabet[i] = string(s)
	}
	fmt.Fprintf(b, "- **Alphabet:** %s\n", strings.Join(alphabet, ", "))

	if a.NumTransitions() == 0 {
		return
	}
	b.WriteString("\n| From | Symbol | To |\n|---|---|---|\n")
	for _, s := range a.States {
		for _, sym := range a.Alphabet {
			if to, ok := a.Step(s, sym); ok {
				fmt.Fprintf(b, "| q%d | `%s` | q%d |\n", s, sym, to)
			}
		}
	}
}
