package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/formlang/internal/cli"
	"github.com/aretw0/formlang/internal/config"
	"github.com/aretw0/formlang/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// appConfig is resolved once per invocation by the root PersistentPreRunE.
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "formlang",
	Short: "formlang computes with strings, finite languages and automata",
	Long: `formlang implements string operations, the algebra of finite languages
(concatenation, union, intersection, difference, powers, reversal and bounded
closures) and the synthesis of a trie DFA accepting a finite language.

Use ε to write the empty word in word lists.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("max-power") {
			cfg.MaxPower, _ = cmd.Flags().GetInt("max-power")
		}
		if cmd.Flags().Changed("max-words") {
			cfg.MaxWords, _ = cmd.Flags().GetInt("max-words")
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		if cmd.Flags().Changed("cache") {
			cfg.Cache.Backend, _ = cmd.Flags().GetString("cache")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Interrupts cancel the command context and exit cleanly.
func Execute() {
	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()

	if err := cli.HandleExecutionError(rootCmd.ExecuteContext(ctx)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "formlang.yaml", "Configuration file (missing file means defaults)")
	rootCmd.PersistentFlags().Int("max-power", 0, "Closure truncation depth (default from config, 3)")
	rootCmd.PersistentFlags().Int("max-words", 0, "Reject results larger than this many words (0 = unlimited)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("cache", "", "Result cache backend: none, memory or redis")
	rootCmd.PersistentFlags().StringP("format", "f", "json", "Output format: json, yaml, markdown or mermaid")
}

// newRuntime builds the engine for a command from the resolved configuration.
func newRuntime(ctx context.Context) (*cli.Runtime, error) {
	logger, err := cli.NewLogger(appConfig.LogLevel)
	if err != nil {
		return nil, err
	}
	return cli.NewRuntime(ctx, appConfig, logger)
}

// newPrinter resolves --format, rendering markdown through glamour on a terminal.
func newPrinter(cmd *cobra.Command) (*cli.Printer, error) {
	raw, _ := cmd.Flags().GetString("format")
	format, err := cli.ParseFormat(raw)
	if err != nil {
		return nil, err
	}
	p := &cli.Printer{Out: cmd.OutOrStdout(), Format: format}
	if format == cli.FormatMarkdown && cmd.OutOrStdout() == os.Stdout && tui.IsInteractive(os.Stdout) {
		p.Render = tui.NewRenderer(tui.Width(os.Stdout, 80))
	}
	return p, nil
}
