package main

import (
	"github.com/aretw0/formlang/internal/cli"
	"github.com/aretw0/formlang/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// dfaCmd represents the dfa command
var dfaCmd = &cobra.Command{
	Use:   "dfa [words...]",
	Short: "Synthesize the trie DFA accepting exactly the given words",
	Long: `Builds a deterministic automaton whose states are the prefixes of the words.
State 0 is the initial state; ids follow the order of the words.

With --format mermaid, --trace highlights the run of the automaton on a word.`,
	Example: `  formlang dfa ab a b
  formlang dfa ab a b -f mermaid --trace ab`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}

		a, err := rt.Engine.Synthesize(cmd.Context(), cli.ParseWords(args))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("trace") {
			w, _ := cmd.Flags().GetString("trace")
			printer.Overlay = graph.Trace(a, cli.ParseWords([]string{w})[0])
		}
		return printer.Print(a)
	},
}

func init() {
	rootCmd.AddCommand(dfaCmd)

	dfaCmd.Flags().String("trace", "", "Word whose run is highlighted (mermaid only)")
}
