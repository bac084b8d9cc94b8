package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/formlang/internal/validator"
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var validateCmd = &cobra.Command{
	Use:   "validate <automaton.json|automaton.yaml>",
	Short: "Check an automaton file for consistency",
	Long: `Crawls the automaton from its initial state and reports dead links, unknown
symbols and unreachable states. With --tree it also checks the trie shape.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, _ := cmd.Flags().GetBool("tree")
		a, err := readAutomaton(args[0])
		if err != nil {
			return err
		}
		if err := validator.ValidateAutomaton(a, tree); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Automaton is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("tree", false, "Also require the trie shape of synthesized automata")
}

func readAutomaton(path string) (domain.Automaton, error) {
	var a domain.Automaton
	data, err := os.ReadFile(path)
	if err != nil {
		return a, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &a)
	default:
		err = json.Unmarshal(data, &a)
	}
	if err != nil {
		return a, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return a, nil
}
