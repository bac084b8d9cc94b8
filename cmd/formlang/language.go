package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/formlang/internal/cli"
	"github.com/aretw0/formlang/pkg/domain"
	"github.com/spf13/cobra"
)

// languageCmd represents the language command
var languageCmd = &cobra.Command{
	Use:   "language <op>",
	Short: "Apply an operation of the finite language algebra",
	Long: fmt.Sprintf(`Applies one operation to the languages given by --l1 and --l2
(comma separated words, ε for the empty word).

Operations: %s.
Power uses --n; kleene and positive use --max-power.`, strings.Join(cli.LanguageOps, ", ")),
	Example: `  formlang language concat --l1 a,b --l2 ε,c
  formlang language kleene --l1 ab --max-power 2 -f markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: cli.LanguageOps,
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

		raw1, _ := cmd.Flags().GetStringSlice("l1")
		raw2, _ := cmd.Flags().GetStringSlice("l2")
		n, _ := cmd.Flags().GetInt("n")
		l1 := domain.NewLanguage(cli.ParseWords(raw1)...)
		l2 := domain.NewLanguage(cli.ParseWords(raw2)...)

		res, err := cli.RunLanguageOp(cmd.Context(), rt.Engine, args[0], l1, l2, cli.Params{
			N:        n,
			MaxPower: rt.Engine.MaxPower(),
		})
		if err != nil {
			return err
		}
		return printer.Print(res)
	},
}

func init() {
	rootCmd.AddCommand(languageCmd)

	languageCmd.Flags().StringSlice("l1", nil, "Words of the first language")
	languageCmd.Flags().StringSlice("l2", nil, "Words of the second language")
	languageCmd.Flags().Int("n", 1, "Exponent (power)")
}
