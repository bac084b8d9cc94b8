package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/formlang/internal/cli"
	"github.com/spf13/cobra"
)

// stringCmd represents the string command
var stringCmd = &cobra.Command{
	Use:   "string <op> <w> <x>",
	Short: "Apply a string operation to a pair of strings",
	Long: fmt.Sprintf(`Applies one operation to the strings w and x.

Operations: %s.
Power uses --n and --m; kleene and positive use --max-power.`, strings.Join(cli.StringOps, ", ")),
	Args:      cobra.ExactArgs(3),
	ValidArgs: cli.StringOps,
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

		n, _ := cmd.Flags().GetInt("n")
		m, _ := cmd.Flags().GetInt("m")
		words := cli.ParseWords(args[1:])
		res, err := cli.RunStringOp(cmd.Context(), rt.Engine, args[0], words[0], words[1], cli.Params{
			N:        n,
			M:        m,
			MaxPower: rt.Engine.MaxPower(),
		})
		if err != nil {
			return err
		}
		return printer.Print(res)
	},
}

func init() {
	rootCmd.AddCommand(stringCmd)

	stringCmd.Flags().Int("n", 1, "Exponent of w (power)")
	stringCmd.Flags().Int("m", 1, "Exponent of x (power)")
}
