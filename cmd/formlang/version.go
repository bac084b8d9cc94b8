package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/formlang"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of formlang",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "formlang version %s\n", strings.TrimSpace(formlang.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
