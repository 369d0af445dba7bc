// Package main implements the unlock CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/amonks/unlockpath/graphfile"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Plan the order to learn items so that compound items unlock early",
	Long: `Plan the order to learn items so that compound items unlock early.

A graph file maps each item to the items it is built from. Given the items
you already know and the items you want to learn, unlock plan lists what to
learn next, batching shared prerequisites so that as many targets as
possible become available at once.`,
	SilenceUsage: true,
}

var (
	graphFlag string
	splitFlag = splitValue{mode: graphfile.SplitLines}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&graphFlag, "graph", "g", "", "Graph file (.json, .jsonc, .yaml, .toml, .cbor, optionally .zst)")
	rootCmd.PersistentFlags().Var(&splitFlag, "split", "How item lists are split (lines, fields, runes)")
}
