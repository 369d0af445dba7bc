package main

import (
	"fmt"

	"github.com/amonks/unlockpath/plan"
	"github.com/spf13/cobra"
)

var closureCmd = &cobra.Command{
	Use:   "closure [item]...",
	Short: "List everything implied by the known items",
	Long: `List everything implied by the known items.

Prints the known items followed by every item they are built from,
directly or indirectly.`,
	RunE: runClosure,
}

var (
	closureKnown      []string
	closureKnownFiles []string
	closureJSON       bool
)

func init() {
	rootCmd.AddCommand(closureCmd)

	closureCmd.Flags().StringArrayVarP(&closureKnown, "known", "k", nil, "Known items, comma or space separated (repeatable)")
	closureCmd.Flags().StringArrayVar(&closureKnownFiles, "known-file", nil, "File listing known items ('-' for stdin)")
	closureCmd.Flags().BoolVar(&closureJSON, "json", false, "Output as JSON")
}

func runClosure(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	g, err := s.loadGraph()
	if err != nil {
		return err
	}

	known, err := s.readItems(closureKnown, closureKnownFiles)
	if err != nil {
		return err
	}
	known = append(known, args...)

	opts := s.config.Plan.Apply(plan.DefaultOptions())
	if opts.ClosureRounds <= 0 {
		return fmt.Errorf("%w: got %d", plan.ErrInvalidClosureRounds, opts.ClosureRounds)
	}

	closure := g.ClosureRounds(known, opts.ClosureRounds)
	if closureJSON {
		return encodeJSONToStdout(closure)
	}
	for _, item := range closure {
		fmt.Println(item)
	}
	return nil
}
