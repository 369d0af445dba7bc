package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amonks/unlockpath/graph"
	"github.com/amonks/unlockpath/graphfile"
	"github.com/amonks/unlockpath/internal/ui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report graph statistics, empty compounds, and cycles",
	Long: `Report graph statistics, empty compounds, and cycles.

Exits with status 1 when the graph contains a cycle.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

var checkJSON bool

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON")
}

// checkReport is the JSON form of a graph check.
type checkReport struct {
	Graph  string `json:"graph"`
	Digest string `json:"digest"`
	graph.Report
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	g, err := s.loadGraph()
	if err != nil {
		return err
	}
	digest, err := graphfile.Digest(g)
	if err != nil {
		return err
	}

	report := g.Check()
	if checkJSON {
		if err := encodeJSONToStdout(checkReport{Graph: s.graphPath, Digest: digest, Report: report}); err != nil {
			return err
		}
	} else {
		fmt.Print(formatCheckReport(report, digest))
	}

	if report.HasCycles() {
		return exitError{code: 1, err: fmt.Errorf("graph has %d cycles", len(report.Cycles))}
	}
	return nil
}

func formatCheckReport(report graph.Report, digest string) string {
	rows := [][]string{
		{"items", strconv.Itoa(report.Items)},
		{"compounds", strconv.Itoa(report.Compounds)},
		{"leaves", strconv.Itoa(report.Leaves)},
		{"edges", strconv.Itoa(report.Edges)},
		{"duplicates", strconv.Itoa(report.Duplicates)},
		{"digest", digest},
	}

	var out strings.Builder
	out.WriteString(ui.FormatTable([]string{"STAT", "VALUE"}, rows))

	if len(report.Empty) > 0 {
		out.WriteString("\nEmpty compounds:\n")
		for _, item := range report.Empty {
			fmt.Fprintf(&out, "    %s\n", item)
		}
	}
	if len(report.Cycles) > 0 {
		out.WriteString("\nCycles:\n")
		for _, cycle := range report.Cycles {
			fmt.Fprintf(&out, "    %s\n", strings.Join(cycle, " -> "))
		}
	}
	return out.String()
}
