package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amonks/unlockpath/graphfile"
	"github.com/amonks/unlockpath/internal/markdown"
	"github.com/amonks/unlockpath/internal/ui"
	"github.com/amonks/unlockpath/plan"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

const defaultOutputWidth = 80

var planCmd = &cobra.Command{
	Use:   "plan [target]...",
	Short: "Order prerequisites so that targets unlock early",
	Long: `Order prerequisites so that targets unlock early.

Targets come from positional arguments, --targets, and --targets-file. With
no targets every compound in the graph is a target. Known items come from
--known and --known-file; everything they are built from counts as known.

With --words each target is a vocabulary word: its headword is planned as a
compound of its characters, and words with characters missing from the
graph are listed separately.

Items that are not reached within --limit iterations are listed at the end.
This is not an error.`,
	RunE: runPlan,
}

var (
	planKnown       []string
	planKnownFiles  []string
	planTargets     []string
	planTargetFiles []string
	planWords       bool
	planLimit       int
	planCandidates  int
	planBatch       int
	planFormat      = formatValue{format: formatTable}
	planVerbose     bool
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringArrayVarP(&planKnown, "known", "k", nil, "Known items, comma or space separated (repeatable)")
	planCmd.Flags().StringArrayVar(&planKnownFiles, "known-file", nil, "File listing known items ('-' for stdin)")
	planCmd.Flags().StringArrayVarP(&planTargets, "targets", "t", nil, "Target items, comma or space separated (repeatable)")
	planCmd.Flags().StringArrayVar(&planTargetFiles, "targets-file", nil, "File listing target items ('-' for stdin)")
	planCmd.Flags().BoolVar(&planWords, "words", false, "Treat targets as vocabulary words built from graph characters")
	planCmd.Flags().IntVarP(&planLimit, "limit", "n", plan.Unbounded, "Maximum iterations (negative for no limit)")
	planCmd.Flags().IntVar(&planCandidates, "candidates", plan.DefaultCandidateCap, "Top-ranked prerequisites searched per batch")
	planCmd.Flags().IntVarP(&planBatch, "batch", "b", plan.DefaultBatchSize, "Prerequisites learned per batch")
	planCmd.Flags().VarP(&planFormat, "format", "f", "Output format (table, json, markdown)")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Trace each iteration on stderr")
	addPlanFlagAliases(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
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

	known, err := s.readItems(planKnown, planKnownFiles)
	if err != nil {
		return err
	}
	targets, err := s.readItems(planTargets, planTargetFiles)
	if err != nil {
		return err
	}
	targets = append(targets, args...)
	if len(targets) == 0 && !planWords {
		targets = g.Compounds()
	}

	var unresolved []string
	if planWords {
		for i, target := range targets {
			targets[i] = headword(target)
		}
		g, unresolved = g.ExpandWords(targets)
		targets = without(targets, unresolved)
	}

	opts := planOptions(cmd, s)
	if planVerbose {
		opts.Logger = plan.NewConsoleLogger(os.Stderr)
	}

	result, err := plan.Run(g, known, targets, opts)
	if err != nil {
		return err
	}

	switch planFormat.format {
	case formatJSON:
		return encodeJSONToStdout(planReport{
			Graph:      s.graphPath,
			Digest:     digest,
			Result:     result,
			Unresolved: unresolved,
		})
	case formatMarkdown:
		text := formatPlanMarkdown(result, unresolved)
		if ui.StdoutIsTerminal() {
			fmt.Println(string(markdown.SafeRender(ui.TerminalWidth(defaultOutputWidth), 0, []byte(text))))
			return nil
		}
		fmt.Print(text)
		return nil
	default:
		fmt.Print(formatPlanTable(result, unresolved, ui.TerminalWidth(defaultOutputWidth)))
		return nil
	}
}

func planOptions(cmd *cobra.Command, s *settings) plan.Options {
	opts := s.config.Plan.Apply(plan.DefaultOptions())
	if hasChangedFlags(cmd, "limit") {
		opts.IterationLimit = planLimit
	}
	if hasChangedFlags(cmd, "candidates") {
		opts.CandidateCap = planCandidates
	}
	if hasChangedFlags(cmd, "batch") {
		opts.BatchSize = planBatch
	}
	return opts
}

// planReport is the JSON form of a plan.
type planReport struct {
	Graph  string `json:"graph"`
	Digest string `json:"digest"`
	*plan.Result
	Unresolved []string `json:"unresolved,omitempty"`
}

func formatPlanTable(result *plan.Result, unresolved []string, width int) string {
	builder := ui.NewTableBuilder([]string{"#", "ITEM", "NOTE"}, len(result.Unlocked))
	for i, entry := range result.Unlocked {
		builder.AddRow([]string{
			strconv.Itoa(i + 1),
			ui.HighlightItem(ui.TruncateTableCell(entry.Item)),
			entry.Note.String(),
		})
	}

	var out strings.Builder
	if builder.Len() > 0 {
		out.WriteString(builder.String())
		out.WriteByte('\n')
	}
	out.WriteString(planSummary(result))
	out.WriteByte('\n')

	writeItemSection(&out, "Did not reach these in time:", result.Locked, width)
	writeItemSection(&out, "Not in graph:", unresolved, width)
	return out.String()
}

func writeItemSection(out *strings.Builder, heading string, items []string, width int) {
	if len(items) == 0 {
		return
	}
	const indent = "    "
	out.WriteByte('\n')
	out.WriteString(heading)
	out.WriteByte('\n')
	wrapped := wordwrap.String(strings.Join(items, " "), width-len(indent))
	for _, line := range strings.Split(wrapped, "\n") {
		out.WriteString(indent + line + "\n")
	}
}

func formatPlanMarkdown(result *plan.Result, unresolved []string) string {
	var out strings.Builder
	out.WriteString("# Unlock plan\n\n")
	for i, entry := range result.Unlocked {
		fmt.Fprintf(&out, "%d. **%s**: %s\n", i+1, entry.Item, entry.Note)
	}
	if len(result.Unlocked) > 0 {
		out.WriteByte('\n')
	}
	out.WriteString(planSummary(result))
	out.WriteString(".\n")

	writeMarkdownList(&out, "Did not reach these in time", result.Locked)
	writeMarkdownList(&out, "Not in graph", unresolved)
	return out.String()
}

func writeMarkdownList(out *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(out, "- %s\n", item)
	}
}

func planSummary(result *plan.Result) string {
	return fmt.Sprintf("%d unlocked, %d locked after %s (%s)",
		len(result.Unlocked), len(result.Locked),
		plural(result.Iterations, "iteration"), plural(result.Batches, "batch"))
}

func plural(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	if strings.HasSuffix(noun, "ch") {
		return fmt.Sprintf("%d %ses", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
