package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/amonks/unlockpath/graph"
	"github.com/amonks/unlockpath/internal/ui"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree <item>...",
	Short: "Show what an item is built from",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	g, err := s.loadGraph()
	if err != nil {
		return err
	}

	items := g.Items()
	for i, item := range args {
		if i > 0 {
			fmt.Println()
		}
		if !slices.Contains(items, item) {
			fmt.Printf("%s %s\n", ui.HighlightItem(item), ui.Muted("(not in graph)"))
			continue
		}
		printTree(os.Stdout, g.Tree(item), ui.HighlightItem)
	}
	return nil
}

// printTree prints a prerequisite tree with ASCII art.
func printTree(w io.Writer, node *graph.Tree, highlight func(string) string) {
	fmt.Fprintln(w, treeLabel(node, highlight(node.Item)))
	printTreeChildren(w, node.Children, "")
}

func printTreeChildren(w io.Writer, children []*graph.Tree, prefix string) {
	for i, child := range children {
		isLast := i == len(children)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, treeLabel(child, child.Item))
		printTreeChildren(w, child.Children, childPrefix)
	}
}

func treeLabel(node *graph.Tree, label string) string {
	if node.Cycle {
		return label + " " + ui.Muted("(cycle)")
	}
	return label
}
