package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/unlockpath/graph"
	"github.com/amonks/unlockpath/graphfile"
	"github.com/amonks/unlockpath/internal/config"
	"github.com/amonks/unlockpath/internal/paths"
	internalstrings "github.com/amonks/unlockpath/internal/strings"
	"github.com/spf13/cobra"
)

var errNoGraph = errors.New("no graph file: pass --graph or set [graph] path in unlockpath.toml")

// settings are the flag values merged over unlockpath.toml.
type settings struct {
	config    *config.Config
	graphPath string
	split     graphfile.SplitMode
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	graphPath, err := paths.ResolveWithDefault(graphFlag, func() (string, error) {
		if cfg.Graph.Path == "" {
			return "", errNoGraph
		}
		return cfg.Graph.Path, nil
	})
	if err != nil {
		return nil, err
	}

	split := splitFlag.mode
	if !hasChangedFlags(cmd, "split") && cfg.Graph.Split != "" {
		split, err = graphfile.ParseSplitMode(cfg.Graph.Split)
		if err != nil {
			return nil, fmt.Errorf("config [graph] split: %w", err)
		}
	}

	return &settings{config: cfg, graphPath: graphPath, split: split}, nil
}

func (s *settings) loadGraph() (graph.Graph, error) {
	return graphfile.Load(s.graphPath)
}

// readItems collects items from inline flag values and item list files, in
// that order. A file named "-" is read from stdin.
func (s *settings) readItems(inline, files []string) ([]string, error) {
	var items []string
	for _, value := range inline {
		parsed, err := splitInline(value, s.split)
		if err != nil {
			return nil, err
		}
		items = append(items, parsed...)
	}

	for _, path := range files {
		var (
			parsed []string
			err    error
		)
		if path == "-" {
			parsed, err = readItemsFrom(os.Stdin, s.split)
		} else {
			parsed, err = graphfile.ReadItems(path, s.split)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, parsed...)
	}
	return items, nil
}

// splitInline splits a flag value on commas and whitespace. In runes mode
// each piece is further split into characters.
func splitInline(value string, mode graphfile.SplitMode) ([]string, error) {
	parts := internalstrings.SplitList(value)
	if mode != graphfile.SplitRunes {
		return parts, nil
	}

	var items []string
	for _, part := range parts {
		chars, err := graphfile.SplitItems(part, mode)
		if err != nil {
			return nil, err
		}
		items = append(items, chars...)
	}
	return items, nil
}

func readItemsFrom(reader io.Reader, mode graphfile.SplitMode) ([]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read items from stdin: %w", err)
	}
	return graphfile.SplitItems(strings.TrimPrefix(string(data), "\ufeff"), mode)
}
