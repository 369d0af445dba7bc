// Package graph models prerequisite relationships between study items.
//
// A Graph maps each compound item (a kanji, a vocabulary word) to the
// ordered list of items it is built from. Any item that is not a key, or
// whose list is empty, is a leaf: it can be learned directly.
//
// The package exposes the read-only queries the planner needs:
//   - Closure and ClosureRounds for expanding a known set
//   - Tree for rendering what an item is built from
//   - Check for structural statistics and cycle reporting
//   - ExpandWords for turning vocabulary into compounds of their characters
package graph

import "sort"

// DefaultClosureRounds bounds how many levels Closure expands.
const DefaultClosureRounds = 50

// Graph maps an item to its direct prerequisites. Lists may repeat an
// item; repeats are kept as given.
type Graph map[string][]string

// Prerequisites returns the direct prerequisites of item, or nil for a leaf.
func (g Graph) Prerequisites(item string) []string {
	return g[item]
}

// Has reports whether item is a key of the graph.
func (g Graph) Has(item string) bool {
	_, ok := g[item]
	return ok
}

// IsLeaf reports whether item has no prerequisites.
func (g Graph) IsLeaf(item string) bool {
	return len(g[item]) == 0
}

// Keys returns the graph keys in sorted order.
func (g Graph) Keys() []string {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Compounds returns the keys with at least one prerequisite, sorted.
func (g Graph) Compounds() []string {
	var compounds []string
	for _, key := range g.Keys() {
		if !g.IsLeaf(key) {
			compounds = append(compounds, key)
		}
	}
	return compounds
}

// Items returns every key and every referenced prerequisite, sorted.
func (g Graph) Items() []string {
	seen := make(map[string]bool, len(g))
	for key, prereqs := range g {
		seen[key] = true
		for _, prereq := range prereqs {
			seen[prereq] = true
		}
	}
	items := make([]string, 0, len(seen))
	for item := range seen {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// Clone returns a copy that shares no slices with g.
func (g Graph) Clone() Graph {
	out := make(Graph, len(g))
	for key, prereqs := range g {
		if prereqs == nil {
			out[key] = nil
			continue
		}
		out[key] = make([]string, len(prereqs))
		copy(out[key], prereqs)
	}
	return out
}
