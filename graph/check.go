package graph

import "sort"

// Report summarizes the structure of a graph.
type Report struct {
	// Items counts keys plus referenced prerequisites.
	Items int `json:"items"`

	// Compounds counts keys with at least one prerequisite.
	Compounds int `json:"compounds"`

	// Leaves counts items with no prerequisites.
	Leaves int `json:"leaves"`

	// Edges counts prerequisite list entries, repeats included.
	Edges int `json:"edges"`

	// Duplicates counts entries that repeat an earlier entry of the same list.
	Duplicates int `json:"duplicates"`

	// Empty lists keys whose prerequisite list is empty, sorted.
	Empty []string `json:"empty,omitempty"`

	// Cycles lists each cycle found, as a closed path like [a b a].
	Cycles [][]string `json:"cycles,omitempty"`
}

// HasCycles reports whether any cycle was found.
func (r Report) HasCycles() bool {
	return len(r.Cycles) > 0
}

// Check walks the graph and reports its shape.
func (g Graph) Check() Report {
	var report Report
	items := g.Items()
	report.Items = len(items)

	for _, item := range items {
		prereqs, ok := g[item]
		if !ok || len(prereqs) == 0 {
			report.Leaves++
			if ok {
				report.Empty = append(report.Empty, item)
			}
			continue
		}
		report.Compounds++
		report.Edges += len(prereqs)
		listed := make(map[string]bool, len(prereqs))
		for _, prereq := range prereqs {
			if listed[prereq] {
				report.Duplicates++
			}
			listed[prereq] = true
		}
	}

	report.Cycles = g.cycles()
	return report
}

type visitState int

const (
	visitNew visitState = iota
	visitVisiting
	visitDone
)

// cycles runs a depth-first search from each key in sorted order and
// records one cycle per back edge.
func (g Graph) cycles() [][]string {
	state := make(map[string]visitState, len(g))
	onStack := make(map[string]int)
	var stack []string
	var found [][]string

	var visit func(item string)
	visit = func(item string) {
		state[item] = visitVisiting
		onStack[item] = len(stack)
		stack = append(stack, item)

		for _, prereq := range g[item] {
			switch state[prereq] {
			case visitNew:
				visit(prereq)
			case visitVisiting:
				start := onStack[prereq]
				cycle := append([]string(nil), stack[start:]...)
				cycle = append(cycle, prereq)
				found = append(found, cycle)
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, item)
		state[item] = visitDone
	}

	for _, key := range g.Keys() {
		if state[key] == visitNew {
			visit(key)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i][0] < found[j][0]
	})
	return found
}
