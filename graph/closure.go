package graph

// Closure returns known plus everything known items are built from,
// expanding at most DefaultClosureRounds levels.
func (g Graph) Closure(known []string) []string {
	return g.ClosureRounds(known, DefaultClosureRounds)
}

// ClosureRounds is Closure with an explicit expansion bound. Expansion
// stops after rounds levels even if new items are still turning up.
//
// The result holds each item once: known items in input order, then the
// items found by each round in prerequisite-list order. Known items the
// graph does not mention are kept but contribute nothing further.
func (g Graph) ClosureRounds(known []string, rounds int) []string {
	seen := make(map[string]bool, len(known))
	closure := make([]string, 0, len(known))
	add := func(item string) bool {
		if item == "" || seen[item] {
			return false
		}
		seen[item] = true
		closure = append(closure, item)
		return true
	}

	frontier := make([]string, 0, len(known))
	for _, item := range known {
		if add(item) {
			frontier = append(frontier, item)
		}
	}

	for round := 0; round < rounds && len(frontier) > 0; round++ {
		var next []string
		for _, item := range frontier {
			for _, prereq := range g[item] {
				if add(prereq) {
					next = append(next, prereq)
				}
			}
		}
		frontier = next
	}

	return closure
}
