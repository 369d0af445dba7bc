package plan

import (
	"slices"

	"github.com/amonks/unlockpath/graph"
	"github.com/amonks/unlockpath/internal/combin"
)

// Run plans the order in which to learn prerequisites of targets.
//
// Known items and their closure seed the result as "already known".
// Each iteration first promotes, until nothing changes, every target
// whose prerequisites are all unlocked. If targets remain, it then
// learns one batch: the BatchSize subset of the CandidateCap most needed
// prerequisites that completes the most targets, preferring the subset
// with the highest combined frequency and then the first one generated.
// When no subset completes anything, the single most needed prerequisite
// is learned instead.
//
// Run stops when every target is unlocked or IterationLimit iterations
// have run. Targets still locked are returned in Result.Locked.
func Run(g graph.Graph, known, targets []string, opts Options) (*Result, error) {
	if err := Validate(opts); err != nil {
		return nil, err
	}

	s := newScheduler(g, opts)
	for _, item := range g.ClosureRounds(known, opts.ClosureRounds) {
		s.unlock(item, Note{Kind: NoteKnown}, 0)
	}
	s.lockTargets(targets)

	for len(s.locked) > 0 {
		if opts.IterationLimit >= 0 && s.result.Iterations >= opts.IterationLimit {
			break
		}
		s.result.Iterations++
		iteration := s.result.Iterations
		s.logger.Iteration(IterationLog{
			Iteration: iteration,
			Unlocked:  len(s.result.Unlocked),
			Locked:    len(s.locked),
		})

		for pass := 1; ; pass++ {
			promoted := s.promote(iteration)
			if len(promoted) == 0 {
				break
			}
			s.logger.Promote(PromoteLog{Iteration: iteration, Pass: pass, Items: promoted})
		}

		if len(s.locked) == 0 {
			break
		}
		if !s.learnBatch(iteration) {
			break
		}
	}

	s.result.Locked = append([]string{}, s.locked...)
	return s.result, nil
}

type scheduler struct {
	graph    graph.Graph
	opts     Options
	logger   Logger
	unlocked map[string]bool
	locked   []string
	result   *Result
}

func newScheduler(g graph.Graph, opts Options) *scheduler {
	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	return &scheduler{
		graph:    g,
		opts:     opts,
		logger:   logger,
		unlocked: make(map[string]bool),
		result:   &Result{},
	}
}

// unlock records item once; later calls for the same item are ignored so
// a note is never replaced.
func (s *scheduler) unlock(item string, note Note, iteration int) {
	if s.unlocked[item] {
		return
	}
	s.unlocked[item] = true
	s.result.Unlocked = append(s.result.Unlocked, Entry{Item: item, Note: note, Iteration: iteration})
}

func (s *scheduler) lockTargets(targets []string) {
	seen := make(map[string]bool, len(targets))
	for _, target := range targets {
		if target == "" || seen[target] || s.unlocked[target] {
			continue
		}
		seen[target] = true
		s.locked = append(s.locked, target)
	}
}

// missing returns the distinct prerequisites of item that are not
// unlocked, in list order.
func (s *scheduler) missing(item string) []string {
	var out []string
	for _, prereq := range s.graph.Prerequisites(item) {
		if s.unlocked[prereq] || slices.Contains(out, prereq) {
			continue
		}
		out = append(out, prereq)
	}
	return out
}

// promote runs one promotion pass. Every target is judged against the
// unlocked set as it was when the pass began; promotions are applied
// afterwards in target order.
func (s *scheduler) promote(iteration int) []string {
	var ready, still []string
	for _, item := range s.locked {
		if len(s.missing(item)) == 0 {
			ready = append(ready, item)
		} else {
			still = append(still, item)
		}
	}
	if len(ready) == 0 {
		return nil
	}
	for _, item := range ready {
		s.unlock(item, Note{Kind: NotePrerequisites}, iteration)
	}
	s.locked = still
	return ready
}

// learnBatch runs one batch selection. It reports false when there is
// nothing left to learn.
func (s *scheduler) learnBatch(iteration int) bool {
	needs := make([][]string, len(s.locked))
	var occurrences []string
	for i, item := range s.locked {
		needs[i] = s.missing(item)
		for _, prereq := range s.graph.Prerequisites(item) {
			if !s.unlocked[prereq] {
				occurrences = append(occurrences, prereq)
			}
		}
	}

	ranked := Rank(occurrences)
	if len(ranked) == 0 {
		return false
	}
	s.result.Batches++

	candidates := ranked
	if len(candidates) > s.opts.CandidateCap {
		candidates = candidates[:s.opts.CandidateCap]
	}
	size := s.opts.BatchSize
	if size > len(candidates) {
		size = len(candidates)
	}

	best, completes, searched := bestSubset(candidates, size, needs)

	entry := BatchLog{
		Iteration:  iteration,
		Candidates: candidates,
		Searched:   searched,
	}
	if completes == 0 {
		top := ranked[0]
		s.learn(top.Item, Note{Kind: NoteUsedIn, Count: top.Count}, iteration)
		entry.Chosen = []string{top.Item}
		entry.Fallback = true
		entry.Count = top.Count
	} else {
		for _, item := range best {
			s.learn(item, Note{Kind: NoteUnlockNow, Count: completes}, iteration)
		}
		entry.Chosen = best
		entry.Count = completes
	}
	s.logger.Batch(entry)
	return true
}

// learn unlocks a batch member and drops it from the targets if it was one.
func (s *scheduler) learn(item string, note Note, iteration int) {
	s.unlock(item, note, iteration)
	for i, target := range s.locked {
		if target == item {
			s.locked = append(s.locked[:i:i], s.locked[i+1:]...)
			break
		}
	}
}

// bestSubset searches every size-r subset of candidates and returns the
// one completing the most needs, with how many it completes and how many
// subsets were tried. Every maximal subset is collected before ties are
// broken by combined count, then generation order.
func bestSubset(candidates []Ranked, r int, needs [][]string) ([]string, int, int) {
	var maximal [][]Ranked
	bestCompletes := 0
	searched := combin.Count(len(candidates), r)

	for subset := range combin.Of(candidates, r) {
		completes := 0
		for _, need := range needs {
			if coveredBy(need, subset) {
				completes++
			}
		}
		switch {
		case completes > bestCompletes:
			bestCompletes = completes
			maximal = [][]Ranked{subset}
		case completes == bestCompletes && completes > 0:
			maximal = append(maximal, subset)
		}
	}
	if bestCompletes == 0 {
		return nil, 0, searched
	}

	chosen := maximal[0]
	chosenWeight := weight(chosen)
	for _, subset := range maximal[1:] {
		if w := weight(subset); w > chosenWeight {
			chosen = subset
			chosenWeight = w
		}
	}

	items := make([]string, len(chosen))
	for i, candidate := range chosen {
		items[i] = candidate.Item
	}
	return items, bestCompletes, searched
}

func coveredBy(need []string, subset []Ranked) bool {
	for _, item := range need {
		found := false
		for _, candidate := range subset {
			if candidate.Item == item {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func weight(subset []Ranked) int {
	total := 0
	for _, candidate := range subset {
		total += candidate.Count
	}
	return total
}
