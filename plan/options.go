// Package plan orders prerequisites so that target items unlock early.
//
// Run takes a prerequisite graph, the items already known, and the items
// the caller wants to learn. It repeatedly promotes targets whose
// prerequisites are all unlocked, and when nothing can be promoted it
// picks the next batch of prerequisites to learn: the fixed-size subset
// of the most frequently needed candidates that completes the most
// targets at once.
//
// The search is greedy and bounded by CandidateCap and BatchSize. It does
// not guarantee the fewest steps.
package plan

import (
	"errors"
	"fmt"

	"github.com/amonks/unlockpath/graph"
)

const (
	// Unbounded disables the iteration limit.
	Unbounded = -1

	// DefaultCandidateCap is how many top-ranked candidates a batch search considers.
	DefaultCandidateCap = 20

	// DefaultBatchSize is how many prerequisites each batch learns.
	DefaultBatchSize = 2
)

var (
	// ErrInvalidBatchSize is returned when BatchSize is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrInvalidCandidateCap is returned when CandidateCap is not positive.
	ErrInvalidCandidateCap = errors.New("candidate cap must be positive")

	// ErrInvalidClosureRounds is returned when ClosureRounds is not positive.
	ErrInvalidClosureRounds = errors.New("closure rounds must be positive")
)

// Options configures a Run.
type Options struct {
	// IterationLimit caps the number of iterations. Negative values mean
	// no limit; zero returns the known closure without planning.
	IterationLimit int

	// CandidateCap is the number of highest-frequency candidates a batch
	// search draws subsets from.
	CandidateCap int

	// BatchSize is the size of the subsets a batch search tries.
	BatchSize int

	// ClosureRounds bounds the expansion of the known set.
	ClosureRounds int

	// Logger receives progress entries. Nil discards them.
	Logger Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		IterationLimit: Unbounded,
		CandidateCap:   DefaultCandidateCap,
		BatchSize:      DefaultBatchSize,
		ClosureRounds:  graph.DefaultClosureRounds,
	}
}

// Validate checks that opts can drive a Run.
func Validate(opts Options) error {
	if opts.BatchSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBatchSize, opts.BatchSize)
	}
	if opts.CandidateCap <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCandidateCap, opts.CandidateCap)
	}
	if opts.ClosureRounds <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidClosureRounds, opts.ClosureRounds)
	}
	return nil
}
