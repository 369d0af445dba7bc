// Package combin enumerates fixed-size subsets of a candidate list.
package combin

import "iter"

// Cursor yields every size-r subset of the positions 0..n-1, one at a
// time, in ascending lexicographic order of the chosen positions.
//
//	c := combin.New(4, 2)
//	for c.Next() {
//		use(c.Indices())
//	}
type Cursor struct {
	n       int
	r       int
	indices []int
	started bool
	done    bool
}

// New returns a cursor over the size-r subsets of n positions. When r is
// negative or larger than n the sequence is empty. When r is zero it
// holds exactly one empty subset.
func New(n, r int) *Cursor {
	c := &Cursor{n: n, r: r}
	c.Reset()
	return c
}

// Reset rewinds the cursor to before the first subset.
func (c *Cursor) Reset() {
	c.started = false
	c.done = c.r < 0 || c.r > c.n
	size := c.r
	if size < 0 {
		size = 0
	}
	c.indices = make([]int, size)
}

// Next advances to the next subset and reports whether there is one.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		for i := range c.indices {
			c.indices[i] = i
		}
		return true
	}

	// Rightmost position that has not reached its ceiling.
	i := c.r - 1
	for i >= 0 && c.indices[i] == c.n-c.r+i {
		i--
	}
	if i < 0 {
		c.done = true
		return false
	}
	c.indices[i]++
	for j := i + 1; j < c.r; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}
	return true
}

// Indices returns the current subset. The slice is reused by Next; copy
// it to keep it.
func (c *Cursor) Indices() []int {
	return c.indices
}

// Count returns the number of size-r subsets of n positions.
func Count(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	count := 1
	for i := 1; i <= r; i++ {
		count = count * (n - r + i) / i
	}
	return count
}

// Of yields every size-r subset of items, in the same order as Cursor.
// Each yielded slice is freshly allocated.
func Of[T any](items []T, r int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		c := New(len(items), r)
		for c.Next() {
			subset := make([]T, len(c.Indices()))
			for i, index := range c.Indices() {
				subset[i] = items[index]
			}
			if !yield(subset) {
				return
			}
		}
	}
}
