package plan

// Entry is one unlocked item, in the order it was unlocked.
type Entry struct {
	Item string `json:"item"`
	Note Note   `json:"note"`

	// Iteration is the iteration that unlocked the item; 0 for known items.
	Iteration int `json:"iteration"`
}

// Result is the outcome of a Run.
type Result struct {
	// Unlocked lists unlocked items in unlock order.
	Unlocked []Entry `json:"unlocked"`

	// Locked lists targets that were never reached, in target order.
	Locked []string `json:"locked"`

	// Iterations is how many iterations ran.
	Iterations int `json:"iterations"`

	// Batches is how many batch selections ran.
	Batches int `json:"batches"`
}

// Complete reports whether every target was unlocked.
func (r *Result) Complete() bool {
	return len(r.Locked) == 0
}

// Note returns the note recorded for item.
func (r *Result) Note(item string) (Note, bool) {
	for _, entry := range r.Unlocked {
		if entry.Item == item {
			return entry.Note, true
		}
	}
	return Note{}, false
}

// Items returns the unlocked items in order.
func (r *Result) Items() []string {
	items := make([]string, len(r.Unlocked))
	for i, entry := range r.Unlocked {
		items[i] = entry.Item
	}
	return items
}
