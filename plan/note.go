package plan

import "fmt"

// NoteKind says why an item was unlocked.
type NoteKind int

const (
	// NoteKnown marks items in the closure of the known set.
	NoteKnown NoteKind = iota

	// NotePrerequisites marks targets promoted because every prerequisite was unlocked.
	NotePrerequisites

	// NoteUnlockNow marks batch members that complete Count targets.
	NoteUnlockNow

	// NoteUsedIn marks a fallback pick. Count is how often it occurs in the
	// prerequisite lists of the remaining targets.
	NoteUsedIn
)

// Note is the justification recorded for an unlocked item.
type Note struct {
	Kind  NoteKind
	Count int
}

// String renders the note in the fixed vocabulary.
func (n Note) String() string {
	switch n.Kind {
	case NoteKnown:
		return "already known"
	case NotePrerequisites:
		return "all prerequisites known"
	case NoteUnlockNow:
		return fmt.Sprintf("will unlock %d now", n.Count)
	case NoteUsedIn:
		return fmt.Sprintf("used in %d remaining items", n.Count)
	default:
		return fmt.Sprintf("note(%d)", int(n.Kind))
	}
}

// MarshalText encodes the note as its rendered string.
func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
