package graph

import "unicode"

// ExpandWords returns a copy of g in which each word that is not already
// a key becomes a compound of its characters that are keys. Repeated
// characters stay repeated.
//
// A word containing a Han character the graph does not know cannot be
// planned for; such words are returned as unresolved and left out of the
// copy. Kana and punctuation are ignored.
func (g Graph) ExpandWords(words []string) (Graph, []string) {
	out := g.Clone()
	var unresolved []string
	seen := make(map[string]bool, len(words))

	for _, word := range words {
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		if g.Has(word) {
			continue
		}

		var prereqs []string
		missing := false
		for _, r := range word {
			char := string(r)
			if g.Has(char) {
				prereqs = append(prereqs, char)
				continue
			}
			if unicode.Is(unicode.Han, r) {
				missing = true
				break
			}
		}

		if missing {
			unresolved = append(unresolved, word)
			continue
		}
		if len(prereqs) > 0 {
			out[word] = prereqs
		}
	}

	return out, unresolved
}
