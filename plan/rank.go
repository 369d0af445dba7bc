package plan

import "sort"

// Ranked is a candidate with its occurrence count.
type Ranked struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// Rank counts occurrences and returns the distinct items by count,
// highest first. Equal counts keep first-seen order.
func Rank(occurrences []string) []Ranked {
	index := make(map[string]int, len(occurrences))
	ranked := make([]Ranked, 0, len(occurrences))
	for _, item := range occurrences {
		if i, ok := index[item]; ok {
			ranked[i].Count++
			continue
		}
		index[item] = len(ranked)
		ranked = append(ranked, Ranked{Item: item, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
