package graphfile

import (
	"encoding/hex"
	"fmt"

	"github.com/amonks/unlockpath/graph"
	"github.com/zeebo/blake3"
)

// Digest returns a BLAKE3 hex digest of g. Graphs with the same keys and
// the same prerequisite lists, in the same order, share a digest. A nil
// list and an empty list hash the same.
func Digest(g graph.Graph) (string, error) {
	if g == nil {
		g = graph.Graph{}
	}
	data, err := digestEnc.Marshal(map[string][]string(g))
	if err != nil {
		return "", fmt.Errorf("encode graph for digest: %w", err)
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
