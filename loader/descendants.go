package loader

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/resultugay/her/graph"
	"github.com/resultugay/her/similarity"
)

// LoadDescendants parses a desc_file: each line is "<v_oid> <d1_oid>
// <depth1> <d2_oid> <depth2> ...", listing precomputed descendants of
// vertex v_oid in g. A line whose v_oid (or an individual descendant oid)
// is not a vertex of g is silently skipped, matching the original tool's
// HasOid guard rather than failing the whole file. Grounded on her.h's
// LoadData desc_file block.
func LoadDescendants(path string, g *graph.Graph) (similarity.PrecomputedDescendants, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(similarity.PrecomputedDescendants)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		v, ok := g.GetInternal(tokens[0])
		if !ok {
			continue
		}

		rest := tokens[1:]
		var descendants []similarity.Descendant
		for i := 0; i+1 < len(rest); i += 2 {
			d, ok := g.GetInternal(rest[i])
			if !ok {
				continue
			}
			depth, err := strconv.Atoi(rest[i+1])
			if err != nil {
				break
			}
			descendants = append(descendants, similarity.Descendant{Vertex: d, Depth: depth})
		}

		if descendants != nil {
			out[v] = descendants
		}
	}

	return out, scanner.Err()
}
