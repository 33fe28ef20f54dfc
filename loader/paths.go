package loader

import (
	"bufio"
	"os"
	"strings"

	"github.com/resultugay/her/graph"
	"github.com/resultugay/her/similarity"
)

// LoadPaths parses a path_file: each line is "<v1_oid> <v2_oid>
// <path_labels>", a precomputed path-label string between v1 and v2 in g.
// The label token has ';' and ',' rewritten to spaces and is lowercased,
// matching the original tool's boost::replace pass. A line whose endpoints
// are not vertices of g is silently skipped. Grounded on her.h's LoadData
// path_file block.
func LoadPaths(path string, g *graph.Graph) (similarity.PrecomputedPaths, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(similarity.PrecomputedPaths)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) < 3 {
			continue
		}

		v1, ok := g.GetInternal(tokens[0])
		if !ok {
			continue
		}
		v2, ok := g.GetInternal(tokens[1])
		if !ok {
			continue
		}

		label := strings.ToLower(tokens[2])
		label = strings.ReplaceAll(label, ";", " ")
		label = strings.ReplaceAll(label, ",", " ")

		byV1, ok := out[v1]
		if !ok {
			byV1 = make(map[graph.ID]string)
			out[v1] = byV1
		}
		byV1[v2] = label
	}

	return out, scanner.Err()
}
