package similarity

import (
	"strings"

	"github.com/resultugay/her/graph"
)

// ConcatEdgeLabel reconstructs the edge-label path from src to dst as a
// single space-joined string by BFS, returning "" if dst is unreachable.
// Grounded on the original tool's ConcatEdgeLabel (processing_utils.h).
func ConcatEdgeLabel(g *graph.Graph, src, dst graph.ID) string {
	if src == dst {
		return ""
	}

	type frame struct {
		v    graph.ID
		path []string
	}

	visited := map[graph.ID]bool{src: true}
	queue := []frame{{v: src, path: nil}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, e := range g.OutEdges(cur.v) {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			path := append(append([]string(nil), cur.path...), e.Label)
			if e.To == dst {
				return strings.Join(path, " ")
			}
			queue = append(queue, frame{v: e.To, path: path})
		}
	}

	return ""
}

// PrecomputedPaths is an optional v1 -> v2 -> path-label table for a target
// graph G, loaded from an on-disk path file.
type PrecomputedPaths map[graph.ID]map[graph.ID]string

// DefaultPathScorer implements h_p: exact path-label match scores 1.0, a
// synonym-table hit scores the synonym's score, otherwise cosine similarity
// over the averaged word embeddings of both path-label strings. The g-side
// path label is looked up in Paths first (a precomputed path_file entry)
// before falling back to a live BFS reconstruction, matching the original.
type DefaultPathScorer struct {
	Embeddings Embeddings
	Synonyms   SynonymTable
	Paths      PrecomputedPaths
}

// Score implements PathScorer.
func (s DefaultPathScorer) Score(gd *graph.Graph, u, u1 graph.ID, g *graph.Graph, v, v1 graph.ID) float64 {
	pathUU1 := ConcatEdgeLabel(gd, u, u1)

	pathVV1 := ""
	if s.Paths != nil {
		if byV1, ok := s.Paths[v]; ok {
			if label, ok := byV1[v1]; ok {
				pathVV1 = label
			}
		}
	}
	if pathVV1 == "" {
		pathVV1 = ConcatEdgeLabel(g, v, v1)
	}

	if pathUU1 == "" || pathVV1 == "" {
		return 0
	}
	if pathUU1 == pathVV1 {
		return 1.0
	}
	if score, ok := s.Synonyms.Lookup(pathUU1, pathVV1); ok {
		return score
	}

	vecA := TextToVector(s.Embeddings, pathUU1)
	vecB := TextToVector(s.Embeddings, pathVV1)
	return CosineSimilarity(vecA, vecB)
}
