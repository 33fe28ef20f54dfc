package similarity

import "github.com/resultugay/her/graph"

// bfsWalker mirrors bfs.BFS's queue/visited shape, narrowed to spair's exact
// need: up to k descendants within depth bfsDepth, recorded in BFS order
// with their depth from src. Grounded on the original tool's BFS helper
// (processing_utils.h).
func bfsDescendants(g *graph.Graph, src graph.ID, bfsDepth, k int) []Descendant {
	type queueItem struct {
		v     graph.ID
		depth int
	}

	visited := map[graph.ID]bool{src: true}
	queue := []queueItem{{v: src, depth: 0}}
	var out []Descendant

	for depth := 1; depth <= bfsDepth && len(queue) > 0; depth++ {
		var next []queueItem
		for _, item := range queue {
			for _, e := range g.OutEdges(item.v) {
				if visited[e.To] {
					continue
				}
				visited[e.To] = true
				out = append(out, Descendant{Vertex: e.To, Depth: depth})
				next = append(next, queueItem{v: e.To, depth: depth})
				if len(out) >= k {
					return out
				}
			}
		}
		queue = next
	}

	return out
}

// PrecomputedDescendants is an optional per-vertex descendant table for a
// target graph G, loaded from an on-disk descendants file. When present it
// lets DefaultDescendantProducer skip its own BFS for target-graph queries.
type PrecomputedDescendants map[graph.ID][]Descendant

// DefaultDescendantProducer implements h_r: BFS up to BFSDepth for any
// query, except that a target-graph (isTarget=true) query whose vertex has
// an entry in Precomputed returns that entry (capped to k) instead of
// re-running BFS, matching the original's desc_file short-circuit.
type DefaultDescendantProducer struct {
	BFSDepth    int
	Precomputed PrecomputedDescendants
}

// Descendants implements DescendantProducer.
func (d DefaultDescendantProducer) Descendants(g *graph.Graph, v graph.ID, k int, isTarget bool) []Descendant {
	if isTarget && d.Precomputed != nil {
		if desc, ok := d.Precomputed[v]; ok {
			if len(desc) > k {
				return desc[:k]
			}
			return desc
		}
	}
	return bfsDescendants(g, v, d.BFSDepth, k)
}
