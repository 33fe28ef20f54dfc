package spair

import (
	"sort"

	"github.com/resultugay/her/graph"
	"github.com/resultugay/her/similarity"
)

// maxDepth is the hard recursion cutoff. Not part of the semantic
// definition of match(u,v) — a safeguard against cyclic graphs — so a call
// that hits it returns false without caching, leaving shallower contexts
// free to re-explore the same pair.
const maxDepth = 10

// Params bundles the thresholds spair.Engine needs: Sigma (vertex
// similarity threshold), Delta (path-accumulation threshold), and K (the
// descendant fan-out cap passed to h_r).
type Params struct {
	Sigma float64
	Delta float64
	K     int
}

// Engine decides match(u,v) for vertex pairs between gd (G_D, the query
// graph) and g (G, the target graph), using the vertex/path/descendant
// scoring capability set. It owns its Cache, reverse-cache, and per-graph
// descendant caches; none of this state is safe for concurrent use.
type Engine struct {
	gd, g *graph.Graph
	hv    similarity.VertexScorer
	hp    similarity.PathScorer
	hr    similarity.DescendantProducer
	p     Params

	cache   *Cache
	reverse *reverseCache

	descGD map[graph.ID][]similarity.Descendant
	descG  map[graph.ID][]similarity.Descendant
}

// NewEngine constructs an Engine. gd and g must outlive the Engine; they
// are never mutated.
func NewEngine(gd, g *graph.Graph, hv similarity.VertexScorer, hp similarity.PathScorer, hr similarity.DescendantProducer, p Params) *Engine {
	return &Engine{
		gd: gd, g: g,
		hv: hv, hp: hp, hr: hr,
		p:       p,
		cache:   newCache(),
		reverse: newReverseCache(),
		descGD:  make(map[graph.ID][]similarity.Descendant),
		descG:   make(map[graph.ID][]similarity.Descendant),
	}
}

// Cache exposes the engine's memoization cache for read-only pre-checks by
// vpair/apair before issuing a fresh Query (avoiding a redundant call into
// the recursion for an already-decided pair).
func (e *Engine) Cache() *Cache { return e.cache }

// Query decides match(u,v), starting recursion at depth 1.
func (e *Engine) Query(u, v graph.ID) bool {
	return e.query(u, v, 1)
}

func (e *Engine) query(u, v graph.ID, depth int) bool {
	key := NewKey(u, v)

	if match, hit := e.cache.lookup(key); hit {
		return match
	}

	if depth > maxDepth {
		return false
	}

	sim := e.hv.Score(e.gd, u, e.g, v)
	if sim < e.p.Sigma {
		e.cache.markUnmatchedAndClear(key)
		return false
	}

	if e.gd.OutDegree(u) == 0 {
		e.cache.m[key] = &entry{match: true}
		return true
	}

	uDescendants, ok := e.descGD[u]
	if !ok {
		uDescendants = e.hr.Descendants(e.gd, u, e.p.K, false)
		e.descGD[u] = uDescendants
	}
	vDescendants, ok := e.descG[v]
	if !ok {
		vDescendants = e.hr.Descendants(e.g, v, e.p.K, true)
		e.descG[v] = vDescendants
	}

	// Optimistic positive mark: lets cycles in mutually recursive calls
	// resolve instead of infinitely recursing.
	supported := e.cache.markMatchedAndReturn(key)

	var sum float64
	for _, ud := range uDescendants {
		u1, u1Depth := ud.Vertex, ud.Depth

		type candidate struct {
			v1      graph.ID
			v1Depth int
			score   float64
		}
		var candidates []candidate
		for _, vd := range vDescendants {
			if e.hv.Score(e.gd, u1, e.g, vd.Vertex) >= e.p.Sigma {
				candidates = append(candidates, candidate{
					v1: vd.Vertex, v1Depth: vd.Depth,
					score: e.hp.Score(e.gd, u, u1, e.g, v, vd.Vertex),
				})
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})

		for _, c := range candidates {
			key1 := NewKey(u1, c.v1)

			var m bool
			if cached, hit := e.cache.lookup(key1); hit {
				m = cached
			} else {
				m = e.query(u1, c.v1, depth+1)
			}

			if !m {
				continue
			}

			depthDenom := u1Depth
			if c.v1Depth > depthDenom {
				depthDenom = c.v1Depth
			}
			sum += c.score / float64(depthDenom)
			supported[key1] = struct{}{}
			e.reverse.add(key1, key)
			break
		}

		if sum >= e.p.Delta {
			return true
		}
	}

	// Cleanup: the optimistic mark did not pan out. Revoke it and re-decide
	// every ancestor that relied on this pair being positive.
	e.cache.markUnmatchedAndClear(key)

	parents := e.reverse.snapshotAndClear(key)
	for _, parent := range parents {
		e.cache.erase(parent)
		e.query(parent.U(), parent.V(), depth+1)
	}

	return false
}
