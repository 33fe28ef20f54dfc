package apair

import (
	"sort"
	"sync"

	"github.com/resultugay/her/graph"
	"github.com/resultugay/her/index"
	"github.com/resultugay/her/similarity"
	"github.com/resultugay/her/spair"
)

// Pair is one matched (u,v) vertex pair, u from G_D and v from G.
type Pair struct {
	U, V graph.ID
}

// Params bundles apair's configuration: the shared SPair thresholds plus
// the SPMD shape (Rank/WorldSize) and intra-rank goroutine fan-out
// (Parallelism).
type Params struct {
	SPair       spair.Params
	Rank        int
	WorldSize   int
	Parallelism int
}

// candidateGroup is one u and its sorted, h_v-filtered candidate v's.
type candidateGroup struct {
	u  graph.ID
	vs []graph.ID
}

// Engine runs the APair driver for one rank of an SPMD world.
type Engine struct {
	gd, g *graph.Graph
	hv    similarity.VertexScorer
	idx   *index.Index

	gdSourceLabels map[string]struct{}
	gSourceLabels  map[string]struct{}

	sp *spair.Engine
	p  Params
}

// NewEngine constructs an apair Engine with its own fresh spair.Engine; the
// cache it owns is shared across every pair this rank decides, but never
// across ranks.
func NewEngine(gd, g *graph.Graph, hv similarity.VertexScorer, hp similarity.PathScorer, hr similarity.DescendantProducer, idx *index.Index, gdSourceLabels, gSourceLabels map[string]struct{}, p Params) *Engine {
	return &Engine{
		gd: gd, g: g,
		hv:             hv,
		idx:            idx,
		gdSourceLabels: gdSourceLabels,
		gSourceLabels:  gSourceLabels,
		sp:             spair.NewEngine(gd, g, hv, hp, hr, p.SPair),
		p:              p,
	}
}

// Query runs candidate generation (sharded by rank, split across worker
// goroutines) followed by a single-threaded decision phase, returning this
// rank's matched pairs.
func (e *Engine) Query() []Pair {
	candidates := e.generateCandidates()
	return e.decide(candidates)
}

// generateCandidates runs the candidate-generation phase: a seed-0
// deterministic shuffle of every G_D vertex, sharded into this rank's
// contiguous chunk, further split across Parallelism worker goroutines,
// each producing (u, sorted-by-out-degree candidates) groups merged under
// one mutex.
func (e *Engine) generateCandidates() []candidateGroup {
	allVertices := e.gd.Vertices()
	shuffled := make([]int, len(allVertices))
	copy(shuffled, allVertices)
	shuffleSeed0(shuffled)

	worldSize := e.p.WorldSize
	if worldSize < 1 {
		worldSize = 1
	}
	rankStart, rankEnd := chunkBounds(len(shuffled), worldSize, e.p.Rank)
	localVertices := shuffled[rankStart:rankEnd]

	parallelism := e.p.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	if parallelism > len(localVertices) && len(localVertices) > 0 {
		parallelism = len(localVertices)
	}
	if parallelism < 1 {
		parallelism = 1
	}

	var mu sync.Mutex
	var merged []candidateGroup
	var wg sync.WaitGroup

	for t := 0; t < parallelism; t++ {
		start, end := chunkBounds(len(localVertices), parallelism, t)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(sub []int) {
			defer wg.Done()
			local := e.filterWorkerChunk(sub)
			mu.Lock()
			merged = append(merged, local...)
			mu.Unlock()
		}(localVertices[start:end])
	}
	wg.Wait()

	return merged
}

// filterWorkerChunk applies the per-worker candidate filter to one
// contiguous sub-chunk of u's. Preserves the original tool's observed
// quirk: the inverted index is queried with u_label before the
// gd_source_labels membership check runs, so a u outside gd_source_labels
// still pays for an index lookup; only the final candidate set is affected
// by the membership check.
func (e *Engine) filterWorkerChunk(us []graph.ID) []candidateGroup {
	var local []candidateGroup

	for _, u := range us {
		if e.gd.OutDegree(u) == 0 {
			continue
		}
		uLabel := e.gd.Label(u)

		vList := e.idx.Query(uLabel)

		if _, ok := e.gdSourceLabels[uLabel]; !ok {
			continue
		}

		var vs []graph.ID
		for _, v := range vList {
			if e.g.OutDegree(v) == 0 {
				continue
			}
			vLabel := e.g.Label(v)
			if _, ok := e.gSourceLabels[vLabel]; !ok {
				continue
			}
			if e.hv.Score(e.gd, u, e.g, v) >= e.p.SPair.Sigma {
				vs = append(vs, v)
			}
		}

		if len(vs) == 0 {
			continue
		}
		sort.SliceStable(vs, func(i, j int) bool { return e.g.OutDegree(vs[i]) < e.g.OutDegree(vs[j]) })
		local = append(local, candidateGroup{u: u, vs: vs})
	}

	return local
}

// decide runs the decision phase: serially, for each (u, v) candidate,
// consult the shared cache before issuing a fresh SPair.Query.
func (e *Engine) decide(candidates []candidateGroup) []Pair {
	var result []Pair
	cache := e.sp.Cache()

	for _, group := range candidates {
		for _, v := range group.vs {
			key := spair.NewKey(group.u, v)
			match, hit := cache.Match(key)
			if !hit {
				match = e.sp.Query(group.u, v)
			}
			if match {
				result = append(result, Pair{U: group.u, V: v})
			}
		}
	}

	return result
}
