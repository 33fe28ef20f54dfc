// Package vpair implements the one-to-many query: for a single vertex u of
// G_D, enumerate every v of G that semantically simulates it.
//
// Grounded on the original tool's her/vpair.h.
package vpair

import (
	"sort"

	"github.com/resultugay/her/graph"
	"github.com/resultugay/her/similarity"
	"github.com/resultugay/her/spair"
)

// Engine answers VPair queries for one (gd, g) pair, owning a single SPair
// engine (and thus cache) shared across every Query call it makes.
type Engine struct {
	gd, g *graph.Graph
	hv    similarity.VertexScorer
	sp    *spair.Engine
	sigma float64
}

// NewEngine constructs a vpair Engine with its own fresh spair.Engine.
func NewEngine(gd, g *graph.Graph, hv similarity.VertexScorer, hp similarity.PathScorer, hr similarity.DescendantProducer, p spair.Params) *Engine {
	return &Engine{
		gd: gd, g: g,
		hv:    hv,
		sp:    spair.NewEngine(gd, g, hv, hp, hr, p),
		sigma: p.Sigma,
	}
}

// Query enumerates candidates C = {v : h_v(u,v) >= sigma}, sorts them by
// ascending out-degree (cheaper targets decided first), then returns the
// subsequence that SPair.Query confirms as a match, in decision order.
func (e *Engine) Query(u graph.ID) []graph.ID {
	var candidates []graph.ID
	for _, v := range e.g.Vertices() {
		if e.hv.Score(e.gd, u, e.g, v) >= e.sigma {
			candidates = append(candidates, v)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return e.g.OutDegree(candidates[i]) < e.g.OutDegree(candidates[j])
	})

	var matched []graph.ID
	cache := e.sp.Cache()
	for _, v := range candidates {
		key := spair.NewKey(u, v)
		match, hit := cache.Match(key)
		if !hit {
			match = e.sp.Query(u, v)
		}
		if match {
			matched = append(matched, v)
		}
	}

	return matched
}
