package similarity

import "github.com/resultugay/her/graph"

// Descendant pairs a vertex with its BFS depth from the query origin.
type Descendant struct {
	Vertex graph.ID
	Depth  int
}

// VertexScorer computes h_v(u, v) in [0,1]: how similar vertex u of gd is to
// vertex v of g. Pure; no side effects.
type VertexScorer interface {
	Score(gd *graph.Graph, u graph.ID, g *graph.Graph, v graph.ID) float64
}

// PathScorer computes h_p(u, u', v, v') in [0,1]: how similar the edge
// label path u->u' in gd is to the edge label path v->v' in g. Pure.
type PathScorer interface {
	Score(gd *graph.Graph, u, u1 graph.ID, g *graph.Graph, v, v1 graph.ID) float64
}

// DescendantProducer computes h_r(graph, vertex, k, isTarget), returning up
// to k descendants ordered by the producer's own policy (typically BFS
// order). isTarget distinguishes a call against G (the target graph, which
// may have precomputed descendants) from one against G_D.
type DescendantProducer interface {
	Descendants(g *graph.Graph, v graph.ID, k int, isTarget bool) []Descendant
}

// VertexScorerFunc adapts a plain function to VertexScorer.
type VertexScorerFunc func(gd *graph.Graph, u graph.ID, g *graph.Graph, v graph.ID) float64

func (f VertexScorerFunc) Score(gd *graph.Graph, u graph.ID, g *graph.Graph, v graph.ID) float64 {
	return f(gd, u, g, v)
}

// PathScorerFunc adapts a plain function to PathScorer.
type PathScorerFunc func(gd *graph.Graph, u, u1 graph.ID, g *graph.Graph, v, v1 graph.ID) float64

func (f PathScorerFunc) Score(gd *graph.Graph, u, u1 graph.ID, g *graph.Graph, v, v1 graph.ID) float64 {
	return f(gd, u, u1, g, v, v1)
}

// DescendantProducerFunc adapts a plain function to DescendantProducer.
type DescendantProducerFunc func(g *graph.Graph, v graph.ID, k int, isTarget bool) []Descendant

func (f DescendantProducerFunc) Descendants(g *graph.Graph, v graph.ID, k int, isTarget bool) []Descendant {
	return f(g, v, k, isTarget)
}
