package similarity

import "github.com/resultugay/her/graph"

// VertexVectors is a per-graph array of averaged word-embedding vectors, one
// per vertex, filled once at load time (FillWordVectors) rather than
// recomputed on every DefaultVertexScorer.Score call.
type VertexVectors [][]float64

// FillWordVectors computes TextToVector(embeddings, g.Label(v)) for every
// vertex of g. Grounded on the original tool's FillWordVector, which does
// this in parallel across worker goroutines over contiguous vertex-id
// ranges; done here with a fixed-size worker pool for the same reason (the
// per-vertex cost, an embedding-table lookup per label word, is small and
// independent).
func FillWordVectors(g *graph.Graph, embeddings Embeddings, parallelism int) VertexVectors {
	n := g.VertexCount()
	vectors := make(VertexVectors, n)
	if n == 0 {
		return vectors
	}
	if parallelism < 1 {
		parallelism = 1
	}
	if parallelism > n {
		parallelism = n
	}

	chunk := (n + parallelism - 1) / parallelism
	done := make(chan struct{}, parallelism)
	workers := 0
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		workers++
		go func(start, end int) {
			for v := start; v < end; v++ {
				vectors[v] = TextToVector(embeddings, g.Label(v))
			}
			done <- struct{}{}
		}(start, end)
	}
	for i := 0; i < workers; i++ {
		<-done
	}

	return vectors
}

// DefaultVertexScorer implements h_v: exact label match scores 1.0, a
// synonym-table hit scores the synonym's score, otherwise cosine similarity
// over precomputed word-embedding vectors. Grounded on the original tool's
// h_v lambda in her.h.
type DefaultVertexScorer struct {
	Synonyms  SynonymTable
	GDVectors VertexVectors
	GVectors  VertexVectors
}

// Score implements VertexScorer.
func (s DefaultVertexScorer) Score(gd *graph.Graph, u graph.ID, g *graph.Graph, v graph.ID) float64 {
	uLabel := gd.Label(u)
	vLabel := g.Label(v)

	if uLabel == vLabel {
		return 1.0
	}
	if score, ok := s.Synonyms.Lookup(uLabel, vLabel); ok {
		return score
	}

	var uVec, vVec []float64
	if u < len(s.GDVectors) {
		uVec = s.GDVectors[u]
	}
	if v < len(s.GVectors) {
		vVec = s.GVectors[v]
	}
	return CosineSimilarity(uVec, vVec)
}
