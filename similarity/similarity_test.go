package similarity_test

import (
	"testing"

	"github.com/resultugay/her/graph"
	"github.com/resultugay/her/similarity"
)

func buildChain(t *testing.T) (*graph.Graph, graph.ID, graph.ID, graph.ID) {
	t.Helper()
	b := graph.NewBuilder(false)
	a := mustAdd(t, b, "a", "cat")
	c := mustAdd(t, b, "b", "dog")
	d := mustAdd(t, b, "c", "bird")
	if err := b.AddEdge(a, c, "has"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddEdge(c, d, "chases"); err != nil {
		t.Fatal(err)
	}
	return b.Build(), a, c, d
}

func mustAdd(t *testing.T, b *graph.Builder, ext, label string) graph.ID {
	t.Helper()
	id, err := b.AddVertex(ext, label)
	if err != nil {
		t.Fatalf("AddVertex(%q): %v", ext, err)
	}
	return id
}

func TestDefaultVertexScorer_ExactAndSynonym(t *testing.T) {
	g, a, c, _ := buildChain(t)
	synonyms := similarity.SynonymTable{}
	synonyms[[2]string{"cat", "dog"}] = 0.6

	scorer := similarity.DefaultVertexScorer{Synonyms: synonyms}
	if got := scorer.Score(g, a, g, a); got != 1.0 {
		t.Fatalf("exact match score = %v; want 1.0", got)
	}
	if got := scorer.Score(g, a, g, c); got != 0.6 {
		t.Fatalf("synonym score = %v; want 0.6", got)
	}
}

func TestConcatEdgeLabel(t *testing.T) {
	g, a, _, d := buildChain(t)
	if got, want := similarity.ConcatEdgeLabel(g, a, d), "has chases"; got != want {
		t.Fatalf("ConcatEdgeLabel = %q; want %q", got, want)
	}
	if got := similarity.ConcatEdgeLabel(g, d, a); got != "" {
		t.Fatalf("ConcatEdgeLabel unreachable = %q; want empty", got)
	}
}

func TestDefaultDescendantProducer_BFSOrderAndDepth(t *testing.T) {
	g, a, c, d := buildChain(t)
	producer := similarity.DefaultDescendantProducer{BFSDepth: 3}

	got := producer.Descendants(g, a, 999999, false)
	want := []similarity.Descendant{{Vertex: c, Depth: 1}, {Vertex: d, Depth: 2}}
	if len(got) != len(want) {
		t.Fatalf("Descendants = %+v; want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Descendants[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestDefaultDescendantProducer_PrecomputedTakesPrecedenceForTarget(t *testing.T) {
	g, a, c, _ := buildChain(t)
	producer := similarity.DefaultDescendantProducer{
		BFSDepth:    3,
		Precomputed: similarity.PrecomputedDescendants{a: {{Vertex: c, Depth: 7}}},
	}

	got := producer.Descendants(g, a, 999999, true)
	if len(got) != 1 || got[0].Depth != 7 {
		t.Fatalf("Descendants (target, precomputed) = %+v; want depth 7 entry", got)
	}

	// isTarget=false must still BFS even though a precomputed entry exists.
	got = producer.Descendants(g, a, 999999, false)
	if len(got) == 0 || got[0].Depth == 7 {
		t.Fatalf("Descendants (non-target) unexpectedly used precomputed entry: %+v", got)
	}
}

func TestCosineSimilarity_EmptyVectors(t *testing.T) {
	if got := similarity.CosineSimilarity(nil, []float64{1, 2}); got != 0 {
		t.Fatalf("CosineSimilarity(nil, v) = %v; want 0", got)
	}
}
