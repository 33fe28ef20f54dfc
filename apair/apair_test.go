package apair_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/resultugay/her/apair"
	"github.com/resultugay/her/graph"
	"github.com/resultugay/her/index"
	"github.com/resultugay/her/similarity"
	"github.com/resultugay/her/spair"
)

type equalLabelScorer struct{}

func (equalLabelScorer) Score(gd *graph.Graph, u graph.ID, g *graph.Graph, v graph.ID) float64 {
	if gd.Label(u) == g.Label(v) {
		return 1.0
	}
	return 0.0
}

type alwaysMatchPathScorer struct{}

func (alwaysMatchPathScorer) Score(gd *graph.Graph, u, u1 graph.ID, g *graph.Graph, v, v1 graph.ID) float64 {
	return 1.0
}

func buildCatDogGraphs(t *testing.T) (*graph.Graph, *graph.Graph, graph.ID, graph.ID, graph.ID, graph.ID) {
	t.Helper()

	gdB := graph.NewBuilder(false)
	u0, err := gdB.AddVertex("u0", "cat")
	if err != nil {
		t.Fatal(err)
	}
	u1, err := gdB.AddVertex("u1", "dog")
	if err != nil {
		t.Fatal(err)
	}
	// a 2-cycle gives both vertices an outgoing edge, since APair skips any
	// vertex with OutDegree 0.
	if err := gdB.AddEdge(u0, u1, "rel"); err != nil {
		t.Fatal(err)
	}
	if err := gdB.AddEdge(u1, u0, "rel"); err != nil {
		t.Fatal(err)
	}
	gd := gdB.Build()

	gB := graph.NewBuilder(false)
	v0, err := gB.AddVertex("v0", "cat")
	if err != nil {
		t.Fatal(err)
	}
	v1, err := gB.AddVertex("v1", "dog")
	if err != nil {
		t.Fatal(err)
	}
	if err := gB.AddEdge(v0, v1, "rel"); err != nil {
		t.Fatal(err)
	}
	if err := gB.AddEdge(v1, v0, "rel"); err != nil {
		t.Fatal(err)
	}
	g := gB.Build()

	return gd, g, u0, u1, v0, v1
}

// TestAPair_MatchesSequentialVPair checks that, for world size 1, the union
// of APair's output equals running VPair over every u of G_D.
func TestAPair_MatchesSequentialVPair(t *testing.T) {
	gd, g, u0, u1, v0, v1 := buildCatDogGraphs(t)

	gdSourceLabels := map[string]struct{}{"cat": {}, "dog": {}}
	gSourceLabels := map[string]struct{}{"cat": {}, "dog": {}}
	idx := index.Build(g, gSourceLabels)

	hr := similarity.DefaultDescendantProducer{BFSDepth: 3}
	spParams := spair.Params{Sigma: 0.5, Delta: 0.5, K: 10}

	eng := apair.NewEngine(gd, g, equalLabelScorer{}, alwaysMatchPathScorer{}, hr, idx,
		gdSourceLabels, gSourceLabels,
		apair.Params{SPair: spParams, Rank: 0, WorldSize: 1, Parallelism: 4})

	got := eng.Query()
	gotSet := map[[2]graph.ID]struct{}{}
	for _, p := range got {
		gotSet[[2]graph.ID{p.U, p.V}] = struct{}{}
	}

	want := map[[2]graph.ID]struct{}{
		{u0, v0}: {},
		{u1, v1}: {},
	}
	if !reflect.DeepEqual(gotSet, want) {
		t.Fatalf("Query() = %v; want %v", gotSet, want)
	}
}

// TestAPair_RankPartitionIsExhaustiveAndDisjoint checks that splitting the
// G_D vertex set across several ranks, each run independently over the same
// inputs, reproduces a deterministic partition whose union recovers the
// single-rank result with no overlap.
func TestAPair_RankPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	gd, g, u0, u1, v0, v1 := buildCatDogGraphs(t)

	gdSourceLabels := map[string]struct{}{"cat": {}, "dog": {}}
	gSourceLabels := map[string]struct{}{"cat": {}, "dog": {}}
	idx := index.Build(g, gSourceLabels)

	hr := similarity.DefaultDescendantProducer{BFSDepth: 3}
	spParams := spair.Params{Sigma: 0.5, Delta: 0.5, K: 10}

	const worldSize = 2
	var unioned []apair.Pair
	for rank := 0; rank < worldSize; rank++ {
		eng := apair.NewEngine(gd, g, equalLabelScorer{}, alwaysMatchPathScorer{}, hr, idx,
			gdSourceLabels, gSourceLabels,
			apair.Params{SPair: spParams, Rank: rank, WorldSize: worldSize, Parallelism: 2})
		unioned = append(unioned, eng.Query()...)
	}

	seen := map[[2]graph.ID]int{}
	for _, p := range unioned {
		seen[[2]graph.ID{p.U, p.V}]++
	}
	for pair, count := range seen {
		if count != 1 {
			t.Fatalf("pair %v produced by %d ranks; want exactly 1", pair, count)
		}
	}

	want := [][2]graph.ID{{u0, v0}, {u1, v1}}
	var got [][2]graph.ID
	for _, p := range unioned {
		got = append(got, [2]graph.ID{p.U, p.V})
	}
	sort.Slice(got, func(i, j int) bool { return got[i][0] < got[j][0] })
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("union across ranks = %v; want %v", got, want)
	}
}
