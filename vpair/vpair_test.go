package vpair_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/resultugay/her/graph"
	"github.com/resultugay/her/similarity"
	"github.com/resultugay/her/spair"
	"github.com/resultugay/her/vpair"
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

// TestVPair_EqualsFilter checks that VPair(u) equals the set of v for which
// SPair.Query(u,v) holds, independent of the order candidates are visited.
func TestVPair_EqualsFilter(t *testing.T) {
	gdB := graph.NewBuilder(false)
	u0, _ := gdB.AddVertex("u0", "cat")
	gd := gdB.Build()

	gB := graph.NewBuilder(false)
	v0, _ := gB.AddVertex("v0", "cat")
	v1, _ := gB.AddVertex("v1", "cat")
	_, _ = gB.AddVertex("v2", "dog")
	g := gB.Build()

	hr := similarity.DefaultDescendantProducer{BFSDepth: 3}
	params := spair.Params{Sigma: 0.5, Delta: 0.5, K: 10}

	vp := vpair.NewEngine(gd, g, equalLabelScorer{}, alwaysMatchPathScorer{}, hr, params)
	got := vp.Query(u0)

	sort.Ints(got)
	want := []graph.ID{v0, v1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Query(u0) = %v; want %v", got, want)
	}
}
