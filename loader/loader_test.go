package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/resultugay/her/loader"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadGraph_Basic(t *testing.T) {
	dir := t.TempDir()
	vfile := writeTemp(t, dir, "v.txt", "0 Cat\n1 Dog\n# comment\n\n2 Heart Attack\n")
	efile := writeTemp(t, dir, "e.txt", "0 1 Chases\n1 2 Causes\n")

	g, err := loader.LoadGraph(vfile, efile, false)
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	if g.VertexCount() != 3 {
		t.Fatalf("VertexCount() = %d; want 3", g.VertexCount())
	}

	v0, ok := g.GetInternal("0")
	if !ok {
		t.Fatal("vertex 0 not found")
	}
	if g.Label(v0) != "cat" {
		t.Fatalf("Label(v0) = %q; want \"cat\"", g.Label(v0))
	}
	if g.OutDegree(v0) != 1 {
		t.Fatalf("OutDegree(v0) = %d; want 1", g.OutDegree(v0))
	}
	if g.OutEdges(v0)[0].Label != "chases" {
		t.Fatalf("edge label = %q; want \"chases\"", g.OutEdges(v0)[0].Label)
	}
}

func TestLoadGraph_DuplicateVertexErrors(t *testing.T) {
	dir := t.TempDir()
	vfile := writeTemp(t, dir, "v.txt", "0 Cat\n0 Cat Again\n")
	efile := writeTemp(t, dir, "e.txt", "")

	if _, err := loader.LoadGraph(vfile, efile, false); err == nil {
		t.Fatal("expected error for duplicate vertex")
	}
}

func TestLoadGraph_MissingEndpointErrors(t *testing.T) {
	dir := t.TempDir()
	vfile := writeTemp(t, dir, "v.txt", "0 Cat\n")
	efile := writeTemp(t, dir, "e.txt", "0 99 Chases\n")

	if _, err := loader.LoadGraph(vfile, efile, false); err == nil {
		t.Fatal("expected error for missing edge endpoint")
	}
}

func TestLoadEmbeddings(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "emb.txt", "Cat 1.0 2.0\nDog 0.5 0.5\n")

	emb, err := loader.LoadEmbeddings(path)
	if err != nil {
		t.Fatalf("LoadEmbeddings: %v", err)
	}
	if len(emb["cat"]) != 2 || emb["cat"][0] != 1.0 {
		t.Fatalf("emb[cat] = %v", emb["cat"])
	}
}

func TestLoadEmbeddings_TooManyCoordinatesErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "emb.txt", "Cat 1.0 2.0\nDog 0.5 0.5 0.5\n")

	if _, err := loader.LoadEmbeddings(path); err == nil {
		t.Fatal("expected error for a line with more coordinates than the inferred dimension")
	}
}

func TestLoadSynonyms(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "syn.txt", "Cat,Feline,0.9\n")

	syn, err := loader.LoadSynonyms(path)
	if err != nil {
		t.Fatalf("LoadSynonyms: %v", err)
	}
	score, ok := syn.Lookup("cat", "feline")
	if !ok || score != 0.9 {
		t.Fatalf("Lookup(cat,feline) = %v, %v", score, ok)
	}
	score, ok = syn.Lookup("feline", "cat")
	if !ok || score != 0.9 {
		t.Fatalf("Lookup(feline,cat) = %v, %v", score, ok)
	}
}

func TestLoadSynonyms_BadScoreErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "syn.txt", "Cat,Feline,1.5\n")

	if _, err := loader.LoadSynonyms(path); err == nil {
		t.Fatal("expected error for out-of-range score")
	}
}

func TestLoadSourceLabels(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "slabel.txt", "Cat\nDog\n")

	labels, err := loader.LoadSourceLabels(path)
	if err != nil {
		t.Fatalf("LoadSourceLabels: %v", err)
	}
	if _, ok := labels["cat"]; !ok {
		t.Fatal("expected \"cat\" in labels")
	}
}

func TestLoadDescendants_SkipsUnknownOids(t *testing.T) {
	dir := t.TempDir()
	vfile := writeTemp(t, dir, "v.txt", "0 Cat\n1 Dog\n")
	efile := writeTemp(t, dir, "e.txt", "")
	g, err := loader.LoadGraph(vfile, efile, false)
	if err != nil {
		t.Fatal(err)
	}

	path := writeTemp(t, dir, "desc.txt", "0 1 2\n99 1 1\n")
	desc, err := loader.LoadDescendants(path, g)
	if err != nil {
		t.Fatalf("LoadDescendants: %v", err)
	}

	v0, _ := g.GetInternal("0")
	v1, _ := g.GetInternal("1")
	entries, ok := desc[v0]
	if !ok || len(entries) != 1 || entries[0].Vertex != v1 || entries[0].Depth != 2 {
		t.Fatalf("desc[v0] = %v", entries)
	}
}

func TestLoadPaths_RewritesSeparators(t *testing.T) {
	dir := t.TempDir()
	vfile := writeTemp(t, dir, "v.txt", "0 Cat\n1 Dog\n")
	efile := writeTemp(t, dir, "e.txt", "")
	g, err := loader.LoadGraph(vfile, efile, false)
	if err != nil {
		t.Fatal(err)
	}

	path := writeTemp(t, dir, "path.txt", "0 1 Chases;Then,Causes\n")
	paths, err := loader.LoadPaths(path, g)
	if err != nil {
		t.Fatalf("LoadPaths: %v", err)
	}

	v0, _ := g.GetInternal("0")
	v1, _ := g.GetInternal("1")
	if paths[v0][v1] != "chases then causes" {
		t.Fatalf("paths[v0][v1] = %q", paths[v0][v1])
	}
}
