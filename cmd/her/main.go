// Command her runs one semantic-graph-matching query — spair, vpair, apair,
// or their *_benchmark timing variants — over two loaded graphs GD and G.
//
// Grounded on the original tool's her.cc/her.h driver: parse flags, load
// data, build the default h_v/h_p/h_r closures, dispatch on -query_type.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/resultugay/her/apair"
	"github.com/resultugay/her/config"
	"github.com/resultugay/her/graph"
	"github.com/resultugay/her/index"
	"github.com/resultugay/her/loader"
	"github.com/resultugay/her/similarity"
	"github.com/resultugay/her/spair"
	"github.com/resultugay/her/vpair"
)

func main() {
	p, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("[her] %v", err)
	}

	if err := requireFiles(p); err != nil {
		log.Fatalf("[her] %v", err)
	}

	start := time.Now()

	gd, g, embeddings, synonyms, gdSourceLabels, gSourceLabels, descendants, paths, err := loadEverything(p)
	if err != nil {
		log.Fatalf("[loader] %v", err)
	}
	log.Printf("[her] loaded GD: %d vertices, G: %d vertices (%s)", gd.VertexCount(), g.VertexCount(), time.Since(start))

	parallelism := config.ResolveParallelism(p, runtime.NumCPU())

	gdVectors := similarity.FillWordVectors(gd, embeddings, parallelism)
	gVectors := similarity.FillWordVectors(g, embeddings, parallelism)

	idx := index.Build(g, gSourceLabels)

	hv := similarity.DefaultVertexScorer{Synonyms: synonyms, GDVectors: gdVectors, GVectors: gVectors}
	hp := similarity.DefaultPathScorer{Embeddings: embeddings, Synonyms: synonyms, Paths: paths}
	hr := similarity.DefaultDescendantProducer{BFSDepth: p.BFSDepth, Precomputed: descendants}

	spParams := spair.Params{Sigma: p.Sigma, Delta: p.Delta, K: p.K}

	switch p.QueryType {
	case "spair":
		runSPair(gd, g, hv, hp, hr, spParams, p)
	case "spair_benchmark":
		runSPairBenchmark(gd, g, hv, hp, hr, spParams, p)
	case "vpair":
		runVPair(gd, g, hv, hp, hr, spParams, p)
	case "vpair_benchmark":
		runVPairBenchmark(gd, g, hv, hp, hr, spParams, p)
	case "apair":
		runAPair(gd, g, hv, hp, hr, idx, gdSourceLabels, gSourceLabels, spParams, p)
	default:
		log.Fatalf("[her] invalid param: query_type = %q", p.QueryType)
	}
}

func requireFiles(p config.Params) error {
	required := map[string]string{
		"gd_vfile":       p.GDVFile,
		"gd_efile":       p.GDEFile,
		"g_vfile":        p.GVFile,
		"g_efile":        p.GEFile,
		"embedding_file": p.EmbeddingFile,
		"gd_slabel_file": p.GDSLabelFile,
		"g_slabel_file":  p.GSLabelFile,
	}
	for flagName, path := range required {
		if path == "" {
			return fmt.Errorf("missing required flag: -%s", flagName)
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("invalid param: -%s = %s: %w", flagName, path, err)
		}
	}
	return nil
}

func loadEverything(p config.Params) (gd, g *graph.Graph, embeddings similarity.Embeddings, synonyms similarity.SynonymTable, gdSourceLabels, gSourceLabels map[string]struct{}, descendants similarity.PrecomputedDescendants, paths similarity.PrecomputedPaths, err error) {
	gd, err = loader.LoadGraph(p.GDVFile, p.GDEFile, false)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("loading GD: %w", err)
	}
	g, err = loader.LoadGraph(p.GVFile, p.GEFile, false)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("loading G: %w", err)
	}

	embeddings, err = loader.LoadEmbeddings(p.EmbeddingFile)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("loading embeddings: %w", err)
	}

	if p.SynonymFile != "" {
		synonyms, err = loader.LoadSynonyms(p.SynonymFile)
		if err != nil {
			return nil, nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("loading synonyms: %w", err)
		}
	}

	gdSourceLabels, err = loader.LoadSourceLabels(p.GDSLabelFile)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("loading gd source labels: %w", err)
	}
	gSourceLabels, err = loader.LoadSourceLabels(p.GSLabelFile)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("loading g source labels: %w", err)
	}

	if p.DescFile != "" {
		descendants, err = loader.LoadDescendants(p.DescFile, g)
		if err != nil {
			return nil, nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("loading descendants: %w", err)
		}
	}
	if p.PathFile != "" {
		paths, err = loader.LoadPaths(p.PathFile, g)
		if err != nil {
			return nil, nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("loading paths: %w", err)
		}
	}

	return gd, g, embeddings, synonyms, gdSourceLabels, gSourceLabels, descendants, paths, nil
}

func mustVertex(g *graph.Graph, which, oid string) graph.ID {
	v, ok := g.GetInternal(oid)
	if !ok {
		log.Fatalf("[her] can not find vertex %s from graph %s", oid, which)
	}
	return v
}

func runSPair(gd, g *graph.Graph, hv similarity.VertexScorer, hp similarity.PathScorer, hr similarity.DescendantProducer, params spair.Params, p config.Params) {
	u := mustVertex(gd, "GD", p.VertexU)
	v := mustVertex(g, "G", p.VertexV)

	eng := spair.NewEngine(gd, g, hv, hp, hr, params)
	ans := eng.Query(u, v)

	log.Printf("Query: (%s, %s) = %v", p.VertexU, p.VertexV, ans)
}

func runSPairBenchmark(gd, g *graph.Graph, hv similarity.VertexScorer, hp similarity.PathScorer, hr similarity.DescendantProducer, params spair.Params, p config.Params) {
	eng := spair.NewEngine(gd, g, hv, hp, hr, params)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	nGD := gd.VertexCount()
	nG := g.VertexCount()
	if nGD == 0 || nG == 0 {
		log.Fatalf("[her] empty graph, can not run spair_benchmark")
	}

	begin := time.Now()
	var result bool
	for i := 0; i < p.NIter; i++ {
		u := rng.Intn(nGD)
		v := rng.Intn(nG)
		matched := eng.Query(u, v)
		result = result || matched
	}
	avg := time.Since(begin) / time.Duration(maxInt(p.NIter, 1))
	log.Printf("Average Query: %s (result=%v)", avg, result)
}

func runVPair(gd, g *graph.Graph, hv similarity.VertexScorer, hp similarity.PathScorer, hr similarity.DescendantProducer, params spair.Params, p config.Params) {
	u := mustVertex(gd, "GD", p.VertexU)

	eng := vpair.NewEngine(gd, g, hv, hp, hr, params)
	ans := eng.Query(u)

	log.Printf("Matched pairs: ")
	for _, v := range ans {
		log.Printf("%s|%s", g.GetExternal(v), g.Label(v))
	}
}

func runVPairBenchmark(gd, g *graph.Graph, hv similarity.VertexScorer, hp similarity.PathScorer, hr similarity.DescendantProducer, params spair.Params, p config.Params) {
	if p.VSourcesFile == "" {
		log.Fatalf("[her] having an empty gd sources")
	}
	sources, err := loader.LoadSources(p.VSourcesFile, gd)
	if err != nil {
		log.Fatalf("[loader] %v", err)
	}
	if len(sources) == 0 {
		log.Fatalf("[her] having an empty gd sources")
	}

	eng := vpair.NewEngine(gd, g, hv, hp, hr, params)

	begin := time.Now()
	var size int
	for _, u := range sources {
		size += len(eng.Query(u))
	}
	avg := time.Since(begin) / time.Duration(len(sources))
	log.Printf("Average Query: %s (matched=%d)", avg, size)
}

func runAPair(gd, g *graph.Graph, hv similarity.VertexScorer, hp similarity.PathScorer, hr similarity.DescendantProducer, idx *index.Index, gdSourceLabels, gSourceLabels map[string]struct{}, params spair.Params, p config.Params) {
	parallelism := config.ResolveParallelism(p, runtime.NumCPU())
	apParams := apair.Params{
		SPair:       params,
		Rank:        p.Rank,
		WorldSize:   p.WorldSize,
		Parallelism: parallelism,
	}

	begin := time.Now()
	var ans []apair.Pair
	for i := 0; i < maxInt(p.NIter, 1); i++ {
		// A fresh engine per iteration: no SPair cache carries over between
		// n_iter rounds.
		eng := apair.NewEngine(gd, g, hv, hp, hr, idx, gdSourceLabels, gSourceLabels, apParams)
		ans = eng.Query()
	}
	avg := time.Since(begin) / time.Duration(maxInt(p.NIter, 1))
	log.Printf("Average Query: %s", avg)

	if p.OutPrefix == "" {
		return
	}

	outPath := fmt.Sprintf("%s/apair_%d", p.OutPrefix, p.Rank)
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("[her] creating %s: %v", outPath, err)
	}
	defer f.Close()

	for _, pair := range ans {
		fmt.Fprintf(f, "%s|%s|%s|%s\n", gd.GetExternal(pair.U), g.GetExternal(pair.V), gd.Label(pair.U), g.Label(pair.V))
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
