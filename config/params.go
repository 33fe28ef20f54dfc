package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Params bundles every CLI-configurable value consumed anywhere in this
// repository. Exactly one value is built per process (in cmd/her/main.go)
// and passed explicitly into every constructor — there is no package-level
// mutable config, matching the original tool's DEFINE_* globals being
// replaced by explicit threading.
type Params struct {
	GDVFile       string
	GDEFile       string
	GVFile        string
	GEFile        string
	SynonymFile   string
	EmbeddingFile string
	GDSLabelFile  string
	GSLabelFile   string
	DescFile      string
	PathFile      string
	VSourcesFile  string
	OutPrefix     string

	Sigma float64
	Delta float64
	K     int

	BFSDepth    int
	Parallelism int
	NIter       int

	QueryType string
	VertexU   string
	VertexV   string

	Rank      int
	WorldSize int
	Verbose   bool
}

// Parse defines every flag on fs, parses args, and then applies the
// HER_RANK/HER_WORLD_SIZE environment variables, used by job-array
// launchers that can't pass per-host flags; when set, they take precedence
// over -rank/-world_size. Grounded on the original tool's flags.cc defaults.
func Parse(fs *flag.FlagSet, args []string) (Params, error) {
	var p Params

	fs.StringVar(&p.GDVFile, "gd_vfile", "", "vertex file of graph GD")
	fs.StringVar(&p.GDEFile, "gd_efile", "", "edge file of graph GD")
	fs.StringVar(&p.GVFile, "g_vfile", "", "vertex file of graph G")
	fs.StringVar(&p.GEFile, "g_efile", "", "edge file of graph G")
	fs.StringVar(&p.SynonymFile, "synonym_file", "", "a file contains synonym and score")
	fs.StringVar(&p.EmbeddingFile, "embedding_file", "", "pre-trained word embedding file")
	fs.StringVar(&p.GDSLabelFile, "gd_slabel_file", "", "a file contains source labels of GD")
	fs.StringVar(&p.GSLabelFile, "g_slabel_file", "", "a file contains source labels of G")
	fs.StringVar(&p.DescFile, "desc_file", "", "a file contains vertex descendants of G")
	fs.StringVar(&p.PathFile, "path_file", "", "a file contains labels between v1 and v2 of G")
	fs.StringVar(&p.VSourcesFile, "vpair_sources_file", "", "a file contains starting ids of GD")
	fs.StringVar(&p.OutPrefix, "out_prefix", "", "output prefix")

	fs.Float64Var(&p.Sigma, "sigma", 0.8, "sigma threshold for vertex matching")
	fs.Float64Var(&p.Delta, "delta", 0.9, "delta threshold for path matching")
	fs.IntVar(&p.K, "k", 999999, "top k descendants")

	fs.IntVar(&p.BFSDepth, "bfs_depth", 3, "the depth of BFS used by h_r")
	fs.IntVar(&p.Parallelism, "parallelism", -1, "how many goroutines will be used (word-vector fill and apair)")
	fs.IntVar(&p.NIter, "n_iter", 1, "repeat n_iter rounds for benchmark query types")

	fs.StringVar(&p.QueryType, "query_type", "", "query type: spair, spair_benchmark, vpair, vpair_benchmark, apair")
	fs.StringVar(&p.VertexU, "vertex_u", "0", "vertex u external id, in graph GD")
	fs.StringVar(&p.VertexV, "vertex_v", "0", "vertex v external id, in graph G")

	fs.IntVar(&p.Rank, "rank", 0, "SPMD rank of this process")
	fs.IntVar(&p.WorldSize, "world_size", 1, "SPMD world size")
	fs.BoolVar(&p.Verbose, "v", false, "verbose flag (stored in Params.Verbose; no log output depends on it)")

	if err := fs.Parse(args); err != nil {
		return Params{}, err
	}

	if v, ok := os.LookupEnv("HER_RANK"); ok {
		rank, err := strconv.Atoi(v)
		if err != nil {
			return Params{}, fmt.Errorf("HER_RANK: %w", err)
		}
		p.Rank = rank
	}
	if v, ok := os.LookupEnv("HER_WORLD_SIZE"); ok {
		worldSize, err := strconv.Atoi(v)
		if err != nil {
			return Params{}, fmt.Errorf("HER_WORLD_SIZE: %w", err)
		}
		p.WorldSize = worldSize
	}

	return p, nil
}

// ResolveParallelism implements the original tool's GetParallelism fallback:
// an explicit -parallelism overrides; -1 means "use all available CPUs",
// approximating the original's hardware_concurrency()/local-rank-count
// split (which this repo has no portable equivalent for without an MPI
// binding, so it is simplified to the whole-machine core count).
func ResolveParallelism(p Params, numCPU int) int {
	if p.Parallelism > 0 {
		return p.Parallelism
	}
	if numCPU < 1 {
		return 1
	}
	return numCPU
}
