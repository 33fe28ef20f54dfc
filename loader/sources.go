package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/resultugay/her/graph"
)

// LoadSources parses a vpair_sources_file: one external oid per line, each
// of which must already be a vertex of g. Used by the vpair_benchmark query
// type to batch many VPair.Query calls. Grounded on her.h's RunApp
// gd_sources-loading block.
func LoadSources(path string, g *graph.Graph) ([]graph.ID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sources []graph.ID
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		v, ok := g.GetInternal(tokens[0])
		if !ok {
			return nil, fmt.Errorf("line %d: invalid oid: %s", lineNo, tokens[0])
		}
		sources = append(sources, v)
	}

	return sources, scanner.Err()
}
