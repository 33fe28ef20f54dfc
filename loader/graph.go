package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/resultugay/her/graph"
)

// LoadGraph builds a Graph from a vertex file and an edge file, lowercasing
// every vertex and edge label. Matches GraphLoader::LoadGraph plus the
// to_lower pass her.h's LoadData runs immediately afterward.
func LoadGraph(vfile, efile string, withIncoming bool) (*graph.Graph, error) {
	b := graph.NewBuilder(withIncoming)

	if err := loadVertices(b, vfile); err != nil {
		return nil, fmt.Errorf("loading vertices from %s: %w", vfile, err)
	}
	if err := loadEdges(b, efile); err != nil {
		return nil, fmt.Errorf("loading edges from %s: %w", efile, err)
	}

	return b.Build(), nil
}

func loadVertices(b *graph.Builder, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}

		fields, rest, ok := splitNFields(line, 1)
		if !ok {
			return fmt.Errorf("line %d: malformed vertex line %q", lineNo, line)
		}

		if _, err := b.AddVertex(fields[0], strings.ToLower(rest)); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func loadEdges(b *graph.Builder, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}

		fields, rest, ok := splitNFields(line, 2)
		if !ok {
			return fmt.Errorf("line %d: malformed edge line %q", lineNo, line)
		}

		from, ok := b.Lookup(fields[0])
		if !ok {
			return fmt.Errorf("line %d: missing src vertex %s", lineNo, fields[0])
		}
		to, ok := b.Lookup(fields[1])
		if !ok {
			return fmt.Errorf("line %d: missing dst vertex %s", lineNo, fields[1])
		}

		if err := b.AddEdge(from, to, strings.ToLower(rest)); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// splitNFields reads n whitespace-delimited fields from the front of line,
// returning them plus the (whitespace-trimmed) remainder. Mirrors the
// original tool's "ss >> field" x n followed by "ss.ignore(1); getline" —
// since the final remainder is trimmed either way, the exact count of
// separating whitespace characters does not affect the result.
func splitNFields(line string, n int) (fields []string, rest string, ok bool) {
	remaining := line
	for i := 0; i < n; i++ {
		remaining = strings.TrimLeft(remaining, " \t")
		idx := strings.IndexAny(remaining, " \t")
		if idx < 0 {
			if remaining == "" {
				return nil, "", false
			}
			fields = append(fields, remaining)
			remaining = ""
			continue
		}
		fields = append(fields, remaining[:idx])
		remaining = remaining[idx+1:]
	}
	if len(fields) < n {
		return nil, "", false
	}
	return fields, strings.TrimSpace(remaining), true
}
