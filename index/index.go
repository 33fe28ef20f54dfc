package index

import (
	"sort"
	"strings"

	"github.com/resultugay/her/graph"
)

// stopwords are dropped from an index entry's tokens at build time, but are
// not stripped from a query's tokens — tokens that happen to be stopwords
// simply miss the map and contribute nothing to the query's intersection.
var stopwords = map[string]struct{}{
	"and": {}, "or": {}, "for": {}, "in": {}, "on": {}, "of": {},
}

// Index maps a label token to the sorted set of vertex ids whose label
// contains that token, restricted to the source-labeled vertices it was
// built over.
type Index struct {
	words map[string][]graph.ID
}

// tokenize splits a label on tabs/spaces, dropping empty fields. Labels are
// already lowercased by the loader; tokenize does not lowercase again.
func tokenize(label string) []string {
	return strings.FieldsFunc(label, func(r rune) bool {
		return r == '\t' || r == ' '
	})
}

// Build constructs an Index over g's vertices: a vertex v is indexed under
// each non-stopword token of its label iff OutDegree(v) > 0 and Label(v) is
// in sourceLabels. Duplicate tokens within one label are inserted once.
// Complexity: O(V + total token count).
func Build(g *graph.Graph, sourceLabels map[string]struct{}) *Index {
	idx := &Index{words: make(map[string][]graph.ID)}

	for _, v := range g.Vertices() {
		if g.OutDegree(v) == 0 {
			continue
		}
		label := g.Label(v)
		if _, ok := sourceLabels[label]; !ok {
			continue
		}

		seen := make(map[string]struct{})
		for _, tok := range tokenize(label) {
			if _, stop := stopwords[tok]; stop {
				continue
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			idx.words[tok] = append(idx.words[tok], v)
		}
	}

	for tok := range idx.words {
		sort.Ints(idx.words[tok])
	}

	return idx
}

// Query tokenizes label identically to Build (stopwords are NOT dropped
// here — see package doc) and intersects the posting list of every token
// that appears in the index, short-circuiting to empty once the running
// intersection is empty. Returns a stably ordered (ascending id) slice,
// empty if no token was ever present.
func (idx *Index) Query(label string) []graph.ID {
	var result []graph.ID
	started := false

	for _, tok := range tokenize(label) {
		posting, ok := idx.words[tok]
		if !ok {
			continue
		}
		if !started {
			result = append([]graph.ID(nil), posting...)
			started = true
			continue
		}
		result = intersectSorted(result, posting)
		if len(result) == 0 {
			return nil
		}
	}

	return result
}

// intersectSorted returns the intersection of two ascending-sorted id
// slices, itself ascending-sorted.
func intersectSorted(a, b []graph.ID) []graph.ID {
	var out []graph.ID
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
