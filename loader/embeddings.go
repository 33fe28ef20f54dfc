package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/resultugay/her/similarity"
)

// LoadEmbeddings parses a word embedding file: each line is a lowercased
// word followed by its vector's coordinates. The first line's coordinate
// count fixes the dimension for every subsequent line; a line whose
// coordinate count doesn't match is a malformed-input error. Grounded on
// her.h's LoadData embedding-loading thread.
func LoadEmbeddings(path string) (similarity.Embeddings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	embeddings := make(similarity.Embeddings)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	dim := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			return nil, fmt.Errorf("line %d: malformed embedding line %q", lineNo, line)
		}

		word := strings.ToLower(tokens[0])
		vals := make([]float64, 0, len(tokens)-1)
		for _, tok := range tokens[1:] {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad coordinate %q: %w", lineNo, tok, err)
			}
			vals = append(vals, v)
		}

		if dim == 0 {
			dim = len(vals)
		}
		if len(vals) != dim {
			return nil, fmt.Errorf("line %d: bad word vector: seen unmatched dim %d vs %d", lineNo, dim, len(vals))
		}

		embeddings[word] = vals
	}

	return embeddings, scanner.Err()
}
