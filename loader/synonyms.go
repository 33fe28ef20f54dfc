package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/resultugay/her/similarity"
)

// LoadSynonyms parses a CSV synonym file: "word_a,word_b,score" per line,
// score in (0,1]. Both words are lowercased, and both (a,b) and (b,a) are
// inserted, since the synonym relation is symmetric. Grounded on her.h's
// LoadData synonym-loading block.
func LoadSynonyms(path string) (similarity.SynonymTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table := make(similarity.SynonymTable)
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: bad line: %q", lineNo, line)
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad line: %q: %w", lineNo, line, err)
		}
		if score <= 0 || score > 1 {
			return nil, fmt.Errorf("line %d: bad line: %q: score %v out of (0,1]", lineNo, line, score)
		}

		a := strings.ToLower(strings.TrimSpace(fields[0]))
		b := strings.ToLower(strings.TrimSpace(fields[1]))
		table[[2]string{a, b}] = score
		table[[2]string{b, a}] = score
	}

	return table, scanner.Err()
}
