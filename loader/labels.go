package loader

import (
	"bufio"
	"os"
	"strings"
)

// LoadSourceLabels parses a slabel file: one label per line, lowercased,
// collected into a set. Grounded on her.h's gd_slabel_file/g_slabel_file
// loading blocks.
func LoadSourceLabels(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ToLower(scanner.Text())
		if line == "" {
			continue
		}
		set[line] = struct{}{}
	}
	return set, scanner.Err()
}
