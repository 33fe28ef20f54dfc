package similarity

import (
	"math"
	"strings"
)

// Embeddings maps a lowercased word to its dense vector, all vectors sharing
// one dimension. Built by loader.LoadEmbeddings.
type Embeddings map[string][]float64

// SynonymTable maps an ordered (word_a, word_b) pair to a symmetric
// similarity score in (0,1]. Built by loader.LoadSynonyms, which inserts
// both (a,b) and (b,a).
type SynonymTable map[[2]string]float64

// Lookup returns the synonym score for (a, b), if present.
func (s SynonymTable) Lookup(a, b string) (float64, bool) {
	score, ok := s[[2]string{a, b}]
	return score, ok
}

// isTextSeparator matches the original tool's TextToVector splitter:
// tab, space, comma, semicolon, pipe.
func isTextSeparator(r rune) bool {
	switch r {
	case '\t', ' ', ',', ';', '|':
		return true
	}
	return false
}

// TextToVector sums the embedding vectors of every recognized word in text
// and divides the sum by the number of tokens in text; unknown words add
// nothing to the sum but do count toward the divisor. Returns nil if no
// word in text is known.
func TextToVector(embeddings Embeddings, text string) []float64 {
	var sum []float64
	var wordCount int

	for _, tok := range strings.FieldsFunc(text, isTextSeparator) {
		if tok == "" {
			continue
		}
		wordCount++
		vec, ok := embeddings[tok]
		if !ok {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(vec))
		}
		for i, x := range vec {
			sum[i] += x
		}
	}

	if sum == nil || wordCount == 0 {
		return nil
	}
	for i := range sum {
		sum[i] /= float64(wordCount)
	}
	return sum
}

// CosineSimilarity returns the cosine similarity of a and b, or 0 if either
// is empty or zero-length (matching the original's zero-size guard).
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, x := range a {
		normA += x * x
	}
	for _, x := range b {
		normB += x * x
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
