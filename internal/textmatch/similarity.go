package textmatch

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Blend weights for the heuristic score. Sequence similarity dominates so
// near-verbatim answers score high even when word order shifts tokens out
// of alignment; token overlap rewards answers that carry the right words.
const (
	seqWeight   = 0.6
	tokenWeight = 0.4
)

// SequenceSimilarity returns an edit-distance similarity ratio in [0,1].
// Identical strings score 1.0; an empty string against a non-empty one
// scores 0.0.
func SequenceSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return levenshtein.Similarity(a, b, nil)
}

// TokenOverlap returns the Jaccard overlap of whitespace-separated token
// sets, in [0,1]. Two empty inputs score 0.0, not 1.0 — an empty answer
// never counts as matching an empty expectation.
func TokenOverlap(a, b string) float64 {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0.0
	}

	setA := make(map[string]struct{}, len(ta))
	for _, tok := range ta {
		setA[tok] = struct{}{}
	}
	setB := make(map[string]struct{}, len(tb))
	for _, tok := range tb {
		setB[tok] = struct{}{}
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

// HeuristicScore blends sequence similarity and token overlap against each
// expected answer and returns the best match. The learner only needs to
// match one acceptable phrasing.
func HeuristicScore(answer string, expected []string) float64 {
	normalized := Normalize(answer)

	best := 0.0
	for _, exp := range expected {
		normExp := Normalize(exp)
		score := seqWeight*SequenceSimilarity(normalized, normExp) + tokenWeight*TokenOverlap(normalized, normExp)
		if score > best {
			best = score
		}
	}
	return best
}
