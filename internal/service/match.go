package service

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/pgapool/internal/names"
)

// bestMatch picks the candidate closest to query. An exact folded match wins,
// then the best Levenshtein similarity above threshold, then the closest
// candidate containing query's letters in order ("scheffler" finds
// "Scottie Scheffler").
func bestMatch(query string, candidates []string, threshold float64) (string, bool) {
	folded := names.Fold(query)
	if folded == "" {
		return "", false
	}

	best := ""
	bestSimilarity := threshold
	for _, candidate := range candidates {
		target := names.Fold(candidate)
		if target == folded {
			return candidate, true
		}

		distance := fuzzy.LevenshteinDistance(folded, target)
		maxLen := float64(max(len(folded), len(target)))
		similarity := 1 - float64(distance)/maxLen
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = candidate
		}
	}
	if best != "" {
		return best, true
	}

	ranks := fuzzy.RankFindNormalizedFold(folded, candidates)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
