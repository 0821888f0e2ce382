package domain

import (
	"slices"
	"strings"
)

// KeywordCount is one ranked entry of an insight profile.
type KeywordCount struct {
	Keyword string `json:"keyword" validate:"required"`
	Count   int    `json:"count" validate:"min=1"`
}

// CountKeywords case-folds and tallies keywords, returning one entry per keyword
// ordered by count descending. Equal counts keep first-seen order.
func CountKeywords(keywords []string) []KeywordCount {
	counts := make([]KeywordCount, 0, len(keywords))
	index := make(map[string]int, len(keywords))

	for _, raw := range keywords {
		keyword := strings.ToLower(strings.TrimSpace(raw))
		if keyword == "" {
			continue
		}

		if i, ok := index[keyword]; ok {
			counts[i].Count++
			continue
		}
		index[keyword] = len(counts)
		counts = append(counts, KeywordCount{Keyword: keyword, Count: 1})
	}

	slices.SortStableFunc(counts, func(a, b KeywordCount) int {
		return b.Count - a.Count
	})

	return counts
}

// MergeKeywordCounts combines ranked lists, summing counts of shared keywords.
func MergeKeywordCounts(lists ...[]KeywordCount) []KeywordCount {
	var merged []KeywordCount
	index := make(map[string]int)

	for _, list := range lists {
		for _, kc := range list {
			keyword := strings.ToLower(kc.Keyword)
			if i, ok := index[keyword]; ok {
				merged[i].Count += kc.Count
				continue
			}
			index[keyword] = len(merged)
			merged = append(merged, KeywordCount{Keyword: keyword, Count: kc.Count})
		}
	}

	slices.SortStableFunc(merged, func(a, b KeywordCount) int {
		return b.Count - a.Count
	})

	return merged
}

// TopKeywords returns up to n keyword strings from a ranked list.
func TopKeywords(counts []KeywordCount, n int) []string {
	n = max(0, min(n, len(counts)))

	keywords := make([]string, 0, n)
	for _, kc := range counts[:n] {
		keywords = append(keywords, kc.Keyword)
	}
	return keywords
}
