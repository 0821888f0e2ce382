package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountKeywords(t *testing.T) {
	cases := []struct {
		name     string
		keywords []string
		expected []KeywordCount
	}{
		{
			name:     "nil_input_returns_empty",
			keywords: nil,
			expected: []KeywordCount{},
		},
		{
			name:     "case_variants_merge",
			keywords: []string{"Nice", "nice", "NICE"},
			expected: []KeywordCount{{Keyword: "nice", Count: 3}},
		},
		{
			name:     "sorted_by_count_descending",
			keywords: []string{"blue", "red", "red", "green", "red", "green"},
			expected: []KeywordCount{
				{Keyword: "red", Count: 3},
				{Keyword: "green", Count: 2},
				{Keyword: "blue", Count: 1},
			},
		},
		{
			name:     "ties_keep_first_seen_order",
			keywords: []string{"zebra", "apple", "Zebra", "mango", "apple"},
			expected: []KeywordCount{
				{Keyword: "zebra", Count: 2},
				{Keyword: "apple", Count: 2},
				{Keyword: "mango", Count: 1},
			},
		},
		{
			name:     "blank_keywords_dropped",
			keywords: []string{"", "  ", " Warm ", "warm"},
			expected: []KeywordCount{{Keyword: "warm", Count: 2}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CountKeywords(tc.keywords))
		})
	}
}

func TestCountKeywords_Deterministic(t *testing.T) {
	input := []string{"a", "b", "c", "B", "a", "C", "d"}
	first := CountKeywords(input)
	for range 20 {
		assert.Equal(t, first, CountKeywords(input))
	}
}

func TestMergeKeywordCounts(t *testing.T) {
	merged := MergeKeywordCounts(
		[]KeywordCount{{Keyword: "vivid", Count: 2}, {Keyword: "calm", Count: 1}},
		[]KeywordCount{{Keyword: "Calm", Count: 3}, {Keyword: "dark", Count: 1}},
	)

	assert.Equal(t, []KeywordCount{
		{Keyword: "calm", Count: 4},
		{Keyword: "vivid", Count: 2},
		{Keyword: "dark", Count: 1},
	}, merged)
}

func TestTopKeywords(t *testing.T) {
	counts := []KeywordCount{
		{Keyword: "a", Count: 3},
		{Keyword: "b", Count: 2},
		{Keyword: "c", Count: 1},
	}

	assert.Equal(t, []string{"a", "b"}, TopKeywords(counts, 2))
	assert.Equal(t, []string{"a", "b", "c"}, TopKeywords(counts, 5))
	assert.Empty(t, TopKeywords(nil, 5))
}
