package domain

import (
	"strings"
	"time"
)

// CommentAnalysis is what the comment analyzer extracts from a batch of comments.
type CommentAnalysis struct {
	Likes       []string `json:"likes"`
	Dislikes    []string `json:"dislikes"`
	Suggestions []string `json:"suggestions"`
}

// InsightCounters are the swipe totals over an aggregation window.
// Rerolls count towards TotalSwipes only.
type InsightCounters struct {
	TotalSwipes     int `json:"total_swipes" validate:"min=0"`
	TotalLikes      int `json:"total_likes" validate:"min=0,ltefield=TotalSwipes"`
	TotalDislikes   int `json:"total_dislikes" validate:"min=0,ltefield=TotalSwipes"`
	TotalSuperlikes int `json:"total_superlikes" validate:"min=0,ltefield=TotalLikes"`
}

// UserInsightProfile is the derived preference profile of a single user.
type UserInsightProfile struct {
	UserID          string         `json:"user_id" validate:"required"`
	LikeKeywords    []KeywordCount `json:"like_keywords" validate:"dive"`
	DislikeKeywords []KeywordCount `json:"dislike_keywords" validate:"dive"`
	Suggestions     []string       `json:"suggestions"`
	InsightCounters
	UpdatedAt time.Time `json:"updated_at"`
}

// EmptyUserInsightProfile is what a user without any aggregation sees.
func EmptyUserInsightProfile(userID string) UserInsightProfile {
	return UserInsightProfile{
		UserID:          userID,
		LikeKeywords:    []KeywordCount{},
		DislikeKeywords: []KeywordCount{},
		Suggestions:     []string{},
	}
}

// TemplateInsightProfile aggregates ratings on every content item produced from a template.
type TemplateInsightProfile struct {
	TemplateID      string         `json:"template_id" validate:"required"`
	LikeKeywords    []KeywordCount `json:"like_keywords" validate:"dive"`
	DislikeKeywords []KeywordCount `json:"dislike_keywords" validate:"dive"`
	Suggestions     []string       `json:"suggestions"`
	InsightCounters
	TotalUses   int       `json:"total_uses" validate:"min=0"`
	AvgLikeRate float64   `json:"avg_like_rate" validate:"min=0,max=1"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RatingBuckets is a rating window split by polarity.
type RatingBuckets struct {
	Counters         InsightCounters
	PositiveComments []string
	NegativeComments []string
}

// PartitionRatings tallies a window of ratings and collects the non-empty
// comments of each polarity. Reroll ratings only add to TotalSwipes.
func PartitionRatings(ratings []Rating) RatingBuckets {
	var b RatingBuckets
	b.Counters.TotalSwipes = len(ratings)

	for _, r := range ratings {
		switch r.Direction {
		case DirectionLike:
			b.Counters.TotalLikes++
		case DirectionSuperlike:
			b.Counters.TotalLikes++
			b.Counters.TotalSuperlikes++
		case DirectionDislike:
			b.Counters.TotalDislikes++
		}

		comment := strings.TrimSpace(r.CommentText())
		if comment == "" {
			continue
		}
		switch r.Direction.Polarity() {
		case PolarityPositive:
			b.PositiveComments = append(b.PositiveComments, comment)
		case PolarityNegative:
			b.NegativeComments = append(b.NegativeComments, comment)
		}
	}

	return b
}
