package domain

import (
	"fmt"
	"time"
)

// Direction is the swipe gesture a user made on a content item.
type Direction string

const (
	DirectionLike      Direction = "like"
	DirectionDislike   Direction = "dislike"
	DirectionSuperlike Direction = "superlike"
	// DirectionReroll is a skip. It carries no preference signal.
	DirectionReroll Direction = "reroll"
)

var ValidDirections = []Direction{
	DirectionLike,
	DirectionDislike,
	DirectionSuperlike,
	DirectionReroll,
}

// ParseDirection accepts both the direction names and the raw swipe gestures
// sent by older clients (right/left/up/down).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "like", "right":
		return DirectionLike, nil
	case "dislike", "left":
		return DirectionDislike, nil
	case "superlike", "up":
		return DirectionSuperlike, nil
	case "reroll", "down":
		return DirectionReroll, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Polarity is the preference signal of a direction.
type Polarity int

const (
	PolarityNeutral Polarity = iota
	PolarityPositive
	PolarityNegative
)

func (d Direction) Polarity() Polarity {
	switch d {
	case DirectionLike, DirectionSuperlike:
		return PolarityPositive
	case DirectionDislike:
		return PolarityNegative
	default:
		return PolarityNeutral
	}
}

// Rating is one swipe judgement of a user on a content item.
type Rating struct {
	ID                string    `json:"id"`
	ContentID         string    `json:"content_id"`
	UserID            string    `json:"user_id"`
	Direction         Direction `json:"direction"`
	Comment           *string   `json:"comment,omitempty"`
	LatencyMs         *int64    `json:"latency_ms,omitempty"`
	UpdatedFromReroll bool      `json:"updated_from_reroll,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CommentText returns the comment, or "" when none was left.
func (r Rating) CommentText() string {
	if r.Comment == nil {
		return ""
	}
	return *r.Comment
}

type RatingFilters struct {
	UserID    string
	ContentID string
	Direction Direction
}

// RatingStats summarises a set of ratings by direction.
type RatingStats struct {
	Total      int64   `json:"total"`
	Likes      int64   `json:"likes"`
	Dislikes   int64   `json:"dislikes"`
	Superlikes int64   `json:"superlikes"`
	Rerolls    int64   `json:"rerolls"`
	LikeRate   float64 `json:"like_rate"`

	TotalContent *int64 `json:"total_content,omitempty"`
	Unrated      *int64 `json:"unrated,omitempty"`
}

// NewRatingStats computes the like rate as a percentage of all ratings,
// counting superlikes as likes.
func NewRatingStats(counts map[Direction]int64) RatingStats {
	stats := RatingStats{
		Likes:      counts[DirectionLike],
		Dislikes:   counts[DirectionDislike],
		Superlikes: counts[DirectionSuperlike],
		Rerolls:    counts[DirectionReroll],
	}
	stats.Total = stats.Likes + stats.Dislikes + stats.Superlikes + stats.Rerolls
	stats.LikeRate = LikeRate(stats.Likes+stats.Superlikes, stats.Total) * 100
	return stats
}

// LikeRate returns likes/total, or 0 when there is nothing to divide by.
func LikeRate(likes, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(likes) / float64(total)
}
