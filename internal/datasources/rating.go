package datasources

import (
	"context"

	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// RatingRepository combines all rating store interfaces.
type RatingRepository interface {
	RatingAppender
	RecentUserRatingLister
	RecentTemplateRatingLister
	UserRatingCounter
	RatingLister
	RatingCountsGetter
	RatedSubjectLister
}

type RatingAppender interface {
	// AppendRating stores a rating. If the user already has a reroll rating on the
	// content it is superseded in place, keeping its ID, and updated is true.
	// Any other existing rating for the pair yields domain.ErrAlreadyRated.
	AppendRating(ctx context.Context, rating domain.Rating) (stored domain.Rating, updated bool, err error)
}

type RecentUserRatingLister interface {
	// ListRecentUserRatings returns up to limit ratings, newest first.
	ListRecentUserRatings(ctx context.Context, userID string, limit int) ([]domain.Rating, error)
}

type RecentTemplateRatingLister interface {
	// ListRecentTemplateRatings returns ratings on any content of the template,
	// newest first. A limit of 0 or less returns all of them.
	ListRecentTemplateRatings(ctx context.Context, templateID string, limit int) ([]domain.Rating, error)
}

type UserRatingCounter interface {
	CountUserRatings(ctx context.Context, userID string) (int, error)
}

type RatingLister interface {
	ListRatings(ctx context.Context, filters domain.RatingFilters, limit int) ([]domain.Rating, error)
}

type RatingCountsGetter interface {
	GetRatingCounts(ctx context.Context, filters domain.RatingFilters) (map[domain.Direction]int64, error)
}

type RatedSubjectLister interface {
	ListRatedUserIDs(ctx context.Context) ([]string, error)
	ListRatedTemplateIDs(ctx context.Context) ([]string, error)
}
