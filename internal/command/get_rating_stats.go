package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// GetRatingStatsRequest is the request for the GetRatingStats command.
type GetRatingStatsRequest struct {
	UserID    string
	ContentID string
}

// GetRatingStats summarises a user's ratings. Without a content filter it also
// reports how much content the user has yet to rate.
type GetRatingStats struct {
	RatingCounts   datasources.RatingCountsGetter
	ContentCounter datasources.ContentCounter
}

// NewGetRatingStats creates a properly initialized GetRatingStats command.
func NewGetRatingStats(
	ratingCounts datasources.RatingCountsGetter,
	contentCounter datasources.ContentCounter,
) *GetRatingStats {
	return &GetRatingStats{
		RatingCounts:   ratingCounts,
		ContentCounter: contentCounter,
	}
}

func (c *GetRatingStats) Execute(ctx context.Context, req GetRatingStatsRequest) (domain.RatingStats, error) {
	counts, err := c.RatingCounts.GetRatingCounts(ctx, domain.RatingFilters{
		UserID:    req.UserID,
		ContentID: req.ContentID,
	})
	if err != nil {
		return domain.RatingStats{}, fmt.Errorf("getting rating counts: %w", err)
	}

	stats := domain.NewRatingStats(counts)
	if req.ContentID != "" {
		return stats, nil
	}

	total, err := c.ContentCounter.CountContent(ctx)
	if err != nil {
		return domain.RatingStats{}, fmt.Errorf("counting content: %w", err)
	}
	unrated, err := c.ContentCounter.CountUnratedContent(ctx, req.UserID)
	if err != nil {
		return domain.RatingStats{}, fmt.Errorf("counting unrated content: %w", err)
	}
	stats.TotalContent = &total
	stats.Unrated = &unrated

	return stats, nil
}
