package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/jbeshir/swipe-feedback/internal/metrics"
)

// AggregateUserInsightsRequest is the request for the AggregateUserInsights command.
type AggregateUserInsightsRequest struct {
	UserID string
}

// AggregateUserInsightsConfig holds configuration for user insight aggregation.
type AggregateUserInsightsConfig struct {
	// Window is how many of the user's most recent ratings are aggregated.
	// Older ratings age out of the profile.
	Window int
}

// AggregateUserInsights recomputes a user's insight profile from their recent ratings
// and replaces the stored profile with it.
type AggregateUserInsights struct {
	RatingLister    datasources.RecentUserRatingLister
	Analyzer        datasources.CommentAnalyzer
	ProfileUpserter datasources.UserInsightUpserter
	Config          AggregateUserInsightsConfig
}

// NewAggregateUserInsights creates a properly initialized AggregateUserInsights command.
func NewAggregateUserInsights(
	ratingLister datasources.RecentUserRatingLister,
	analyzer datasources.CommentAnalyzer,
	profileUpserter datasources.UserInsightUpserter,
	config AggregateUserInsightsConfig,
) *AggregateUserInsights {
	return &AggregateUserInsights{
		RatingLister:    ratingLister,
		Analyzer:        analyzer,
		ProfileUpserter: profileUpserter,
		Config:          config,
	}
}

// Execute aggregates the user's rating window. It returns domain.ErrNoRatings
// without writing anything if the user has not rated anything yet. Any failure
// leaves the previously stored profile untouched.
func (c *AggregateUserInsights) Execute(
	ctx context.Context, req AggregateUserInsightsRequest,
) (domain.UserInsightProfile, error) {
	started := time.Now()
	logger := domain.LoggerFromContext(ctx).With("user_id", req.UserID)
	ctx = domain.ContextWithLogger(ctx, logger)

	profile, err := c.aggregate(ctx, req.UserID)
	if err != nil {
		metrics.RecordAggregation(metrics.SubjectUser, aggregationOutcome(err), started)
		return domain.UserInsightProfile{}, err
	}
	metrics.RecordAggregation(metrics.SubjectUser, metrics.OutcomeSuccess, started)

	logger.InfoContext(ctx, "aggregated user insights",
		"total_swipes", profile.TotalSwipes,
		"like_keywords", len(profile.LikeKeywords),
		"dislike_keywords", len(profile.DislikeKeywords))

	return profile, nil
}

func (c *AggregateUserInsights) aggregate(ctx context.Context, userID string) (domain.UserInsightProfile, error) {
	ratings, err := c.RatingLister.ListRecentUserRatings(ctx, userID, c.Config.Window)
	if err != nil {
		return domain.UserInsightProfile{}, fmt.Errorf("listing recent user ratings: %w: %w",
			domain.ErrStoreFailure, err)
	}
	if len(ratings) == 0 {
		return domain.UserInsightProfile{}, fmt.Errorf("user %s: %w", userID, domain.ErrNoRatings)
	}
	if c.Config.Window > 0 && len(ratings) > c.Config.Window {
		ratings = ratings[:c.Config.Window]
	}

	buckets := domain.PartitionRatings(ratings)
	analyzed, err := analyzeRatingBuckets(ctx, c.Analyzer, buckets)
	if err != nil {
		return domain.UserInsightProfile{}, err
	}

	profile := domain.UserInsightProfile{
		UserID:          userID,
		LikeKeywords:    analyzed.likeKeywords,
		DislikeKeywords: analyzed.dislikeKeywords,
		Suggestions:     analyzed.suggestions,
		InsightCounters: buckets.Counters,
		UpdatedAt:       time.Now().UTC(),
	}

	if err := c.ProfileUpserter.UpsertUserInsights(ctx, profile); err != nil {
		return domain.UserInsightProfile{}, fmt.Errorf("upserting user insights: %w: %w",
			domain.ErrStoreFailure, err)
	}

	return profile, nil
}
