package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/jbeshir/swipe-feedback/internal/metrics"
)

// AggregateTemplateInsightsRequest is the request for the AggregateTemplateInsights command.
type AggregateTemplateInsightsRequest struct {
	TemplateID string
}

// AggregateTemplateInsightsConfig holds configuration for template insight aggregation.
type AggregateTemplateInsightsConfig struct {
	// Window bounds how many recent ratings are pooled across the template's content.
	// Zero pools every rating.
	Window int
}

// AggregateTemplateInsights recomputes the insight profile of a template from the
// ratings of every user on every content item generated from it.
type AggregateTemplateInsights struct {
	RatingLister    datasources.RecentTemplateRatingLister
	ContentCounter  datasources.TemplateContentCounter
	Analyzer        datasources.CommentAnalyzer
	ProfileUpserter datasources.TemplateInsightUpserter
	Config          AggregateTemplateInsightsConfig
}

// NewAggregateTemplateInsights creates a properly initialized AggregateTemplateInsights command.
func NewAggregateTemplateInsights(
	ratingLister datasources.RecentTemplateRatingLister,
	contentCounter datasources.TemplateContentCounter,
	analyzer datasources.CommentAnalyzer,
	profileUpserter datasources.TemplateInsightUpserter,
	config AggregateTemplateInsightsConfig,
) *AggregateTemplateInsights {
	return &AggregateTemplateInsights{
		RatingLister:    ratingLister,
		ContentCounter:  contentCounter,
		Analyzer:        analyzer,
		ProfileUpserter: profileUpserter,
		Config:          config,
	}
}

// Execute aggregates the template's ratings. A template without ratings yields
// domain.ErrNoRatings and nothing is written.
func (c *AggregateTemplateInsights) Execute(
	ctx context.Context, req AggregateTemplateInsightsRequest,
) (domain.TemplateInsightProfile, error) {
	started := time.Now()
	logger := domain.LoggerFromContext(ctx).With("template_id", req.TemplateID)
	ctx = domain.ContextWithLogger(ctx, logger)

	profile, err := c.aggregate(ctx, req.TemplateID)
	if err != nil {
		metrics.RecordAggregation(metrics.SubjectTemplate, aggregationOutcome(err), started)
		return domain.TemplateInsightProfile{}, err
	}
	metrics.RecordAggregation(metrics.SubjectTemplate, metrics.OutcomeSuccess, started)

	logger.InfoContext(ctx, "aggregated template insights",
		"total_ratings", profile.TotalSwipes,
		"total_uses", profile.TotalUses,
		"avg_like_rate", profile.AvgLikeRate)

	return profile, nil
}

func (c *AggregateTemplateInsights) aggregate(
	ctx context.Context, templateID string,
) (domain.TemplateInsightProfile, error) {
	ratings, err := c.RatingLister.ListRecentTemplateRatings(ctx, templateID, c.Config.Window)
	if err != nil {
		return domain.TemplateInsightProfile{}, fmt.Errorf("listing template ratings: %w: %w",
			domain.ErrStoreFailure, err)
	}
	if len(ratings) == 0 {
		return domain.TemplateInsightProfile{}, fmt.Errorf("template %s: %w", templateID, domain.ErrNoRatings)
	}
	if c.Config.Window > 0 && len(ratings) > c.Config.Window {
		ratings = ratings[:c.Config.Window]
	}

	uses, err := c.ContentCounter.CountTemplateContent(ctx, templateID)
	if err != nil {
		return domain.TemplateInsightProfile{}, fmt.Errorf("counting template content: %w: %w",
			domain.ErrStoreFailure, err)
	}

	buckets := domain.PartitionRatings(ratings)
	analyzed, err := analyzeRatingBuckets(ctx, c.Analyzer, buckets)
	if err != nil {
		return domain.TemplateInsightProfile{}, err
	}

	profile := domain.TemplateInsightProfile{
		TemplateID:      templateID,
		LikeKeywords:    analyzed.likeKeywords,
		DislikeKeywords: analyzed.dislikeKeywords,
		Suggestions:     analyzed.suggestions,
		InsightCounters: buckets.Counters,
		TotalUses:       uses,
		AvgLikeRate: domain.LikeRate(
			int64(buckets.Counters.TotalLikes),
			int64(buckets.Counters.TotalSwipes),
		),
		UpdatedAt: time.Now().UTC(),
	}

	if err := c.ProfileUpserter.UpsertTemplateInsights(ctx, profile); err != nil {
		return domain.TemplateInsightProfile{}, fmt.Errorf("upserting template insights: %w: %w",
			domain.ErrStoreFailure, err)
	}

	return profile, nil
}

func aggregationOutcome(err error) string {
	if errors.Is(err, domain.ErrNoRatings) {
		return metrics.OutcomeNoRatings
	}
	return metrics.OutcomeFailure
}
