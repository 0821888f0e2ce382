package command

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/jbeshir/swipe-feedback/internal/metrics"
)

// SubmitRatingRequest is the request for the SubmitRating command.
type SubmitRatingRequest struct {
	UserID    string
	ContentID string
	Direction domain.Direction
	Comment   *string
	LatencyMs *int64
}

// SubmitRatingResult describes what happened to a submitted rating.
type SubmitRatingResult struct {
	Rating domain.Rating
	// Updated is set when the rating superseded an earlier reroll.
	Updated bool
	// InsightsScheduled is set when this rating crossed the aggregation cadence.
	InsightsScheduled bool
}

// SubmitRatingConfig holds configuration for rating submission.
type SubmitRatingConfig struct {
	// Cadence schedules insight aggregation every Cadence ratings of a user.
	Cadence int
}

// SubmitRating stores a user's rating and, every Cadence ratings, queues
// aggregation of the user's and the content template's insights.
type SubmitRating struct {
	ContentFetcher datasources.ContentFetcher
	RatingAppender datasources.RatingAppender
	RatingCounter  datasources.UserRatingCounter
	Scheduler      datasources.InsightScheduler
	Config         SubmitRatingConfig
}

// NewSubmitRating creates a properly initialized SubmitRating command.
func NewSubmitRating(
	contentFetcher datasources.ContentFetcher,
	ratingAppender datasources.RatingAppender,
	ratingCounter datasources.UserRatingCounter,
	scheduler datasources.InsightScheduler,
	config SubmitRatingConfig,
) *SubmitRating {
	return &SubmitRating{
		ContentFetcher: contentFetcher,
		RatingAppender: ratingAppender,
		RatingCounter:  ratingCounter,
		Scheduler:      scheduler,
		Config:         config,
	}
}

// Execute stores the rating. Once the rating is stored, nothing that goes wrong
// with scheduling aggregation is returned to the caller.
func (c *SubmitRating) Execute(ctx context.Context, req SubmitRatingRequest) (SubmitRatingResult, error) {
	logger := domain.LoggerFromContext(ctx).With("content_id", req.ContentID)
	ctx = domain.ContextWithLogger(ctx, logger)

	content, err := c.ContentFetcher.FetchContent(ctx, req.ContentID)
	if err != nil {
		return SubmitRatingResult{}, fmt.Errorf("fetching content: %w", err)
	}

	now := time.Now().UTC()
	rating, updated, err := c.RatingAppender.AppendRating(ctx, domain.Rating{
		ID:        uuid.NewString(),
		ContentID: content.ID,
		UserID:    req.UserID,
		Direction: req.Direction,
		Comment:   req.Comment,
		LatencyMs: req.LatencyMs,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return SubmitRatingResult{}, fmt.Errorf("appending rating: %w", err)
	}

	metrics.RatingsSubmitted.WithLabelValues(string(rating.Direction), strconv.FormatBool(updated)).Inc()
	logger.DebugContext(ctx, "stored rating",
		"rating_id", rating.ID, "direction", rating.Direction, "updated", updated)

	result := SubmitRatingResult{Rating: rating, Updated: updated}
	if updated {
		// A superseded reroll does not add to the user's rating count.
		return result, nil
	}

	result.InsightsScheduled = c.scheduleInsights(ctx, req.UserID, content.TemplateID)
	return result, nil
}

// scheduleInsights queues aggregation if the user's rating count is a multiple of
// the cadence. Concurrent submissions may both or neither see the boundary; a
// redundant aggregation is harmless because it fully replaces the profile.
func (c *SubmitRating) scheduleInsights(ctx context.Context, userID string, templateID *string) bool {
	logger := domain.LoggerFromContext(ctx)

	if c.Config.Cadence <= 0 {
		return false
	}

	count, err := c.RatingCounter.CountUserRatings(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "failed to count user ratings, skipping insight scheduling", "error", err)
		return false
	}
	if count == 0 || count%c.Config.Cadence != 0 {
		return false
	}

	logger.InfoContext(ctx, "rating cadence reached, scheduling insight aggregation", "rating_count", count)

	scheduled := false
	if err := c.Scheduler.ScheduleUserInsights(ctx, userID); err != nil {
		logger.WarnContext(ctx, "failed to schedule user insight aggregation", "error", err)
	} else {
		metrics.InsightsScheduled.WithLabelValues(metrics.SubjectUser).Inc()
		scheduled = true
	}

	if templateID != nil && *templateID != "" {
		if err := c.Scheduler.ScheduleTemplateInsights(ctx, *templateID); err != nil {
			logger.WarnContext(ctx, "failed to schedule template insight aggregation",
				"error", err, "template_id", *templateID)
		} else {
			metrics.InsightsScheduled.WithLabelValues(metrics.SubjectTemplate).Inc()
			scheduled = true
		}
	}

	return scheduled
}
