package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/jbeshir/swipe-feedback/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// analyzedBuckets holds the keyword side of an insight profile.
type analyzedBuckets struct {
	likeKeywords    []domain.KeywordCount
	dislikeKeywords []domain.KeywordCount
	suggestions     []string
}

// analyzeRatingBuckets analyses the positive and negative comments of a rating
// window in parallel. Only the likes of the positive analysis and the dislikes
// of the negative analysis are kept; suggestions from both are pooled.
// If either analysis fails, the whole result is discarded.
func analyzeRatingBuckets(
	ctx context.Context,
	analyzer datasources.CommentAnalyzer,
	buckets domain.RatingBuckets,
) (analyzedBuckets, error) {
	var positive, negative domain.CommentAnalysis

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		positive, err = analyzeBucket(gctx, analyzer, buckets.PositiveComments)
		if err != nil {
			return fmt.Errorf("analyzing positive comments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		negative, err = analyzeBucket(gctx, analyzer, buckets.NegativeComments)
		if err != nil {
			return fmt.Errorf("analyzing negative comments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return analyzedBuckets{}, err
	}

	suggestions := make([]string, 0, len(positive.Suggestions)+len(negative.Suggestions))
	suggestions = append(suggestions, positive.Suggestions...)
	suggestions = append(suggestions, negative.Suggestions...)

	return analyzedBuckets{
		likeKeywords:    domain.CountKeywords(positive.Likes),
		dislikeKeywords: domain.CountKeywords(negative.Dislikes),
		suggestions:     suggestions,
	}, nil
}

func analyzeBucket(
	ctx context.Context,
	analyzer datasources.CommentAnalyzer,
	comments []string,
) (domain.CommentAnalysis, error) {
	if len(comments) == 0 {
		metrics.AnalyzerCallsSkipped.Inc()
		return domain.CommentAnalysis{}, nil
	}

	analysis, err := analyzer.AnalyzeComments(ctx, comments)
	if err != nil {
		if !errors.Is(err, domain.ErrAnalysisFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
		}
		return domain.CommentAnalysis{}, err
	}

	return analysis, nil
}
