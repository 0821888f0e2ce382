package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"golang.org/x/sync/errgroup"
)

// GetDashboardConfig holds configuration for the dashboard overview.
type GetDashboardConfig struct {
	// TopContentMinRatings excludes content with too few ratings for a meaningful like rate.
	TopContentMinRatings int
	TopContentLimit      int
	TemplateLimit        int
}

// GetDashboard assembles global rating totals, the best rated content and
// templates ranked by average like rate.
type GetDashboard struct {
	RatingCounts    datasources.RatingCountsGetter
	ContentCounter  datasources.ContentCounter
	TopContent      datasources.TopContentLister
	TemplateInsight datasources.TemplateInsightLister
	Config          GetDashboardConfig
}

// NewGetDashboard creates a properly initialized GetDashboard command.
func NewGetDashboard(
	ratingCounts datasources.RatingCountsGetter,
	contentCounter datasources.ContentCounter,
	topContent datasources.TopContentLister,
	templateInsight datasources.TemplateInsightLister,
	config GetDashboardConfig,
) *GetDashboard {
	return &GetDashboard{
		RatingCounts:    ratingCounts,
		ContentCounter:  contentCounter,
		TopContent:      topContent,
		TemplateInsight: templateInsight,
		Config:          config,
	}
}

func (c *GetDashboard) Execute(ctx context.Context, _ Empty) (domain.DashboardStats, error) {
	var stats domain.DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := c.RatingCounts.GetRatingCounts(gctx, domain.RatingFilters{})
		if err != nil {
			return fmt.Errorf("getting rating counts: %w", err)
		}
		stats.Ratings = domain.NewRatingStats(counts)
		return nil
	})
	g.Go(func() error {
		total, err := c.ContentCounter.CountContent(gctx)
		if err != nil {
			return fmt.Errorf("counting content: %w", err)
		}
		stats.TotalContent = total
		return nil
	})
	g.Go(func() error {
		top, err := c.TopContent.ListTopContentByLikeRate(gctx, c.Config.TopContentMinRatings, c.Config.TopContentLimit)
		if err != nil {
			return fmt.Errorf("listing top content: %w", err)
		}
		stats.TopContent = top
		return nil
	})
	g.Go(func() error {
		templates, err := c.TemplateInsight.ListTemplateInsights(gctx, c.Config.TemplateLimit)
		if err != nil {
			return fmt.Errorf("listing template insights: %w", err)
		}
		stats.Templates = templates
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, err
	}

	if stats.TopContent == nil {
		stats.TopContent = []domain.ContentLikeRate{}
	}
	if stats.Templates == nil {
		stats.Templates = []domain.TemplateInsightProfile{}
	}

	return stats, nil
}
