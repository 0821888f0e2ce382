package datasources

import (
	"context"

	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// InsightRepository combines all insight profile store interfaces.
type InsightRepository interface {
	UserInsightUpserter
	UserInsightFetcher
	TemplateInsightUpserter
	TemplateInsightFetcher
	TemplateInsightLister
}

type UserInsightUpserter interface {
	// UpsertUserInsights replaces the stored profile entirely.
	UpsertUserInsights(ctx context.Context, profile domain.UserInsightProfile) error
}

type UserInsightFetcher interface {
	// FetchUserInsights returns domain.ErrNotFound if the user has never been aggregated.
	FetchUserInsights(ctx context.Context, userID string) (domain.UserInsightProfile, error)
}

type TemplateInsightUpserter interface {
	UpsertTemplateInsights(ctx context.Context, profile domain.TemplateInsightProfile) error
}

type TemplateInsightFetcher interface {
	FetchTemplateInsights(ctx context.Context, templateID string) (domain.TemplateInsightProfile, error)
}

type TemplateInsightLister interface {
	// ListTemplateInsights returns profiles ordered by average like rate, best first.
	ListTemplateInsights(ctx context.Context, limit int) ([]domain.TemplateInsightProfile, error)
}

// InsightScheduler queues aggregations to run outside the calling request.
// Scheduling is best effort: an accepted job may still fail later and is only logged.
type InsightScheduler interface {
	ScheduleUserInsights(ctx context.Context, userID string) error
	ScheduleTemplateInsights(ctx context.Context, templateID string) error
}

// NullInsightScheduler is a null implementation of InsightScheduler.
type NullInsightScheduler struct{}

var _ InsightScheduler = NullInsightScheduler{}

func (NullInsightScheduler) ScheduleUserInsights(_ context.Context, _ string) error {
	return nil
}

func (NullInsightScheduler) ScheduleTemplateInsights(_ context.Context, _ string) error {
	return nil
}
