package datasources

import (
	"context"

	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// ContentRepository combines all content and template store interfaces.
type ContentRepository interface {
	ContentFetcher
	ContentCreator
	ContentLister
	UnratedContentLister
	ContentCounter
	TemplateContentCounter
	TopContentLister
	TemplateFetcher
}

type ContentFetcher interface {
	// FetchContent returns domain.ErrNotFound for an unknown ID.
	FetchContent(ctx context.Context, contentID string) (domain.Content, error)
}

type ContentCreator interface {
	CreateContent(ctx context.Context, items []domain.Content) error
}

type ContentLister interface {
	// ListContent returns one page of content, newest first, plus the total match count.
	ListContent(
		ctx context.Context,
		filters domain.ContentFilters,
		page, pageSize int,
	) ([]domain.Content, int64, error)
}

type UnratedContentLister interface {
	// ListUnratedContent returns the newest content the user has not rated.
	ListUnratedContent(ctx context.Context, userID string, limit int) ([]domain.Content, error)
}

type ContentCounter interface {
	CountContent(ctx context.Context) (int64, error)
	// CountUnratedContent counts content the user has no rating on, treating
	// rerolled content as unrated.
	CountUnratedContent(ctx context.Context, userID string) (int64, error)
}

type TemplateContentCounter interface {
	CountTemplateContent(ctx context.Context, templateID string) (int, error)
}

type TopContentLister interface {
	ListTopContentByLikeRate(ctx context.Context, minRatings, limit int) ([]domain.ContentLikeRate, error)
}

type TemplateFetcher interface {
	// FetchTemplate returns domain.ErrNotFound for an unknown ID.
	FetchTemplate(ctx context.Context, templateID string) (domain.Template, error)
}
