package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

const rssFeedSize = 50

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.ContentLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Swipe Feedback",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of newly generated content awaiting ratings",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	filters, err := contentFiltersFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse content filters in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items, _, err := c.Lister.ListContent(r.Context(), filters, 1, rssFeedSize)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch content for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, item := range items {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          item.ID,
			IsPermaLink: "false",
			Title:       item.OriginalPrompt,
			Link:        &feeds.Link{Href: item.URL},
			Description: item.EnhancedPrompt,
			Author: &feeds.Author{
				Name: item.Model,
			},
			// Byte size is not stored; the enclosure is omitted unless Length is set.
			Enclosure: &feeds.Enclosure{
				Url:    item.URL,
				Type:   enclosureType(item.Type),
				Length: "0",
			},
			Created: item.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func enclosureType(t domain.ContentType) string {
	switch t {
	case domain.ContentTypeVideo:
		return "video/mp4"
	case domain.ContentTypeAudio:
		return "audio/mpeg"
	default:
		return "image/png"
	}
}
