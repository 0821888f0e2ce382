package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/jbeshir/swipe-feedback/internal/transport/web/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commands are the operations the HTTP API dispatches to.
type Commands struct {
	SubmitRating      command.Command[command.SubmitRatingRequest, command.SubmitRatingResult]
	RatingStats       command.Command[command.GetRatingStatsRequest, domain.RatingStats]
	AggregateUser     command.Command[command.AggregateUserInsightsRequest, domain.UserInsightProfile]
	AggregateTemplate command.Command[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile]
	Dashboard         command.Command[command.Empty, domain.DashboardStats]
	GenerateContent   command.Command[command.GenerateContentRequest, []domain.Content]
	PickNextContent   command.Command[command.PickNextContentRequest, domain.Content]
}

func MakeRouter(
	content datasources.ContentRepository,
	ratings datasources.RatingLister,
	insights datasources.InsightRepository,
	cmds Commands,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/ratings", requireAuthMiddleware(controller.RatingSubmit{
		SubmitCmd: cmds.SubmitRating,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/ratings", requireAuthMiddleware(controller.RatingsList{
		Lister: ratings,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/ratings/stats", requireAuthMiddleware(controller.RatingStatsGet{
		StatsCmd: cmds.RatingStats,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/insights/users/{user_id}", requireSelfMiddleware(controller.UserInsightsGet{
		Fetcher: insights,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/insights/users/{user_id}/refresh", requireSelfMiddleware(controller.UserInsightsRefresh{
		AggregateCmd: cmds.AggregateUser,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/insights/templates/{template_id}", controller.TemplateInsightsGet{
		Fetcher: insights,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/insights/templates/{template_id}/refresh", requireAuthMiddleware(controller.TemplateInsightsRefresh{
		AggregateCmd: cmds.AggregateTemplate,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/dashboard", controller.DashboardGet{
		DashboardCmd: cmds.Dashboard,
		CacheMaxAge:  latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/content/generate", requireAuthMiddleware(controller.ContentGenerate{
		GenerateCmd: cmds.GenerateContent,
	})).Methods(http.MethodPost, http.MethodOptions)

	// Registered ahead of /v1/content/{content_id} so "next" is not taken as an ID.
	r.Handle("/v1/content/next", requireAuthMiddleware(controller.ContentNext{
		PickCmd: cmds.PickNextContent,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/content/{content_id}", controller.ContentGet{
		Fetcher:     content,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/content", controller.ContentList{
		Lister:      content,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Lister:          content,
			CacheMaxAge:     latestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed).Methods(http.MethodGet)
	}

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}
