package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// ContentGet handles GET /v1/content/{content_id}.
type ContentGet struct {
	Fetcher     datasources.ContentFetcher
	CacheMaxAge time.Duration
}

func (c ContentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	contentID := mux.Vars(r)["content_id"]
	logger := domain.LoggerFromContext(r.Context()).With("content_id", contentID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	content, err := c.Fetcher.FetchContent(ctx, contentID)
	if err != nil {
		writeError(ctx, w, "unable to fetch content", err)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(ctx, w, http.StatusOK, content)
}

// ContentNext handles GET /v1/content/next, picking the caller's next card.
type ContentNext struct {
	PickCmd command.Command[command.PickNextContentRequest, domain.Content]
}

func (c ContentNext) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	content, err := c.PickCmd.Execute(ctx, command.PickNextContentRequest{
		UserID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeError(ctx, w, "unable to pick next content", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(ctx, w, http.StatusOK, content)
}
