package controller

import (
	"net/http"

	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// RatingStatsGet handles GET /v1/ratings/stats.
type RatingStatsGet struct {
	StatsCmd command.Command[command.GetRatingStatsRequest, domain.RatingStats]
}

func (c RatingStatsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := c.StatsCmd.Execute(ctx, command.GetRatingStatsRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ContentID: r.URL.Query().Get("content_id"),
	})
	if err != nil {
		writeError(ctx, w, "unable to get rating stats", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}
