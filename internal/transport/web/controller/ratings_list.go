package controller

import (
	"net/http"
	"net/url"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

const (
	defaultRatingsLimit = 50
	maxRatingsLimit     = 200
)

type RatingsListResponse struct {
	Data []domain.Rating `json:"data"`
}

// RatingsList handles GET /v1/ratings, listing the caller's ratings newest first.
type RatingsList struct {
	Lister datasources.RatingLister
}

func (c RatingsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, limit, err := ratingsQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, "unable to parse ratings query", err)
		return
	}
	filters.UserID = domain.UserIDFromContext(ctx)

	ratings, err := c.Lister.ListRatings(ctx, filters, limit)
	if err != nil {
		writeError(ctx, w, "unable to list ratings", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, RatingsListResponse{Data: ratings})
}

func ratingsQuery(q url.Values) (domain.RatingFilters, int, error) {
	filters := domain.RatingFilters{ContentID: q.Get("content_id")}

	if q.Has("direction") {
		direction, err := domain.ParseDirection(q.Get("direction"))
		if err != nil {
			return domain.RatingFilters{}, 0, err
		}
		filters.Direction = direction
	}

	limit, err := queryInt(q, "limit", defaultRatingsLimit, 1, maxRatingsLimit)
	if err != nil {
		return domain.RatingFilters{}, 0, err
	}

	return filters, limit, nil
}
