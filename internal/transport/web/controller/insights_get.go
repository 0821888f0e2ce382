package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// UserInsightsGet handles GET /v1/insights/users/{user_id}.
// A user who has never been aggregated gets an empty profile.
type UserInsightsGet struct {
	Fetcher datasources.UserInsightFetcher
}

func (c UserInsightsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	logger := domain.LoggerFromContext(r.Context()).With("user_id", userID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	profile, err := c.Fetcher.FetchUserInsights(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		profile, err = domain.EmptyUserInsightProfile(userID), nil
	}
	if err != nil {
		writeError(ctx, w, "unable to fetch user insights", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}

// TemplateInsightsGet handles GET /v1/insights/templates/{template_id}.
type TemplateInsightsGet struct {
	Fetcher datasources.TemplateInsightFetcher
}

func (c TemplateInsightsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["template_id"]
	logger := domain.LoggerFromContext(r.Context()).With("template_id", templateID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	profile, err := c.Fetcher.FetchTemplateInsights(ctx, templateID)
	if err != nil {
		writeError(ctx, w, "unable to fetch template insights", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}
