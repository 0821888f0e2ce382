package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// UserInsightsRefresh handles POST /v1/insights/users/{user_id}/refresh,
// aggregating synchronously instead of waiting for the rating cadence.
type UserInsightsRefresh struct {
	AggregateCmd command.Command[command.AggregateUserInsightsRequest, domain.UserInsightProfile]
}

func (c UserInsightsRefresh) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	logger := domain.LoggerFromContext(r.Context()).With("user_id", userID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	profile, err := c.AggregateCmd.Execute(ctx, command.AggregateUserInsightsRequest{UserID: userID})
	if err != nil {
		writeError(ctx, w, "unable to refresh user insights", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}

// TemplateInsightsRefresh handles POST /v1/insights/templates/{template_id}/refresh.
type TemplateInsightsRefresh struct {
	AggregateCmd command.Command[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile]
}

func (c TemplateInsightsRefresh) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["template_id"]
	logger := domain.LoggerFromContext(r.Context()).With("template_id", templateID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	profile, err := c.AggregateCmd.Execute(ctx, command.AggregateTemplateInsightsRequest{TemplateID: templateID})
	if err != nil {
		writeError(ctx, w, "unable to refresh template insights", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}
