package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/swipe-feedback/internal/command"
	cmdmocks "github.com/jbeshir/swipe-feedback/internal/command/mocks"
	"github.com/jbeshir/swipe-feedback/internal/datasources/mocks"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserInsightsGet_ServeHTTP(t *testing.T) {
	stored := domain.UserInsightProfile{
		UserID:          "user1",
		LikeKeywords:    []domain.KeywordCount{{Keyword: "neon", Count: 2}},
		DislikeKeywords: []domain.KeywordCount{},
		Suggestions:     []string{"more rain"},
		InsightCounters: domain.InsightCounters{TotalSwipes: 3, TotalLikes: 2},
	}

	cases := []struct {
		name       string
		profile    domain.UserInsightProfile
		fetchErr   error
		wantStatus int
		want       *domain.UserInsightProfile
	}{
		{
			name:       "stored_profile",
			profile:    stored,
			wantStatus: http.StatusOK,
			want:       &stored,
		},
		{
			name:       "never_aggregated",
			fetchErr:   fmt.Errorf("user insights user1: %w", domain.ErrNotFound),
			wantStatus: http.StatusOK,
			want:       ptr(domain.EmptyUserInsightProfile("user1")),
		},
		{
			name:       "store_error",
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockUserInsightFetcher(t)
			fetcher.EXPECT().
				FetchUserInsights(mock.Anything, "user1").
				Return(tc.profile, tc.fetchErr)

			ctrl := UserInsightsGet{Fetcher: fetcher}

			req := httptest.NewRequest(http.MethodGet, "/v1/insights/users/user1", nil)
			req = testContextWithUserID("user1")(req)
			req = mux.SetURLVars(req, map[string]string{"user_id": "user1"})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.want != nil {
				var got domain.UserInsightProfile
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, *tc.want, got)
			}
		})
	}
}

func TestTemplateInsightsGet_ServeHTTP(t *testing.T) {
	fetcher := mocks.NewMockTemplateInsightFetcher(t)
	fetcher.EXPECT().
		FetchTemplateInsights(mock.Anything, "missing").
		Return(domain.TemplateInsightProfile{}, domain.ErrNotFound)

	ctrl := TemplateInsightsGet{Fetcher: fetcher}

	req := httptest.NewRequest(http.MethodGet, "/v1/insights/templates/missing", nil)
	req = testContext()(req)
	req = mux.SetURLVars(req, map[string]string{"template_id": "missing"})
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserInsightsRefresh_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		cmdErr     error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "no_ratings", cmdErr: domain.ErrNoRatings, wantStatus: http.StatusNotFound},
		{
			name:       "analysis_failed",
			cmdErr:     fmt.Errorf("analyzing: %w", domain.ErrAnalysisFailed),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "store_failure",
			cmdErr:     fmt.Errorf("upserting: %w", domain.ErrStoreFailure),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			aggregateCmd := cmdmocks.NewMockCommand[command.AggregateUserInsightsRequest, domain.UserInsightProfile](t)
			aggregateCmd.EXPECT().
				Execute(mock.Anything, command.AggregateUserInsightsRequest{UserID: "user1"}).
				Return(domain.UserInsightProfile{UserID: "user1"}, tc.cmdErr)

			ctrl := UserInsightsRefresh{AggregateCmd: aggregateCmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/insights/users/user1/refresh", nil)
			req = testContextWithUserID("user1")(req)
			req = mux.SetURLVars(req, map[string]string{"user_id": "user1"})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestTemplateInsightsRefresh_ServeHTTP(t *testing.T) {
	aggregateCmd := cmdmocks.NewMockCommand[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile](t)
	aggregateCmd.EXPECT().
		Execute(mock.Anything, command.AggregateTemplateInsightsRequest{TemplateID: "tmpl1"}).
		Return(domain.TemplateInsightProfile{TemplateID: "tmpl1", TotalUses: 3, AvgLikeRate: 0.5}, nil)

	ctrl := TemplateInsightsRefresh{AggregateCmd: aggregateCmd}

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/templates/tmpl1/refresh", nil)
	req = testContext()(req)
	req = mux.SetURLVars(req, map[string]string{"template_id": "tmpl1"})
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.TemplateInsightProfile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 3, got.TotalUses)
	assert.InDelta(t, 0.5, got.AvgLikeRate, 1e-9)
}

func TestDashboardGet_ServeHTTP(t *testing.T) {
	dashboardCmd := cmdmocks.NewMockCommand[command.Empty, domain.DashboardStats](t)
	dashboardCmd.EXPECT().
		Execute(mock.Anything, command.Empty{}).
		Return(domain.DashboardStats{
			Ratings:      domain.RatingStats{Total: 10, LikeRate: 60},
			TotalContent: 12,
			TopContent:   []domain.ContentLikeRate{},
			Templates:    []domain.TemplateInsightProfile{},
		}, nil)

	ctrl := DashboardGet{DashboardCmd: dashboardCmd}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "max-age=0", rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{
		"ratings": {"total":10,"likes":0,"dislikes":0,"superlikes":0,"rerolls":0,"like_rate":60},
		"total_content": 12,
		"top_content": [],
		"templates": []
	}`, rec.Body.String())
}
