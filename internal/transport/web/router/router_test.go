package router

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/command"
	cmdmocks "github.com/jbeshir/swipe-feedback/internal/command/mocks"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/datasources/mocks"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testRepos satisfies the repository interfaces for routes the tests never reach.
type testRepos struct {
	datasources.ContentRepository
	datasources.InsightRepository
}

func withLogger(r *http.Request) *http.Request {
	return r.WithContext(domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler)))
}

func TestNewAuthMiddleware(t *testing.T) {
	failing := func(r *http.Request) (*AuthResult, error) {
		if r.Header.Get("Authorization") == "" {
			return nil, nil
		}
		return nil, errors.New("invalid JWT token")
	}

	cases := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantUserID string
		wantMethod domain.AuthMethod
	}{
		{
			name:       "anonymous",
			wantStatus: http.StatusOK,
		},
		{
			name:       "header_identity",
			headers:    map[string]string{"X-User-ID": "user1"},
			wantStatus: http.StatusOK,
			wantUserID: "user1",
			wantMethod: domain.AuthMethodHeader,
		},
		{
			name:       "empty_header_identity",
			headers:    map[string]string{"X-User-ID": " "},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected_token",
			headers:    map[string]string{"Authorization": "Bearer nonsense"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotUserID string
			var gotMethod domain.AuthMethod
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = domain.UserIDFromContext(r.Context())
				gotMethod = domain.AuthMethodFromContext(r.Context())
			})

			handler := NewAuthMiddleware([]AuthValidator{failing, NewHeaderValidator()})(next)

			req := withLogger(httptest.NewRequest(http.MethodGet, "/", nil))
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantUserID, gotUserID)
			assert.Equal(t, tc.wantMethod, gotMethod)
		})
	}
}

func newTestRouter(t *testing.T, repos testRepos, cmds Commands) http.Handler {
	t.Helper()

	h, err := MakeRouter(
		repos,
		mocks.NewMockRatingLister(t),
		repos,
		cmds,
		"https://feedback.example.com",
		"Swipe Feedback",
		"feed@example.com",
		time.Minute,
		NewAuthMiddleware([]AuthValidator{NewHeaderValidator()}),
	)
	require.NoError(t, err)
	return h
}

func TestMakeRouter_ContentNextIsNotAnID(t *testing.T) {
	repos := testRepos{}

	pickCmd := cmdmocks.NewMockCommand[command.PickNextContentRequest, domain.Content](t)
	pickCmd.EXPECT().
		Execute(mock.Anything, command.PickNextContentRequest{UserID: "user1"}).
		Return(domain.Content{ID: "c7"}, nil)

	h := newTestRouter(t, repos, Commands{PickNextContent: pickCmd})

	req := withLogger(httptest.NewRequest(http.MethodGet, "/v1/content/next", nil))
	req.Header.Set("X-User-ID", "user1")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"c7"`)
}

func TestMakeRouter_Authorization(t *testing.T) {
	cases := []struct {
		name       string
		method     string
		path       string
		userID     string
		wantStatus int
	}{
		{name: "rating_requires_auth", method: http.MethodPost, path: "/v1/ratings", wantStatus: http.StatusUnauthorized},
		{name: "next_requires_auth", method: http.MethodGet, path: "/v1/content/next", wantStatus: http.StatusUnauthorized},
		{
			name:       "other_users_insights",
			method:     http.MethodGet,
			path:       "/v1/insights/users/user2",
			userID:     "user1",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "other_users_refresh",
			method:     http.MethodPost,
			path:       "/v1/insights/users/user2/refresh",
			userID:     "user1",
			wantStatus: http.StatusForbidden,
		},
		{name: "preflight", method: http.MethodOptions, path: "/v1/ratings", wantStatus: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repos := testRepos{}
			h := newTestRouter(t, repos, Commands{})

			req := withLogger(httptest.NewRequest(tc.method, tc.path, nil))
			if tc.userID != "" {
				req.Header.Set("X-User-ID", tc.userID)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestMakeRouter_Metrics(t *testing.T) {
	repos := testRepos{}
	h := newTestRouter(t, repos, Commands{})

	req := withLogger(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestMakeRouter_PreflightAllowsAPIHeaders(t *testing.T) {
	h := newTestRouter(t, testRepos{}, Commands{})

	req := withLogger(httptest.NewRequest(http.MethodOptions, "/v1/insights/users/user1/refresh", nil))
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "x-user-id, content-type")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	allowHeaders := rec.Header().Get("Access-Control-Allow-Headers")
	assert.Contains(t, allowHeaders, "X-User-ID")
	assert.Contains(t, allowHeaders, "Content-Type")
	assert.Contains(t, allowHeaders, "Authorization")
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
