package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/swipe-feedback/internal/command"
	cmdmocks "github.com/jbeshir/swipe-feedback/internal/command/mocks"
	"github.com/jbeshir/swipe-feedback/internal/datasources/mocks"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContentItem(id string) domain.Content {
	return domain.Content{
		ID:             id,
		Type:           domain.ContentTypeImage,
		URL:            "https://cdn.example.com/" + id + ".png",
		OriginalPrompt: "a city at night",
		EnhancedPrompt: "a neon city at night, rain-soaked streets",
		Model:          "seedream-4",
		Category:       "landscape",
		CreatedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestContentGenerate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantReq    *command.GenerateContentRequest
		result     []domain.Content
		cmdErr     error
		wantStatus int
	}{
		{
			name: "success",
			body: `{"prompt":"a city at night","content_type":"image","count":2,"params":{"aspect_ratio":"16:9"}}`,
			wantReq: &command.GenerateContentRequest{
				UserID:      "user1",
				Prompt:      "a city at night",
				ContentType: domain.ContentTypeImage,
				Count:       2,
				Params:      map[string]any{"aspect_ratio": "16:9"},
			},
			result:     []domain.Content{testContentItem("c1"), testContentItem("c2")},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "count_too_large",
			body:       `{"prompt":"a city at night","content_type":"image","count":5}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_content_type",
			body:       `{"prompt":"a city at night","content_type":"hologram"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing_prompt",
			body:       `{"content_type":"audio"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_model",
			body: `{"prompt":"rain","content_type":"audio","model_key":"kazoo"}`,
			wantReq: &command.GenerateContentRequest{
				UserID:      "user1",
				Prompt:      "rain",
				ContentType: domain.ContentTypeAudio,
				ModelKey:    "kazoo",
			},
			cmdErr:     fmt.Errorf("resolving model: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name: "generation_failed",
			body: `{"prompt":"rain","content_type":"video"}`,
			wantReq: &command.GenerateContentRequest{
				UserID:      "user1",
				Prompt:      "rain",
				ContentType: domain.ContentTypeVideo,
			},
			cmdErr:     fmt.Errorf("prediction failed: %w", domain.ErrGenerationFailed),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			generateCmd := cmdmocks.NewMockCommand[command.GenerateContentRequest, []domain.Content](t)
			if tc.wantReq != nil {
				generateCmd.EXPECT().
					Execute(mock.Anything, *tc.wantReq).
					Return(tc.result, tc.cmdErr)
			}

			ctrl := ContentGenerate{GenerateCmd: generateCmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/content/generate", strings.NewReader(tc.body))
			req = testContextWithUserID("user1")(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusCreated {
				var got ContentGenerateResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, tc.result, got.Data)
			}
		})
	}
}

func TestContentGet_ServeHTTP(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fetcher := mocks.NewMockContentFetcher(t)
		fetcher.EXPECT().FetchContent(mock.Anything, "c1").Return(testContentItem("c1"), nil)

		ctrl := ContentGet{Fetcher: fetcher, CacheMaxAge: time.Hour}

		req := httptest.NewRequest(http.MethodGet, "/v1/content/c1", nil)
		req = testContext()(req)
		req = mux.SetURLVars(req, map[string]string{"content_id": "c1"})
		rec := httptest.NewRecorder()

		ctrl.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))

		var got domain.Content
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, testContentItem("c1"), got)
	})

	t.Run("not_found", func(t *testing.T) {
		fetcher := mocks.NewMockContentFetcher(t)
		fetcher.EXPECT().
			FetchContent(mock.Anything, "missing").
			Return(domain.Content{}, fmt.Errorf("content missing: %w", domain.ErrNotFound))

		ctrl := ContentGet{Fetcher: fetcher}

		req := httptest.NewRequest(http.MethodGet, "/v1/content/missing", nil)
		req = testContext()(req)
		req = mux.SetURLVars(req, map[string]string{"content_id": "missing"})
		rec := httptest.NewRecorder()

		ctrl.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"content missing: not found"}`, rec.Body.String())
	})
}

func TestContentNext_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		content    domain.Content
		cmdErr     error
		wantStatus int
	}{
		{name: "picked", content: testContentItem("c2"), wantStatus: http.StatusOK},
		{name: "nothing_left", cmdErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store_error", cmdErr: errors.New("database error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pickCmd := cmdmocks.NewMockCommand[command.PickNextContentRequest, domain.Content](t)
			pickCmd.EXPECT().
				Execute(mock.Anything, command.PickNextContentRequest{UserID: "user1"}).
				Return(tc.content, tc.cmdErr)

			ctrl := ContentNext{PickCmd: pickCmd}

			req := httptest.NewRequest(http.MethodGet, "/v1/content/next", nil)
			req = testContextWithUserID("user1")(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestContentList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		query        string
		wantFilters  *domain.ContentFilters
		wantPage     int
		wantPageSize int
		items        []domain.Content
		total        int64
		listErr      error
		wantStatus   int
	}{
		{
			name:         "defaults",
			wantFilters:  &domain.ContentFilters{},
			wantPage:     1,
			wantPageSize: 50,
			items:        []domain.Content{testContentItem("c1")},
			total:        1,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "filtered_page",
			query:        "?template_id=tmpl1&type=video&page=2&page_size=10",
			wantFilters:  &domain.ContentFilters{TemplateID: "tmpl1", Type: domain.ContentTypeVideo},
			wantPage:     2,
			wantPageSize: 10,
			items:        []domain.Content{},
			total:        12,
			wantStatus:   http.StatusOK,
		},
		{
			name:       "bad_type",
			query:      "?type=hologram",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "page_size_too_large",
			query:      "?page_size=1000",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:         "list_error",
			wantFilters:  &domain.ContentFilters{},
			wantPage:     1,
			wantPageSize: 50,
			listErr:      errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockContentLister(t)
			if tc.wantFilters != nil {
				lister.EXPECT().
					ListContent(mock.Anything, *tc.wantFilters, tc.wantPage, tc.wantPageSize).
					Return(tc.items, tc.total, tc.listErr)
			}

			ctrl := ContentList{Lister: lister}

			req := httptest.NewRequest(http.MethodGet, "/v1/content"+tc.query, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var got ContentListResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Len(t, got.Data, len(tc.items))
				assert.Equal(t, ContentListMetadata{
					Page:     tc.wantPage,
					PageSize: tc.wantPageSize,
					Total:    tc.total,
				}, got.Metadata)
			}
		})
	}
}

func TestRSS_ServeHTTP(t *testing.T) {
	audio := testContentItem("c3")
	audio.Type = domain.ContentTypeAudio
	audio.URL = "https://cdn.example.com/c3.mp3"

	lister := mocks.NewMockContentLister(t)
	lister.EXPECT().
		ListContent(mock.Anything, domain.ContentFilters{}, 1, rssFeedSize).
		Return([]domain.Content{testContentItem("c1"), audio}, 2, nil)

	ctrl := RSS{
		FeedHostname:    "https://feedback.example.com",
		FeedPath:        "/rss",
		FeedAuthorName:  "Swipe Feedback",
		FeedAuthorEmail: "feed@example.com",
		Lister:          lister,
		CacheMaxAge:     5 * time.Minute,
	}

	req := httptest.NewRequest(http.MethodGet, "/rss", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=300", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, "<rss")
	assert.Contains(t, body, "a city at night")
	assert.Equal(t, 2, strings.Count(body, "<enclosure "))
	assert.Contains(t, body, `url="https://cdn.example.com/c1.png"`)
	assert.Contains(t, body, `type="image/png"`)
	assert.Contains(t, body, `url="https://cdn.example.com/c3.mp3"`)
	assert.Contains(t, body, `type="audio/mpeg"`)
	assert.Contains(t, body, `length="0"`)
}

func TestRSS_ServeHTTP_BadFilter(t *testing.T) {
	ctrl := RSS{Lister: mocks.NewMockContentLister(t)}

	req := httptest.NewRequest(http.MethodGet, "/rss?type=hologram", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
