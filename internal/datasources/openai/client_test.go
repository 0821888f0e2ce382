package openai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Authorization string
	Body          chatCompletionRequest
}

func newTestServer(t *testing.T, status int, content string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	var requests []capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var body chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		requests = append(requests, capturedRequest{
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})

		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{
					"message":       map[string]any{"content": content},
					"finish_reason": "stop",
				},
			},
		}))
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

func TestClient_AnalyzeComments(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK,
		"```json\n{\"likes\":[\"neon\",\"Rain\"],\"dislikes\":[],\"suggestions\":[\"more fog\"]}\n```")

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL}, nil)
	analysis, err := client.AnalyzeComments(t.Context(), []string{"love the neon", "  ", "rain is great"})
	require.NoError(t, err)

	assert.Equal(t, []string{"neon", "Rain"}, analysis.Likes)
	assert.Equal(t, []string{}, analysis.Dislikes)
	assert.Equal(t, []string{"more fog"}, analysis.Suggestions)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "Bearer sk-test", req.Authorization)
	assert.Equal(t, "gpt-4o-mini", req.Body.Model)
	assert.Equal(t, jsonResponseType, req.Body.ResponseFormat["type"])
	assert.Equal(t, "love the neon\n---\nrain is great", req.Body.Messages[1].Content)
}

func TestClient_AnalyzeComments_EmptyInputSkipsRequest(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)
	analysis, err := client.AnalyzeComments(t.Context(), []string{"", "   "})
	require.NoError(t, err)

	assert.Empty(t, analysis.Likes)
	assert.Empty(t, analysis.Dislikes)
	assert.Empty(t, analysis.Suggestions)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_AnalyzeComments_Failures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		content string
	}{
		{name: "http_error", status: http.StatusTooManyRequests},
		{name: "malformed_json", status: http.StatusOK, content: "not json"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server, _ := newTestServer(t, tc.status, tc.content)

			client := NewClient(Config{BaseURL: server.URL}, nil)
			_, err := client.AnalyzeComments(t.Context(), []string{"meh"})
			require.ErrorIs(t, err, domain.ErrAnalysisFailed)
		})
	}
}

func TestClient_EnhancePrompt(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, "  a rain-soaked neon city at night  ")

	client := NewClient(Config{BaseURL: server.URL, EnhanceModel: "gpt-test"}, nil)
	enhanced, err := client.EnhancePrompt(t.Context(), "a city at night", "", domain.PreferenceHints{
		Likes: []domain.KeywordCount{
			{Keyword: "neon", Count: 9}, {Keyword: "rain", Count: 8}, {Keyword: "fog", Count: 7},
			{Keyword: "dusk", Count: 6}, {Keyword: "glow", Count: 5}, {Keyword: "dropped", Count: 1},
		},
		Dislikes: []domain.KeywordCount{{Keyword: "blur", Count: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "a rain-soaked neon city at night", enhanced)

	require.Len(t, *requests, 1)
	body := (*requests)[0].Body
	assert.Equal(t, "gpt-test", body.Model)
	assert.Equal(t, defaultEnhanceInstructions, body.Messages[0].Content)
	assert.Equal(t,
		"a city at night\n\nUser preferences (from previous feedback):"+
			"\nLikes: neon, rain, fog, dusk, glow\nAvoid: blur",
		body.Messages[1].Content)
}

func TestClient_EnhancePrompt_NoHints(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, "enhanced")

	client := NewClient(Config{BaseURL: server.URL}, nil)
	_, err := client.EnhancePrompt(t.Context(), "lofi beat", "You write music prompts.", domain.PreferenceHints{})
	require.NoError(t, err)

	body := (*requests)[0].Body
	assert.Equal(t, "You write music prompts.", body.Messages[0].Content)
	assert.Equal(t, "lofi beat", body.Messages[1].Content)
}

func TestClient_DetectCategory(t *testing.T) {
	cases := []struct {
		name     string
		reply    string
		expected string
	}{
		{name: "known", reply: "Nature.", expected: "nature"},
		{name: "quoted", reply: `"sci-fi"`, expected: "sci-fi"},
		{name: "unknown", reply: "vehicles", expected: domain.CategoryGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server, requests := newTestServer(t, http.StatusOK, tc.reply)

			client := NewClient(Config{BaseURL: server.URL}, nil)
			category, err := client.DetectCategory(t.Context(), "a waterfall", domain.ContentTypeVideo)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, category)
			assert.True(t, strings.Contains((*requests)[0].Body.Messages[0].Content, "video"))
		})
	}
}
