package replicate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testModel = domain.GenerationModel{
	Key:       "flux-schnell",
	Type:      domain.ContentTypeImage,
	Reference: "black-forest-labs/flux-schnell",
}

func TestClient_Generate_ImmediateOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/black-forest-labs/flux-schnell/predictions", r.URL.Path)
		assert.Equal(t, "Bearer r8-test", r.Header.Get("Authorization"))
		assert.Equal(t, "wait", r.Header.Get("Prefer"))

		var body predictionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"prompt": "a neon city", "aspect_ratio": "16:9"}, body.Input)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"p1","status":"succeeded","output":["https://cdn.example/1.png"]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIToken: "r8-test", BaseURL: server.URL}, nil)
	url, err := client.Generate(t.Context(), testModel, "a neon city", map[string]any{
		"aspect_ratio": "16:9",
		"prompt":       "overridden",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/1.png", url)
}

func TestClient_Generate_Polls(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /models/black-forest-labs/flux-schnell/predictions", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"p2","status":"starting"}`))
	})
	mux.HandleFunc("GET /predictions/p2", func(w http.ResponseWriter, _ *http.Request) {
		if polls.Add(1) < 2 {
			_, _ = w.Write([]byte(`{"id":"p2","status":"processing"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"p2","status":"succeeded","output":"https://cdn.example/2.mp4"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, PollInterval: time.Millisecond}, nil)
	url, err := client.Generate(t.Context(), testModel, "a waterfall", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/2.mp4", url)
	assert.Equal(t, int32(2), polls.Load())
}

func TestClient_Generate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http_error", status: http.StatusUnprocessableEntity, body: `{"detail":"bad input"}`},
		{name: "prediction_failed", status: http.StatusCreated, body: `{"id":"p3","status":"failed","error":"NSFW"}`},
		{name: "no_output", status: http.StatusCreated, body: `{"id":"p4","status":"succeeded","output":[]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL}, nil)
			_, err := client.Generate(t.Context(), testModel, "a waterfall", nil)
			require.ErrorIs(t, err, domain.ErrGenerationFailed)
		})
	}
}
