package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/datasources/upstream"
)

var _ datasources.LanguageModel = (*Client)(nil)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultHTTPTimeout = 60 * time.Second
	jsonResponseType   = "json_object"
)

type Config struct {
	APIKey  string
	BaseURL string

	// AnalysisModel handles comment analysis and category detection.
	AnalysisModel string
	EnhanceModel  string

	RequestsPerMinute int
}

// Client talks to the OpenAI chat completions API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	guard      *upstream.Guard[string]
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.AnalysisModel == "" {
		cfg.AnalysisModel = "gpt-4o-mini"
	}
	if cfg.EnhanceModel == "" {
		cfg.EnhanceModel = "gpt-4o"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	guardCfg := upstream.DefaultConfig("openai")
	guardCfg.RequestsPerMinute = cfg.RequestsPerMinute

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		guard:      upstream.NewGuard[string](guardCfg),
	}
}

type chatCompletionRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// complete runs one chat completion and returns the trimmed content of the first choice.
func (c *Client) complete(ctx context.Context, operation string, payload chatCompletionRequest) (string, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshalling request: %w", err)
	}

	return c.guard.Do(ctx, operation, func(ctx context.Context) (string, error) {
		req, err := http.NewRequestWithContext(
			ctx,
			http.MethodPost,
			c.cfg.BaseURL+"/chat/completions",
			bytes.NewReader(jsonBody),
		)
		if err != nil {
			return "", fmt.Errorf("creating request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("executing request: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return "", fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}

		var result chatCompletionResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return "", fmt.Errorf("decoding response: %w", err)
		}

		if len(result.Choices) == 0 {
			return "", fmt.Errorf("empty completion response")
		}
		content := strings.TrimSpace(result.Choices[0].Message.Content)
		if content == "" {
			return "", fmt.Errorf("empty completion content (finish_reason=%q)", result.Choices[0].FinishReason)
		}

		return content, nil
	})
}
