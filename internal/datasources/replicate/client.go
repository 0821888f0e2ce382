package replicate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/datasources/upstream"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

var _ datasources.ContentGenerator = (*Client)(nil)

const (
	defaultBaseURL      = "https://api.replicate.com/v1"
	defaultPollInterval = 2 * time.Second
	defaultHTTPTimeout  = 90 * time.Second
)

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
	statusCanceled  = "canceled"
)

type Config struct {
	APIToken     string
	BaseURL      string
	PollInterval time.Duration

	RequestsPerMinute int
}

// Client runs predictions on Replicate and waits for their output.
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
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	guardCfg := upstream.DefaultConfig("replicate")
	guardCfg.RequestsPerMinute = cfg.RequestsPerMinute

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		guard:      upstream.NewGuard[string](guardCfg),
	}
}

type predictionRequest struct {
	Input map[string]any `json:"input"`
}

type prediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  any             `json:"error"`
}

// Generate creates a prediction for the model and polls it until it settles.
// It returns the URL of the first output.
func (c *Client) Generate(
	ctx context.Context,
	model domain.GenerationModel,
	prompt string,
	params map[string]any,
) (string, error) {
	input := make(map[string]any, len(params)+1)
	maps.Copy(input, params)
	input["prompt"] = prompt

	url, err := c.guard.Do(ctx, "generate", func(ctx context.Context) (string, error) {
		p, err := c.createPrediction(ctx, model.Reference, input)
		if err != nil {
			return "", err
		}
		p, err = c.waitForPrediction(ctx, p)
		if err != nil {
			return "", err
		}
		return predictionURL(p)
	})
	if err != nil {
		return "", fmt.Errorf("generating with %s: %w: %w", model.Reference, domain.ErrGenerationFailed, err)
	}

	return url, nil
}

func (c *Client) createPrediction(ctx context.Context, reference string, input map[string]any) (prediction, error) {
	jsonBody, err := json.Marshal(predictionRequest{Input: input})
	if err != nil {
		return prediction{}, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+"/models/"+reference+"/predictions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return prediction{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "wait")

	return c.doPrediction(req)
}

func (c *Client) waitForPrediction(ctx context.Context, p prediction) (prediction, error) {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for !settled(p.Status) {
		select {
		case <-ctx.Done():
			return prediction{}, ctx.Err()
		case <-ticker.C:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/predictions/"+p.ID, nil)
		if err != nil {
			return prediction{}, fmt.Errorf("creating request: %w", err)
		}

		p, err = c.doPrediction(req)
		if err != nil {
			return prediction{}, err
		}
	}

	if p.Status != statusSucceeded {
		return prediction{}, fmt.Errorf("prediction %s %s: %v", p.ID, p.Status, p.Error)
	}
	return p, nil
}

func (c *Client) doPrediction(req *http.Request) (prediction, error) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return prediction{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return prediction{}, fmt.Errorf("replicate API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var p prediction
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return prediction{}, fmt.Errorf("decoding response: %w", err)
	}
	return p, nil
}

func settled(status string) bool {
	return status == statusSucceeded || status == statusFailed || status == statusCanceled
}

// predictionURL reads the output, which is either a URL or a list of URLs.
func predictionURL(p prediction) (string, error) {
	var single string
	if err := json.Unmarshal(p.Output, &single); err == nil && single != "" {
		return single, nil
	}

	var list []string
	if err := json.Unmarshal(p.Output, &list); err == nil && len(list) > 0 && list[0] != "" {
		return list[0], nil
	}

	return "", errors.New("prediction " + p.ID + " has no output URL")
}
