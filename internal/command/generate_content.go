package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/jbeshir/swipe-feedback/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// GenerateContentRequest is the request for the GenerateContent command.
type GenerateContentRequest struct {
	UserID      string
	Prompt      string
	TemplateID  string
	ContentType domain.ContentType
	ModelKey    string
	Count       int
	Params      map[string]any
}

// GenerateContentConfig holds configuration for content generation.
type GenerateContentConfig struct {
	MaxCount int
}

// GenerateContent enhances a prompt with the caller's and the template's insights,
// generates one or more artifacts from it and stores every one that succeeded.
type GenerateContent struct {
	TemplateFetcher        datasources.TemplateFetcher
	UserInsightFetcher     datasources.UserInsightFetcher
	TemplateInsightFetcher datasources.TemplateInsightFetcher
	Enhancer               datasources.PromptEnhancer
	CategoryDetector       datasources.CategoryDetector
	Generator              datasources.ContentGenerator
	ContentCreator         datasources.ContentCreator
	Config                 GenerateContentConfig
}

// NewGenerateContent creates a properly initialized GenerateContent command.
func NewGenerateContent(
	templateFetcher datasources.TemplateFetcher,
	userInsightFetcher datasources.UserInsightFetcher,
	templateInsightFetcher datasources.TemplateInsightFetcher,
	enhancer datasources.PromptEnhancer,
	categoryDetector datasources.CategoryDetector,
	generator datasources.ContentGenerator,
	contentCreator datasources.ContentCreator,
	config GenerateContentConfig,
) *GenerateContent {
	return &GenerateContent{
		TemplateFetcher:        templateFetcher,
		UserInsightFetcher:     userInsightFetcher,
		TemplateInsightFetcher: templateInsightFetcher,
		Enhancer:               enhancer,
		CategoryDetector:       categoryDetector,
		Generator:              generator,
		ContentCreator:         contentCreator,
		Config:                 config,
	}
}

// Execute returns the stored content items. It fails with domain.ErrGenerationFailed
// only when every generation attempt failed.
func (c *GenerateContent) Execute(ctx context.Context, req GenerateContentRequest) ([]domain.Content, error) {
	logger := domain.LoggerFromContext(ctx).With("content_type", req.ContentType)
	ctx = domain.ContextWithLogger(ctx, logger)

	count := req.Count
	if count < 1 {
		count = 1
	}
	if c.Config.MaxCount > 0 && count > c.Config.MaxCount {
		return nil, fmt.Errorf("count %d exceeds limit %d", count, c.Config.MaxCount)
	}

	model, err := domain.ResolveModel(req.ContentType, req.ModelKey)
	if err != nil {
		return nil, fmt.Errorf("resolving model: %w", err)
	}

	var template *domain.Template
	if req.TemplateID != "" {
		t, err := c.TemplateFetcher.FetchTemplate(ctx, req.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("fetching template: %w", err)
		}
		template = &t
	}

	params, err := generationParams(template, req.Params)
	if err != nil {
		return nil, err
	}

	hints := c.preferenceHints(ctx, req.UserID, req.TemplateID)

	var systemInstructions string
	if template != nil {
		systemInstructions = template.SystemInstructions
	}
	enhancedPrompt, err := c.Enhancer.EnhancePrompt(ctx, req.Prompt, systemInstructions, hints)
	if err != nil || enhancedPrompt == "" {
		logger.WarnContext(ctx, "prompt enhancement failed, using original prompt", "error", err)
		enhancedPrompt = req.Prompt
	}

	category, err := c.CategoryDetector.DetectCategory(ctx, req.Prompt, req.ContentType)
	if err != nil {
		logger.WarnContext(ctx, "category detection failed, using general", "error", err)
		category = domain.CategoryGeneral
	}

	urls := c.generate(ctx, model, enhancedPrompt, params, count)

	var ownerID, templateID *string
	if req.UserID != "" {
		ownerID = &req.UserID
	}
	if req.TemplateID != "" {
		templateID = &req.TemplateID
	}

	now := time.Now().UTC()
	items := make([]domain.Content, 0, len(urls))
	for _, url := range urls {
		if url == "" {
			continue
		}
		items = append(items, domain.Content{
			ID:             uuid.NewString(),
			Type:           req.ContentType,
			URL:            url,
			OriginalPrompt: req.Prompt,
			EnhancedPrompt: enhancedPrompt,
			Model:          model.Key,
			Category:       category,
			TemplateID:     templateID,
			UserID:         ownerID,
			CreatedAt:      now,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("all %d generations failed: %w", count, domain.ErrGenerationFailed)
	}

	if err := c.ContentCreator.CreateContent(ctx, items); err != nil {
		return nil, fmt.Errorf("storing generated content: %w", err)
	}

	logger.InfoContext(ctx, "generated content",
		"model", model.Key, "requested", count, "generated", len(items), "category", category)

	return items, nil
}

// generate runs count generations concurrently. Failed slots are left empty.
func (c *GenerateContent) generate(
	ctx context.Context,
	model domain.GenerationModel,
	prompt string,
	params map[string]any,
	count int,
) []string {
	logger := domain.LoggerFromContext(ctx)
	urls := make([]string, count)

	var g errgroup.Group
	for i := range count {
		g.Go(func() error {
			url, err := c.Generator.Generate(ctx, model, prompt, params)
			if err != nil {
				metrics.ContentGenerated.WithLabelValues(string(model.Type), metrics.OutcomeFailure).Inc()
				logger.WarnContext(ctx, "content generation failed", "error", err, "model", model.Key, "slot", i)
				return nil
			}
			metrics.ContentGenerated.WithLabelValues(string(model.Type), metrics.OutcomeSuccess).Inc()
			urls[i] = url
			return nil
		})
	}
	_ = g.Wait()

	return urls
}

// preferenceHints merges the template's and the user's stored keywords.
// Missing or unreadable profiles contribute nothing.
func (c *GenerateContent) preferenceHints(ctx context.Context, userID, templateID string) domain.PreferenceHints {
	logger := domain.LoggerFromContext(ctx)
	var hints domain.PreferenceHints

	if templateID != "" {
		profile, err := c.TemplateInsightFetcher.FetchTemplateInsights(ctx, templateID)
		switch {
		case err == nil:
			hints.Likes = domain.MergeKeywordCounts(hints.Likes, profile.LikeKeywords)
			hints.Dislikes = domain.MergeKeywordCounts(hints.Dislikes, profile.DislikeKeywords)
		case !errors.Is(err, domain.ErrNotFound):
			logger.WarnContext(ctx, "failed to fetch template insights", "error", err)
		}
	}

	if userID != "" {
		profile, err := c.UserInsightFetcher.FetchUserInsights(ctx, userID)
		switch {
		case err == nil:
			hints.Likes = domain.MergeKeywordCounts(hints.Likes, profile.LikeKeywords)
			hints.Dislikes = domain.MergeKeywordCounts(hints.Dislikes, profile.DislikeKeywords)
		case !errors.Is(err, domain.ErrNotFound):
			logger.WarnContext(ctx, "failed to fetch user insights", "error", err)
		}
	}

	return hints
}

// generationParams overlays request parameters on the template's model parameters.
func generationParams(template *domain.Template, overrides map[string]any) (map[string]any, error) {
	params := make(map[string]any)
	if template != nil && len(template.ModelParams) > 0 {
		if err := json.Unmarshal(template.ModelParams, &params); err != nil {
			return nil, fmt.Errorf("decoding template model params: %w", err)
		}
		if params == nil {
			params = make(map[string]any)
		}
	}
	maps.Copy(params, overrides)
	return params, nil
}
