package datasources

import (
	"context"
	"fmt"

	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// CommentAnalyzer extracts keywords and suggestions from free-text comments.
// An empty input must yield an empty analysis without calling out.
// Failures wrap domain.ErrAnalysisFailed.
type CommentAnalyzer interface {
	AnalyzeComments(ctx context.Context, comments []string) (domain.CommentAnalysis, error)
}

type PromptEnhancer interface {
	EnhancePrompt(
		ctx context.Context,
		prompt, systemInstructions string,
		hints domain.PreferenceHints,
	) (string, error)
}

type CategoryDetector interface {
	DetectCategory(ctx context.Context, prompt string, contentType domain.ContentType) (string, error)
}

// LanguageModel is everything the generation and aggregation flows need from an LLM.
type LanguageModel interface {
	CommentAnalyzer
	PromptEnhancer
	CategoryDetector
}

// NullLanguageModel analyses nothing, leaves prompts as they are and puts
// everything in the general category.
type NullLanguageModel struct{}

var _ LanguageModel = NullLanguageModel{}

func (NullLanguageModel) AnalyzeComments(_ context.Context, _ []string) (domain.CommentAnalysis, error) {
	return domain.CommentAnalysis{}, nil
}

func (NullLanguageModel) EnhancePrompt(
	_ context.Context,
	prompt, _ string,
	_ domain.PreferenceHints,
) (string, error) {
	return prompt, nil
}

func (NullLanguageModel) DetectCategory(_ context.Context, _ string, _ domain.ContentType) (string, error) {
	return domain.CategoryGeneral, nil
}

// ContentGenerator produces a media artifact and returns its URL.
type ContentGenerator interface {
	Generate(
		ctx context.Context,
		model domain.GenerationModel,
		prompt string,
		params map[string]any,
	) (string, error)
}

// NullContentGenerator fails every request; it stands in when no provider is configured.
type NullContentGenerator struct{}

var _ ContentGenerator = NullContentGenerator{}

func (NullContentGenerator) Generate(
	_ context.Context,
	model domain.GenerationModel,
	_ string,
	_ map[string]any,
) (string, error) {
	return "", fmt.Errorf("no generator configured for model %s: %w", model.Key, domain.ErrGenerationFailed)
}
