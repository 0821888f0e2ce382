package openai

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jbeshir/swipe-feedback/internal/domain"
)

const (
	defaultEnhanceInstructions = "You are an expert prompt engineer. Improve the given prompt to generate " +
		"better AI content. Make it detailed, specific, and optimized for the target medium."

	// preferenceHintLimit is how many keywords of each polarity go into the prompt.
	preferenceHintLimit = 5
)

// EnhancePrompt rewrites a prompt, steering it with the given liked and avoided keywords.
func (c *Client) EnhancePrompt(
	ctx context.Context,
	prompt, systemInstructions string,
	hints domain.PreferenceHints,
) (string, error) {
	if strings.TrimSpace(systemInstructions) == "" {
		systemInstructions = defaultEnhanceInstructions
	}

	content, err := c.complete(ctx, "enhance_prompt", chatCompletionRequest{
		Model: c.cfg.EnhanceModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstructions},
			{Role: "user", Content: enhanceUserMessage(prompt, hints)},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("enhancing prompt: %w", err)
	}

	return content, nil
}

func enhanceUserMessage(prompt string, hints domain.PreferenceHints) string {
	if hints.Empty() {
		return prompt
	}

	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\nUser preferences (from previous feedback):")
	if likes := keywordList(hints.Likes); likes != "" {
		b.WriteString("\nLikes: ")
		b.WriteString(likes)
	}
	if dislikes := keywordList(hints.Dislikes); dislikes != "" {
		b.WriteString("\nAvoid: ")
		b.WriteString(dislikes)
	}
	return b.String()
}

func keywordList(counts []domain.KeywordCount) string {
	return strings.Join(domain.TopKeywords(counts, preferenceHintLimit), ", ")
}

// DetectCategory classifies a prompt into one of domain.Categories.
// Answers outside the list become domain.CategoryGeneral.
func (c *Client) DetectCategory(ctx context.Context, prompt string, contentType domain.ContentType) (string, error) {
	system := fmt.Sprintf(
		"Classify the %s generation prompt into exactly one of these categories: %s. "+
			"Reply with the category name only.",
		contentType, strings.Join(domain.Categories, ", "),
	)

	content, err := c.complete(ctx, "detect_category", chatCompletionRequest{
		Model: c.cfg.AnalysisModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
		MaxTokens:   10,
	})
	if err != nil {
		return "", fmt.Errorf("detecting category: %w", err)
	}

	category := strings.ToLower(strings.Trim(content, " \t\n.\"'"))
	if !slices.Contains(domain.Categories, category) {
		return domain.CategoryGeneral, nil
	}
	return category, nil
}
