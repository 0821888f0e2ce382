package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jbeshir/swipe-feedback/internal/domain"
)

const analyzeCommentsPrompt = `Analyze user comments about generated content.
Extract common themes, complaints, and preferences as short keywords.

Output JSON format:
{
  "likes": ["keyword1", "keyword2", ...],
  "dislikes": ["keyword1", "keyword2", ...],
  "suggestions": ["suggestion1", "suggestion2", ...]
}`

// AnalyzeComments asks the model for liked and disliked themes plus suggestions.
// An empty batch returns an empty analysis without a request.
func (c *Client) AnalyzeComments(ctx context.Context, comments []string) (domain.CommentAnalysis, error) {
	texts := make([]string, 0, len(comments))
	for _, comment := range comments {
		if comment = strings.TrimSpace(comment); comment != "" {
			texts = append(texts, comment)
		}
	}
	if len(texts) == 0 {
		return domain.CommentAnalysis{Likes: []string{}, Dislikes: []string{}, Suggestions: []string{}}, nil
	}

	content, err := c.complete(ctx, "analyze_comments", chatCompletionRequest{
		Model: c.cfg.AnalysisModel,
		Messages: []chatMessage{
			{Role: "system", Content: analyzeCommentsPrompt},
			{Role: "user", Content: strings.Join(texts, "\n---\n")},
		},
		Temperature:    0.3,
		ResponseFormat: map[string]string{"type": jsonResponseType},
	})
	if err != nil {
		return domain.CommentAnalysis{}, fmt.Errorf("analyzing comments: %w: %w", domain.ErrAnalysisFailed, err)
	}

	var analysis domain.CommentAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &analysis); err != nil {
		return domain.CommentAnalysis{}, fmt.Errorf("parsing analysis: %w: %w", domain.ErrAnalysisFailed, err)
	}
	if analysis.Likes == nil {
		analysis.Likes = []string{}
	}
	if analysis.Dislikes == nil {
		analysis.Dislikes = []string{}
	}
	if analysis.Suggestions == nil {
		analysis.Suggestions = []string{}
	}

	return analysis, nil
}

// stripCodeFence removes a markdown code fence some models wrap JSON in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
