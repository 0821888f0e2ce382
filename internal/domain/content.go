package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type ContentType string

const (
	ContentTypeImage ContentType = "image"
	ContentTypeVideo ContentType = "video"
	ContentTypeAudio ContentType = "audio"
)

// Content is one generated media artifact that users rate.
type Content struct {
	ID             string      `json:"id"`
	Type           ContentType `json:"type"`
	URL            string      `json:"url"`
	OriginalPrompt string      `json:"original_prompt"`
	EnhancedPrompt string      `json:"enhanced_prompt"`
	Model          string      `json:"model"`
	Category       string      `json:"category"`
	TemplateID     *string     `json:"template_id,omitempty"`
	UserID         *string     `json:"user_id,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

type ContentFilters struct {
	TemplateID string
	Type       ContentType
}

// Template is a reusable prompt setup that content can be generated from.
type Template struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	SystemInstructions string          `json:"system_instructions"`
	ModelParams        json.RawMessage `json:"model_params,omitempty"`
	Active             bool            `json:"active"`
	CreatedAt          time.Time       `json:"created_at"`
}

// GenerationModel is an entry of the model catalog.
type GenerationModel struct {
	Key       string      `json:"key"`
	Name      string      `json:"name"`
	Type      ContentType `json:"type"`
	Reference string      `json:"reference"`
	Default   bool        `json:"default"`
}

var ModelCatalog = []GenerationModel{
	{Key: "seedream-4", Name: "Seedream 4", Type: ContentTypeImage, Reference: "bytedance/seedream-4", Default: true},
	{Key: "flux-schnell", Name: "FLUX Schnell", Type: ContentTypeImage, Reference: "black-forest-labs/flux-schnell"},
	{Key: "flux-dev", Name: "FLUX Dev", Type: ContentTypeImage, Reference: "black-forest-labs/flux-dev"},
	{Key: "sdxl", Name: "Stable Diffusion XL", Type: ContentTypeImage, Reference: "stability-ai/sdxl"},

	{Key: "ltx-video", Name: "LTX Video", Type: ContentTypeVideo, Reference: "lightricks/ltx-video", Default: true},
	{Key: "cogvideox", Name: "CogVideoX-5B", Type: ContentTypeVideo, Reference: "cuuupid/cogvideox-5b"},
	{Key: "svd", Name: "Stable Video Diffusion", Type: ContentTypeVideo, Reference: "stability-ai/stable-video-diffusion"},

	{Key: "lyria-2", Name: "Google Lyria 2", Type: ContentTypeAudio, Reference: "google/lyria-2", Default: true},
	{Key: "musicgen", Name: "MusicGen", Type: ContentTypeAudio, Reference: "meta/musicgen"},
	{Key: "riffusion", Name: "Riffusion", Type: ContentTypeAudio, Reference: "riffusion/riffusion"},
}

// ResolveModel finds the catalog entry for a content type. An empty key
// selects the type's default model.
func ResolveModel(contentType ContentType, key string) (GenerationModel, error) {
	for _, m := range ModelCatalog {
		if m.Type != contentType {
			continue
		}
		if (key == "" && m.Default) || m.Key == key {
			return m, nil
		}
	}

	if key == "" {
		return GenerationModel{}, fmt.Errorf("no default model for content type %q: %w", contentType, ErrNotFound)
	}
	return GenerationModel{}, fmt.Errorf("model %q for content type %q: %w", key, contentType, ErrNotFound)
}

// Categories the category detector may assign. Anything else maps to CategoryGeneral.
var Categories = []string{
	"portrait", "landscape", "animal", "architecture", "abstract",
	"food", "fantasy", "sci-fi", "music", "nature", CategoryGeneral,
}

const CategoryGeneral = "general"

// PreferenceHints are the keywords fed into prompt enhancement.
type PreferenceHints struct {
	Likes    []KeywordCount
	Dislikes []KeywordCount
}

func (h PreferenceHints) Empty() bool {
	return len(h.Likes) == 0 && len(h.Dislikes) == 0
}

// DashboardStats is the global overview across all users and templates.
type DashboardStats struct {
	Ratings      RatingStats              `json:"ratings"`
	TotalContent int64                    `json:"total_content"`
	TopContent   []ContentLikeRate        `json:"top_content"`
	Templates    []TemplateInsightProfile `json:"templates"`
}

// ContentLikeRate is a content item ranked by the share of positive ratings.
type ContentLikeRate struct {
	Content  Content `json:"content"`
	Ratings  int64   `json:"ratings"`
	LikeRate float64 `json:"like_rate"`
}
