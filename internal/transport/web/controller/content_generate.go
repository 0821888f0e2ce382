package controller

import (
	"net/http"

	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// ContentGenerateRequest is the JSON request body for generating content.
type ContentGenerateRequest struct {
	Prompt      string         `json:"prompt" validate:"required,max=4000"`
	TemplateID  string         `json:"template_id,omitempty"`
	ContentType string         `json:"content_type" validate:"required,oneof=image video audio"`
	ModelKey    string         `json:"model_key,omitempty"`
	Count       int            `json:"count,omitempty" validate:"omitempty,min=1,max=4"`
	Params      map[string]any `json:"params,omitempty"`
}

type ContentGenerateResponse struct {
	Data []domain.Content `json:"data"`
}

// ContentGenerate handles POST /v1/content/generate.
type ContentGenerate struct {
	GenerateCmd command.Command[command.GenerateContentRequest, []domain.Content]
}

func (c ContentGenerate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body ContentGenerateRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(ctx, w, "unable to parse generation request", err)
		return
	}

	items, err := c.GenerateCmd.Execute(ctx, command.GenerateContentRequest{
		UserID:      domain.UserIDFromContext(ctx),
		Prompt:      body.Prompt,
		TemplateID:  body.TemplateID,
		ContentType: domain.ContentType(body.ContentType),
		ModelKey:    body.ModelKey,
		Count:       body.Count,
		Params:      body.Params,
	})
	if err != nil {
		writeError(ctx, w, "unable to generate content", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, ContentGenerateResponse{Data: items})
}
