package controller

import (
	"net/http"

	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// RatingSubmitRequest is the JSON request body for a swipe.
type RatingSubmitRequest struct {
	ContentID string  `json:"content_id" validate:"required"`
	Direction string  `json:"direction" validate:"required"`
	Comment   *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
	LatencyMs *int64  `json:"latency_ms,omitempty" validate:"omitempty,min=0"`
}

type RatingSubmitResponse struct {
	Rating            domain.Rating `json:"rating"`
	Updated           bool          `json:"updated"`
	InsightsScheduled bool          `json:"insights_scheduled"`
}

// RatingSubmit handles POST /v1/ratings.
type RatingSubmit struct {
	SubmitCmd command.Command[command.SubmitRatingRequest, command.SubmitRatingResult]
}

func (c RatingSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body RatingSubmitRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(ctx, w, "unable to parse rating", err)
		return
	}

	direction, err := domain.ParseDirection(body.Direction)
	if err != nil {
		writeError(ctx, w, "unable to parse rating direction", err)
		return
	}

	logger := domain.LoggerFromContext(ctx).With("content_id", body.ContentID)
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := c.SubmitCmd.Execute(ctx, command.SubmitRatingRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ContentID: body.ContentID,
		Direction: direction,
		Comment:   body.Comment,
		LatencyMs: body.LatencyMs,
	})
	if err != nil {
		writeError(ctx, w, "unable to submit rating", err)
		return
	}

	status := http.StatusCreated
	if result.Updated {
		status = http.StatusOK
	}
	writeJSON(ctx, w, status, RatingSubmitResponse{
		Rating:            result.Rating,
		Updated:           result.Updated,
		InsightsScheduled: result.InsightsScheduled,
	})
}
