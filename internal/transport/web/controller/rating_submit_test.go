package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/command"
	cmdmocks "github.com/jbeshir/swipe-feedback/internal/command/mocks"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRatingSubmit_ServeHTTP(t *testing.T) {
	testTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stored := domain.Rating{
		ID:        "r1",
		ContentID: "c1",
		UserID:    "user1",
		Direction: domain.DirectionLike,
		Comment:   ptr("love the neon"),
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}

	cases := []struct {
		name        string
		body        string
		wantReq     *command.SubmitRatingRequest
		result      command.SubmitRatingResult
		cmdErr      error
		wantStatus  int
		wantPayload *RatingSubmitResponse
	}{
		{
			name: "new_rating",
			body: `{"content_id":"c1","direction":"right","comment":"love the neon","latency_ms":850}`,
			wantReq: &command.SubmitRatingRequest{
				UserID:    "user1",
				ContentID: "c1",
				Direction: domain.DirectionLike,
				Comment:   ptr("love the neon"),
				LatencyMs: ptr(int64(850)),
			},
			result:      command.SubmitRatingResult{Rating: stored, InsightsScheduled: true},
			wantStatus:  http.StatusCreated,
			wantPayload: &RatingSubmitResponse{Rating: stored, InsightsScheduled: true},
		},
		{
			name: "reroll_superseded",
			body: `{"content_id":"c1","direction":"like"}`,
			wantReq: &command.SubmitRatingRequest{
				UserID:    "user1",
				ContentID: "c1",
				Direction: domain.DirectionLike,
			},
			result:      command.SubmitRatingResult{Rating: stored, Updated: true},
			wantStatus:  http.StatusOK,
			wantPayload: &RatingSubmitResponse{Rating: stored, Updated: true},
		},
		{
			name:       "invalid_direction",
			body:       `{"content_id":"c1","direction":"sideways"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing_content_id",
			body:       `{"direction":"like"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative_latency",
			body:       `{"content_id":"c1","direction":"like","latency_ms":-5}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed_json",
			body:       `{"content_id":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "already_rated",
			body: `{"content_id":"c1","direction":"dislike"}`,
			wantReq: &command.SubmitRatingRequest{
				UserID:    "user1",
				ContentID: "c1",
				Direction: domain.DirectionDislike,
			},
			cmdErr:     domain.ErrAlreadyRated,
			wantStatus: http.StatusConflict,
		},
		{
			name: "unknown_content",
			body: `{"content_id":"c9","direction":"like"}`,
			wantReq: &command.SubmitRatingRequest{
				UserID:    "user1",
				ContentID: "c9",
				Direction: domain.DirectionLike,
			},
			cmdErr:     domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store_failure",
			body: `{"content_id":"c1","direction":"like"}`,
			wantReq: &command.SubmitRatingRequest{
				UserID:    "user1",
				ContentID: "c1",
				Direction: domain.DirectionLike,
			},
			cmdErr:     errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			submitCmd := cmdmocks.NewMockCommand[command.SubmitRatingRequest, command.SubmitRatingResult](t)
			if tc.wantReq != nil {
				submitCmd.EXPECT().
					Execute(mock.Anything, *tc.wantReq).
					Return(tc.result, tc.cmdErr)
			}

			ctrl := RatingSubmit{SubmitCmd: submitCmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/ratings", strings.NewReader(tc.body))
			req = testContextWithUserID("user1")(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tc.wantPayload != nil {
				var got RatingSubmitResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, *tc.wantPayload, got)
			}
		})
	}
}
