package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func ptr[T any](v T) *T {
	return &v
}

// echoAnalysis reports every comment back as both a like and a dislike keyword.
func echoAnalysis(_ context.Context, comments []string) (domain.CommentAnalysis, error) {
	return domain.CommentAnalysis{
		Likes:    comments,
		Dislikes: comments,
	}, nil
}

// makeRatings builds n ratings newest first, one minute apart.
func makeRatings(userID string, n int, direction domain.Direction, comment *string) []domain.Rating {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ratings := make([]domain.Rating, n)
	for i := range ratings {
		ratings[i] = domain.Rating{
			ID:        fmt.Sprintf("rating-%d", i),
			ContentID: fmt.Sprintf("content-%d", i),
			UserID:    userID,
			Direction: direction,
			Comment:   comment,
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return ratings
}
