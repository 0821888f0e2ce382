package command

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// PickNextContentRequest is the request for the PickNextContent command.
type PickNextContentRequest struct {
	UserID string
}

// PickNextContentConfig holds configuration for choosing the next card.
type PickNextContentConfig struct {
	// CandidateLimit is how many of the newest unrated items are picked from.
	CandidateLimit int
}

// PickNextContent chooses a random item among the newest content the user has not rated.
type PickNextContent struct {
	Lister datasources.UnratedContentLister
	Config PickNextContentConfig
	// IntN picks an index below n; nil uses math/rand/v2.
	IntN func(n int) int
}

// NewPickNextContent creates a properly initialized PickNextContent command.
func NewPickNextContent(lister datasources.UnratedContentLister, config PickNextContentConfig) *PickNextContent {
	return &PickNextContent{
		Lister: lister,
		Config: config,
		IntN:   rand.IntN,
	}
}

// Execute returns domain.ErrNotFound when the user has rated everything.
func (c *PickNextContent) Execute(ctx context.Context, req PickNextContentRequest) (domain.Content, error) {
	candidates, err := c.Lister.ListUnratedContent(ctx, req.UserID, c.Config.CandidateLimit)
	if err != nil {
		return domain.Content{}, fmt.Errorf("listing unrated content: %w", err)
	}
	if len(candidates) == 0 {
		return domain.Content{}, fmt.Errorf("no unrated content: %w", domain.ErrNotFound)
	}

	intN := c.IntN
	if intN == nil {
		intN = rand.IntN
	}
	return candidates[intN(len(candidates))], nil
}
