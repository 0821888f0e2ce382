package command

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RunInsightRebuildRequest is the request for the RunInsightRebuild command.
// This command takes no parameters beyond context.
type RunInsightRebuildRequest struct{}

// RunInsightRebuildResult counts the outcome of a rebuild per subject kind.
type RunInsightRebuildResult struct {
	Users     RebuildCounts
	Templates RebuildCounts
}

type RebuildCounts struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// RunInsightRebuildConfig holds configuration for the batch insight rebuild.
type RunInsightRebuildConfig struct {
	// Concurrency is how many aggregations run at once.
	Concurrency int
}

// RunInsightRebuild recomputes the insight profile of every user and template
// that has ratings. Profiles are derived data, so this is always safe to run.
type RunInsightRebuild struct {
	Subjects           datasources.RatedSubjectLister
	AggregateUser      Command[AggregateUserInsightsRequest, domain.UserInsightProfile]
	AggregateTemplates Command[AggregateTemplateInsightsRequest, domain.TemplateInsightProfile]
	Config             RunInsightRebuildConfig
}

// NewRunInsightRebuild creates a properly initialized RunInsightRebuild command.
func NewRunInsightRebuild(
	subjects datasources.RatedSubjectLister,
	aggregateUser Command[AggregateUserInsightsRequest, domain.UserInsightProfile],
	aggregateTemplates Command[AggregateTemplateInsightsRequest, domain.TemplateInsightProfile],
	config RunInsightRebuildConfig,
) *RunInsightRebuild {
	return &RunInsightRebuild{
		Subjects:           subjects,
		AggregateUser:      aggregateUser,
		AggregateTemplates: aggregateTemplates,
		Config:             config,
	}
}

// Execute rebuilds every profile. Individual failures are logged and counted;
// only failing to list the subjects is an error.
func (c *RunInsightRebuild) Execute(ctx context.Context, _ RunInsightRebuildRequest) (RunInsightRebuildResult, error) {
	logger := domain.LoggerFromContext(ctx)

	userIDs, err := c.Subjects.ListRatedUserIDs(ctx)
	if err != nil {
		return RunInsightRebuildResult{}, fmt.Errorf("listing rated users: %w", err)
	}
	templateIDs, err := c.Subjects.ListRatedTemplateIDs(ctx)
	if err != nil {
		return RunInsightRebuildResult{}, fmt.Errorf("listing rated templates: %w", err)
	}

	logger.InfoContext(ctx, "starting insight rebuild",
		"user_count", len(userIDs), "template_count", len(templateIDs))

	var result RunInsightRebuildResult
	result.Users = c.rebuildAll(ctx, "user_id", userIDs, func(ctx context.Context, id string) error {
		_, err := c.AggregateUser.Execute(ctx, AggregateUserInsightsRequest{UserID: id})
		return err
	})
	result.Templates = c.rebuildAll(ctx, "template_id", templateIDs, func(ctx context.Context, id string) error {
		_, err := c.AggregateTemplates.Execute(ctx, AggregateTemplateInsightsRequest{TemplateID: id})
		return err
	})

	logger.InfoContext(ctx, "insight rebuild complete",
		"users_succeeded", result.Users.Succeeded,
		"users_skipped", result.Users.Skipped,
		"users_failed", result.Users.Failed,
		"templates_succeeded", result.Templates.Succeeded,
		"templates_skipped", result.Templates.Skipped,
		"templates_failed", result.Templates.Failed)

	return result, nil
}

func (c *RunInsightRebuild) rebuildAll(
	ctx context.Context,
	idKey string,
	ids []string,
	aggregate func(ctx context.Context, id string) error,
) RebuildCounts {
	logger := domain.LoggerFromContext(ctx)

	var succeeded, skipped, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(max(1, c.Config.Concurrency))
	for _, id := range ids {
		g.Go(func() error {
			err := aggregate(ctx, id)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrNoRatings):
				skipped.Add(1)
			default:
				logger.ErrorContext(ctx, "failed to rebuild insights", idKey, id, "error", err)
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return RebuildCounts{
		Succeeded: int(succeeded.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
	}
}
