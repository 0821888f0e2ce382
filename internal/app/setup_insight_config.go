package app

import (
	"time"

	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/transport/queue"
)

// DefaultAggregateUserInsightsConfig returns the default config for user insight aggregation.
func DefaultAggregateUserInsightsConfig() command.AggregateUserInsightsConfig {
	return command.AggregateUserInsightsConfig{
		Window: 50,
	}
}

// DefaultAggregateTemplateInsightsConfig pools every rating of a template's content.
func DefaultAggregateTemplateInsightsConfig() command.AggregateTemplateInsightsConfig {
	return command.AggregateTemplateInsightsConfig{
		Window: 0,
	}
}

// DefaultSubmitRatingConfig returns the default config for rating submission.
func DefaultSubmitRatingConfig() command.SubmitRatingConfig {
	return command.SubmitRatingConfig{
		Cadence: 10,
	}
}

func DefaultGenerateContentConfig() command.GenerateContentConfig {
	return command.GenerateContentConfig{
		MaxCount: 4,
	}
}

func DefaultGetDashboardConfig() command.GetDashboardConfig {
	return command.GetDashboardConfig{
		TopContentMinRatings: 5,
		TopContentLimit:      10,
		TemplateLimit:        20,
	}
}

func DefaultPickNextContentConfig() command.PickNextContentConfig {
	return command.PickNextContentConfig{
		CandidateLimit: 10,
	}
}

// DefaultRunInsightRebuildConfig returns the default config for the batch rebuild.
// Each aggregation makes up to two LLM calls, so keep this modest.
func DefaultRunInsightRebuildConfig() command.RunInsightRebuildConfig {
	return command.RunInsightRebuildConfig{
		Concurrency: 4,
	}
}

// DefaultInsightWorkerConfig returns the default config for the background
// aggregation worker. JobTimeout is what frees a slot held by a hung LLM call.
func DefaultInsightWorkerConfig() queue.WorkerConfig {
	return queue.WorkerConfig{
		JobTimeout:  2 * time.Minute,
		Concurrency: 4,
	}
}
