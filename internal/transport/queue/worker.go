package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"golang.org/x/sync/errgroup"
)

type WorkerConfig struct {
	// JobTimeout bounds a single aggregation, including its LLM calls.
	JobTimeout time.Duration
	// Concurrency is how many aggregations may run at once across both topics.
	Concurrency int
}

// InsightWorker consumes queued aggregation jobs. Failures are logged and the
// job is dropped; the next cadence trigger retries with fresher data.
type InsightWorker struct {
	userJobs     <-chan *message.Message
	templateJobs <-chan *message.Message

	AggregateUser      command.Command[command.AggregateUserInsightsRequest, domain.UserInsightProfile]
	AggregateTemplates command.Command[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile]
	Config             WorkerConfig
}

// NewInsightWorker subscribes straight away so jobs published before Run starts
// are buffered rather than dropped. The subscriptions end when ctx is done.
func NewInsightWorker(
	ctx context.Context,
	subscriber message.Subscriber,
	aggregateUser command.Command[command.AggregateUserInsightsRequest, domain.UserInsightProfile],
	aggregateTemplates command.Command[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile],
	config WorkerConfig,
) (*InsightWorker, error) {
	userJobs, err := subscriber.Subscribe(ctx, TopicUserInsights)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", TopicUserInsights, err)
	}

	templateJobs, err := subscriber.Subscribe(ctx, TopicTemplateInsights)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", TopicTemplateInsights, err)
	}

	return &InsightWorker{
		userJobs:           userJobs,
		templateJobs:       templateJobs,
		AggregateUser:      aggregateUser,
		AggregateTemplates: aggregateTemplates,
		Config:             config,
	}, nil
}

func (w *InsightWorker) Run(ctx context.Context) error {
	grp, grpCtx := errgroup.WithContext(ctx)

	// Shared by both topics so a stuck job only holds one slot.
	jobs := new(errgroup.Group)
	jobs.SetLimit(max(1, w.Config.Concurrency))

	grp.Go(func() error {
		w.consume(grpCtx, jobs, w.userJobs, "user_id", func(ctx context.Context, id string) error {
			_, err := w.AggregateUser.Execute(ctx, command.AggregateUserInsightsRequest{UserID: id})
			return err
		})
		return nil
	})
	grp.Go(func() error {
		w.consume(grpCtx, jobs, w.templateJobs, "template_id", func(ctx context.Context, id string) error {
			_, err := w.AggregateTemplates.Execute(ctx, command.AggregateTemplateInsightsRequest{TemplateID: id})
			return err
		})
		return nil
	})

	err := grp.Wait()
	_ = jobs.Wait()
	return err
}

func (w *InsightWorker) consume(
	ctx context.Context,
	jobs *errgroup.Group,
	messages <-chan *message.Message,
	subjectKey string,
	handle func(ctx context.Context, subjectID string) error,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			// Acked on receipt so the subscriber hands over the next message while
			// this one runs. A failed job is never redelivered.
			msg.Ack()

			// Blocks while every slot is busy.
			jobs.Go(func() error {
				w.process(ctx, msg, subjectKey, handle)
				return nil
			})
		}
	}
}

func (w *InsightWorker) process(
	ctx context.Context,
	msg *message.Message,
	subjectKey string,
	handle func(ctx context.Context, subjectID string) error,
) {
	subjectID := string(msg.Payload)
	logger := domain.LoggerFromContext(ctx).With(subjectKey, subjectID, "message_uuid", msg.UUID)
	jobCtx := domain.ContextWithLogger(ctx, logger)
	if w.Config.JobTimeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(jobCtx, w.Config.JobTimeout)
		defer cancel()
	}

	err := handle(jobCtx, subjectID)
	switch {
	case err == nil:
		logger.DebugContext(ctx, "aggregated insights")
	case errors.Is(err, domain.ErrNoRatings):
		logger.DebugContext(ctx, "no ratings to aggregate")
	default:
		logger.WarnContext(ctx, "insight aggregation failed", "error", err)
	}
}
