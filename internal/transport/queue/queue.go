package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

const (
	TopicUserInsights     = "insights.user"
	TopicTemplateInsights = "insights.template"
)

var _ datasources.InsightScheduler = (*InsightQueue)(nil)

type Config struct {
	// Buffer is how many jobs per topic may wait for the worker before publishing blocks.
	Buffer int64
}

func DefaultConfig() Config {
	return Config{Buffer: 256}
}

// InsightQueue hands aggregation jobs to an in-process worker.
// Publishing returns as soon as the job is queued.
type InsightQueue struct {
	pubSub *gochannel.GoChannel
}

func NewInsightQueue(logger *slog.Logger, cfg Config) *InsightQueue {
	return &InsightQueue{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: cfg.Buffer},
			watermill.NewSlogLogger(logger),
		),
	}
}

func (q *InsightQueue) ScheduleUserInsights(ctx context.Context, userID string) error {
	return q.publish(ctx, TopicUserInsights, userID)
}

func (q *InsightQueue) ScheduleTemplateInsights(ctx context.Context, templateID string) error {
	return q.publish(ctx, TopicTemplateInsights, templateID)
}

func (q *InsightQueue) publish(ctx context.Context, topic, subjectID string) error {
	msg := message.NewMessage(watermill.NewUUID(), []byte(subjectID))

	if err := q.pubSub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "queued insight aggregation",
		"topic", topic,
		"subject_id", subjectID,
		"message_uuid", msg.UUID)
	return nil
}

// Subscriber exposes the queue for an InsightWorker.
func (q *InsightQueue) Subscriber() message.Subscriber {
	return q.pubSub
}

func (q *InsightQueue) Close() error {
	return q.pubSub.Close()
}
