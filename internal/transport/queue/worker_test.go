package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/command"
	cmdmocks "github.com/jbeshir/swipe-feedback/internal/command/mocks"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startWorker(
	t *testing.T,
	q *InsightQueue,
	userCmd *cmdmocks.MockCommand[command.AggregateUserInsightsRequest, domain.UserInsightProfile],
	templateCmd *cmdmocks.MockCommand[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile],
	config WorkerConfig,
) func() {
	t.Helper()

	ctx, cancel := context.WithCancel(domain.ContextWithLogger(context.Background(), testLogger()))
	worker, err := NewInsightWorker(ctx, q.Subscriber(), userCmd, templateCmd, config)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("worker did not stop")
		}
	}
}

var testWorkerConfig = WorkerConfig{JobTimeout: time.Minute, Concurrency: 4}

func waitFor(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for job")
		return ""
	}
}

func TestInsightWorker_RunsScheduledJobs(t *testing.T) {
	q := NewInsightQueue(testLogger(), DefaultConfig())
	defer func() { _ = q.Close() }()

	userCmd := cmdmocks.NewMockCommand[command.AggregateUserInsightsRequest, domain.UserInsightProfile](t)
	templateCmd := cmdmocks.NewMockCommand[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile](t)

	users := make(chan string, 2)
	templates := make(chan string, 1)
	userCmd.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req command.AggregateUserInsightsRequest) { users <- req.UserID }).
		Return(domain.UserInsightProfile{}, nil).
		Twice()
	templateCmd.EXPECT().
		Execute(mock.Anything, command.AggregateTemplateInsightsRequest{TemplateID: "tmpl1"}).
		Run(func(context.Context, command.AggregateTemplateInsightsRequest) { templates <- "tmpl1" }).
		Return(domain.TemplateInsightProfile{}, nil).
		Once()

	stop := startWorker(t, q, userCmd, templateCmd, testWorkerConfig)
	defer stop()

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	require.NoError(t, q.ScheduleUserInsights(ctx, "user1"))
	require.NoError(t, q.ScheduleTemplateInsights(ctx, "tmpl1"))
	require.NoError(t, q.ScheduleUserInsights(ctx, "user2"))

	// Delivery order across messages is not guaranteed.
	assert.ElementsMatch(t, []string{"user1", "user2"}, []string{waitFor(t, users), waitFor(t, users)})
	assert.Equal(t, "tmpl1", waitFor(t, templates))
}

func TestInsightWorker_FailedJobDoesNotStopWorker(t *testing.T) {
	q := NewInsightQueue(testLogger(), DefaultConfig())
	defer func() { _ = q.Close() }()

	userCmd := cmdmocks.NewMockCommand[command.AggregateUserInsightsRequest, domain.UserInsightProfile](t)
	templateCmd := cmdmocks.NewMockCommand[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile](t)

	handled := make(chan string, 3)
	userCmd.EXPECT().
		Execute(mock.Anything, command.AggregateUserInsightsRequest{UserID: "broken"}).
		Run(func(context.Context, command.AggregateUserInsightsRequest) { handled <- "broken" }).
		Return(domain.UserInsightProfile{}, errors.New("analysis failed"))
	userCmd.EXPECT().
		Execute(mock.Anything, command.AggregateUserInsightsRequest{UserID: "empty"}).
		Run(func(context.Context, command.AggregateUserInsightsRequest) { handled <- "empty" }).
		Return(domain.UserInsightProfile{}, domain.ErrNoRatings)
	userCmd.EXPECT().
		Execute(mock.Anything, command.AggregateUserInsightsRequest{UserID: "healthy"}).
		Run(func(context.Context, command.AggregateUserInsightsRequest) { handled <- "healthy" }).
		Return(domain.UserInsightProfile{}, nil)

	stop := startWorker(t, q, userCmd, templateCmd, testWorkerConfig)
	defer stop()

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	for _, id := range []string{"broken", "empty", "healthy"} {
		require.NoError(t, q.ScheduleUserInsights(ctx, id))
	}

	got := []string{waitFor(t, handled), waitFor(t, handled), waitFor(t, handled)}
	assert.ElementsMatch(t, []string{"broken", "empty", "healthy"}, got)
}

func TestInsightWorker_StuckJobDoesNotBlockOtherUsers(t *testing.T) {
	q := NewInsightQueue(testLogger(), DefaultConfig())
	defer func() { _ = q.Close() }()

	userCmd := cmdmocks.NewMockCommand[command.AggregateUserInsightsRequest, domain.UserInsightProfile](t)
	templateCmd := cmdmocks.NewMockCommand[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile](t)

	started := make(chan string, 1)
	release := make(chan struct{})
	handled := make(chan string, 1)
	userCmd.EXPECT().
		Execute(mock.Anything, command.AggregateUserInsightsRequest{UserID: "stuck"}).
		Run(func(ctx context.Context, _ command.AggregateUserInsightsRequest) {
			started <- "stuck"
			select {
			case <-release:
			case <-ctx.Done():
			}
		}).
		Return(domain.UserInsightProfile{}, nil).
		Once()
	userCmd.EXPECT().
		Execute(mock.Anything, command.AggregateUserInsightsRequest{UserID: "other"}).
		Run(func(context.Context, command.AggregateUserInsightsRequest) { handled <- "other" }).
		Return(domain.UserInsightProfile{}, nil).
		Once()

	stop := startWorker(t, q, userCmd, templateCmd, WorkerConfig{JobTimeout: time.Minute, Concurrency: 2})
	defer stop()
	defer close(release)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	require.NoError(t, q.ScheduleUserInsights(ctx, "stuck"))
	require.Equal(t, "stuck", waitFor(t, started))

	require.NoError(t, q.ScheduleUserInsights(ctx, "other"))
	assert.Equal(t, "other", waitFor(t, handled))
}

func TestInsightWorker_ConcurrencyBoundsRunningJobs(t *testing.T) {
	q := NewInsightQueue(testLogger(), DefaultConfig())
	defer func() { _ = q.Close() }()

	userCmd := cmdmocks.NewMockCommand[command.AggregateUserInsightsRequest, domain.UserInsightProfile](t)
	templateCmd := cmdmocks.NewMockCommand[command.AggregateTemplateInsightsRequest, domain.TemplateInsightProfile](t)

	started := make(chan string, 2)
	release := make(chan struct{})
	userCmd.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req command.AggregateUserInsightsRequest) {
			started <- req.UserID
			<-release
		}).
		Return(domain.UserInsightProfile{}, nil).
		Twice()

	stop := startWorker(t, q, userCmd, templateCmd, WorkerConfig{Concurrency: 1})
	defer stop()

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	require.NoError(t, q.ScheduleUserInsights(ctx, "user1"))
	require.NoError(t, q.ScheduleUserInsights(ctx, "user2"))

	first := waitFor(t, started)
	select {
	case second := <-started:
		t.Fatalf("%s started while %s still held the only slot", second, first)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	assert.ElementsMatch(t, []string{"user1", "user2"}, []string{first, waitFor(t, started)})
}
