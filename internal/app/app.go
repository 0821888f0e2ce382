package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/datasources/mysql"
	"github.com/jbeshir/swipe-feedback/internal/datasources/openai"
	"github.com/jbeshir/swipe-feedback/internal/datasources/replicate"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/jbeshir/swipe-feedback/internal/transport/queue"
	"github.com/jbeshir/swipe-feedback/internal/transport/web/router"
	"github.com/jbeshir/swipe-feedback/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// Aggregators are the two insight aggregation commands, shared by the HTTP API,
// the background worker and the batch rebuild.
type Aggregators struct {
	User     *command.AggregateUserInsights
	Template *command.AggregateTemplateInsights
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := SetupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	llm, err := SetupLanguageModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up language model: %w", err)
	}

	generator, err := setupContentGenerator(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up content generator: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	aggregators := NewAggregators(repo, llm)

	insightQueue := queue.NewInsightQueue(domain.LoggerFromContext(ctx), queue.DefaultConfig())
	insightWorker, err := queue.NewInsightWorker(
		ctx,
		insightQueue.Subscriber(),
		aggregators.User,
		aggregators.Template,
		DefaultInsightWorkerConfig(),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up insight worker: %w", err)
	}

	cmds := router.Commands{
		SubmitRating: command.NewSubmitRating(
			repo,
			repo,
			repo,
			insightQueue,
			DefaultSubmitRatingConfig(),
		),
		RatingStats:       command.NewGetRatingStats(repo, repo),
		AggregateUser:     aggregators.User,
		AggregateTemplate: aggregators.Template,
		Dashboard: command.NewGetDashboard(
			repo,
			repo,
			repo,
			repo,
			DefaultGetDashboardConfig(),
		),
		GenerateContent: command.NewGenerateContent(
			repo,
			repo,
			repo,
			llm,
			llm,
			generator,
			repo,
			DefaultGenerateContentConfig(),
		),
		PickNextContent: command.NewPickNextContent(repo, DefaultPickNextContentConfig()),
	}

	httpRouter, err := router.MakeRouter(
		repo,
		repo,
		repo,
		cmds,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		insightWorker,
	}, nil
}

// NewAggregators builds the insight aggregation commands with their default config.
func NewAggregators(repo *mysql.Repository, analyzer datasources.CommentAnalyzer) Aggregators {
	return Aggregators{
		User: command.NewAggregateUserInsights(
			repo,
			analyzer,
			repo,
			DefaultAggregateUserInsightsConfig(),
		),
		Template: command.NewAggregateTemplateInsights(
			repo,
			repo,
			analyzer,
			repo,
			DefaultAggregateTemplateInsightsConfig(),
		),
	}
}

// SetupRepository connects to MySQL, applying migrations first when MYSQL_MIGRATE is set.
func SetupRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}

	if MustGetEnvAsBoolean(ctx, "MYSQL_MIGRATE") {
		if err := mysql.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrating MySQL: %w", err)
		}
		domain.LoggerFromContext(ctx).InfoContext(ctx, "applied MySQL migrations")
	}

	return mysql.New(db), nil
}

func SetupLanguageModel(ctx context.Context) (datasources.LanguageModel, error) {
	switch driver := MustGetEnvAsString(ctx, "ANALYZER_DRIVER"); driver {
	case "null":
		return datasources.NullLanguageModel{}, nil
	case "openai":
		return openai.NewClient(openai.Config{
			APIKey:            MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			BaseURL:           GetEnvAsStringOrDefault("OPENAI_BASE_URL", ""),
			AnalysisModel:     GetEnvAsStringOrDefault("OPENAI_ANALYSIS_MODEL", ""),
			EnhanceModel:      GetEnvAsStringOrDefault("OPENAI_ENHANCE_MODEL", ""),
			RequestsPerMinute: GetEnvAsIntOrDefault(ctx, "OPENAI_REQUESTS_PER_MINUTE", 0),
		}, nil), nil
	default:
		return nil, fmt.Errorf("unknown analyzer driver [%s]", driver)
	}
}

func setupContentGenerator(ctx context.Context) (datasources.ContentGenerator, error) {
	switch driver := MustGetEnvAsString(ctx, "GENERATOR_DRIVER"); driver {
	case "null":
		return datasources.NullContentGenerator{}, nil
	case "replicate":
		return replicate.NewClient(replicate.Config{
			APIToken:          MustGetEnvAsString(ctx, "REPLICATE_API_TOKEN"),
			BaseURL:           GetEnvAsStringOrDefault("REPLICATE_BASE_URL", ""),
			RequestsPerMinute: GetEnvAsIntOrDefault(ctx, "REPLICATE_REQUESTS_PER_MINUTE", 0),
		}, nil), nil
	default:
		return nil, fmt.Errorf("unknown generator driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "header":
			validators = append(validators, router.NewHeaderValidator())
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
