package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/swipe-feedback/internal/app"
	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "insight rebuild failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "insight rebuild completed",
		"users_succeeded", result.Users.Succeeded,
		"users_skipped", result.Users.Skipped,
		"users_failed", result.Users.Failed,
		"templates_succeeded", result.Templates.Succeeded,
		"templates_skipped", result.Templates.Skipped,
		"templates_failed", result.Templates.Failed,
	)

	if result.Users.Failed > 0 || result.Templates.Failed > 0 {
		os.Exit(2)
	}
}

func run(ctx context.Context) (command.RunInsightRebuildResult, error) {
	repo, err := app.SetupRepository(ctx)
	if err != nil {
		return command.RunInsightRebuildResult{}, fmt.Errorf("setting up repository: %w", err)
	}

	llm, err := app.SetupLanguageModel(ctx)
	if err != nil {
		return command.RunInsightRebuildResult{}, fmt.Errorf("setting up language model: %w", err)
	}

	aggregators := app.NewAggregators(repo, llm)

	rebuildCmd := command.NewRunInsightRebuild(
		repo,
		aggregators.User,
		aggregators.Template,
		app.DefaultRunInsightRebuildConfig(),
	)

	return rebuildCmd.Execute(ctx, command.RunInsightRebuildRequest{})
}
