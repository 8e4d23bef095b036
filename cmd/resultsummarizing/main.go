package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/academic-polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/academic-polls/internal/config"
	"github.com/vncsmyrnk/academic-polls/internal/core/services"
	"github.com/vncsmyrnk/academic-polls/internal/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file; env vars override it")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	logr := logger.New(cfg.Env)
	slog.SetDefault(logr)

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Summary.Timeout)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Postgres.DSN())
	if err != nil {
		logr.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	pollRepo := postgres.NewPollRepository(db)
	resultRepo := postgres.NewPollResultRepository(db)

	summaryService := services.NewSummaryService(pollRepo, resultRepo, cfg.Summary.Concurrency, logr)

	logr.Info("starting result summarization job")

	if err := summaryService.SummarizeAllResponses(ctx); err != nil {
		logr.Error("error summarizing responses", slog.Any("error", err))
		os.Exit(1)
	}

	logr.Info("result summarization completed successfully")
}
