package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/academic-polls/internal/adapters/handler/http"
	"github.com/vncsmyrnk/academic-polls/internal/adapters/oauth/google"
	"github.com/vncsmyrnk/academic-polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/academic-polls/internal/config"
	"github.com/vncsmyrnk/academic-polls/internal/core/services"
	"github.com/vncsmyrnk/academic-polls/internal/logger"
)

// @title        Academic Polls API
// @version      1.0
// @description  Poll lifecycle, vote submission and result aggregation.
// @BasePath     /
func main() {
	var (
		configPath string
		migrate    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file; env vars override it")
	flag.BoolVar(&migrate, "migrate", false, "Apply pending migrations before serving")
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if migrate {
		if err := postgres.MigrateUp(cfg.Postgres.DSN()); err != nil {
			logr.Error("failed to migrate", slog.Any("error", err))
			os.Exit(1)
		}
		logr.Info("migrations applied")
	}

	db, err := postgres.Open(ctx, cfg.Postgres.DSN())
	if err != nil {
		logr.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	authRepo := postgres.NewAuthRepository(db)
	pollRepo := postgres.NewPollRepository(db)
	responseRepo := postgres.NewResponseRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, authRepo, google.NewVerifier(), services.AuthConfig{
		JWTSecret:       cfg.Auth.JWTSecret,
		GoogleClientID:  cfg.Auth.GoogleClientID,
		AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	}, logr)
	pollService := services.NewPollService(pollRepo, responseRepo, auditRepo, logr)
	responseService := services.NewResponseService(pollRepo, responseRepo, auditRepo, logr)
	resultService := services.NewResultService(pollRepo, responseRepo)
	userService := services.NewUserService(userRepo, auditRepo, logr)

	// Handlers
	handlers := http.Handlers{
		Auth: http.NewAuthHandler(authService, cfg.Auth.RedirectURL, http.CookieConfig{
			Domain:          cfg.Auth.CookieDomain,
			SameSite:        http.ParseSameSite(cfg.Auth.CookieSameSite),
			Secure:          cfg.Env != config.EnvLocal,
			AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
			RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		}),
		Polls:     http.NewPollHandler(pollService, resultService),
		Responses: http.NewResponseHandler(responseService),
		Users:     http.NewUserHandler(userService),
	}

	handler := http.NewHandler(handlers, authService, http.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        http.NewMetrics(),
		Logger:         logr,
	})

	server := &stdhttp.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logr.Info("starting server", slog.String("addr", cfg.HTTP.Addr), slog.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logr.Error("server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Error("failed to shut down server", slog.Any("error", err))
	}
}
