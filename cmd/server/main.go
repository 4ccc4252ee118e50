package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"galaxy-server/internal/auth"
	"galaxy-server/internal/catalog"
	"galaxy-server/internal/exploration"
	"galaxy-server/internal/game"
	"galaxy-server/internal/generator"
	"galaxy-server/internal/middleware"
	"galaxy-server/internal/player"
	"galaxy-server/internal/server"
	serverHandlers "galaxy-server/internal/server/handlers"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/database"
	"galaxy-server/internal/shared/logger"
	"galaxy-server/internal/shared/redis"
	"galaxy-server/internal/simulation"
	"galaxy-server/internal/system"
	"galaxy-server/migrations"
)

const (
	stateCleanupInterval = 5 * time.Minute
	eventCleanupInterval = 15 * time.Minute
	shutdownTimeout      = 15 * time.Second
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize configuration:", err)
		os.Exit(1)
	}
	logger.Init()

	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	if err := db.RunMigrations(ctx, migrationFS(cfg.Database.MigrationsPath)); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := redis.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", "error", err)
		}
	}()

	var locker system.Locker = system.NewMemoryLocker()
	var redisHealth serverHandlers.Checker
	if redisClient != nil {
		locker = system.NewRedisLocker(redisClient.Client, slog.Default())
		redisHealth = redisClient
	}

	tokens := auth.NewJWTManager(cfg.Auth)
	states := auth.NewStateManager()

	playerService := player.NewService(player.NewRepository(db, slog.Default()), cfg, slog.Default())
	authService := auth.NewService(auth.NewRepository(db), tokens, slog.Default())

	systemRepo := system.NewRepository(db, slog.Default())
	systemService := system.NewService(
		systemRepo,
		generator.New(catalog.Default()),
		simulation.NewEngine(cfg.Simulation.MaxAdvanceYears),
		locker,
		playerService,
		cfg,
		slog.Default(),
	)
	gameService := game.NewService(systemService, playerService, cfg, slog.Default())
	explorationService := exploration.NewService(
		exploration.NewRepository(db, slog.Default()),
		systemRepo,
		playerService,
		cfg,
		slog.Default(),
	)

	routes := server.NewRoutes(server.Deps{
		Config:             cfg,
		Health:             serverHandlers.NewHealthHandler(db, redisHealth),
		Authenticator:      middleware.NewAuthenticator(tokens),
		States:             states,
		OAuthConfig:        auth.InitOAuth(cfg),
		AuthService:        authService,
		PlayerService:      playerService,
		SystemService:      systemService,
		GameService:        gameService,
		ExplorationService: explorationService,
	})

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	cors := middleware.NewCORS(cfg)

	done := make(chan struct{})
	defer close(done)
	go states.RunCleanup(stateCleanupInterval, done)
	go explorationService.RunEventCleanup(eventCleanupInterval, done)
	go rateLimiter.Run(done)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      cors.Middleware(rateLimiter.Middleware(routes.Setup())),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Galaxy server starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

// migrationFS prefers a directory on disk when one is configured, otherwise the embedded schema
func migrationFS(path string) fs.FS {
	if path != "" {
		return os.DirFS(path)
	}
	return migrations.FS
}
