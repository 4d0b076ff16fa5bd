package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pitchside/league-web/config"
	"github.com/pitchside/league-web/handlers"
	"github.com/pitchside/league-web/league"
	"github.com/pitchside/league-web/live"
	api "github.com/pitchside/league-web/routes"
	"github.com/pitchside/league-web/services"
	"github.com/pitchside/league-web/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort),
		slog.String("upstream", cfg.UpstreamAPIURL))

	leagueClient := league.NewClient(cfg.UpstreamAPIURL, cfg.UpstreamTimeout)

	crestUploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("WebSocket hub started")

	bracketService := services.NewBracketService(leagueClient, hub)
	forfeitService := services.NewForfeitService(leagueClient, hub)
	kickoffService := services.NewKickoffService(leagueClient, hub)
	matchService := services.NewMatchService(leagueClient)
	referenceService := services.NewReferenceService(leagueClient)
	teamService := services.NewTeamService(leagueClient, crestUploader)
	inviteService := services.NewInviteService(leagueClient)
	logger.Info("services initialized")

	pollerCtx, cancelPoller := context.WithCancel(context.Background())
	defer cancelPoller()
	poller := services.NewLivePoller(leagueClient, hub, logger)
	go poller.Run(pollerCtx)

	bracketHandler := handlers.NewBracketHandler(bracketService, forfeitService, kickoffService)
	matchHandler := handlers.NewMatchHandler(matchService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	teamHandler := handlers.NewTeamHandler(teamService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	webSocketHandler := handlers.NewWebSocketHandler(hub, cfg.AllowedOrigins, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		[]byte(cfg.JWTSecretKey),
		cfg.AllowedOrigins,
		bracketHandler,
		matchHandler,
		referenceHandler,
		teamHandler,
		inviteHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancelPoller()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
