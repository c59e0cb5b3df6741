/*
Package main is the entry point for the medconnect hospital backend.

It loads configuration, initializes the global logging system, opens the database and upload
store, starts the appointment signaling relay and the HTTP server, and shuts everything down
gracefully on SIGINT or SIGTERM.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medconnect/internal/app/call"
	"medconnect/internal/app/db"
	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/app/prescribe"
	"medconnect/internal/app/storage"
	"medconnect/internal/app/translate"
	"medconnect/internal/configs"
	"medconnect/internal/handler"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/pow"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("storage_driver", cfg.StorageDriver).
		Int("pow_difficulty", cfg.PowDifficulty).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to initialize database")
	}
	defer pool.Close()

	storageService, err := storage.NewStorageService(ctx, storage.ServiceConfig{
		Driver:            cfg.StorageDriver,
		UploadDir:         cfg.UploadDir,
		S3BucketName:      cfg.S3BucketName,
		S3Endpoint:        cfg.S3Endpoint,
		S3AccessKeyID:     cfg.S3AccessKeyID,
		S3SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		logx.Fatal(err, "Failed to initialize storage service")
	}

	var provider translate.Provider
	if cfg.GoogleTranslationAPIKey != "" {
		provider = translate.NewGoogleClient(cfg.GoogleTranslationBaseURL, cfg.GoogleTranslationAPIKey)
	} else {
		logx.Warn("GOOGLE_TRANSLATION_API_KEY not set; translation limited to offline detection")
	}

	if cfg.OpenAIAPIKey == "" {
		logx.Warn("OPENAI_API_KEY not set; prescription generation disabled")
	}

	// The relay owns call membership and runs until ctx is cancelled.
	relay := call.NewRelay(call.NewRegistry())
	go relay.Run(ctx)

	deps := &handler.AppDeps{
		Config:         cfg,
		DB:             dbc.New(pool),
		StorageService: storageService,
		Relay:          relay,
		Translator:     translate.NewService(provider),
		Prescriber: prescribe.NewClient(prescribe.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		}),
		Pow: pow.NewManager(ctx, cfg.PowDifficulty),
	}

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler.Router(ctx, deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("medconnect server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	// Hijacked WebSocket connections are not tracked by Shutdown; the relay closes them.
	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	select {
	case <-relay.Done():
	case <-shutdownCtx.Done():
		logx.Warn("Relay did not stop before the shutdown deadline")
	}

	logx.Info("Server gracefully stopped.")
}
