// backend/cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ayash-Bera/jd-roadmap/backend/internal/api"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/api/handlers"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/config"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/exa"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/gemini"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/health"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/services"
	"github.com/Ayash-Bera/jd-roadmap/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Relay for the JD roadmap frontend: Gemini analysis, Exa search and skill explanations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				viper.SetConfigFile(configFile)
			}
			return run(cmd.Context(), verbose)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML config file (default ./config.yaml)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	cmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
	if err := viper.BindPFlag("server.port", cmd.Flags().Lookup("port")); err != nil {
		log.Fatalf("failed to bind port flag: %v", err)
	}

	return cmd
}

func run(ctx context.Context, verbose bool) error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Error("Failed to load configuration")
		return err
	}

	// Missing keys are reported per request; warn early so the operator knows.
	if err := cfg.ValidateGemini(); err != nil {
		logger.WithError(err).Warn("Gemini is not configured, /api/analyze and /api/explain will fail")
	}
	if err := cfg.ValidateExa(); err != nil {
		logger.WithError(err).Warn("Exa is not configured, /api/search and /api/explain will fail")
	}

	geminiClient := gemini.NewClient(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.UpstreamTimeout, logger)
	exaClient := exa.NewClient(cfg.Exa.BaseURL, cfg.Exa.APIKey, cfg.Exa.UserAgent, cfg.UpstreamTimeout, logger)
	orchestrator := services.NewOrchestrator(cfg, geminiClient, exaClient, logger)

	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(
		api.RouterConfig{AllowedOrigins: cfg.Server.CORSAllowedOrigins},
		handlers.NewRelayHandler(orchestrator, logger),
		handlers.NewHealthHandler(health.NewHealthChecker(cfg, logger)),
		logger,
	)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"port":             cfg.Server.Port,
			"upstream_timeout": cfg.UpstreamTimeout.String(),
		}).Info("Proxy server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
