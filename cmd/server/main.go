package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/routes"
	"resumeforge/internal/ats"
	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/sections"
	"resumeforge/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting ResumeForge server")

	// Initialize persistence and the resume store
	persister, err := store.NewPersister(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize persistence", map[string]interface{}{
			"backend": cfg.Storage.Backend,
			"error":   err.Error(),
		})
	}

	resumeStore := store.New(persister)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if err := resumeStore.Load(loadCtx); err != nil {
		cancelLoad()
		logger.Fatal("Failed to load resume store", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cancelLoad()

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Fatal("Failed to start LLM manager", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize ATS checker
	scorer, err := ats.NewScorer(cfg, llmManager)
	if err != nil {
		logger.Fatal("Failed to initialize ATS scorer", map[string]interface{}{
			"scorer": cfg.ATS.Scorer,
			"error":  err.Error(),
		})
	}
	checker := ats.NewChecker(cfg, scorer)

	sectionSvc := sections.NewService(resumeStore)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, resumeStore, sectionSvc, llmManager, checker)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Closing persistence...")
		if err := persister.Close(); err != nil {
			logger.Error("Error closing persistence", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
		_ = logging.CloseLogging()
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
