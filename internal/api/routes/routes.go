package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumeforge/internal/api/handlers"
	"resumeforge/internal/api/middleware"
	"resumeforge/internal/ats"
	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/sections"
	"resumeforge/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, s *store.Store, sectionSvc *sections.Service, llmManager *llm.Manager, checker *ats.Checker) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Generation calls can outlive the read timeout; give handlers 2 minutes
	e.Use(middleware.TimeoutConfig(2 * time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager, checker))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Resume collection and selection cursor
		resumes := v1.Group("/resumes")
		{
			resumes.POST("", handlers.CreateResumeHandler(s))
			resumes.GET("", handlers.ListResumesHandler(s))
			resumes.GET("/selected", handlers.SelectedResumeHandler(s))
			resumes.PUT("/selected", handlers.SetSelectionHandler(s))
			resumes.GET("/:id", handlers.GetResumeHandler(s))
			resumes.PATCH("/:id", handlers.UpdateResumeHandler(s))
			resumes.DELETE("/:id", handlers.DeleteResumeHandler(s))
		}

		// Section editors: validate-then-commit against the selected resume
		resume := v1.Group("/resume")
		{
			resume.PUT("/contact", handlers.UpdateContactHandler(sectionSvc, s))
			resume.PUT("/experience", handlers.UpdateExperienceHandler(sectionSvc, s))
			resume.PUT("/education", handlers.UpdateEducationHandler(sectionSvc, s))
			resume.PUT("/skills", handlers.UpdateSkillsHandler(sectionSvc, s))
			resume.GET("/preview", handlers.PreviewResumeHandler(s))
		}

		// ATS compatibility checker
		atsGroup := v1.Group("/ats")
		{
			atsGroup.POST("/analyze", handlers.AnalyzeResumeHandler(cfg, checker))
			atsGroup.GET("/state", handlers.AnalysisStateHandler(checker))
		}

		// Cover letters: generated or previewed, never persisted
		letters := v1.Group("/cover-letter")
		{
			letters.POST("/generate", handlers.GenerateCoverLetterHandler(cfg, s, llmManager))
			letters.POST("/preview", handlers.PreviewCoverLetterHandler(s))
		}
	}
}
