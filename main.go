package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elsonpulikkan96/reborncloud.online/audit"
	"github.com/elsonpulikkan96/reborncloud.online/config"
	_ "github.com/elsonpulikkan96/reborncloud.online/docs" // Swagger docs
	"github.com/elsonpulikkan96/reborncloud.online/handler"
	appLogger "github.com/elsonpulikkan96/reborncloud.online/logger"
	"github.com/elsonpulikkan96/reborncloud.online/middleware"
	redisClient "github.com/elsonpulikkan96/reborncloud.online/redis"
	"github.com/elsonpulikkan96/reborncloud.online/resume"
	"github.com/elsonpulikkan96/reborncloud.online/security"
	"github.com/elsonpulikkan96/reborncloud.online/session"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title RebornCloud Portfolio API
// @version 2.0
// @description Personal portfolio with a verified resume download flow: context scoring, CAPTCHA, and single-use session-bound tokens.

// @contact.name Elson Pulickeel Ealias
// @contact.url https://reborncloud.online/

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Access
// @tag.description Verification and gated resume download

// @tag.name Pages
// @tag.description Portfolio pages and resume JSON

// @tag.name System
// @tag.description Health checks and admin statistics

func main() {
	// Initialize logger
	appLogger.Initialize()

	// Load configuration
	cfg := config.MustLoadConfig()
	if cfg.Logging.Debug {
		appLogger.SetDebug()
	}
	log.Info().Msg("Configuration loaded successfully")

	// Initialize Redis client
	rdb := redisClient.NewClient(cfg.Redis)

	// Session manager (Redis state, optional in-process cache)
	sessions, err := session.NewManager(rdb, cfg.Session, cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize session manager")
	}

	// Access-control collaborators
	tokens := security.NewTokenStore(time.Duration(cfg.Security.TokenTTLSeconds) * time.Second)
	scorer := security.NewScorer()
	captcha := security.NewCaptchaVerifier(cfg.Captcha)
	recorder := audit.NewRecorder(rdb)

	log.Info().
		Bool("captcha_configured", captcha.Configured()).
		Int("token_ttl_seconds", cfg.Security.TokenTTLSeconds).
		Msg("Download access controller initialized")

	// Resume content
	doc := resume.MustLoad()

	// Create handler with dependency injection
	accessHandler := handler.NewAccessHandler(sessions, tokens, scorer, captcha, recorder, doc, cfg)

	// Set up router
	r := mux.NewRouter()

	// Global middleware
	r.Use(middleware.CORS)
	r.Use(middleware.RequestLogger)
	if cfg.Security.HeadersEnabled {
		r.Use(middleware.SecurityHeaders)
	}

	// Per-route rate limit tiers
	pagesLimit := middleware.PerMinute(cfg.RateLimit.PagesPerMinute, cfg.RateLimit.Burst)
	verifyLimit := middleware.PerMinute(cfg.RateLimit.VerifyPerMinute, cfg.RateLimit.Burst)
	professionalLimit := middleware.PerMinute(cfg.RateLimit.ProfessionalPerMinute, cfg.RateLimit.Burst)
	analysisLimit := middleware.PerMinute(cfg.RateLimit.AnalysisPerMinute, cfg.RateLimit.Burst)
	downloadLimit := middleware.PerHour(cfg.RateLimit.DownloadPerHour, 1)

	// Health probe is exempt from rate limiting
	r.HandleFunc("/health", accessHandler.HealthCheck).Methods("GET")

	// Portfolio pages
	r.Handle("/", pagesLimit.Limit(http.HandlerFunc(accessHandler.Index))).Methods("GET")
	r.Handle("/bio", pagesLimit.Limit(http.HandlerFunc(accessHandler.Bio))).Methods("GET")
	r.Handle("/experience", pagesLimit.Limit(http.HandlerFunc(accessHandler.Experience))).Methods("GET")
	r.Handle("/skills", pagesLimit.Limit(http.HandlerFunc(accessHandler.Skills))).Methods("GET")
	r.Handle("/education", pagesLimit.Limit(http.HandlerFunc(accessHandler.Education))).Methods("GET")
	r.Handle("/projects", pagesLimit.Limit(http.HandlerFunc(accessHandler.Projects))).Methods("GET")
	r.Handle("/contact", pagesLimit.Limit(http.HandlerFunc(accessHandler.Contact))).Methods("GET")
	r.Handle("/api/resume", pagesLimit.Limit(http.HandlerFunc(accessHandler.APIResume))).Methods("GET")

	// Verification and download flow
	r.Handle("/resume-access", pagesLimit.Limit(http.HandlerFunc(accessHandler.ResumeAccess))).Methods("GET")
	r.Handle("/professional-resume-access", pagesLimit.Limit(http.HandlerFunc(accessHandler.ProfessionalResumeAccess))).Methods("GET")
	r.Handle("/verify-access", verifyLimit.Limit(http.HandlerFunc(accessHandler.VerifyAccess))).Methods("POST")
	r.Handle("/professional-verify-access", professionalLimit.Limit(http.HandlerFunc(accessHandler.ProfessionalVerifyAccess))).Methods("POST")
	r.Handle("/professional-context-analysis", analysisLimit.Limit(http.HandlerFunc(accessHandler.ContextAnalysis))).Methods("POST")
	r.Handle("/download-resume", downloadLimit.Limit(http.HandlerFunc(accessHandler.DownloadResume))).Methods("GET")
	r.Handle("/download-resume-legacy", pagesLimit.Limit(http.HandlerFunc(accessHandler.DownloadResumeLegacy))).Methods("GET")

	// Unmatched routes render the portfolio 404 page
	r.NotFoundHandler = pagesLimit.Limit(http.HandlerFunc(accessHandler.NotFound))

	// Admin statistics
	adminAuth := middleware.NewAdminAuth(cfg.Admin.APIKey, cfg.Admin.Enabled)
	r.Handle("/admin/stats", adminAuth.Protect(http.HandlerFunc(accessHandler.AdminStats))).Methods("GET")

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Configure HTTP server
	serverAddress := fmt.Sprintf("%s:%s", cfg.WebServer.IP, cfg.WebServer.Port)
	server := &http.Server{
		Addr:         serverAddress,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.WebServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WebServer.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("address", serverAddress).
			Str("scheme", cfg.WebServer.Scheme).
			Msg("Starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.WebServer.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	sessions.Close()

	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Redis connection")
	}

	log.Info().Msg("Server stopped gracefully")
}
