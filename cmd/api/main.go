package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/intake-api/internal/config"
	"github.com/jwalitptl/intake-api/internal/handler"
	assessmentHandler "github.com/jwalitptl/intake-api/internal/handler/assessment"
	patientHandler "github.com/jwalitptl/intake-api/internal/handler/patient"
	vitalsHandler "github.com/jwalitptl/intake-api/internal/handler/vitals"
	"github.com/jwalitptl/intake-api/internal/middleware"
	"github.com/jwalitptl/intake-api/internal/repository/postgres"
	"github.com/jwalitptl/intake-api/internal/router"
	assessmentService "github.com/jwalitptl/intake-api/internal/service/assessment"
	patientService "github.com/jwalitptl/intake-api/internal/service/patient"
	vitalsService "github.com/jwalitptl/intake-api/internal/service/vitals"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	vitalsRepo := postgres.NewVitalsRepository(db)
	assessmentRepo := postgres.NewAssessmentRepository(db)

	// Services
	patientSvc := patientService.NewService(patientRepo, vitalsRepo)
	vitalsSvc := vitalsService.NewService(vitalsRepo)
	assessmentSvc := assessmentService.NewService(assessmentRepo)

	// Handlers
	h := handler.NewHandler(db)
	patientH := patientHandler.NewHandler(patientSvc)
	vitalsH := vitalsHandler.NewHandler(vitalsSvc)
	assessmentH := assessmentHandler.NewHandler(assessmentSvc)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r := router.NewRouter(h, patientH, vitalsH, assessmentH, router.Config{
		RateLimit: middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RPS),
			Burst: cfg.RateLimit.Burst,
		},
		CORSConfig:    corsConfig,
		MetricsPrefix: "intake_api",
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
