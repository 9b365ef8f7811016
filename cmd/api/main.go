package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-tailoresume-backend/config"
	_ "go-tailoresume-backend/docs" // Important for Swagger
	"go-tailoresume-backend/internal/ai"
	v1 "go-tailoresume-backend/internal/delivery/http/v1"
	"go-tailoresume-backend/internal/repository/postgres"
	"go-tailoresume-backend/internal/usecase"
	"go-tailoresume-backend/pkg/database"
	"go-tailoresume-backend/pkg/logger"
	"go-tailoresume-backend/pkg/redis"
	"go-tailoresume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           TailoResume Backend API
// @version         1.0
// @description     Resume synthesis and ATS compatibility engine using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting tailoresume backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting backend; optional)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err.Error())
		}
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)

	// 6. Setup AI provider
	aiProvider, err := ai.NewGeminiProvider(context.Background(), &cfg.AI)
	if err != nil {
		logger.Log.Error("Failed to initialize AI provider", "error", err)
		os.Exit(1)
	}
	defer aiProvider.Close()

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	userUC := usecase.NewUserUsecase(userRepo, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, userRepo, profileRepo, validate)
	databankBuilder := usecase.NewDatabankBuilder(userRepo, profileRepo)
	analysisUC := usecase.NewAnalysisUsecase(databankBuilder, aiProvider)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:     userUC,
		ProfileUC:  profileUC,
		ResumeUC:   resumeUC,
		AnalysisUC: analysisUC,
		Config:     cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}
