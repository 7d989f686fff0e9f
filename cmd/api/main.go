package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobportal-backend/config"
	_ "go-jobportal-backend/docs" // Important for Swagger
	v1 "go-jobportal-backend/internal/delivery/http/v1"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/auth"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/redis"
	"go-jobportal-backend/pkg/security"
	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Portal Backend API
// @version         1.0
// @description     Job portal backend with skill matching, using Clean Architecture.
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

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)
	securityLogger := security.Init("jobportal-api")

	// 3. Setup Database
	dbPool, err := database.NewPostgresPool(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobOfferRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	companyProfileRepo := postgres.NewCompanyProfileRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// Security events persist to the database when enabled
	securityEvents := security.NewEventRepository(dbPool)
	if cfg.SecurityLogToDB {
		securityLogger.SetPersistFunc(securityEvents.PersistEvent)
	}

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	companyProfileUC := usecase.NewCompanyProfileUsecase(companyProfileRepo, validate)
	jobUC := usecase.NewJobOfferUsecase(jobRepo, companyProfileRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(
		applicationRepo,
		interviewRepo,
		jobRepo,
		candidateRepo,
		companyProfileRepo,
		notificationRepo,
	)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo, userRepo)

	// 7. Setup Auth Provider (JWKS for RS256 tokens)
	jwksProvider := auth.NewProvider(cfg.JWKSURL)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		JobUC:            jobUC,
		CandidateUC:      candidateUC,
		CompanyProfileUC: companyProfileUC,
		ApplicationUC:    applicationUC,
		NotificationUC:   notificationUC,
		AdminUC:          adminUC,
		SecurityEvents:   securityEvents,
		JWKSProvider:     jwksProvider,
		Config:           cfg,
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
