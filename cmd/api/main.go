package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // swagger docs registration
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

// @title           Job Board API
// @version         1.0
// @description     Job-board data service: accounts, postings, technologies, applications, skills and recommendations.
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory counters", "error", err)
	}

	accountRepo := postgres.NewAccountRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	technologyRepo := postgres.NewTechnologyRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)

	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	validate := validator.New()

	authUC := usecase.NewAuthUsecase(accountRepo, tokens)
	accountUC := usecase.NewAccountUsecase(accountRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, validate)
	technologyUC := usecase.NewTechnologyUsecase(technologyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, accountRepo)
	recommendationUC := usecase.NewRecommendationUsecase(accountRepo, skillRepo, jobRepo)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		AccountUC:        accountUC,
		JobUC:            jobUC,
		TechnologyUC:     technologyUC,
		ApplicationUC:    applicationUC,
		SkillUC:          skillUC,
		RecommendationUC: recommendationUC,
		Tokens:           tokens,
		Config:           cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
