package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	AccountUC        domain.AccountUsecase
	JobUC            domain.JobUsecase
	TechnologyUC     domain.TechnologyUsecase
	ApplicationUC    domain.ApplicationUsecase
	SkillUC          domain.SkillUsecase
	RecommendationUC domain.RecommendationUsecase
	Tokens           *token.Manager
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must come first so even error responses carry
	// the headers.
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:global:",
	}))
	// Identity resolution runs on every route; the per-route policy decides
	// whether an anonymous caller is acceptable.
	v1.Use(middleware.Authenticate(deps.Tokens))

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitLoginThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:login:",
	})

	NewAuthHandler(v1, deps.AuthUC, loginLimiter)
	NewAccountHandler(v1, deps.AccountUC)
	NewJobHandler(v1, deps.JobUC)
	NewTechnologyHandler(v1, deps.TechnologyUC)
	NewApplicationHandler(v1, deps.ApplicationUC)
	NewSkillHandler(v1, deps.SkillUC, deps.RecommendationUC)

	return r
}
