package v1

import (
	"net/http"
	"time"

	"go-tailoresume-backend/config"
	"go-tailoresume-backend/internal/delivery/http/middleware"
	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC     domain.UserUsecase
	ProfileUC  domain.ProfileUsecase
	ResumeUC   domain.ResumeUsecase
	AnalysisUC domain.AnalysisUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewUserHandler(protected, deps.UserUC)
		NewSkillHandler(protected, deps.ProfileUC)
		NewWorkExperienceHandler(protected, deps.ProfileUC)
		NewEducationHandler(protected, deps.ProfileUC)
		NewCertificationHandler(protected, deps.ProfileUC)
		NewLanguageHandler(protected, deps.ProfileUC)
		NewProjectHandler(protected, deps.ProfileUC)
		NewResumeHandler(protected, deps.ResumeUC)

		// Job analysis endpoints call the AI collaborator; budget them tightly
		aiLimit := middleware.RateLimitMiddleware(middleware.AIRateLimitConfig(deps.Config.RateLimitAIThreshold, window))
		NewAnalysisHandler(protected, deps.AnalysisUC, aiLimit)
	}

	return r
}
