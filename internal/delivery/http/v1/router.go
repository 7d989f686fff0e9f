package v1

import (
	"net/http"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/auth"
	"go-jobportal-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	JobUC            domain.JobOfferUsecase
	CandidateUC      domain.CandidateUsecase
	CompanyProfileUC domain.CompanyProfileUsecase
	ApplicationUC    domain.ApplicationUsecase
	NotificationUC   domain.NotificationUsecase
	AdminUC          domain.AdminUsecase
	SecurityEvents   *security.EventRepository
	JWKSProvider     *auth.Provider
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewAuthHandler(protected, deps.AuthUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewCompanyProfileHandler(v1, protected, deps.CompanyProfileUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewInterviewHandler(protected, deps.ApplicationUC)
		NewNotificationHandler(protected, deps.NotificationUC)
		NewAdminHandler(protected, deps.AdminUC, deps.ApplicationUC, deps.SecurityEvents)
	}

	return r
}
