package v1

import (
	"net/http"

	"profile-editor/config"
	"profile-editor/internal/delivery/http/middleware"
	"profile-editor/internal/delivery/http/response"
	"profile-editor/internal/domain"
	"profile-editor/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC domain.ProfileUsecase
	Previews  domain.PreviewReader
	Config    *config.Config
	// DisableCSRF skips the double-submit check; tests only
	DisableCSRF bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Request bodies share the profile tags with the commit guard
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Session-scoped routes
	editor := v1.Group("")
	if !deps.DisableCSRF {
		editor.Use(middleware.CSRFMiddleware(deps.Config.SessionCookieSecure))
	}
	editor.Use(middleware.Session(deps.ProfileUC, deps.Config.SessionTTL, deps.Config.SessionCookieSecure))
	{
		NewProfileHandler(editor, deps.ProfileUC, deps.Previews, deps.Config.MaxUploadBytes)
	}

	return r
}
