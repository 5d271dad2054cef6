package router

import (
	"time"

	"github.com/brevetti-digital/backend/config"
	"github.com/brevetti-digital/backend/internal/handler"
	"github.com/brevetti-digital/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler   *handler.AuthHandler
	userHandler   *handler.UserHandler
	patentHandler *handler.PatentHandler
	holderHandler *handler.HolderHandler
	healthHandler *handler.HealthHandler

	jwtMw  *middleware.JWTMiddleware
	Config *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	user *handler.UserHandler,
	patent *handler.PatentHandler,
	holder *handler.HolderHandler,
	health *handler.HealthHandler,
	jwtMw *middleware.JWTMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:   auth,
		userHandler:   user,
		patentHandler: patent,
		holderHandler: holder,
		healthHandler: health,
		jwtMw:         jwtMw,
		Config:        cfg,
	}
}

// SetupRoutes builds the gin engine. Role requirements are declared
// explicitly per route here, at construction time.
func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(r.Config.RateLimit.Request, time.Duration(r.Config.RateLimit.Duration)*time.Second))

			r.authRoutes(v1)
			r.userRoutes(v1)
			r.patentRoutes(v1)
			r.holderRoutes(v1)
		}
	}

	return router
}
