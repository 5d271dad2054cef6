package router

import "github.com/gin-gonic/gin"

func (r *Router) authRoutes(version *gin.RouterGroup) {
	auth := version.Group("/auth")
	{
		// Login is the only public route
		auth.POST("/login", r.authHandler.Login)
	}
}
