package router

import (
	"github.com/brevetti-digital/backend/internal/middleware"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/gin-gonic/gin"
)

func (r *Router) userRoutes(version *gin.RouterGroup) {
	users := version.Group("/users")
	users.Use(r.jwtMw.RequireAuth())
	{
		users.GET("", r.userHandler.List)
		users.GET("/:id", r.userHandler.Get)

		// Account management is restricted to administrators
		users.POST("", middleware.RequireRoles(model.RoleAdministrator), r.userHandler.Create)
		users.PUT("/:id", middleware.RequireRoles(model.RoleAdministrator), r.userHandler.Update)
		users.DELETE("/:id", middleware.RequireRoles(model.RoleAdministrator), r.userHandler.Delete)
	}
}
