package router

import (
	"github.com/brevetti-digital/backend/internal/middleware"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/gin-gonic/gin"
)

func (r *Router) patentRoutes(version *gin.RouterGroup) {
	patents := version.Group("/patents")
	patents.Use(r.jwtMw.RequireAuth())
	{
		patents.GET("", r.patentHandler.List)
		patents.GET("/expiring", r.patentHandler.Expiring)
		patents.GET("/stats", r.patentHandler.Stats)
		patents.GET("/:id", r.patentHandler.Get)

		// Notes are open to any authenticated user
		patents.POST("/:id/notes", r.patentHandler.AddNote)

		// Writes are restricted to administrators
		patents.POST("", middleware.RequireRoles(model.RoleAdministrator), r.patentHandler.Create)
		patents.PUT("/:id", middleware.RequireRoles(model.RoleAdministrator), r.patentHandler.Update)
		patents.DELETE("/:id", middleware.RequireRoles(model.RoleAdministrator), r.patentHandler.Delete)
		patents.POST("/:id/timeline", middleware.RequireRoles(model.RoleAdministrator), r.patentHandler.AddTimelineEntry)
	}
}
