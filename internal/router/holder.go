package router

import (
	"github.com/brevetti-digital/backend/internal/middleware"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/gin-gonic/gin"
)

func (r *Router) holderRoutes(version *gin.RouterGroup) {
	holders := version.Group("/holders")
	holders.Use(r.jwtMw.RequireAuth())
	{
		holders.GET("", r.holderHandler.List)
		holders.GET("/stats", r.holderHandler.Stats)
		holders.GET("/:id", r.holderHandler.Get)

		holders.POST("", middleware.RequireRoles(model.RoleAdministrator), r.holderHandler.Create)
		holders.PUT("/:id", middleware.RequireRoles(model.RoleAdministrator), r.holderHandler.Update)
		holders.DELETE("/:id", middleware.RequireRoles(model.RoleAdministrator), r.holderHandler.Delete)
	}
}
