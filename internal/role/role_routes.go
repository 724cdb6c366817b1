package role

import (
	"cortesec-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	mw ...gin.HandlerFunc,
) {
	roles := r.Group("/roles")
	roles.Use(mw...)
	{
		roles.GET("", middleware.RBACAuthorize(rbacService, "role", "read"), handler.GetAll)
		roles.GET("/:id", middleware.RBACAuthorize(rbacService, "role", "read"), handler.GetById)
		roles.POST("", middleware.RBACAuthorize(rbacService, "role", "manage"), handler.Create)
		roles.PUT("/:id", middleware.RBACAuthorize(rbacService, "role", "manage"), handler.Update)
		roles.PATCH("/:id/active", middleware.RBACAuthorize(rbacService, "role", "manage"), handler.ToggleActive)
		roles.DELETE("/:id", middleware.RBACAuthorize(rbacService, "role", "manage"), handler.Delete)

		roles.GET("/hierarchy", middleware.RBACAuthorize(rbacService, "role", "read"), handler.Hierarchy)
		roles.POST("/hierarchy/nodes/:nodeId/toggle", middleware.RBACAuthorize(rbacService, "role", "read"), handler.ToggleNode)
		roles.POST("/hierarchy/expand-all", middleware.RBACAuthorize(rbacService, "role", "read"), handler.ExpandAll)
		roles.POST("/hierarchy/collapse-all", middleware.RBACAuthorize(rbacService, "role", "read"), handler.CollapseAll)
	}
}
