package roletype

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
	types := r.Group("/role-types")
	types.Use(mw...)
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "role_type", "read"), handler.GetAll)
		types.GET("/options", middleware.RBACAuthorize(rbacService, "role_type", "read"), handler.Options)
		types.GET("/:id", middleware.RBACAuthorize(rbacService, "role_type", "read"), handler.GetById)
		types.POST("", middleware.RBACAuthorize(rbacService, "role_type", "manage"), handler.Create)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "role_type", "manage"), handler.Update)
		types.PATCH("/:id/active", middleware.RBACAuthorize(rbacService, "role_type", "manage"), handler.ToggleActive)
		types.DELETE("/:id", middleware.RBACAuthorize(rbacService, "role_type", "manage"), handler.Delete)
	}
}
