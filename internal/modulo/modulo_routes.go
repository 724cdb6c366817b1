package modulo

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
	modules := r.Group("/modules")
	modules.Use(mw...)
	{
		modules.GET("", middleware.RBACAuthorize(rbacService, "module", "read"), handler.GetAll)
		modules.GET("/menu", handler.Menu)
		modules.GET("/:id", middleware.RBACAuthorize(rbacService, "module", "read"), handler.GetById)
		modules.POST("", middleware.RBACAuthorize(rbacService, "module", "manage"), handler.Create)
		modules.PUT("/:id", middleware.RBACAuthorize(rbacService, "module", "manage"), handler.Update)
		modules.PATCH("/:id/active", middleware.RBACAuthorize(rbacService, "module", "manage"), handler.ToggleActive)
		modules.DELETE("/:id", middleware.RBACAuthorize(rbacService, "module", "manage"), handler.Delete)
	}
}
