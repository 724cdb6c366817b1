package parameter

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
	params := r.Group("/parameters")
	params.Use(mw...)
	{
		params.GET("", middleware.RBACAuthorize(rbacService, "parameter", "read"), handler.GetAll)
		params.GET("/settings", middleware.RBACAuthorize(rbacService, "parameter", "read"), handler.Settings)
		params.PUT("/settings/:categoria", middleware.RBACAuthorize(rbacService, "parameter", "manage"), handler.SaveSettings)
		params.GET("/:id", middleware.RBACAuthorize(rbacService, "parameter", "read"), handler.GetById)
		params.POST("", middleware.RBACAuthorize(rbacService, "parameter", "manage"), handler.Create)
		params.PUT("/:id", middleware.RBACAuthorize(rbacService, "parameter", "manage"), handler.Update)
		params.PATCH("/:id/active", middleware.RBACAuthorize(rbacService, "parameter", "manage"), handler.ToggleActive)
		params.DELETE("/:id", middleware.RBACAuthorize(rbacService, "parameter", "manage"), handler.Delete)
	}
}
