package legalparam

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
	params := r.Group("/legal-parameters")
	params.Use(mw...)
	{
		params.GET("", middleware.RBACAuthorize(rbacService, "legal_parameter", "read"), handler.GetAll)
		params.GET("/total", middleware.RBACAuthorize(rbacService, "legal_parameter", "read"), handler.Total)
		params.GET("/:id", middleware.RBACAuthorize(rbacService, "legal_parameter", "read"), handler.GetById)
		params.POST("", middleware.RBACAuthorize(rbacService, "legal_parameter", "manage"), handler.Create)
		params.PUT("/:id", middleware.RBACAuthorize(rbacService, "legal_parameter", "manage"), handler.Update)
		params.PATCH("/:id/active", middleware.RBACAuthorize(rbacService, "legal_parameter", "manage"), handler.ToggleActive)
		params.DELETE("/:id", middleware.RBACAuthorize(rbacService, "legal_parameter", "manage"), handler.Delete)
	}
}
