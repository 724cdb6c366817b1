package cargo

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
	cargos := r.Group("/cargos")
	cargos.Use(mw...)
	{
		cargos.GET("", middleware.RBACAuthorize(rbacService, "cargo", "read"), handler.GetAll)
		cargos.GET("/options", middleware.RBACAuthorize(rbacService, "cargo", "read"), handler.Options)
		cargos.GET("/:id", middleware.RBACAuthorize(rbacService, "cargo", "read"), handler.GetById)
		cargos.POST("", middleware.RBACAuthorize(rbacService, "cargo", "manage"), handler.Create)
		cargos.PUT("/:id", middleware.RBACAuthorize(rbacService, "cargo", "manage"), handler.Update)
		cargos.PATCH("/:id/active", middleware.RBACAuthorize(rbacService, "cargo", "manage"), handler.ToggleActive)
		cargos.DELETE("/:id", middleware.RBACAuthorize(rbacService, "cargo", "manage"), handler.Delete)
	}
}
