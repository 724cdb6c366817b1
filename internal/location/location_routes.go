package location

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
	read := middleware.RBACAuthorize(rbacService, "location", "read")
	manage := middleware.RBACAuthorize(rbacService, "location", "manage")

	departments := r.Group("/departments")
	departments.Use(mw...)
	{
		departments.GET("", read, handler.ListDepartments)
		departments.GET("/options", read, handler.DepartmentOptions)
		departments.GET("/:id", read, handler.GetDepartment)
		departments.POST("", manage, handler.CreateDepartment)
		departments.PUT("/:id", manage, handler.UpdateDepartment)
		departments.PATCH("/:id/active", manage, handler.ToggleDepartment)
		departments.DELETE("/:id", manage, handler.DeleteDepartment)
	}

	municipalities := r.Group("/municipalities")
	municipalities.Use(mw...)
	{
		municipalities.GET("", read, handler.ListMunicipalities)
		municipalities.GET("/:id", read, handler.GetMunicipality)
		municipalities.POST("", manage, handler.CreateMunicipality)
		municipalities.PUT("/:id", manage, handler.UpdateMunicipality)
		municipalities.PATCH("/:id/active", manage, handler.ToggleMunicipality)
		municipalities.DELETE("/:id", manage, handler.DeleteMunicipality)
	}

	bulk := r.Group("/locations")
	bulk.Use(mw...)
	{
		bulk.GET("/template", read, handler.Template)
		bulk.POST("/validate", manage, handler.Validate)
		bulk.POST("/import", middleware.RateLimitByUser(0.2, 1), manage, handler.Import)
		bulk.GET("/export", read, handler.Export)
	}
}
