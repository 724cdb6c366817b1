package assignment

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
	assignments := r.Group("/assignments")
	assignments.Use(mw...)
	{
		assignments.GET("", middleware.RBACAuthorize(rbacService, "assignment", "read"), handler.GetAll)
		assignments.GET("/summary", middleware.RBACAuthorize(rbacService, "assignment", "read"), handler.Summary)
		assignments.GET("/preview", middleware.RBACAuthorize(rbacService, "assignment", "manage"), handler.Preview)
		assignments.GET("/:id", middleware.RBACAuthorize(rbacService, "assignment", "read"), handler.GetById)
		assignments.POST("", middleware.RBACAuthorize(rbacService, "assignment", "manage"), handler.Create)
		assignments.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "assignment", "approve"), handler.Approve)
		assignments.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "assignment", "approve"), handler.Reject)
		assignments.POST("/:id/revoke", middleware.RBACAuthorize(rbacService, "assignment", "manage"), handler.Revoke)
	}
}
