package audit

import (
	"cortesec-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw ...gin.HandlerFunc) {
	audit := r.Group("/audit")
	audit.Use(mw...)
	{
		audit.POST("/events", middleware.RateLimitByIP(rate.Limit(5), 20), handler.Ingest)
	}
}
