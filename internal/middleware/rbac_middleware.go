package middleware

import (
	"net/http"

	"cortesec-admin/internal/domain"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything exposing Enforce(domain.EnforceRequest).
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Falta el contexto de autenticación", nil)
			c.Abort()
			return
		}

		roles, _ := c.Get(ContextRoles)
		roleList, _ := roles.([]string)

		allowed, err := service.Enforce(domain.EnforceRequest{
			UserID:   userID,
			TenantID: c.GetString(ContextTenantID),
			Roles:    roleList,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, apperror.ErrForbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
