package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/contextutil"
	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextTenantID = "tenant_id"
	ContextRoles    = "roles"
)

var (
	errTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token no encontrado", http.StatusUnauthorized)
	errInvalidToken  = apperror.New("INVALID_TOKEN", "Token inválido", http.StatusUnauthorized)
	errTokenExpired  = apperror.New("TOKEN_EXPIRED", "La sesión expiró", http.StatusUnauthorized)
)

// AuthMiddleware validates the session token issued by the backend and
// keeps it in the request context so backend calls reuse it.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abort(c, errTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			errObj := errInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = errTokenExpired
			}
			abort(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, errInvalidToken)
			return
		}

		userID := claimString(claims, "user_id")
		if userID == "" {
			abort(c, errInvalidToken)
			return
		}
		tenantID := claimString(claims, "tenant_id")

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claimString(claims, "username"))
		c.Set(ContextTenantID, tenantID)
		c.Set(ContextRoles, claimRoles(claims))

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, userID)
		ctx = contextutil.WithTenantID(ctx, tenantID)
		ctx = contextutil.WithAccessToken(ctx, tokenString)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// claimString accepts string and numeric claims; Django backends often
// emit numeric user ids.
func claimString(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}

func claimRoles(claims jwt.MapClaims) []string {
	var roles []string
	if list, ok := claims["roles"].([]interface{}); ok {
		for _, r := range list {
			if s, ok := r.(string); ok && s != "" {
				roles = append(roles, s)
			}
		}
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		roles = append(roles, role)
	}
	return roles
}

func abort(c *gin.Context, e *apperror.AppError) {
	response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
	c.Abort()
}
