package middleware

import (
	"strings"

	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextClaimsKey = "claims"

	// AccessTokenCookie 登录后下发的 http-only cookie
	AccessTokenCookie = "access_token"
)

// AuthMiddleware 从 cookie 或 Authorization: Bearer 取 token，校验后注入 user_id
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.Authenticate(c.Request.Context(), tokenFrom(c))
		if err != nil {
			pkg.Fail(c, err)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// tokenFrom cookie 优先
func tokenFrom(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// UserID 只能在 AuthMiddleware 之后调用
func UserID(c *gin.Context) uint64 {
	return c.GetUint64(ContextUserIDKey)
}

func Claims(c *gin.Context) *pkg.Claims {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*pkg.Claims)
	return claims
}
