package middleware

import (
	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
)

// RequireMemberManager 放在 AuthMiddleware 之后，只放行管理员和版主
func RequireMemberManager(access *service.AccessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := access.CanManageMembers(c.Request.Context(), UserID(c)); err != nil {
			pkg.Fail(c, err)
			return
		}
		c.Next()
	}
}
