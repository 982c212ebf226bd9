package middleware

import (
	"Agora/internal/pkg/response"
	"Agora/internal/service"
	"slices"

	"github.com/gin-gonic/gin"
)

// CheckRoles 检查当前用户是否拥有指定角色之一
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(requiredRoles, c.GetString(RoleKey)) {
			response.Error(c, service.ForbiddenError)
			return
		}
		c.Next()
	}
}
