package middleware

import (
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/logger"
	"Agora/internal/pkg/response"
	"Agora/internal/pkg/security"
	"Agora/internal/service"
	"context"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

// TokenStore 查询已注销 token，由 redis.Store 实现
type TokenStore interface {
	GetValue(ctx context.Context, key string) (string, error)
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(signer *security.Signer, store TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, service.UnauthorizedError)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Error(c, service.UnauthorizedError)
			return
		}

		// 认证服务登出时写入
		value, err := store.GetValue(c.Request.Context(), consts.RevokedTokenKey+signature)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "check revoked token error", "err", err)
			response.Error(c, service.UnExpectedError)
			return
		}
		if value != "" {
			response.Error(c, service.UnauthorizedError)
			return
		}

		claims, err := signer.ValidateToken(tokenString)
		if err != nil {
			log.InfoContext(c.Request.Context(), "invalid token", "err", err)
			response.Error(c, service.UnauthorizedError)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)

		newCtx := context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
