package middleware

import (
	"Agora/internal/pkg/response"
	"Agora/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// SuspensionMiddleware 封禁中的用户不能发帖、评论和举报
func SuspensionMiddleware(suspensions service.SuspensionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		suspended, err := suspensions.IsSuspended(ctx, c.GetString(UserIDKey))
		if err != nil {
			log.ErrorContext(ctx, "check suspension error", "err", err)
			response.Error(c, service.UnExpectedError)
			return
		}
		if suspended {
			response.Error(c, service.ErrUserSuspended)
			return
		}
		c.Next()
	}
}
