package handler

import (
	"Agora/internal/api/middleware"
	"Agora/internal/pkg/util"
	"Agora/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// bindBody 严格解析 JSON 请求体并校验 validate 标签，未知字段、空体和类型错误都视为参数错误
func bindBody(c *gin.Context, req any) error {
	if err := util.DecodeStrict(c.Request.Body, req); err != nil {
		log.InfoContext(c.Request.Context(), "decode request body error", "err", err)
		return service.ErrParamInvalid
	}
	return util.ValidateDTO(req)
}

func currentUser(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}
