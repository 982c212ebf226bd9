package api

import (
	"Agora/internal/api/handler"
	"Agora/internal/api/middleware"
	"Agora/internal/pkg/security"
	"Agora/internal/service"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例以及路由需要的中间件依赖
type HandlersGroup struct {
	PostHandler       *handler.PostHandler
	CommentHandler    *handler.CommentHandler
	ReportHandler     *handler.ReportHandler
	ModerationHandler *handler.ModerationHandler
	StatsHandler      *handler.StatsHandler

	Signer      *security.Signer
	TokenStore  middleware.TokenStore
	Suspensions service.SuspensionService
	LogIndex    string
}
