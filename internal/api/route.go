package api

import (
	"Agora/internal/api/middleware"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, group.LogIndex)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ping := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
	r.GET("/ping", ping)

	apiGroup := r.Group("/api")
	apiGroup.GET("/ping", ping)

	authGroup := apiGroup.Group("")
	authGroup.Use(middleware.AuthMiddleware(group.Signer, group.TokenStore))

	// 封禁中的用户只能读
	writeGroup := authGroup.Group("")
	writeGroup.Use(middleware.SuspensionMiddleware(group.Suspensions))

	adminGroup := authGroup.Group("")
	adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))

	userGroup := authGroup.Group("/user")
	{
		userGroup.GET("/posts/mine", group.PostHandler.GetOwnPosts)
		userGroup.GET("/:uuid/posts", group.PostHandler.GetUserPosts)
		userGroup.DELETE("/posts/:postId", group.PostHandler.DeletePost)
	}

	postGroup := authGroup.Group("/posts")
	{
		postGroup.GET("/feed", group.PostHandler.GetFeed)
		postGroup.GET("/:postId", group.PostHandler.GetPostDetail)
		postGroup.GET("/:postId/comments", group.CommentHandler.GetComments)
	}

	postWriteGroup := writeGroup.Group("/posts")
	{
		postWriteGroup.POST("", group.PostHandler.CreatePost)
		postWriteGroup.POST("/comments", group.CommentHandler.CreateComment)
		postWriteGroup.POST("/report", group.ReportHandler.CreateReport)
	}

	reportedGroup := adminGroup.Group("/posts")
	{
		reportedGroup.GET("/reported", group.ReportHandler.GetReportedPosts)
		reportedGroup.GET("/reported/all", group.ReportHandler.GetAllReportedPosts)
		reportedGroup.GET("/stats", group.StatsHandler.GetPostStats)
	}

	moderationGroup := adminGroup.Group("/admin/reported")
	{
		moderationGroup.POST("/delete", group.ModerationHandler.DeactivatePost)
		moderationGroup.POST("/restore", group.ModerationHandler.RestorePost)
	}

	return r
}
