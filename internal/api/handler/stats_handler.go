package handler

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/response"
	"Agora/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.PostStatsService
}

func NewStatsHandler(statsSvc service.PostStatsService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

// GetPostStats GET /api/posts/stats
func (s *StatsHandler) GetPostStats(c *gin.Context) {
	var query dto.PostStatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.statsSvc.GetPostStats(c.Request.Context(), query.StartDate, query.EndDate, query.Period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
