package handler

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/response"
	"Agora/internal/pkg/util"
	"Agora/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc   service.ReportService
	reportedSvc service.ReportedPostService
}

func NewReportHandler(reportSvc service.ReportService, reportedSvc service.ReportedPostService) *ReportHandler {
	return &ReportHandler{
		reportSvc:   reportSvc,
		reportedSvc: reportedSvc,
	}
}

func (s *ReportHandler) CreateReport(c *gin.Context) {
	var req dto.CreateReportDTO
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.reportSvc.CreateReport(c.Request.Context(), currentUser(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedWith(c, dto.MessageDTO{Message: "Report created successfully."})
}

// GetReportedPosts GET /api/posts/reported
func (s *ReportHandler) GetReportedPosts(c *gin.Context) {
	var query dto.ReportedPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	username, err := util.NormalizeUsername(query.Username)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	res, err := s.reportedSvc.GetReportedPosts(c.Request.Context(), service.ReportedPostsFilter{
		Page:           query.Page,
		Limit:          query.Limit,
		OrderBy:        query.OrderBy,
		OrderDirection: query.OrderDirection,
		Username:       username,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetAllReportedPosts GET /api/posts/reported/all
func (s *ReportHandler) GetAllReportedPosts(c *gin.Context) {
	res, err := s.reportedSvc.GetAllReportedPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
