package handler

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/response"
	"Agora/internal/service"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationSvc service.ModerationService
}

func NewModerationHandler(moderationSvc service.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationSvc: moderationSvc,
	}
}

// DeactivatePost POST /api/admin/reported/delete
func (s *ModerationHandler) DeactivatePost(c *gin.Context) {
	var req dto.ModerationDTO
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.moderationSvc.DeactivatePost(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// RestorePost POST /api/admin/reported/restore
func (s *ModerationHandler) RestorePost(c *gin.Context) {
	var req dto.ModerationDTO
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.moderationSvc.RestorePost(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
