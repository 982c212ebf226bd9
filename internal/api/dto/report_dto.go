package dto

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"strings"
)

// CreateReportDTO 举报请求
type CreateReportDTO struct {
	PostID      string `json:"postID" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"max=500"`
	ContentType string `json:"content_type" validate:"omitempty,oneof=post"`
}

// Normalize 补齐默认值
func (s *CreateReportDTO) Normalize() {
	s.Reason = strings.TrimSpace(s.Reason)
	if s.Reason == "" {
		s.Reason = consts.DefaultReportReason
	}
	if s.ContentType == "" {
		s.ContentType = consts.ContentTypePost
	}
}

// ReportedPostsQuery 被举报帖子列表参数
type ReportedPostsQuery struct {
	Page           int     `form:"page,default=1" binding:"min=1"`
	Limit          int     `form:"limit,default=10" binding:"min=1,max=20"`
	OrderBy        string  `form:"orderBy,default=date" binding:"oneof=date report_count"`
	OrderDirection string  `form:"orderDirection,default=DESC" binding:"oneof=ASC DESC asc desc"`
	Username       *string `form:"username"`
}

// ModerationDTO 下架 / 恢复请求
type ModerationDTO struct {
	PostID            string `json:"postId" validate:"required"`
	AuthorUsername    string `json:"authorUsername" validate:"required"`
	ModeratorUsername string `json:"moderatorUsername" validate:"required"`
}

type ReportedPostsMeta struct {
	TotalPosts  int64 `json:"totalPosts"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

type ReportedPostsDTO struct {
	Message  string                `json:"message"`
	Posts    []*model.ReportedPost `json:"posts"`
	Metadata ReportedPostsMeta     `json:"metadata"`
}

type ReportedPostsAllDTO struct {
	Message string                `json:"message"`
	Posts   []*model.ReportedPost `json:"posts"`
}

// ModerationResultDTO 审核操作结果
type ModerationResultDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
