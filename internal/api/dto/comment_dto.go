package dto

import (
	"Agora/internal/model"
	"Agora/internal/pkg/pagination"
	"time"
)

// CreateCommentDTO 评论请求，媒体规则与发帖一致
type CreateCommentDTO struct {
	PostID  string  `json:"postId" validate:"required,uuid"`
	Content *string `json:"content" validate:"omitempty,max=300"`
	MediaDTO
}

// CommentPageQuery 评论分页，Index 从 0 开始
type CommentPageQuery struct {
	Index     int       `form:"index,default=0" binding:"min=0"`
	StartTime time.Time `form:"startTime" binding:"required"`
}

type CommentsPageDTO struct {
	Message  string                     `json:"message"`
	Comments []*model.CommentWithAuthor `json:"comments"`
	Metadata pagination.OffsetMeta      `json:"metadata"`
}

type CreateCommentResponse struct {
	Message string         `json:"message"`
	Comment *model.Comment `json:"comment"`
}
