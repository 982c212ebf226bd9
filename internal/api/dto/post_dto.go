package dto

import (
	"Agora/internal/model"
	"Agora/internal/pkg/pagination"
)

// MediaDTO 帖子和评论共用的媒体字段
type MediaDTO struct {
	MediaType *int8   `json:"mediaType" validate:"omitempty,oneof=0 1 2"`
	FileURL   *string `json:"fileUrl" validate:"omitempty,url,max=512"`
	FileSize  *int64  `json:"fileSize" validate:"omitempty,min=0"`
	GifURL    *string `json:"gifUrl" validate:"omitempty,url,max=512"`
}

// CreatePostDTO 发帖请求
type CreatePostDTO struct {
	Content *string `json:"content" validate:"omitempty,max=300"`
	MediaDTO
}

// PostDetailQuery 帖子详情参数
type PostDetailQuery struct {
	CommentPage int `form:"commentPage,default=1" binding:"min=1"`
}

// PostsPageDTO 自己的帖子，偏移分页
type PostsPageDTO struct {
	Message  string                `json:"message"`
	Data     []*model.Post         `json:"data"`
	Metadata pagination.OffsetMeta `json:"metadata"`
}

// PostsCursorDTO 他人的帖子，时间游标分页
type PostsCursorDTO struct {
	Message  string              `json:"message"`
	Data     []*model.Post       `json:"data"`
	Metadata pagination.TimeMeta `json:"metadata"`
}

// FeedDTO 全站信息流
type FeedDTO struct {
	Message  string              `json:"message"`
	Data     []*model.FeedPost   `json:"data"`
	Metadata pagination.TimeMeta `json:"metadata"`
}

// PostWithComments 帖子详情附带第一页评论
type PostWithComments struct {
	*model.PostDetail
	Comments         []*model.CommentWithAuthor `json:"comments"`
	CommentsMetadata pagination.OffsetMeta      `json:"comments_metadata"`
}

type PostDetailDTO struct {
	Message string            `json:"message"`
	Post    *PostWithComments `json:"post"`
}

type CreatePostResponse struct {
	Message string      `json:"message"`
	Post    *model.Post `json:"post"`
}

// DeletePostDTO 自删帖子的返回
type DeletePostDTO struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    DeletedPost `json:"data"`
}

type DeletedPost struct {
	PostID  string `json:"postId"`
	Deleted bool   `json:"deleted"`
}
