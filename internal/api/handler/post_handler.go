package handler

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/response"
	"Agora/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// GetOwnPosts GET /api/user/posts/mine
func (s *PostHandler) GetOwnPosts(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.postSvc.GetOwnPosts(c.Request.Context(), currentUser(c), query.Page, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetUserPosts GET /api/user/:uuid/posts
func (s *PostHandler) GetUserPosts(c *gin.Context) {
	var uri dto.UserIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, err)
		return
	}
	var query dto.CursorQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.postSvc.GetUserPosts(c.Request.Context(), uri.UUID, query.Time, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetFeed GET /api/posts/feed
func (s *PostHandler) GetFeed(c *gin.Context) {
	var query dto.CursorQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.postSvc.GetFeed(c.Request.Context(), query.Time, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetPostDetail GET /api/posts/:postId
func (s *PostHandler) GetPostDetail(c *gin.Context) {
	var uri dto.PostIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, err)
		return
	}
	var query dto.PostDetailQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.postSvc.GetPostDetail(c.Request.Context(), uri.PostID, query.CommentPage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostDTO
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedWith(c, dto.CreatePostResponse{
		Message: "Post created successfully",
		Post:    post,
	})
}

// DeletePost DELETE /api/user/posts/:postId，只能删除自己的帖子
func (s *PostHandler) DeletePost(c *gin.Context) {
	var uri dto.PostIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.postSvc.DeletePost(c.Request.Context(), currentUser(c), uri.PostID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
