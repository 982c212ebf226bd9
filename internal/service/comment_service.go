package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/pagination"
	"Agora/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CommentService interface {
	GetComments(ctx context.Context, postID string, startTime time.Time, index int) (*dto.CommentsPageDTO, error)
	CreateComment(ctx context.Context, userID string, req *dto.CreateCommentDTO) (*model.Comment, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// GetComments 第 index 页评论（从 0 开始），只包含 startTime 之后的可见评论
func (s *commentServiceImpl) GetComments(ctx context.Context, postID string, startTime time.Time, index int) (*dto.CommentsPageDTO, error) {
	post, err := s.postRepo.GetVisiblePost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "get post error", "post_id", postID, "err", err)
		return nil, ErrFetchComments
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, total, err := loadCommentPage(ctx, s.commentRepo, postID, startTime, index)
	if err != nil {
		log.ErrorContext(ctx, "load comments error", "post_id", postID, "err", err)
		return nil, ErrFetchComments
	}

	return &dto.CommentsPageDTO{
		Message:  "Comments fetched successfully",
		Comments: comments,
		Metadata: pagination.NewOffsetMeta(total, index+1, consts.CommentPageSize),
	}, nil
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, userID string, req *dto.CreateCommentDTO) (*model.Comment, error) {
	post, err := s.postRepo.GetVisiblePost(ctx, req.PostID)
	if err != nil {
		log.ErrorContext(ctx, "get post error", "post_id", req.PostID, "err", err)
		return nil, ErrCreateComment
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{}
	if err = copier.Copy(comment, req); err != nil {
		log.ErrorContext(ctx, "copy comment error", "err", err)
		return nil, ErrCreateComment
	}
	applyGifURL(req.MediaDTO, &comment.FileURL, &comment.FileSize)
	comment.ID = uuid.NewString()
	comment.PostID = req.PostID
	comment.UserID = userID
	comment.IsActive = true
	comment.Status = consts.PostStatusVisible

	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		log.ErrorContext(ctx, "create comment error", "post_id", req.PostID, "err", err)
		return nil, ErrCreateComment
	}
	return comment, nil
}

// loadCommentPage 评论按时间正序，固定每页 CommentPageSize 条
func loadCommentPage(ctx context.Context, repo repository.CommentRepo, postID string, since time.Time, index int) ([]*model.CommentWithAuthor, int64, error) {
	since = since.UTC()
	total, err := repo.CountVisibleByPostSince(ctx, postID, since)
	if err != nil {
		return nil, 0, err
	}
	window := pagination.IndexWindow(index, consts.CommentPageSize)
	comments, err := repo.ListVisibleByPostSince(ctx, postID, since, window.Limit, window.Offset)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// applyGifURL mediaType 2 的媒体地址来自 gifUrl，没有文件大小
func applyGifURL(m dto.MediaDTO, fileURL **string, fileSize **int64) {
	if m.MediaType == nil || *m.MediaType != consts.MediaTypeGIFURL {
		return
	}
	*fileURL = m.GifURL
	*fileSize = nil
}
