package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/event"
	"Agora/internal/pkg/metrics"
	"Agora/internal/pkg/pagination"
	"Agora/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PostService interface {
	GetOwnPosts(ctx context.Context, userID string, page, limit int) (*dto.PostsPageDTO, error)
	GetUserPosts(ctx context.Context, userID string, before time.Time, limit int) (*dto.PostsCursorDTO, error)
	GetFeed(ctx context.Context, before time.Time, limit int) (*dto.FeedDTO, error)
	GetPostDetail(ctx context.Context, postID string, commentPage int) (*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, userID, postID string) (*dto.DeletePostDTO, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	userRepo    repository.UserRepo
	publisher   event.Publisher
}

func NewPostService(postRepo repository.PostRepo, commentRepo repository.CommentRepo, userRepo repository.UserRepo, publisher event.Publisher) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// GetOwnPosts 自己的帖子，按页偏移
func (s *postServiceImpl) GetOwnPosts(ctx context.Context, userID string, page, limit int) (*dto.PostsPageDTO, error) {
	total, err := s.postRepo.CountVisibleByUser(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "count own posts error", "err", err)
		return nil, ErrFetchPosts
	}

	window := pagination.NewWindow(page, limit)
	posts, err := s.postRepo.ListVisibleByUser(ctx, userID, window.Limit, window.Offset)
	if err != nil {
		log.ErrorContext(ctx, "list own posts error", "err", err)
		return nil, ErrFetchPosts
	}

	return &dto.PostsPageDTO{
		Message:  "Posts fetched successfully",
		Data:     posts,
		Metadata: pagination.NewOffsetMeta(total, page, limit),
	}, nil
}

// GetUserPosts 他人的帖子，只返回 before 之前的，元数据描述游标之后剩余的数量
func (s *postServiceImpl) GetUserPosts(ctx context.Context, userID string, before time.Time, limit int) (*dto.PostsCursorDTO, error) {
	// 库中按 UTC 存储，sqlite 以字符串比较时间
	before = before.UTC()
	posts, err := s.postRepo.ListVisibleByUserBefore(ctx, userID, before, limit)
	if err != nil {
		log.ErrorContext(ctx, "list user posts error", "target", userID, "err", err)
		return nil, ErrFetchPosts
	}
	count, err := s.postRepo.CountVisibleByUserBefore(ctx, userID, before)
	if err != nil {
		log.ErrorContext(ctx, "count user posts error", "target", userID, "err", err)
		return nil, ErrFetchPosts
	}

	return &dto.PostsCursorDTO{
		Message:  "Posts fetched successfully",
		Data:     posts,
		Metadata: pagination.NewTimeMeta(count, len(posts), limit),
	}, nil
}

func (s *postServiceImpl) GetFeed(ctx context.Context, before time.Time, limit int) (*dto.FeedDTO, error) {
	before = before.UTC()
	posts, err := s.postRepo.ListFeedBefore(ctx, before, limit)
	if err != nil {
		log.ErrorContext(ctx, "list feed error", "err", err)
		return nil, ErrFetchPosts
	}
	count, err := s.postRepo.CountVisibleBefore(ctx, before)
	if err != nil {
		log.ErrorContext(ctx, "count feed error", "err", err)
		return nil, ErrFetchPosts
	}

	return &dto.FeedDTO{
		Message:  "Posts retrieved successfully",
		Data:     posts,
		Metadata: pagination.NewTimeMeta(count, len(posts), limit),
	}, nil
}

// GetPostDetail 帖子详情，附带第 commentPage 页评论
func (s *postServiceImpl) GetPostDetail(ctx context.Context, postID string, commentPage int) (*dto.PostDetailDTO, error) {
	detail, err := s.postRepo.GetPostDetail(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "get post detail error", "post_id", postID, "err", err)
		return nil, ErrFetchPost
	}
	if detail == nil {
		return nil, ErrPostNotFound
	}

	comments, total, err := loadCommentPage(ctx, s.commentRepo, postID, time.Time{}, commentPage-1)
	if err != nil {
		log.ErrorContext(ctx, "load comments error", "post_id", postID, "err", err)
		return nil, ErrFetchPost
	}

	return &dto.PostDetailDTO{
		Message: "Post fetched successfully",
		Post: &dto.PostWithComments{
			PostDetail:       detail,
			Comments:         comments,
			CommentsMetadata: pagination.NewOffsetMeta(total, commentPage, consts.CommentPageSize),
		},
	}, nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) (*model.Post, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "get user error", "err", err)
		return nil, ErrCreatePost
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &model.Post{}
	if err = copier.Copy(post, req); err != nil {
		log.ErrorContext(ctx, "copy post error", "err", err)
		return nil, ErrCreatePost
	}
	applyGifURL(req.MediaDTO, &post.FileURL, &post.FileSize)
	post.ID = uuid.NewString()
	post.UserID = userID
	post.IsActive = true
	post.Status = consts.PostStatusVisible

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		log.ErrorContext(ctx, "create post error", "err", err)
		return nil, ErrCreatePost
	}

	metrics.PostsCreated.Inc()
	publish(ctx, s.publisher, event.New(event.PostCreated, post.ID, userID))
	return post, nil
}

// DeletePost 作者自删，不影响举报状态
func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID string) (*dto.DeletePostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "get post error", "post_id", postID, "err", err)
		return nil, ErrDeletePost
	}
	if post == nil {
		return nil, ErrDeleteNotFound
	}
	if post.UserID != userID {
		return nil, ErrPostNotOwned
	}
	if !post.IsActive {
		return nil, ErrPostAlreadyDeleted
	}

	if err = s.postRepo.SoftDeletePost(ctx, postID); err != nil {
		log.ErrorContext(ctx, "soft delete post error", "post_id", postID, "err", err)
		return nil, ErrDeletePost
	}

	return &dto.DeletePostDTO{
		Status:  "success",
		Message: "Post successfully deleted.",
		Data:    dto.DeletedPost{PostID: postID, Deleted: true},
	}, nil
}
