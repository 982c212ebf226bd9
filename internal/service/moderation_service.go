package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/event"
	"Agora/internal/pkg/metrics"
	"Agora/internal/repository"
	"context"
	log "log/slog"
)

// ModerationService 帖子下架 / 恢复，帖子与其举报在同一事务内切换状态
type ModerationService interface {
	DeactivatePost(ctx context.Context, moderatorID string, req *dto.ModerationDTO) (*dto.ModerationResultDTO, error)
	RestorePost(ctx context.Context, moderatorID string, req *dto.ModerationDTO) (*dto.ModerationResultDTO, error)
}

type moderationServiceImpl struct {
	reportedRepo repository.ReportedPostRepo
	cache        Cache
	publisher    event.Publisher
}

func NewModerationService(reportedRepo repository.ReportedPostRepo, cache Cache, publisher event.Publisher) ModerationService {
	return &moderationServiceImpl{
		reportedRepo: reportedRepo,
		cache:        cache,
		publisher:    publisher,
	}
}

// DeactivatePost 帖子不存在时同样返回成功
func (s *moderationServiceImpl) DeactivatePost(ctx context.Context, moderatorID string, req *dto.ModerationDTO) (*dto.ModerationResultDTO, error) {
	var resolver *string
	if moderatorID != "" {
		resolver = &moderatorID
	}

	err := s.reportedRepo.Deactivate(ctx, req.PostID, resolver)
	metrics.ObserveModeration(metrics.ActionDeactivate, err)
	if err != nil {
		log.ErrorContext(ctx, "deactivate post error", "post_id", req.PostID, "err", err)
		return nil, ErrDeactivatePost
	}

	log.InfoContext(ctx, "post deactivated",
		"post_id", req.PostID,
		"author", req.AuthorUsername,
		"moderator", req.ModeratorUsername,
	)
	s.afterCommit(ctx, event.PostDeactivated, moderatorID, req)

	return &dto.ModerationResultDTO{
		Success: true,
		Message: "Post and its reports have been successfully deactivated",
	}, nil
}

// RestorePost 恢复帖子并使其举报重新生效
func (s *moderationServiceImpl) RestorePost(ctx context.Context, moderatorID string, req *dto.ModerationDTO) (*dto.ModerationResultDTO, error) {
	err := s.reportedRepo.Restore(ctx, req.PostID)
	metrics.ObserveModeration(metrics.ActionRestore, err)
	if err != nil {
		log.ErrorContext(ctx, "restore post error", "post_id", req.PostID, "err", err)
		return nil, ErrRestorePost
	}

	log.InfoContext(ctx, "post restored",
		"post_id", req.PostID,
		"author", req.AuthorUsername,
		"moderator", req.ModeratorUsername,
	)
	s.afterCommit(ctx, event.PostRestored, moderatorID, req)

	return &dto.ModerationResultDTO{
		Success: true,
		Message: "Post has been successfully restored",
	}, nil
}

func (s *moderationServiceImpl) afterCommit(ctx context.Context, typ, moderatorID string, req *dto.ModerationDTO) {
	if err := s.cache.DeleteKey(ctx, consts.ReportedPostsCountKey); err != nil {
		log.WarnContext(ctx, "invalidate reported posts count error", "err", err)
	}

	e := event.New(typ, req.PostID, moderatorID)
	e.AuthorUsername = req.AuthorUsername
	e.ActorUsername = req.ModeratorUsername
	publish(ctx, s.publisher, e)
}
