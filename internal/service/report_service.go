package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/event"
	"Agora/internal/pkg/metrics"
	"Agora/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

type ReportService interface {
	CreateReport(ctx context.Context, reporterID string, req *dto.CreateReportDTO) error
}

type reportServiceImpl struct {
	reportRepo repository.ReportRepo
	postRepo   repository.PostRepo
	cache      Cache
	publisher  event.Publisher
}

func NewReportService(reportRepo repository.ReportRepo, postRepo repository.PostRepo, cache Cache, publisher event.Publisher) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
		postRepo:   postRepo,
		cache:      cache,
		publisher:  publisher,
	}
}

// CreateReport 同一举报人对同一帖子只能有一条有效举报
func (s *reportServiceImpl) CreateReport(ctx context.Context, reporterID string, req *dto.CreateReportDTO) error {
	req.Normalize()

	post, err := s.postRepo.GetPost(ctx, req.PostID)
	if err != nil {
		log.ErrorContext(ctx, "get post error", "post_id", req.PostID, "err", err)
		return ErrCreateReport
	}
	if post == nil {
		return ErrPostNotFound
	}

	// 同一举报人的并发提交串行化，检查与插入之间不会插队
	lockKey := consts.ReportLock + reporterID + ":" + req.PostID
	lockValue := uuid.NewString()
	ok, err := s.cache.TryLock(ctx, lockKey, lockValue, consts.ReportLockTTL, 0)
	if err != nil {
		log.ErrorContext(ctx, "acquire report lock error", "err", err)
		return ErrCreateReport
	}
	if !ok {
		return ErrReportDuplicate
	}
	defer s.cache.UnLock(context.WithoutCancel(ctx), lockKey, lockValue)

	existing, err := s.reportRepo.GetActiveReport(ctx, reporterID, req.PostID)
	if err != nil {
		log.ErrorContext(ctx, "get active report error", "err", err)
		return ErrCreateReport
	}
	if existing != nil {
		return ErrReportDuplicate
	}

	report := &model.Report{
		ID:                uuid.NewString(),
		ReporterID:        reporterID,
		ReportedContentID: req.PostID,
		ContentType:       req.ContentType,
		Reason:            req.Reason,
		Status:            consts.ReportStatusActive,
	}
	if err = s.reportRepo.CreateReport(ctx, report); err != nil {
		log.ErrorContext(ctx, "create report error", "err", err)
		return ErrCreateReport
	}

	if err = s.cache.DeleteKey(ctx, consts.ReportedPostsCountKey); err != nil {
		log.WarnContext(ctx, "invalidate reported posts count error", "err", err)
	}
	metrics.ReportsCreated.Inc()

	e := event.New(event.ReportCreated, req.PostID, reporterID)
	e.Reason = req.Reason
	publish(ctx, s.publisher, e)
	return nil
}
