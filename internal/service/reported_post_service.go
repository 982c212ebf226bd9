package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/pagination"
	"Agora/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ReportedPostsFilter 已校验的查询条件
type ReportedPostsFilter struct {
	Page           int
	Limit          int
	OrderBy        string
	OrderDirection string
	Username       string
}

type ReportedPostService interface {
	GetReportedPosts(ctx context.Context, filter ReportedPostsFilter) (*dto.ReportedPostsDTO, error)
	GetAllReportedPosts(ctx context.Context) (*dto.ReportedPostsAllDTO, error)
	// RefreshCounts 重新统计被举报帖子数和有效举报数，并刷新无过滤条件的计数缓存
	RefreshCounts(ctx context.Context) (reportedPosts int64, activeReports int64, err error)
}

type reportedPostServiceImpl struct {
	reportedRepo repository.ReportedPostRepo
	cache        Cache
}

func NewReportedPostService(reportedRepo repository.ReportedPostRepo, cache Cache) ReportedPostService {
	return &reportedPostServiceImpl{
		reportedRepo: reportedRepo,
		cache:        cache,
	}
}

func (s *reportedPostServiceImpl) GetReportedPosts(ctx context.Context, filter ReportedPostsFilter) (*dto.ReportedPostsDTO, error) {
	q := repository.ReportedPostQuery{
		Limit:          filter.Limit,
		Offset:         pagination.Offset(filter.Page, filter.Limit),
		OrderBy:        filter.OrderBy,
		OrderDirection: filter.OrderDirection,
		Username:       filter.Username,
	}
	if _, err := q.OrderClause(); err != nil {
		return nil, ErrParamInvalid
	}

	var (
		total int64
		posts []*model.ReportedPost
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.count(gCtx, filter.Username)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.reportedRepo.ListPaginated(gCtx, q)
		if errors.Is(err, repository.ErrNoReportedPosts) {
			posts = []*model.ReportedPost{}
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "fetch reported posts error", "err", err)
		return nil, ErrFetchReportedPosts
	}

	return &dto.ReportedPostsDTO{
		Message: "Reported posts fetched successfully",
		Posts:   posts,
		Metadata: dto.ReportedPostsMeta{
			TotalPosts:  total,
			TotalPages:  pagination.TotalPages(total, filter.Limit),
			CurrentPage: filter.Page,
		},
	}, nil
}

func (s *reportedPostServiceImpl) GetAllReportedPosts(ctx context.Context) (*dto.ReportedPostsAllDTO, error) {
	posts, err := s.reportedRepo.ListAll(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNoReportedPosts) {
			log.ErrorContext(ctx, "list all reported posts error", "err", err)
			return nil, ErrFetchReportedPosts
		}
		posts = []*model.ReportedPost{}
	}
	return &dto.ReportedPostsAllDTO{
		Message: "Reported posts fetched successfully",
		Posts:   posts,
	}, nil
}

func (s *reportedPostServiceImpl) RefreshCounts(ctx context.Context) (int64, int64, error) {
	reported, err := s.reportedRepo.Count(ctx, "")
	if err != nil {
		return 0, 0, err
	}
	active, err := s.reportedRepo.CountActiveReports(ctx)
	if err != nil {
		return 0, 0, err
	}
	if err = s.cache.HSetWithExpiration(ctx, consts.ReportedPostsCountKey, "", reported, consts.ReportedPostsCountTTL); err != nil {
		log.WarnContext(ctx, "cache reported posts count error", "err", err)
	}
	return reported, active, nil
}

// count 先读缓存，缓存不可用时直接查库
func (s *reportedPostServiceImpl) count(ctx context.Context, username string) (int64, error) {
	field := strings.ToLower(username)
	cached, ok, err := s.cache.HGetInt64(ctx, consts.ReportedPostsCountKey, field)
	if err != nil {
		log.WarnContext(ctx, "read reported posts count cache error", "err", err)
	} else if ok {
		return cached, nil
	}

	total, err := s.reportedRepo.Count(ctx, username)
	if err != nil {
		return 0, err
	}
	if err = s.cache.HSetWithExpiration(ctx, consts.ReportedPostsCountKey, field, total, consts.ReportedPostsCountTTL); err != nil {
		log.WarnContext(ctx, "cache reported posts count error", "err", err)
	}
	return total, nil
}
