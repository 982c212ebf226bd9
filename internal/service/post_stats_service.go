package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/util"
	"Agora/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"
)

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type PostStatsService interface {
	GetPostStats(ctx context.Context, startDate, endDate, period string) (*dto.PostStatsDTO, error)
}

type postStatsServiceImpl struct {
	statsRepo repository.PostStatsRepo
}

func NewPostStatsService(statsRepo repository.PostStatsRepo) PostStatsService {
	return &postStatsServiceImpl{statsRepo: statsRepo}
}

// GetPostStats 统计 [startDate, endDate] 内未下架帖子的数量，按周期分桶
func (s *postStatsServiceImpl) GetPostStats(ctx context.Context, startDate, endDate, period string) (*dto.PostStatsDTO, error) {
	start, err := util.ParseDate(startDate)
	if err != nil {
		return nil, ErrParamInvalid
	}
	end, err := util.ParseDate(endDate)
	if err != nil {
		return nil, ErrParamInvalid
	}
	if end.Before(start) {
		return nil, ErrParamInvalid
	}
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
	default:
		return nil, ErrParamInvalid
	}

	createdAt, err := s.statsRepo.ListActiveCreatedAt(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		log.ErrorContext(ctx, "list post created_at error", "err", err)
		return nil, ErrFetchStats
	}

	buckets := bucketPostStats(createdAt, period)
	var total int64
	for _, b := range buckets {
		total += b.Count
	}

	return &dto.PostStatsDTO{
		Status: "success",
		Data: dto.PostStatsData{
			Range: period,
			Total: total,
			Data:  buckets,
		},
	}, nil
}

// bucketPostStats 只输出有数据的桶，按桶起始日期升序
func bucketPostStats(createdAt []time.Time, period string) []model.PostStatBucket {
	counts := make(map[time.Time]int64)
	for _, t := range createdAt {
		counts[bucketStart(t.UTC(), period)]++
	}

	starts := make([]time.Time, 0, len(counts))
	for start := range counts {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	buckets := make([]model.PostStatBucket, 0, len(starts))
	for _, start := range starts {
		buckets = append(buckets, model.PostStatBucket{
			Label: bucketLabel(start, period),
			Count: counts[start],
		})
	}
	return buckets
}

func bucketStart(t time.Time, period string) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch period {
	case PeriodWeekly:
		// 周一为一周开始
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case PeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

func bucketLabel(start time.Time, period string) string {
	switch period {
	case PeriodWeekly:
		return util.FormatDate(start) + " al " + util.FormatDate(start.AddDate(0, 0, 6))
	case PeriodMonthly:
		return start.Format("01-2006")
	default:
		return util.FormatDate(start)
	}
}
