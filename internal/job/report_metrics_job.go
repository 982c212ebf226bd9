package job

import (
	"Agora/internal/pkg/logger"
	"Agora/internal/pkg/metrics"
	"Agora/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const reportMetricsTimeout = 30 * time.Second

// ReportMetricsJob 定时统计被举报帖子数和有效举报数，并刷新计数缓存
type ReportMetricsJob struct {
	reportedSvc service.ReportedPostService
}

func NewReportMetricsJob(reportedSvc service.ReportedPostService) *ReportMetricsJob {
	return &ReportMetricsJob{
		reportedSvc: reportedSvc,
	}
}

func (s *ReportMetricsJob) Run() {
	ctx := logger.WithTrace(context.Background(), "job-report-"+uuid.NewString())
	ctx, cancel := context.WithTimeout(ctx, reportMetricsTimeout)
	defer cancel()

	reported, active, err := s.reportedSvc.RefreshCounts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "refresh report counts error", "err", err)
		return
	}

	metrics.ReportedPosts.Set(float64(reported))
	metrics.ActiveReports.Set(float64(active))
	log.InfoContext(ctx, "report metrics refreshed", "reported_posts", reported, "active_reports", active)
}
