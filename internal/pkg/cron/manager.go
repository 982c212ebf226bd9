package cron

import (
	"Agora/internal/job"
	"context"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	reportMetricsJob *job.ReportMetricsJob
	reportMetrics    string
}

// NewCronManager spec 使用带秒的六段格式
func NewCronManager(reportMetrics string, reportMetricsJob *job.ReportMetricsJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		reportMetricsJob: reportMetricsJob,
		reportMetrics:    reportMetrics,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.reportMetrics, s.reportMetricsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() context.Context {
	log.Info("Cron 定时任务引擎停止")
	return s.engine.Stop()
}
