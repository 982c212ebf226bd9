package cron

import (
	"context"
	log "log/slog"
)

// InitCron 注册并启动所有任务，ctx 结束后停止引擎
func InitCron(ctx context.Context, mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()

	<-ctx.Done()
	<-mgr.Stop().Done()
	return nil
}
