package repository

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ReportRepo interface {
	GetActiveReport(ctx context.Context, reporterID, postID string) (*model.Report, error)
	CreateReport(ctx context.Context, report *model.Report) error
}

type ReportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepo {
	return &ReportRepoImpl{db: db}
}

// GetActiveReport 同一举报人对同一帖子的有效举报
func (s *ReportRepoImpl) GetActiveReport(ctx context.Context, reporterID, postID string) (*model.Report, error) {
	var report model.Report
	err := s.db.WithContext(ctx).
		Where("reporter_id = ? AND reported_content_id = ? AND status = ?", reporterID, postID, consts.ReportStatusActive).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (s *ReportRepoImpl) CreateReport(ctx context.Context, report *model.Report) error {
	return s.db.WithContext(ctx).Create(report).Error
}
