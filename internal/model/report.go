package model

import (
	"time"
)

// Report 举报。status 1 为有效举报，0 为已处理（随帖子一同下架）
type Report struct {
	ID                string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ReporterID        string    `gorm:"type:varchar(36);not null;index:idx_reports_reporter_content,priority:1" json:"reporter_id"`
	ReportedContentID string    `gorm:"type:varchar(36);not null;index:idx_reports_reporter_content,priority:2;index:idx_reports_content" json:"reported_content_id"`
	ContentType       string    `gorm:"type:varchar(20);not null" json:"content_type"`
	Reason            string    `gorm:"type:varchar(500);not null" json:"reason"`
	ResolverID        *string   `gorm:"type:varchar(36)" json:"resolver_id"`
	Status            int8      `gorm:"not null" json:"status"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportedPost 被举报帖子的聚合行，ActiveReports 恒不大于 TotalReports
type ReportedPost struct {
	Post
	Username      string `json:"username"`
	Email         string `json:"email"`
	ActiveReports int64  `json:"active_reports"`
	TotalReports  int64  `json:"total_reports"`
}
