package repository

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接独立，必须只用一个连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, username string) *model.User {
	t.Helper()
	u := &model.User{ID: id, Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(u).Error)
	return u
}

type postOpt func(*model.Post)

func inactive() postOpt { return func(p *model.Post) { p.IsActive = false } }
func pending() postOpt  { return func(p *model.Post) { p.Status = consts.PostStatusPending } }

func seedPost(t *testing.T, db *gorm.DB, id, userID string, createdAt time.Time, opts ...postOpt) *model.Post {
	t.Helper()
	content := "post " + id
	p := &model.Post{
		ID:        id,
		UserID:    userID,
		Content:   &content,
		IsActive:  true,
		Status:    consts.PostStatusVisible,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	for _, opt := range opts {
		opt(p)
	}
	require.NoError(t, db.Create(p).Error)
	// bool 零值写入后再显式更新，避免依赖列默认值
	if !p.IsActive {
		require.NoError(t, db.Model(&model.Post{}).Where("id = ?", id).Update("is_active", false).Error)
	}
	return p
}

// seedPosts 生成 n 条帖子，第 i 条比 start 早 i+1 分钟
func seedPosts(t *testing.T, db *gorm.DB, userID string, n int, start time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		seedPost(t, db, fmt.Sprintf("%s-p%02d", userID, i), userID, start.Add(-time.Duration(i+1)*time.Minute))
	}
}

func seedReport(t *testing.T, db *gorm.DB, id, reporterID, postID string, status int8) *model.Report {
	t.Helper()
	r := &model.Report{
		ID:                id,
		ReporterID:        reporterID,
		ReportedContentID: postID,
		ContentType:       consts.ContentTypePost,
		Reason:            consts.DefaultReportReason,
		Status:            status,
		CreatedAt:         baseTime,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedComment(t *testing.T, db *gorm.DB, id, postID, userID string, createdAt time.Time, active bool) {
	t.Helper()
	c := &model.Comment{
		ID:        id,
		PostID:    postID,
		UserID:    userID,
		IsActive:  true,
		Status:    consts.PostStatusVisible,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(c).Error)
	if !active {
		require.NoError(t, db.Model(&model.Comment{}).Where("id = ?", id).Update("is_active", false).Error)
	}
}

func loadPost(t *testing.T, db *gorm.DB, id string) model.Post {
	t.Helper()
	var p model.Post
	require.NoError(t, db.Where("id = ?", id).First(&p).Error)
	return p
}

func loadReports(t *testing.T, db *gorm.DB, postID string) []model.Report {
	t.Helper()
	var reports []model.Report
	require.NoError(t, db.Where("reported_content_id = ?", postID).Order("id").Find(&reports).Error)
	return reports
}
