package service

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/event"
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	baseTime  = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	errStore  = errors.New("store unavailable")
	testUser  = "0b9c2f3e-7a1d-4c55-9e0f-6a2b8d4c1e01"
	otherUser = "5d7e9a1b-3c2f-4e8d-a6b0-9f1c2d3e4a02"
	moderator = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c03"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, username string) {
	t.Helper()
	require.NoError(t, db.Create(&model.User{ID: id, Username: username, Email: username + "@example.com"}).Error)
}

func seedPost(t *testing.T, db *gorm.DB, id, userID string, createdAt time.Time) {
	t.Helper()
	content := "post " + id
	require.NoError(t, db.Create(&model.Post{
		ID:        id,
		UserID:    userID,
		Content:   &content,
		IsActive:  true,
		Status:    consts.PostStatusVisible,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}).Error)
}

func seedPosts(t *testing.T, db *gorm.DB, userID string, n int, start time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		seedPost(t, db, fmt.Sprintf("%s-%02d", userID[:8], i), userID, start.Add(-time.Duration(i+1)*time.Minute))
	}
}

func seedReport(t *testing.T, db *gorm.DB, id, reporterID, postID string, status int8) {
	t.Helper()
	require.NoError(t, db.Create(&model.Report{
		ID:                id,
		ReporterID:        reporterID,
		ReportedContentID: postID,
		ContentType:       consts.ContentTypePost,
		Reason:            consts.DefaultReportReason,
		Status:            status,
		CreatedAt:         baseTime,
	}).Error)
}

func seedComment(t *testing.T, db *gorm.DB, id, postID, userID string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.Comment{
		ID:        id,
		PostID:    postID,
		UserID:    userID,
		IsActive:  true,
		Status:    consts.PostStatusVisible,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}).Error)
}

// fakeCache 内存实现的 Cache
type fakeCache struct {
	mu      sync.Mutex
	values  map[string]string
	hashes  map[string]map[string]int64
	locks   map[string]string
	err     error
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		values: map[string]string{},
		hashes: map[string]map[string]int64{},
		locks:  map[string]string{},
	}
}

func (f *fakeCache) GetValue(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.values[key], nil
}

func (f *fakeCache) SetWithExpiration(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.values[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeCache) TryLock(_ context.Context, key string, value string, _ time.Duration, _ int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if _, held := f.locks[key]; held {
		return false, nil
	}
	f.locks[key] = value
	return true, nil
}

func (f *fakeCache) UnLock(_ context.Context, key string, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locks[key] == value {
		delete(f.locks, key)
	}
}

func (f *fakeCache) HGetInt64(_ context.Context, key, field string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, false, f.err
	}
	v, ok := f.hashes[key][field]
	return v, ok, nil
}

func (f *fakeCache) HSetWithExpiration(_ context.Context, key, field string, value int64, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.hashes[key] == nil {
		f.hashes[key] = map[string]int64{}
	}
	f.hashes[key][field] = value
	return nil
}

func (f *fakeCache) DeleteKey(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.deletes = append(f.deletes, key)
	delete(f.values, key)
	delete(f.hashes, key)
	return nil
}

func (f *fakeCache) hashValue(key, field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.hashes[key][field]
	if !ok {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

// fakePublisher 记录发布的事件
type fakePublisher struct {
	mu     sync.Mutex
	events []*event.Event
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, e *event.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func (f *fakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}
