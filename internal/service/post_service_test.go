package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/event"
	"Agora/internal/pkg/pagination"
	"Agora/internal/pkg/util"
	"Agora/internal/repository"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostService(db *gorm.DB, publisher event.Publisher) PostService {
	return NewPostService(
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
		repository.NewUserRepository(db),
		publisher,
	)
}

type failingPostRepo struct {
	repository.PostRepo
}

func (failingPostRepo) CountVisibleByUser(context.Context, string) (int64, error) {
	return 0, errStore
}

func (failingPostRepo) ListFeedBefore(context.Context, time.Time, int) ([]*model.FeedPost, error) {
	return nil, errStore
}

func TestPostService_GetOwnPosts(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, testUser, "alice")
	seedPosts(t, db, testUser, 12, baseTime)
	svc := newPostService(db, nil)
	ctx := context.Background()

	res, err := svc.GetOwnPosts(ctx, testUser, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, "Posts fetched successfully", res.Message)
	assert.Len(t, res.Data, 2)
	assert.Equal(t, pagination.OffsetMeta{TotalItems: 12, TotalPages: 2, CurrentPage: 2}, res.Metadata)

	res, err = svc.GetOwnPosts(ctx, testUser, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, 2, res.Metadata.TotalPages)

	res, err = svc.GetOwnPosts(ctx, otherUser, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, pagination.OffsetMeta{TotalItems: 0, TotalPages: 0, CurrentPage: 1}, res.Metadata)
}

func TestPostService_GetUserPostsRemaining(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, otherUser, "bob")
	seedPosts(t, db, otherUser, 15, baseTime)
	svc := newPostService(db, nil)

	res, err := svc.GetUserPosts(context.Background(), otherUser, baseTime, 10)
	require.NoError(t, err)
	assert.Len(t, res.Data, 10)
	assert.Equal(t, pagination.TimeMeta{RemainingItems: 5, RemainingPages: 1}, res.Metadata)

	cursor := res.Data[len(res.Data)-1].CreatedAt
	res, err = svc.GetUserPosts(context.Background(), otherUser, cursor, 10)
	require.NoError(t, err)
	assert.Len(t, res.Data, 5)
	assert.Equal(t, pagination.TimeMeta{RemainingItems: 0, RemainingPages: 0}, res.Metadata)
}

func TestPostService_CursorWithZoneOffset(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, otherUser, "bob")
	seedPost(t, db, "zoned", otherUser, baseTime)
	svc := newPostService(db, nil)
	ctx := context.Background()

	// 13:00Z 写作 08:00-05:00
	cursor := baseTime.Add(time.Hour).In(time.FixedZone("EST", -5*3600))
	res, err := svc.GetUserPosts(ctx, otherUser, cursor, 10)
	require.NoError(t, err)
	assert.Len(t, res.Data, 1)
	assert.Equal(t, pagination.TimeMeta{RemainingItems: 0, RemainingPages: 0}, res.Metadata)

	feed, err := svc.GetFeed(ctx, cursor, 10)
	require.NoError(t, err)
	assert.Len(t, feed.Data, 1)

	// 与帖子同一时刻，游标是开区间
	same := baseTime.In(time.FixedZone("CST", 8*3600))
	res, err = svc.GetUserPosts(ctx, otherUser, same, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Data)

	feed, err = svc.GetFeed(ctx, same, 10)
	require.NoError(t, err)
	assert.Empty(t, feed.Data)
}

func TestPostService_GetFeed(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, testUser, "alice")
	seedUser(t, db, otherUser, "bob")
	seedPosts(t, db, testUser, 3, baseTime)
	seedPosts(t, db, otherUser, 3, baseTime.Add(-30*time.Second))
	svc := newPostService(db, nil)

	res, err := svc.GetFeed(context.Background(), baseTime, 4)
	require.NoError(t, err)
	assert.Equal(t, "Posts retrieved successfully", res.Message)
	require.Len(t, res.Data, 4)
	assert.Equal(t, "alice", res.Data[0].Username)
	assert.Equal(t, "bob", res.Data[1].Username)
	assert.Equal(t, pagination.TimeMeta{RemainingItems: 2, RemainingPages: 1}, res.Metadata)
}

func TestPostService_GetPostDetail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, testUser, "alice")
	seedPost(t, db, "p1", testUser, baseTime)
	for i := 0; i < 7; i++ {
		seedComment(t, db, fmt.Sprintf("c%d", i), "p1", testUser, baseTime.Add(time.Duration(i)*time.Minute))
	}
	seedReport(t, db, "r1", otherUser, "p1", consts.ReportStatusActive)
	svc := newPostService(db, nil)
	ctx := context.Background()

	res, err := svc.GetPostDetail(ctx, "p1", 2)
	require.NoError(t, err)
	assert.Equal(t, "Post fetched successfully", res.Message)
	assert.Equal(t, "alice", res.Post.Username)
	assert.EqualValues(t, 1, res.Post.ActiveReports)
	require.Len(t, res.Post.Comments, 2)
	assert.Equal(t, "c5", res.Post.Comments[0].ID)
	assert.Equal(t, pagination.OffsetMeta{TotalItems: 7, TotalPages: 2, CurrentPage: 2}, res.Post.CommentsMetadata)

	_, err = svc.GetPostDetail(ctx, "missing", 1)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_CreatePost(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, testUser, "alice")
	publisher := &fakePublisher{}
	svc := newPostService(db, publisher)
	ctx := context.Background()

	gif := "https://media.giphy.com/a.gif"
	size := int64(99)
	req := &dto.CreatePostDTO{
		Content:  util.Ptr("hello"),
		MediaDTO: dto.MediaDTO{MediaType: util.Ptr(consts.MediaTypeGIFURL), GifURL: &gif, FileSize: &size},
	}
	post, err := svc.CreatePost(ctx, testUser, req)
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.True(t, post.IsActive)
	assert.EqualValues(t, consts.PostStatusVisible, post.Status)
	require.NotNil(t, post.FileURL)
	assert.Equal(t, gif, *post.FileURL)
	assert.Nil(t, post.FileSize)
	assert.Equal(t, []string{event.PostCreated}, publisher.types())

	// 新帖子立即可见
	own, err := svc.GetOwnPosts(ctx, testUser, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, own.Metadata.TotalItems)

	_, err = svc.CreatePost(ctx, otherUser, &dto.CreatePostDTO{Content: util.Ptr("x")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostService_CreatePostPublishFailureIgnored(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, testUser, "alice")
	svc := newPostService(db, &fakePublisher{err: errStore})

	post, err := svc.CreatePost(context.Background(), testUser, &dto.CreatePostDTO{Content: util.Ptr("x")})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestPostService_DeletePost(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, testUser, "alice")
	seedPost(t, db, "p1", testUser, baseTime)
	seedReport(t, db, "r1", otherUser, "p1", consts.ReportStatusActive)
	svc := newPostService(db, nil)
	ctx := context.Background()

	_, err := svc.DeletePost(ctx, testUser, "missing")
	assert.ErrorIs(t, err, ErrDeleteNotFound)

	_, err = svc.DeletePost(ctx, otherUser, "p1")
	assert.ErrorIs(t, err, ErrPostNotOwned)

	res, err := svc.DeletePost(ctx, testUser, "p1")
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, dto.DeletedPost{PostID: "p1", Deleted: true}, res.Data)

	_, err = svc.DeletePost(ctx, testUser, "p1")
	assert.ErrorIs(t, err, ErrPostAlreadyDeleted)

	// 自删不改变举报状态
	var statuses []int8
	require.NoError(t, db.Table("reports").Where("id = ?", "r1").Pluck("status", &statuses).Error)
	assert.Equal(t, []int8{consts.ReportStatusActive}, statuses)
}

func TestPostService_StoreErrorsAreGeneric(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(
		failingPostRepo{repository.NewPostRepository(db)},
		repository.NewCommentRepository(db),
		repository.NewUserRepository(db),
		nil,
	)

	_, err := svc.GetOwnPosts(context.Background(), testUser, 1, 10)
	assert.ErrorIs(t, err, ErrFetchPosts)
	assert.NotErrorIs(t, err, errStore)

	_, err = svc.GetFeed(context.Background(), baseTime, 10)
	assert.ErrorIs(t, err, ErrFetchPosts)
}
