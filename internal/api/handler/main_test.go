package handler

import (
	"Agora/internal/api/dto"
	"Agora/internal/api/middleware"
	"Agora/internal/model"
	"Agora/internal/service"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	testUser = "0b9c2f3e-7a1d-4c55-9e0f-6a2b8d4c1e01"
	testPost = "7e6d5c4b-3a29-4180-9f7e-6d5c4b3a2918"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newEngine 跳过 JWT，直接注入用户
func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, testUser)
		c.Next()
	})
	return r
}

func request(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type fakePostService struct {
	ownPage, ownLimit int
	before            time.Time
	userID            string
	detailPage        int
	created           *dto.CreatePostDTO
	err               error
}

func (f *fakePostService) GetOwnPosts(_ context.Context, userID string, page, limit int) (*dto.PostsPageDTO, error) {
	f.userID, f.ownPage, f.ownLimit = userID, page, limit
	return &dto.PostsPageDTO{Message: "Posts fetched successfully", Data: []*model.Post{}}, f.err
}

func (f *fakePostService) GetUserPosts(_ context.Context, userID string, before time.Time, limit int) (*dto.PostsCursorDTO, error) {
	f.userID, f.before, f.ownLimit = userID, before, limit
	return &dto.PostsCursorDTO{Message: "Posts fetched successfully"}, f.err
}

func (f *fakePostService) GetFeed(_ context.Context, before time.Time, limit int) (*dto.FeedDTO, error) {
	f.before, f.ownLimit = before, limit
	return &dto.FeedDTO{Message: "Posts retrieved successfully"}, f.err
}

func (f *fakePostService) GetPostDetail(_ context.Context, postID string, commentPage int) (*dto.PostDetailDTO, error) {
	f.detailPage = commentPage
	if f.err != nil {
		return nil, f.err
	}
	return &dto.PostDetailDTO{Message: "Post fetched successfully"}, nil
}

func (f *fakePostService) CreatePost(_ context.Context, userID string, req *dto.CreatePostDTO) (*model.Post, error) {
	f.userID, f.created = userID, req
	if f.err != nil {
		return nil, f.err
	}
	return &model.Post{ID: testPost, UserID: userID, Content: req.Content}, nil
}

func (f *fakePostService) DeletePost(_ context.Context, userID, postID string) (*dto.DeletePostDTO, error) {
	f.userID = userID
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DeletePostDTO{Status: "success", Message: "Post successfully deleted.", Data: dto.DeletedPost{PostID: postID, Deleted: true}}, nil
}

type fakeCommentService struct {
	index int
	since time.Time
	err   error
}

func (f *fakeCommentService) GetComments(_ context.Context, _ string, startTime time.Time, index int) (*dto.CommentsPageDTO, error) {
	f.since, f.index = startTime, index
	if f.err != nil {
		return nil, f.err
	}
	return &dto.CommentsPageDTO{Message: "Comments fetched successfully"}, nil
}

func (f *fakeCommentService) CreateComment(_ context.Context, userID string, req *dto.CreateCommentDTO) (*model.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Comment{ID: "c1", PostID: req.PostID, UserID: userID}, nil
}

type fakeReportService struct {
	req *dto.CreateReportDTO
	err error
}

func (f *fakeReportService) CreateReport(_ context.Context, _ string, req *dto.CreateReportDTO) error {
	f.req = req
	return f.err
}

type fakeReportedService struct {
	filter service.ReportedPostsFilter
	err    error
}

func (f *fakeReportedService) GetReportedPosts(_ context.Context, filter service.ReportedPostsFilter) (*dto.ReportedPostsDTO, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ReportedPostsDTO{
		Message:  "Reported posts fetched successfully",
		Posts:    []*model.ReportedPost{},
		Metadata: dto.ReportedPostsMeta{CurrentPage: filter.Page},
	}, nil
}

func (f *fakeReportedService) GetAllReportedPosts(context.Context) (*dto.ReportedPostsAllDTO, error) {
	return &dto.ReportedPostsAllDTO{Message: "Reported posts fetched successfully", Posts: []*model.ReportedPost{}}, f.err
}

func (f *fakeReportedService) RefreshCounts(context.Context) (int64, int64, error) {
	return 0, 0, f.err
}

type fakeModerationService struct {
	moderatorID string
	req         *dto.ModerationDTO
	err         error
}

func (f *fakeModerationService) DeactivatePost(_ context.Context, moderatorID string, req *dto.ModerationDTO) (*dto.ModerationResultDTO, error) {
	f.moderatorID, f.req = moderatorID, req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ModerationResultDTO{Success: true, Message: "Post and its reports have been successfully deactivated"}, nil
}

func (f *fakeModerationService) RestorePost(_ context.Context, moderatorID string, req *dto.ModerationDTO) (*dto.ModerationResultDTO, error) {
	f.moderatorID, f.req = moderatorID, req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ModerationResultDTO{Success: true, Message: "Post has been successfully restored"}, nil
}

type fakeStatsService struct {
	start, end, period string
	err                error
}

func (f *fakeStatsService) GetPostStats(_ context.Context, start, end, period string) (*dto.PostStatsDTO, error) {
	f.start, f.end, f.period = start, end, period
	if f.err != nil {
		return nil, f.err
	}
	return &dto.PostStatsDTO{Status: "success", Data: dto.PostStatsData{Range: period}}, nil
}
