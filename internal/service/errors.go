package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid       = errors.New("Validation error")
	ErrUserNotFound       = errors.New("User not found")
	ErrUserSuspended      = errors.New("User account is suspended")
	ErrPostNotFound       = errors.New("Post not found")
	ErrDeleteNotFound     = errors.New("Post not found.")
	ErrPostNotOwned       = errors.New("You are not authorized to delete this post.")
	ErrPostAlreadyDeleted = errors.New("This post is already deleted.")
	ErrReportDuplicate    = errors.New("You have already reported this post")
	UnauthorizedError     = errors.New("Unauthorized")
	ForbiddenError        = errors.New("Access denied: You do not have permission to perform this action")

	ErrFetchPosts         = errors.New("Failed to fetch posts")
	ErrFetchPost          = errors.New("Failed to fetch post")
	ErrFetchComments      = errors.New("Failed to fetch comments")
	ErrFetchReportedPosts = errors.New("Failed to fetch reported posts.")
	ErrFetchStats         = errors.New("Failed to fetch post stats")
	ErrCreatePost         = errors.New("Failed to create post")
	ErrCreateComment      = errors.New("Failed to create comment")
	ErrCreateReport       = errors.New("Failed to create report")
	ErrDeletePost         = errors.New("Failed to delete post")
	ErrDeactivatePost     = errors.New("Failed to deactivate post")
	ErrRestorePost        = errors.New("Failed to restore post")
	UnExpectedError       = errors.New("Internal server error")
)

// ErrorMap 业务错误到 HTTP 状态码
var ErrorMap = map[error]int{
	ErrParamInvalid:       http.StatusBadRequest,
	ErrUserNotFound:       http.StatusNotFound,
	ErrUserSuspended:      http.StatusForbidden,
	ErrPostNotFound:       http.StatusNotFound,
	ErrDeleteNotFound:     http.StatusNotFound,
	ErrPostNotOwned:       http.StatusForbidden,
	ErrPostAlreadyDeleted: http.StatusBadRequest,
	ErrReportDuplicate:    http.StatusConflict,
	UnauthorizedError:     http.StatusUnauthorized,
	ForbiddenError:        http.StatusForbidden,
	ErrFetchPosts:         http.StatusInternalServerError,
	ErrFetchPost:          http.StatusInternalServerError,
	ErrFetchComments:      http.StatusInternalServerError,
	ErrFetchReportedPosts: http.StatusInternalServerError,
	ErrFetchStats:         http.StatusInternalServerError,
	ErrCreatePost:         http.StatusInternalServerError,
	ErrCreateComment:      http.StatusInternalServerError,
	ErrCreateReport:       http.StatusInternalServerError,
	ErrDeletePost:         http.StatusInternalServerError,
	ErrDeactivatePost:     http.StatusInternalServerError,
	ErrRestorePost:        http.StatusInternalServerError,
	UnExpectedError:       http.StatusInternalServerError,
}

// StatusOf 按 errors.Is 查找状态码，未知错误返回 false
func StatusOf(err error) (int, bool) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}
