package model

import (
	"time"
)

// Post 帖子。is_active 为软删除标记，status 1 表示已发布
type Post struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index:idx_posts_user_created,priority:1" json:"user_id"`
	Content   *string   `gorm:"type:varchar(300)" json:"content"`
	FileURL   *string   `gorm:"type:varchar(512)" json:"file_url"`
	FileSize  *int64    `json:"file_size"`
	MediaType *int8     `json:"media_type"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	IsEdited  bool      `gorm:"not null" json:"is_edited"`
	Status    int8      `gorm:"not null" json:"status"`
	CreatedAt time.Time `gorm:"not null;index:idx_posts_user_created,priority:2;index:idx_posts_created" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// FeedPost 信息流中的帖子，附带作者信息和评论数
type FeedPost struct {
	Post
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profile_picture"`
	CommentsCount  int64   `json:"comments_count"`
}

// PostDetail 帖子详情，附带作者和举报统计
type PostDetail struct {
	Post
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profile_picture"`
	TotalComments  int64   `json:"total_comments"`
	ActiveReports  int64   `json:"active_reports"`
	TotalReports   int64   `json:"total_reports"`
}
