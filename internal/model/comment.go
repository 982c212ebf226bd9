package model

import (
	"time"
)

type Comment struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PostID    string    `gorm:"type:varchar(36);not null;index:idx_comments_post_created,priority:1" json:"post_id"`
	UserID    string    `gorm:"type:varchar(36);not null" json:"user_id"`
	Content   *string   `gorm:"type:varchar(300)" json:"content"`
	FileURL   *string   `gorm:"type:varchar(512)" json:"file_url"`
	FileSize  *int64    `json:"file_size"`
	MediaType *int8     `json:"media_type"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	IsEdited  bool      `gorm:"not null" json:"is_edited"`
	Status    int8      `gorm:"not null" json:"status"`
	CreatedAt time.Time `gorm:"not null;index:idx_comments_post_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentWithAuthor 评论及作者信息
type CommentWithAuthor struct {
	Comment
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profile_picture"`
}
