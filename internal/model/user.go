package model

import (
	"time"
)

type User struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_username" json:"username"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	ProfilePicture *string   `gorm:"type:varchar(512)" json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserSuspension 封禁记录，生效区间为 [StartDate, EndDate)
type UserSuspension struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index:idx_suspensions_user" json:"user_id"`
	Reason    string    `gorm:"type:varchar(500)" json:"reason"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserSuspension) TableName() string {
	return "user_suspensions"
}
