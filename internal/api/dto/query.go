package dto

import "time"

// PageQuery 偏移分页参数
type PageQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=20"`
}

// CursorQuery 时间游标分页参数，只返回 Time 之前的数据
type CursorQuery struct {
	Limit int       `form:"limit,default=10" binding:"min=1,max=20"`
	Time  time.Time `form:"time" binding:"required"`
}

type PostIDUri struct {
	PostID string `uri:"postId" binding:"required,uuid"`
}

type UserIDUri struct {
	UUID string `uri:"uuid" binding:"required,uuid"`
}
