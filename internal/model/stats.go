package model

// PostStatBucket 某个时间桶内的发帖数
type PostStatBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// All 需要迁移的表
func All() []any {
	return []any{&User{}, &Post{}, &Comment{}, &Report{}, &UserSuspension{}}
}
