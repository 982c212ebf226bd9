package pagination

import (
	"math"
)

// OffsetMeta 偏移分页元数据
type OffsetMeta struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// TimeMeta 时间游标分页元数据，只描述游标之后还剩多少
type TimeMeta struct {
	RemainingItems int64 `json:"remainingItems"`
	RemainingPages int   `json:"remainingPages"`
}

// Window 偏移窗口
type Window struct {
	Limit  int
	Offset int
}

// Offset page 从 1 开始
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// NewWindow 由页码构造窗口
func NewWindow(page, limit int) Window {
	return Window{Limit: limit, Offset: Offset(page, limit)}
}

// IndexWindow index 从 0 开始
func IndexWindow(index, limit int) Window {
	return Window{Limit: limit, Offset: index * limit}
}

// TotalPages ceil(total / limit)
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

func NewOffsetMeta(total int64, page, limit int) OffsetMeta {
	return OffsetMeta{
		TotalItems:  total,
		TotalPages:  TotalPages(total, limit),
		CurrentPage: page,
	}
}

// NewTimeMeta countBefore 与 returned 来自两次非原子查询，差值可能为负，此处截断为 0
func NewTimeMeta(countBefore int64, returned, limit int) TimeMeta {
	remaining := countBefore - int64(returned)
	if remaining < 0 {
		remaining = 0
	}
	return TimeMeta{
		RemainingItems: remaining,
		RemainingPages: TotalPages(remaining, limit),
	}
}
