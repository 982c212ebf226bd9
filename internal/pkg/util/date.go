package util

import "time"

// DateLayout DD-MM-YYYY
const DateLayout = "02-01-2006"

// ParseDate 按 DD-MM-YYYY 解析 UTC 日期，非法日历日期（如 31-02）返回错误
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Ptr 返回值的指针
func Ptr[T any](v T) *T {
	return &v
}
