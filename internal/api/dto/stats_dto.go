package dto

import "Agora/internal/model"

// PostStatsQuery 日期格式 DD-MM-YYYY，结束日包含在内
type PostStatsQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	Period    string `form:"period,default=daily" binding:"oneof=daily weekly monthly"`
}

type PostStatsData struct {
	Range string                 `json:"range"`
	Total int64                  `json:"total"`
	Data  []model.PostStatBucket `json:"data"`
}

type PostStatsDTO struct {
	Status string        `json:"status"`
	Data   PostStatsData `json:"data"`
}
