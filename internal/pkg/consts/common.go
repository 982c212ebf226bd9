package consts

// 帖子 / 评论状态
const (
	PostStatusPending int8 = 0
	PostStatusVisible int8 = 1
)

// 举报状态
const (
	ReportStatusResolved int8 = 0
	ReportStatusActive   int8 = 1
)

// 媒体类型
const (
	MediaTypeImage  int8 = 0
	MediaTypeGIF    int8 = 1
	MediaTypeGIFURL int8 = 2
)

const (
	ContentTypePost     = "post"
	DefaultReportReason = "Contenido inapropiado"
)

// CommentPageSize 评论固定分页大小
const CommentPageSize = 5

// 分页参数
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 20
)

// 角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
