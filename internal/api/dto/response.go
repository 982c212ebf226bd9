package dto

// Response 错误返回结构
type Response struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// MessageDTO 只带提示信息的返回
type MessageDTO struct {
	Message string `json:"message"`
}
