package util

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/consts"
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate *validator.Validate

// ErrEmptyUsername 用户名过滤参数存在但为空
var ErrEmptyUsername = errors.New("username must not be empty")

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(createPostValidation, dto.CreatePostDTO{})
	validate.RegisterStructValidation(createCommentValidation, dto.CreateCommentDTO{})
}

// ValidateDTO 校验 validate 标签，失败时返回 validator.ValidationErrors
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}

// DecodeStrict 解析 JSON 请求体，拒绝未知字段
func DecodeStrict(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// NormalizeUsername 去掉首尾空白，nil 表示不过滤
func NormalizeUsername(username *string) (string, error) {
	if username == nil {
		return "", nil
	}
	trimmed := strings.TrimSpace(*username)
	if trimmed == "" {
		return "", ErrEmptyUsername
	}
	return trimmed, nil
}

func createPostValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.CreatePostDTO)
	validateMedia(sl, req.Content, req.MediaDTO)
}

func createCommentValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.CreateCommentDTO)
	validateMedia(sl, req.Content, req.MediaDTO)
}

// validateMedia 内容和媒体的组合规则
func validateMedia(sl validator.StructLevel, content *string, m dto.MediaDTO) {
	hasContent := content != nil && strings.TrimSpace(*content) != ""
	hasFile := m.FileURL != nil && *m.FileURL != ""
	hasGif := m.GifURL != nil && *m.GifURL != ""

	if !hasContent && !hasFile && !hasGif {
		sl.ReportError(content, "content", "Content", "content_or_media", "")
		return
	}

	if m.MediaType == nil {
		if hasFile {
			sl.ReportError(m.MediaType, "mediaType", "MediaType", "required_with", "fileUrl")
		}
		if hasGif {
			sl.ReportError(m.GifURL, "gifUrl", "GifURL", "excluded_unless", "mediaType 2")
		}
		return
	}

	switch *m.MediaType {
	case consts.MediaTypeGIFURL:
		if !hasGif {
			sl.ReportError(m.GifURL, "gifUrl", "GifURL", "required_if", "mediaType 2")
		}
		if hasFile {
			sl.ReportError(m.FileURL, "fileUrl", "FileURL", "excluded_if", "mediaType 2")
		}
	case consts.MediaTypeImage, consts.MediaTypeGIF:
		if !hasFile {
			sl.ReportError(m.FileURL, "fileUrl", "FileURL", "required_if", "mediaType 0|1")
		}
		if hasGif {
			sl.ReportError(m.GifURL, "gifUrl", "GifURL", "excluded_unless", "mediaType 2")
		}
	}
}
