package response

import (
	"Agora/internal/api/dto"
	"Agora/internal/service"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"strconv"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = http.StatusOK
	Created             = http.StatusCreated
	BadRequest          = http.StatusBadRequest
	Unauthorized        = http.StatusUnauthorized
	Forbidden           = http.StatusForbidden
	NotFound            = http.StatusNotFound
	Conflict            = http.StatusConflict
	InternalServerError = http.StatusInternalServerError
)

// Success 200，body 原样输出
func Success(c *gin.Context, body interface{}) {
	c.JSON(Ok, body)
}

// CreatedWith 201
func CreatedWith(c *gin.Context, body interface{}) {
	c.JSON(Created, body)
}

// Fail 失败返回封装，code 同时作为 HTTP 状态码
func Fail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, dto.Response{
		Code:    code,
		Message: message,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(BadRequest, dto.Response{
			Code:    BadRequest,
			Message: service.ErrParamInvalid.Error(),
			Errors:  fieldErrors(ve),
		})
		return
	}

	if isDecodeError(err) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	code, ok := service.StatusOf(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
		Fail(c, InternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, code, err.Error())
}

// isDecodeError 请求体或查询参数无法解析
func isDecodeError(err error) bool {
	var unmarshalTypeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	var timeParseError *time.ParseError
	var numError *strconv.NumError
	return errors.As(err, &unmarshalTypeError) ||
		errors.As(err, &syntaxError) ||
		errors.As(err, &timeParseError) ||
		errors.As(err, &numError)
}

func fieldErrors(ve validator.ValidationErrors) []dto.FieldError {
	out := make([]dto.FieldError, 0, len(ve))
	for _, fe := range ve {
		field := lowerFirst(fe.Field())
		msg := fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s failed on the '%s=%s' rule", field, fe.Tag(), fe.Param())
		}
		out = append(out, dto.FieldError{Field: field, Rule: fe.Tag(), Message: msg})
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
