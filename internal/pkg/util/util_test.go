package util

import (
	"Agora/internal/api/dto"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failedFields(t *testing.T, err error) []string {
	t.Helper()
	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve), "expected validation errors, got %v", err)
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}
	return fields
}

func TestValidateCreatePost(t *testing.T) {
	file := "https://cdn.example.com/a.png"
	gif := "https://media.giphy.com/a.gif"

	cases := []struct {
		name   string
		req    dto.CreatePostDTO
		fields []string
	}{
		{"text only", dto.CreatePostDTO{Content: Ptr("hello")}, nil},
		{"image", dto.CreatePostDTO{MediaDTO: dto.MediaDTO{MediaType: Ptr[int8](0), FileURL: &file, FileSize: Ptr[int64](10)}}, nil},
		{"gif by url", dto.CreatePostDTO{MediaDTO: dto.MediaDTO{MediaType: Ptr[int8](2), GifURL: &gif}}, nil},
		{"empty", dto.CreatePostDTO{Content: Ptr("   ")}, []string{"content"}},
		{"too long", dto.CreatePostDTO{Content: Ptr(strings.Repeat("a", 301))}, []string{"Content"}},
		{"gif type without url", dto.CreatePostDTO{Content: Ptr("x"), MediaDTO: dto.MediaDTO{MediaType: Ptr[int8](2)}}, []string{"gifUrl"}},
		{"gif type with file", dto.CreatePostDTO{MediaDTO: dto.MediaDTO{MediaType: Ptr[int8](2), GifURL: &gif, FileURL: &file}}, []string{"fileUrl"}},
		{"image without file", dto.CreatePostDTO{Content: Ptr("x"), MediaDTO: dto.MediaDTO{MediaType: Ptr[int8](1)}}, []string{"fileUrl"}},
		{"gif url on image", dto.CreatePostDTO{MediaDTO: dto.MediaDTO{MediaType: Ptr[int8](0), FileURL: &file, GifURL: &gif}}, []string{"gifUrl"}},
		{"file without type", dto.CreatePostDTO{MediaDTO: dto.MediaDTO{FileURL: &file}}, []string{"mediaType"}},
		{"unknown type", dto.CreatePostDTO{Content: Ptr("x"), MediaDTO: dto.MediaDTO{MediaType: Ptr[int8](5)}}, []string{"MediaType"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDTO(tc.req)
			if tc.fields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.fields, failedFields(t, err))
		})
	}
}

func TestValidateCreateComment(t *testing.T) {
	req := dto.CreateCommentDTO{PostID: "8c5d4f5e-8b7a-4a59-9a53-0b4f3e0c8f10", Content: Ptr("nice")}
	assert.NoError(t, ValidateDTO(req))

	req.PostID = "not-a-uuid"
	assert.Equal(t, []string{"PostID"}, failedFields(t, ValidateDTO(req)))

	req = dto.CreateCommentDTO{PostID: "8c5d4f5e-8b7a-4a59-9a53-0b4f3e0c8f10"}
	assert.Equal(t, []string{"content"}, failedFields(t, ValidateDTO(req)))
}

func TestDecodeStrict(t *testing.T) {
	var req dto.ModerationDTO
	err := DecodeStrict(strings.NewReader(`{"postId":"p1","authorUsername":"a","moderatorUsername":"m"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "p1", req.PostID)

	err = DecodeStrict(strings.NewReader(`{"postId":"p1","extra":true}`), &req)
	assert.Error(t, err)
}

func TestNormalizeUsername(t *testing.T) {
	name, err := NormalizeUsername(nil)
	require.NoError(t, err)
	assert.Empty(t, name)

	name, err = NormalizeUsername(Ptr("  Alice "))
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	_, err = NormalizeUsername(Ptr("   "))
	assert.ErrorIs(t, err, ErrEmptyUsername)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("29-02-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "29-02-2024", FormatDate(d))

	_, err = ParseDate("29-02-2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-01-01")
	assert.Error(t, err)
}
