package repository

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNoReportedPosts 当前页或筛选条件下没有被举报的帖子，不是存储错误
var ErrNoReportedPosts = errors.New("No reported posts in this page range.")

// ErrInvalidSort 排序字段或方向不在白名单内
var ErrInvalidSort = errors.New("invalid reported posts sort")

const (
	OrderByDate        = "date"
	OrderByReportCount = "report_count"
	OrderASC           = "ASC"
	OrderDESC          = "DESC"
)

var reportedPostOrderFields = map[string]string{
	OrderByDate:        "p.created_at",
	OrderByReportCount: "total_reports",
}

var reportedPostColumns = fmt.Sprintf(`p.id, p.user_id, p.content, p.file_url, p.file_size, p.media_type,
	p.is_active, p.is_edited, p.status, p.created_at, p.updated_at,
	u.username, u.email,
	COALESCE(SUM(CASE WHEN r.status = %d THEN 1 ELSE 0 END), 0) AS active_reports,
	COUNT(r.id) AS total_reports`, consts.ReportStatusActive)

const reportedPostGroupBy = `p.id, p.user_id, p.content, p.file_url, p.file_size, p.media_type,
	p.is_active, p.is_edited, p.status, p.created_at, p.updated_at, u.username, u.email`

// ReportedPostQuery 被举报帖子分页查询条件
type ReportedPostQuery struct {
	Limit          int
	Offset         int
	OrderBy        string
	OrderDirection string
	Username       string
}

// OrderClause 校验并生成 ORDER BY 子句
func (q ReportedPostQuery) OrderClause() (string, error) {
	field, ok := reportedPostOrderFields[q.OrderBy]
	if !ok {
		return "", fmt.Errorf("%w: unsupported field %q", ErrInvalidSort, q.OrderBy)
	}
	dir := strings.ToUpper(q.OrderDirection)
	if dir != OrderASC && dir != OrderDESC {
		return "", fmt.Errorf("%w: unsupported direction %q", ErrInvalidSort, q.OrderDirection)
	}
	return field + " " + dir, nil
}

type ReportedPostRepo interface {
	ListPaginated(ctx context.Context, q ReportedPostQuery) ([]*model.ReportedPost, error)
	ListAll(ctx context.Context) ([]*model.ReportedPost, error)
	Count(ctx context.Context, username string) (int64, error)
	CountActiveReports(ctx context.Context) (int64, error)
	Deactivate(ctx context.Context, postID string, resolverID *string) error
	Restore(ctx context.Context, postID string) error
}

type ReportedPostRepoImpl struct {
	db *gorm.DB
}

func NewReportedPostRepository(db *gorm.DB) ReportedPostRepo {
	return &ReportedPostRepoImpl{db: db}
}

func (s *ReportedPostRepoImpl) aggregate(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("posts p").
		Select(reportedPostColumns).
		Joins("JOIN users u ON u.id = p.user_id").
		Joins("JOIN reports r ON r.reported_content_id = p.id").
		Group(reportedPostGroupBy)
}

// ListPaginated 按白名单排序分页，结果为空时返回 ErrNoReportedPosts
func (s *ReportedPostRepoImpl) ListPaginated(ctx context.Context, q ReportedPostQuery) ([]*model.ReportedPost, error) {
	order, err := q.OrderClause()
	if err != nil {
		return nil, err
	}

	tx := s.aggregate(ctx)
	if q.Username != "" {
		tx = tx.Where("LOWER(u.username) = LOWER(?)", q.Username)
	}

	var posts []*model.ReportedPost
	err = tx.Order(order).Order("p.id DESC").
		Limit(q.Limit).Offset(q.Offset).
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoReportedPosts
	}
	return posts, nil
}

// ListAll 全量导出，按发帖时间倒序
func (s *ReportedPostRepoImpl) ListAll(ctx context.Context) ([]*model.ReportedPost, error) {
	var posts []*model.ReportedPost
	err := s.aggregate(ctx).Order("p.created_at DESC").Order("p.id DESC").Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoReportedPosts
	}
	return posts, nil
}

// Count 被举报帖子总数，可按作者用户名过滤
func (s *ReportedPostRepoImpl) Count(ctx context.Context, username string) (int64, error) {
	tx := s.db.WithContext(ctx).
		Table("posts p").
		Joins("JOIN reports r ON r.reported_content_id = p.id")
	if username != "" {
		tx = tx.Joins("JOIN users u ON u.id = p.user_id").
			Where("LOWER(u.username) = LOWER(?)", username)
	}

	var count int64
	err := tx.Select("COUNT(DISTINCT p.id)").Scan(&count).Error
	return count, err
}

// CountActiveReports 全站有效举报数
func (s *ReportedPostRepoImpl) CountActiveReports(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Report{}).
		Where("status = ?", consts.ReportStatusActive).
		Count(&count).Error
	return count, err
}

// Deactivate 在同一事务中下架帖子并关闭其全部举报
func (s *ReportedPostRepoImpl) Deactivate(ctx context.Context, postID string, resolverID *string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("id = ?", postID).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Report{}).Where("reported_content_id = ?", postID).
			Updates(map[string]any{
				"status":      consts.ReportStatusResolved,
				"resolver_id": resolverID,
			}).Error
	})
}

// Restore Deactivate 的逆操作，举报重新生效
func (s *ReportedPostRepoImpl) Restore(ctx context.Context, postID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("id = ?", postID).Update("is_active", true).Error; err != nil {
			return err
		}
		return tx.Model(&model.Report{}).Where("reported_content_id = ?", postID).
			Updates(map[string]any{
				"status":      consts.ReportStatusActive,
				"resolver_id": nil,
			}).Error
	})
}
