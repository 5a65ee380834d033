package repository

import (
	"github.com/lumina-blog/internal/constants"
	"github.com/lumina-blog/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview() (DashboardOverviewRow, error)
	GetRecentArticles(limit int) ([]models.Article, error)
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	ArticlesTotal     int64
	ArticlesPublished int64
	ArticlesDraft     int64
	ArticlesPrivate   int64
	ViewsTotal        int64
	CategoriesTotal   int64
	TagsTotal         int64
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview 获取总览统计
func (r *GormDashboardRepository) GetOverview() (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	articleBase := func() *gorm.DB {
		return r.db.Model(&models.Article{})
	}

	if err := articleBase().Count(&result.ArticlesTotal).Error; err != nil {
		return result, err
	}
	if err := articleBase().Where("status = ?", constants.ArticleStatusPublished).Count(&result.ArticlesPublished).Error; err != nil {
		return result, err
	}
	if err := articleBase().Where("status = ?", constants.ArticleStatusDraft).Count(&result.ArticlesDraft).Error; err != nil {
		return result, err
	}
	if err := articleBase().Where("is_public = ?", false).Count(&result.ArticlesPrivate).Error; err != nil {
		return result, err
	}
	if err := articleBase().Select("COALESCE(SUM(view_count), 0)").Scan(&result.ViewsTotal).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Category{}).Count(&result.CategoriesTotal).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Tag{}).Count(&result.TagsTotal).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetRecentArticles 获取最近创建的文章
func (r *GormDashboardRepository) GetRecentArticles(limit int) ([]models.Article, error) {
	if limit <= 0 {
		limit = 5
	}
	articles := make([]models.Article, 0, limit)
	err := r.db.Model(&models.Article{}).
		Preload("Category").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}
