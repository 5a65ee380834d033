package repository

import (
	"errors"
	"strings"

	"github.com/lumina-blog/internal/constants"
	"github.com/lumina-blog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// articleListOrder 列表固定排序：置顶优先，其后按创建时间与 ID 倒序保证稳定分页。
const articleListOrder = "is_top DESC, created_at DESC, id DESC"

// ArticleRepository 文章数据访问接口
type ArticleRepository interface {
	List(filter ArticleListFilter) ([]models.Article, int64, error)
	GetByID(id uint) (*models.Article, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(id uint) error
	IncrementViewCount(id uint) error
	ReplaceTags(articleID uint, tagIDs []uint) error
}

// GormArticleRepository GORM 实现
type GormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建文章仓库
func NewArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// List 文章列表
func (r *GormArticleRepository) List(filter ArticleListFilter) ([]models.Article, int64, error) {
	var articles []models.Article
	query := r.db.Model(&models.Article{})

	if filter.PublicOnly {
		query = query.Where("articles.is_public = ?", true).
			Where("articles.status = ?", constants.ArticleStatusPublished)
	} else {
		if filter.Status != "" {
			query = query.Where("articles.status = ?", filter.Status)
		}
		if filter.IsPublic != nil {
			query = query.Where("articles.is_public = ?", *filter.IsPublic)
		}
	}
	if filter.CategoryID != nil {
		query = query.Where("articles.category_id = ?", *filter.CategoryID)
	}
	if filter.TagID != nil {
		query = query.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Where("article_tags.tag_id = ?", *filter.TagID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildLikeCondition(r.db, []string{"articles.title", "articles.summary", "articles.content"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	err := query.
		Preload("Category").
		Preload("Tags").
		Order(articleListOrder).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// GetByID 根据 ID 获取文章，附带分类与标签
func (r *GormArticleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.
		Preload("Category").
		Preload("Tags").
		First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Create 创建文章，标签关联由 ReplaceTags 单独维护
func (r *GormArticleRepository) Create(article *models.Article) error {
	return r.db.Omit(clause.Associations).Create(article).Error
}

// Update 更新文章
func (r *GormArticleRepository) Update(article *models.Article) error {
	return r.db.Omit(clause.Associations).Save(article).Error
}

// Delete 删除文章，同时清理标签关联
func (r *GormArticleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, id).Error
	})
}

// IncrementViewCount 浏览量加一，数据库端自增避免读改写竞态
func (r *GormArticleRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// ReplaceTags 整体替换文章标签，先删后插在同一事务内完成
func (r *GormArticleRepository) ReplaceTags(articleID uint, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		if len(tagIDs) == 0 {
			return nil
		}
		rows := make([]models.ArticleTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			rows = append(rows, models.ArticleTag{ArticleID: articleID, TagID: tagID})
		}
		return tx.Create(&rows).Error
	})
}
