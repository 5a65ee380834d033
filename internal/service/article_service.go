package service

import (
	"strings"
	"unicode/utf8"

	"github.com/lumina-blog/internal/constants"
	"github.com/lumina-blog/internal/models"
	"github.com/lumina-blog/internal/repository"
)

// ArticleService 文章业务服务
type ArticleService struct {
	repo         repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

// NewArticleService 创建文章服务
func NewArticleService(repo repository.ArticleRepository, categoryRepo repository.CategoryRepository, tagRepo repository.TagRepository) *ArticleService {
	return &ArticleService{repo: repo, categoryRepo: categoryRepo, tagRepo: tagRepo}
}

// ArticleListInput 文章列表查询输入
type ArticleListInput struct {
	Page       int
	PageSize   int
	CategoryID *uint
	TagID      *uint
	Search     string
	Status     string
	IsPublic   *bool
}

// CreateArticleInput 创建文章输入
type CreateArticleInput struct {
	Title         string
	Summary       string
	Content       string
	CoverImage    string
	CategoryID    *uint
	IsPublic      *bool
	IsTop         *bool
	IsRecommended *bool
	Status        string
	TagIDs        []uint
}

// UpdateArticleInput 更新文章输入，nil 字段表示保持原值
type UpdateArticleInput struct {
	Title         *string
	Summary       *string
	Content       *string
	CoverImage    *string
	CategoryID    *uint
	ClearCategory bool
	IsPublic      *bool
	IsTop         *bool
	IsRecommended *bool
	Status        *string
	TagIDs        *[]uint
}

var allowedArticleStatuses = map[string]struct{}{
	constants.ArticleStatusDraft:     {},
	constants.ArticleStatusPublished: {},
}

// List 文章列表，匿名访客强制收窄到公开已发布
func (s *ArticleService) List(input ArticleListInput, vis Visibility) ([]models.Article, int64, error) {
	filter := repository.ArticleListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		CategoryID: input.CategoryID,
		TagID:      input.TagID,
		Search:     input.Search,
	}
	if vis.CanSeeHidden() {
		filter.Status = input.Status
		filter.IsPublic = input.IsPublic
	} else {
		filter.PublicOnly = true
	}
	return s.repo.List(filter)
}

// Get 文章详情，命中后浏览量加一
func (s *ArticleService) Get(id uint, vis Visibility) (*models.Article, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	if !vis.CanSeeHidden() {
		if !article.IsPublic || article.Status != constants.ArticleStatusPublished {
			// 文章存在但对访客不可见，返回禁止而非不存在
			return nil, ErrForbidden
		}
	}
	if err := s.repo.IncrementViewCount(article.ID); err != nil {
		return nil, err
	}
	article.ViewCount++
	return article, nil
}

// Create 创建文章
func (s *ArticleService) Create(input CreateArticleInput) (*models.Article, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateArticleTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrContentRequired
	}

	status := input.Status
	if status == "" {
		status = constants.ArticleStatusDraft
	}
	if _, ok := allowedArticleStatuses[status]; !ok {
		return nil, ErrInvalidStatus
	}

	if input.CategoryID != nil {
		if err := s.ensureCategoryExists(*input.CategoryID); err != nil {
			return nil, err
		}
	}
	tagIDs, err := s.normalizeTagIDs(input.TagIDs)
	if err != nil {
		return nil, err
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	article := models.Article{
		Title:      title,
		Summary:    input.Summary,
		Content:    input.Content,
		CoverImage: input.CoverImage,
		CategoryID: input.CategoryID,
		IsPublic:   isPublic,
		Status:     status,
	}
	if input.IsTop != nil {
		article.IsTop = *input.IsTop
	}
	if input.IsRecommended != nil {
		article.IsRecommended = *input.IsRecommended
	}

	if err := s.repo.Create(&article); err != nil {
		return nil, err
	}
	if len(tagIDs) > 0 {
		if err := s.repo.ReplaceTags(article.ID, tagIDs); err != nil {
			return nil, err
		}
	}
	return s.reload(article.ID)
}

// Update 部分更新文章，TagIDs 出现时整体替换标签
func (s *ArticleService) Update(id uint, input UpdateArticleInput) (*models.Article, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := validateArticleTitle(title); err != nil {
			return nil, err
		}
		article.Title = title
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, ErrContentRequired
		}
		article.Content = *input.Content
	}
	if input.Summary != nil {
		article.Summary = *input.Summary
	}
	if input.CoverImage != nil {
		article.CoverImage = *input.CoverImage
	}
	if input.Status != nil {
		if _, ok := allowedArticleStatuses[*input.Status]; !ok {
			return nil, ErrInvalidStatus
		}
		article.Status = *input.Status
	}
	if input.ClearCategory {
		article.CategoryID = nil
	} else if input.CategoryID != nil {
		if err := s.ensureCategoryExists(*input.CategoryID); err != nil {
			return nil, err
		}
		article.CategoryID = input.CategoryID
	}
	if input.IsPublic != nil {
		article.IsPublic = *input.IsPublic
	}
	if input.IsTop != nil {
		article.IsTop = *input.IsTop
	}
	if input.IsRecommended != nil {
		article.IsRecommended = *input.IsRecommended
	}

	var tagIDs []uint
	if input.TagIDs != nil {
		tagIDs, err = s.normalizeTagIDs(*input.TagIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(article); err != nil {
		return nil, err
	}
	if input.TagIDs != nil {
		if err := s.repo.ReplaceTags(article.ID, tagIDs); err != nil {
			return nil, err
		}
	}
	return s.reload(article.ID)
}

// Delete 删除文章
func (s *ArticleService) Delete(id uint) error {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *ArticleService) reload(id uint) (*models.Article, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

func (s *ArticleService) ensureCategoryExists(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryInvalid
	}
	return nil
}

// normalizeTagIDs 去重并校验标签全部存在
func (s *ArticleService) normalizeTagIDs(ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	tags, err := s.tagRepo.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		return nil, ErrTagInvalid
	}
	return unique, nil
}

func validateArticleTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > constants.ArticleTitleMaxLength {
		return ErrTitleTooLong
	}
	return nil
}
