package admin

import (
	"encoding/json"
	"errors"

	"github.com/lumina-blog/internal/http/response"
	"github.com/lumina-blog/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateArticleRequest 创建文章请求
type CreateArticleRequest struct {
	Title         string `json:"title" binding:"required"`
	Summary       string `json:"summary"`
	Content       string `json:"content" binding:"required"`
	CoverImage    string `json:"cover_image"`
	CategoryID    *uint  `json:"category_id"`
	IsPublic      *bool  `json:"is_public"`
	IsTop         *bool  `json:"is_top"`
	IsRecommended *bool  `json:"is_recommended"`
	Status        string `json:"status"`
	TagIDs        []uint `json:"tag_ids"`
}

// UpdateArticleRequest 更新文章请求，缺省字段保持原值
// category_id 使用原始 JSON 以区分「未提供」与「显式置空」。
type UpdateArticleRequest struct {
	Title         *string         `json:"title"`
	Summary       *string         `json:"summary"`
	Content       *string         `json:"content"`
	CoverImage    *string         `json:"cover_image"`
	CategoryID    json.RawMessage `json:"category_id"`
	IsPublic      *bool           `json:"is_public"`
	IsTop         *bool           `json:"is_top"`
	IsRecommended *bool           `json:"is_recommended"`
	Status        *string         `json:"status"`
	TagIDs        *[]uint         `json:"tag_ids"`
}

// CreateArticle 创建文章
func (h *Handler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	article, err := h.ArticleService.Create(service.CreateArticleInput{
		Title:         req.Title,
		Summary:       req.Summary,
		Content:       req.Content,
		CoverImage:    req.CoverImage,
		CategoryID:    req.CategoryID,
		IsPublic:      req.IsPublic,
		IsTop:         req.IsTop,
		IsRecommended: req.IsRecommended,
		Status:        req.Status,
		TagIDs:        req.TagIDs,
	})
	if err != nil {
		respondArticleMutationError(c, err)
		return
	}

	h.enqueueDashboardRefresh("article_created")
	response.Success(c, article)
}

// UpdateArticle 部分更新文章
func (h *Handler) UpdateArticle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "无效的文章 ID", nil)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	input := service.UpdateArticleInput{
		Title:         req.Title,
		Summary:       req.Summary,
		Content:       req.Content,
		CoverImage:    req.CoverImage,
		IsPublic:      req.IsPublic,
		IsTop:         req.IsTop,
		IsRecommended: req.IsRecommended,
		Status:        req.Status,
		TagIDs:        req.TagIDs,
	}
	if len(req.CategoryID) > 0 {
		if string(req.CategoryID) == "null" {
			input.ClearCategory = true
		} else {
			var categoryID uint
			if err := json.Unmarshal(req.CategoryID, &categoryID); err != nil || categoryID == 0 {
				respondError(c, response.CodeBadRequest, "无效的分类 ID", err)
				return
			}
			input.CategoryID = &categoryID
		}
	}

	article, err := h.ArticleService.Update(id, input)
	if err != nil {
		respondArticleMutationError(c, err)
		return
	}

	h.enqueueDashboardRefresh("article_updated")
	response.Success(c, article)
}

// DeleteArticle 删除文章
func (h *Handler) DeleteArticle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "无效的文章 ID", nil)
		return
	}

	if err := h.ArticleService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "文章不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "删除文章失败", err)
		return
	}

	h.enqueueDashboardRefresh("article_deleted")
	response.SuccessWithMsg(c, "文章已删除", nil)
}

func respondArticleMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "文章不存在", nil)
	case errors.Is(err, service.ErrTitleRequired):
		respondError(c, response.CodeBadRequest, "标题不能为空", nil)
	case errors.Is(err, service.ErrTitleTooLong):
		respondError(c, response.CodeBadRequest, "标题长度超出限制", nil)
	case errors.Is(err, service.ErrContentRequired):
		respondError(c, response.CodeBadRequest, "内容不能为空", nil)
	case errors.Is(err, service.ErrInvalidStatus):
		respondError(c, response.CodeBadRequest, "无效的文章状态", nil)
	case errors.Is(err, service.ErrCategoryInvalid):
		respondError(c, response.CodeNotFound, "分类不存在", nil)
	case errors.Is(err, service.ErrTagInvalid):
		respondError(c, response.CodeNotFound, "存在无效的标签", nil)
	default:
		respondError(c, response.CodeInternal, "保存文章失败", err)
	}
}
