package admin

import (
	"context"
	"errors"

	"github.com/lumina-blog/internal/cache"
	"github.com/lumina-blog/internal/http/response"
	"github.com/lumina-blog/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 创建分类请求
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest 更新分类请求，缺省字段保持原值
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// TagRequest 创建/更新标签请求
type TagRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	category, err := h.CategoryService.Create(service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondTaxonomyMutationError(c, err, "分类")
		return
	}

	h.invalidateTaxonomyCache(c.Request.Context())
	response.Success(c, category)
}

// UpdateCategory 部分更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "无效的分类 ID", nil)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	category, err := h.CategoryService.Update(id, service.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondTaxonomyMutationError(c, err, "分类")
		return
	}

	h.invalidateTaxonomyCache(c.Request.Context())
	response.Success(c, category)
}

// DeleteCategory 删除分类，关联文章解除归属而非删除
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "无效的分类 ID", nil)
		return
	}

	if err := h.CategoryService.Delete(id); err != nil {
		respondTaxonomyMutationError(c, err, "分类")
		return
	}

	h.invalidateTaxonomyCache(c.Request.Context())
	h.enqueueDashboardRefresh("category_deleted")
	response.SuccessWithMsg(c, "分类已删除", nil)
}

// CreateTag 创建标签
func (h *Handler) CreateTag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	tag, err := h.TagService.Create(req.Name)
	if err != nil {
		respondTaxonomyMutationError(c, err, "标签")
		return
	}

	h.invalidateTaxonomyCache(c.Request.Context())
	response.Success(c, tag)
}

// UpdateTag 更新标签
func (h *Handler) UpdateTag(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "无效的标签 ID", nil)
		return
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	tag, err := h.TagService.Update(id, req.Name)
	if err != nil {
		respondTaxonomyMutationError(c, err, "标签")
		return
	}

	h.invalidateTaxonomyCache(c.Request.Context())
	response.Success(c, tag)
}

// DeleteTag 删除标签，同时解除与文章的关联
func (h *Handler) DeleteTag(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "无效的标签 ID", nil)
		return
	}

	if err := h.TagService.Delete(id); err != nil {
		respondTaxonomyMutationError(c, err, "标签")
		return
	}

	h.invalidateTaxonomyCache(c.Request.Context())
	h.enqueueDashboardRefresh("tag_deleted")
	response.SuccessWithMsg(c, "标签已删除", nil)
}

func (h *Handler) invalidateTaxonomyCache(ctx context.Context) {
	_ = cache.Del(ctx, "public:categories")
	_ = cache.Del(ctx, "public:tags")
}

func respondTaxonomyMutationError(c *gin.Context, err error, noun string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, noun+"不存在", nil)
	case errors.Is(err, service.ErrNameRequired):
		respondError(c, response.CodeBadRequest, noun+"名称不能为空", nil)
	case errors.Is(err, service.ErrNameExists):
		respondError(c, response.CodeConflict, noun+"名称已存在", nil)
	default:
		respondError(c, response.CodeInternal, "保存"+noun+"失败", err)
	}
}
