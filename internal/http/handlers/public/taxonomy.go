package public

import (
	"errors"
	"strings"
	"time"

	"github.com/lumina-blog/internal/cache"
	"github.com/lumina-blog/internal/http/response"
	"github.com/lumina-blog/internal/models"
	"github.com/lumina-blog/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	categoriesCacheKey = "public:categories"
	tagsCacheKey       = "public:tags"
	taxonomyCacheTTL   = 60 * time.Second
)

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	// 无筛选的全量列表走缓存
	if search == "" {
		var cached []models.Category
		if hit, err := cache.GetJSON(c.Request.Context(), categoriesCacheKey, &cached); err == nil && hit {
			response.Success(c, cached)
			return
		}
	}

	categories, err := h.CategoryService.List(search)
	if err != nil {
		respondError(c, response.CodeInternal, "获取分类列表失败", err)
		return
	}
	if search == "" {
		_ = cache.SetJSON(c.Request.Context(), categoriesCacheKey, categories, taxonomyCacheTTL)
	}
	response.Success(c, categories)
}

// GetCategory 获取分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "无效的分类 ID", nil)
		return
	}

	category, err := h.CategoryService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "分类不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "获取分类失败", err)
		return
	}
	response.Success(c, category)
}

// GetTags 获取标签列表
func (h *Handler) GetTags(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	if search == "" {
		var cached []models.Tag
		if hit, err := cache.GetJSON(c.Request.Context(), tagsCacheKey, &cached); err == nil && hit {
			response.Success(c, cached)
			return
		}
	}

	tags, err := h.TagService.List(search)
	if err != nil {
		respondError(c, response.CodeInternal, "获取标签列表失败", err)
		return
	}
	if search == "" {
		_ = cache.SetJSON(c.Request.Context(), tagsCacheKey, tags, taxonomyCacheTTL)
	}
	response.Success(c, tags)
}

// GetTag 获取标签详情
func (h *Handler) GetTag(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "无效的标签 ID", nil)
		return
	}

	tag, err := h.TagService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "标签不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "获取标签失败", err)
		return
	}
	response.Success(c, tag)
}
